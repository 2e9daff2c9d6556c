package derived

import (
	"context"
	"strings"

	"go-food-delivery/models"
)

// Users normalizes the email address so the unique index is case-insensitive
type Users struct{}

func (Users) BeforeCreate(_ context.Context, u *models.User) error {
	u.Email = normalizeEmail(u.Email)
	return nil
}

func (Users) BeforeUpdate(_ context.Context, p *models.UserPatch) error {
	if p.Email != nil {
		email := normalizeEmail(*p.Email)
		p.Email = &email
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
