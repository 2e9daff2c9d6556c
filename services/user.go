package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"go-food-delivery/models"
	"go-food-delivery/repositories"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Mailer delivers account verification codes
type Mailer interface {
	SendVerificationCode(ctx context.Context, toEmail, name, code string) error
}

// UserService manages accounts, their verification and local login
type UserService struct {
	*crud[models.User, models.UserPatch, models.UserQuery]
	mailer Mailer

	newOTP       func() (string, error)
	hashPassword func(password string) (string, error)
}

// NewUserService creates a UserService sending codes through mailer
func NewUserService(repo repositories.UserRepository, mailer Mailer, log *logrus.Logger) *UserService {
	return &UserService{
		crud:         newCrud("user", repo, repositories.UserFilter, log),
		mailer:       mailer,
		newOTP:       generateOTP,
		hashPassword: hashPassword,
	}
}

// Create registers an email account. The password arrives in clear text and
// is stored hashed; the account starts unverified with a fresh code.
func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.Email = normalizeEmail(user.Email)
	if _, err := s.findByEmail(ctx, user.Email); err == nil {
		return nil, newError(KindValidation, "email already registered", nil)
	} else if KindOf(err) != KindNotFound {
		return nil, err
	}

	code, err := s.newOTP()
	if err != nil {
		return nil, s.translate("create", fmt.Errorf("generating otp: %w", err))
	}
	hash, err := s.hashPassword(user.Password)
	if err != nil {
		return nil, s.translate("create", fmt.Errorf("hashing password: %w", err))
	}

	user.ID = primitive.NewObjectID()
	user.Password = hash
	user.Provider = models.ProviderEmail
	user.ProviderID = user.ID.Hex()
	user.OTP = &code
	user.IsVerified = false
	user.IsAdmin = false
	return s.crud.Create(ctx, user)
}

// Verify checks code against the stored one-time code. A mismatch reports
// false with an unauthorized error and changes nothing.
func (s *UserService) Verify(ctx context.Context, id, code string) (bool, error) {
	user, err := s.GetByID(ctx, id, "")
	if err != nil {
		return false, err
	}
	if user.OTP == nil || *user.OTP != code {
		return false, newError(KindUnauthorized, "invalid verification code", nil)
	}

	verified := true
	var cleared *string
	if _, err := s.Update(ctx, id, &models.UserPatch{IsVerified: &verified, OTP: &cleared}); err != nil {
		return false, err
	}
	return true, nil
}

// SendVerification mails the pending code to the user
func (s *UserService) SendVerification(ctx context.Context, id string) error {
	user, err := s.GetByID(ctx, id, "")
	if err != nil {
		return err
	}
	if user.IsVerified || user.OTP == nil {
		return newError(KindValidation, "user already verified", nil)
	}
	if err := s.mailer.SendVerificationCode(ctx, user.Email, user.FullName(), *user.OTP); err != nil {
		s.log.WithError(err).WithField("user_id", id).Error("sending verification code")
		return newError(KindInternal, "could not send verification code", err)
	}
	return nil
}

// Authenticate checks local credentials. Every failure is reported the same
// way so callers cannot probe which emails exist.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	denied := newError(KindUnauthorized, "invalid email or password", nil)

	user, err := s.findByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, denied
		}
		return nil, err
	}
	if user.Provider != models.ProviderEmail || user.Password == "" {
		return nil, denied
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, denied
	}
	if !user.IsVerified {
		return nil, newError(KindUnauthorized, "email not verified", nil)
	}
	return user, nil
}

// FindOrCreateFromProvider returns the account linked to an external
// identity, provisioning it verified and without password on first sight
func (s *UserService) FindOrCreateFromProvider(ctx context.Context, provider models.Provider, providerID string, profile models.User) (*models.User, error) {
	if provider == models.ProviderEmail || !provider.Valid() {
		return nil, newError(KindValidation, "unsupported provider", nil)
	}
	if providerID == "" || profile.Email == "" {
		return nil, newError(KindValidation, "provider identity needs an id and an email", nil)
	}
	found, err := s.Get(ctx, models.UserQuery{Provider: &provider, ProviderID: &providerID}, repositories.QueryOptions{})
	if err != nil {
		return nil, err
	}
	if len(found) > 0 {
		return &found[0], nil
	}

	user := &models.User{
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Email:      normalizeEmail(profile.Email),
		Provider:   provider,
		ProviderID: providerID,
		IsVerified: true,
	}
	return s.crud.Create(ctx, user)
}

func (s *UserService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	found, err := s.Get(ctx, models.UserQuery{Email: &email}, repositories.QueryOptions{})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, newError(KindNotFound, "user not found", nil)
	}
	return &found[0], nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// generateOTP returns a uniformly drawn 4 digit code
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
