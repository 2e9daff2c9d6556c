package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Provider is the identity source of an account
type Provider string

const (
	ProviderEmail    Provider = "email"
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
)

// Valid reports whether p is a known provider
func (p Provider) Valid() bool {
	switch p {
	case ProviderEmail, ProviderGoogle, ProviderFacebook:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName  string             `bson:"first_name" json:"first_name"`
	LastName   string             `bson:"last_name" json:"last_name"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password,omitempty" json:"-"` // empty for OAuth accounts
	Provider   Provider           `bson:"provider" json:"provider"`
	ProviderID string             `bson:"provider_id" json:"provider_id"`
	OTP        *string            `bson:"otp" json:"-"`
	IsVerified bool               `bson:"is_verified" json:"is_verified"`
	IsAdmin    bool               `bson:"is_admin" json:"is_admin"`
}

// FullName joins first and last name
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// MarshalJSON adds the read-only full_name field
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return json.Marshal(struct {
		plain
		FullName string `json:"full_name"`
	}{plain(u), u.FullName()})
}

// UserPatch is a partial user update.
// OTP is a double pointer so a patch can clear the stored code to null.
type UserPatch struct {
	FirstName  *string   `bson:"first_name,omitempty" json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName   *string   `bson:"last_name,omitempty" json:"last_name" validate:"omitempty,min=1,max=50"`
	Email      *string   `bson:"email,omitempty" json:"email" validate:"omitempty,email"`
	Password   *string   `bson:"password,omitempty" json:"-"`
	OTP        **string  `bson:"otp,omitempty" json:"-"`
	IsVerified *bool     `bson:"is_verified,omitempty" json:"-"`
	IsAdmin    *bool     `bson:"is_admin,omitempty" json:"is_admin"`
}
