package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the expense tracker system.
// Accounts are provisioned on first Google sign-in and keyed by the
// Google subject identifier.
type User struct {
	ID            uuid.UUID
	GoogleSubject string
	Email         string
	DisplayName   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new User entity from a verified Google identity.
func NewUser(googleSubject, email, displayName string) *User {
	now := time.Now().UTC()

	return &User{
		ID:            uuid.New(),
		GoogleSubject: googleSubject,
		Email:         email,
		DisplayName:   displayName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
