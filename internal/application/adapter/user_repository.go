// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user in the database.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByGoogleSubject retrieves a user by their Google subject identifier.
	FindByGoogleSubject(ctx context.Context, subject string) (*entity.User, error)

	// Update updates an existing user in the database.
	Update(ctx context.Context, user *entity.User) error
}
