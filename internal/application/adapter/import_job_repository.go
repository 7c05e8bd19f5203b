// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ImportJobRepository defines the interface for import bookkeeping persistence.
type ImportJobRepository interface {
	// Create records a completed import.
	Create(ctx context.Context, job *entity.ImportJob) error

	// FindByUser retrieves a user's import history, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ImportJob, error)
}
