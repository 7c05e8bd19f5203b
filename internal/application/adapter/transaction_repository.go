// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for the external transaction store.
// All queries and mutations are scoped to a single owning user. Store failures
// propagate to callers unchanged; no retry logic lives behind this interface.
type TransactionRepository interface {
	// Create creates a new transaction in the store.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// BulkCreate creates multiple transactions in a single operation.
	// Used by bulk imports; all rows are stamped with the same user.
	BulkCreate(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves the full snapshot of a user's transactions,
	// ordered by date descending then creation time descending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the store.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction from the store.
	Delete(ctx context.Context, id uuid.UUID) error

	// BulkDelete soft-deletes multiple transactions by their IDs.
	// Returns the count of deleted transactions.
	BulkDelete(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error)
}
