package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// BulkDeleteTransactionsInput represents the input for bulk transaction deletion.
type BulkDeleteTransactionsInput struct {
	UserID uuid.UUID
	IDs    []uuid.UUID
}

// BulkDeleteTransactionsOutput represents the output of bulk transaction deletion.
type BulkDeleteTransactionsOutput struct {
	DeletedCount int64
}

// BulkDeleteTransactionsUseCase handles bulk transaction deletion logic.
type BulkDeleteTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	snapshotCache   adapter.SnapshotCache
}

// NewBulkDeleteTransactionsUseCase creates a new BulkDeleteTransactionsUseCase instance.
func NewBulkDeleteTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	snapshotCache adapter.SnapshotCache,
) *BulkDeleteTransactionsUseCase {
	return &BulkDeleteTransactionsUseCase{
		transactionRepo: transactionRepo,
		snapshotCache:   snapshotCache,
	}
}

// Execute performs the bulk deletion. Only transactions owned by the user are
// deleted; IDs belonging to other users are silently skipped by the store.
func (uc *BulkDeleteTransactionsUseCase) Execute(ctx context.Context, input BulkDeleteTransactionsInput) (*BulkDeleteTransactionsOutput, error) {
	if len(input.IDs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionIDs,
			"at least one transaction ID is required",
			domainerror.ErrEmptyTransactionIDs,
		)
	}

	count, err := uc.transactionRepo.BulkDelete(ctx, input.IDs, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete transactions: %w", err)
	}

	uc.snapshotCache.Invalidate(ctx, input.UserID)

	return &BulkDeleteTransactionsOutput{DeletedCount: count}, nil
}
