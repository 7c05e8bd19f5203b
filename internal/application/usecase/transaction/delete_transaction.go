package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	snapshotCache   adapter.SnapshotCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	snapshotCache adapter.SnapshotCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		snapshotCache:   snapshotCache,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if txn.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to delete this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	uc.snapshotCache.Invalidate(ctx, input.UserID)

	return &DeleteTransactionOutput{Success: true}, nil
}
