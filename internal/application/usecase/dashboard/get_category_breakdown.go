package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	UserID    uuid.UUID
	Type      entity.TransactionType
	StartDate string // Optional, YYYY-MM-DD, inclusive
	EndDate   string // Optional, YYYY-MM-DD, inclusive
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Type       entity.TransactionType
	Categories []CategoryData
}

// GetCategoryBreakdownUseCase derives the per-category rollup for one type
// partition of a user's snapshot.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
	snapshotCache   adapter.SnapshotCache
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(
	transactionRepo adapter.TransactionRepository,
	snapshotCache adapter.SnapshotCache,
) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
		snapshotCache:   snapshotCache,
	}
}

// Execute fetches the user snapshot and derives the category breakdown.
func (uc *GetCategoryBreakdownUseCase) Execute(
	ctx context.Context,
	input GetCategoryBreakdownInput,
) (*GetCategoryBreakdownOutput, error) {
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	snapshot, ok := uc.snapshotCache.Get(ctx, input.UserID)
	if !ok {
		var err error
		snapshot, err = uc.transactionRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		uc.snapshotCache.Set(ctx, input.UserID, snapshot)
	}

	if input.StartDate != "" && input.EndDate != "" {
		snapshot = transaction.FilterByDateRange(snapshot, input.StartDate, input.EndDate)
	}

	return &GetCategoryBreakdownOutput{
		Type:       input.Type,
		Categories: BuildCategoryData(snapshot, input.Type),
	}, nil
}
