package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
)

// GetSummaryInput represents the input for the summary dashboard.
type GetSummaryInput struct {
	UserID    uuid.UUID
	StartDate string // Optional, YYYY-MM-DD, inclusive
	EndDate   string // Optional, YYYY-MM-DD, inclusive
}

// GetSummaryOutput represents the output of the summary dashboard.
type GetSummaryOutput struct {
	Summary Summary
}

// GetSummaryUseCase computes aggregate totals over a user's snapshot.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	snapshotCache   adapter.SnapshotCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	snapshotCache adapter.SnapshotCache,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		snapshotCache:   snapshotCache,
	}
}

// Execute fetches the user snapshot and derives the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
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

	return &GetSummaryOutput{Summary: CalculateSummary(snapshot)}, nil
}
