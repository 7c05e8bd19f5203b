package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
// Filters apply in memory over the user's snapshot; "all" (or empty) disables
// the category and type filters.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	Category  string
	Type      string
	StartDate string
	EndDate   string
	Search    string
	SortField string
	SortDir   SortDirection
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Total        int
}

// ListTransactionsUseCase serves a filtered view over a user's snapshot.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	snapshotCache   adapter.SnapshotCache
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	snapshotCache adapter.SnapshotCache,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		snapshotCache:   snapshotCache,
	}
}

// Execute fetches the snapshot and applies the requested filters and sort.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	snapshot, ok := uc.snapshotCache.Get(ctx, input.UserID)
	if !ok {
		var err error
		snapshot, err = uc.transactionRepo.FindByUser(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load transactions: %w", err)
		}
		uc.snapshotCache.Set(ctx, input.UserID, snapshot)
	}

	result := snapshot
	if input.Category != "" {
		result = FilterByCategory(result, input.Category)
	}
	if input.Type != "" {
		result = FilterByType(result, input.Type)
	}
	if input.StartDate != "" && input.EndDate != "" {
		result = FilterByDateRange(result, input.StartDate, input.EndDate)
	}
	if input.Search != "" {
		result = Search(result, input.Search)
	}
	if input.SortField != "" {
		direction := input.SortDir
		if direction == "" {
			direction = SortDescending
		}
		result = Sort(result, input.SortField, direction)
	}

	return &ListTransactionsOutput{
		Transactions: result,
		Total:        len(result),
	}, nil
}
