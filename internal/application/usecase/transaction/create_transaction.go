package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
// Amount and date arrive as strings straight from the form; the use case runs
// the full form validation before any conversion.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Type        entity.TransactionType
	Description string
	Amount      string
	Category    string
	Date        string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	snapshotCache   adapter.SnapshotCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	snapshotCache adapter.SnapshotCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		snapshotCache:   snapshotCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if messages := ValidateForm(FormData{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        input.Date,
	}); len(messages) > 0 {
		return nil, domainerror.NewValidationError(messages)
	}

	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}

	if !entity.IsValidDate(input.Date) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	amount, _ := decimal.NewFromString(strings.TrimSpace(input.Amount))

	txn := entity.NewTransaction(
		input.UserID,
		input.Type,
		strings.TrimSpace(input.Description),
		amount,
		input.Category,
		input.Date,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	uc.snapshotCache.Invalidate(ctx, input.UserID)

	return &CreateTransactionOutput{Transaction: txn}, nil
}
