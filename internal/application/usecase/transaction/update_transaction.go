package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Type          *entity.TransactionType
	Description   *string
	Amount        *string
	Category      *string
	Date          *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	snapshotCache   adapter.SnapshotCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	snapshotCache adapter.SnapshotCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		snapshotCache:   snapshotCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
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
			"not authorized to update this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Type != nil {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		txn.Type = *input.Type
	}

	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, domainerror.NewValidationError([]string{"Description is required"})
		}
		txn.Description = strings.TrimSpace(*input.Description)
	}

	if input.Amount != nil {
		amount, err := decimal.NewFromString(strings.TrimSpace(*input.Amount))
		if err != nil || !amount.IsPositive() {
			return nil, domainerror.NewValidationError([]string{"Amount must be a valid number greater than 0"})
		}
		txn.Amount = amount
	}

	if input.Category != nil {
		if *input.Category == "" {
			return nil, domainerror.NewValidationError([]string{"Category is required"})
		}
		txn.Category = *input.Category
	}

	if input.Date != nil {
		if !entity.IsValidDate(*input.Date) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date must be in YYYY-MM-DD format",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		txn.Date = *input.Date
	}

	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	uc.snapshotCache.Invalidate(ctx, input.UserID)

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
