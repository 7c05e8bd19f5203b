// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// DateLayout is the calendar date encoding used across the system.
// Dates are kept as zero-padded fixed-width strings so that lexicographic
// comparison matches chronological order.
const DateLayout = "2006-01-02"

// Transaction represents a single income or expense record owned by a user.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	Description string
	Amount      decimal.Decimal // Always positive; Type carries the direction
	Category    string
	Date        string // YYYY-MM-DD
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	description string,
	amount decimal.Decimal,
	category string,
	date string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        transactionType,
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidTransactionType validates the transaction type.
func IsValidTransactionType(transactionType TransactionType) bool {
	return transactionType == TransactionTypeExpense || transactionType == TransactionTypeIncome
}

// IsValidDate reports whether the date string is a well-formed YYYY-MM-DD date.
func IsValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
