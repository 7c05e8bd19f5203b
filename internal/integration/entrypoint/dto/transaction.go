// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount arrives as a string so form validation can report a malformed value
// instead of the JSON decoder rejecting the body.
type CreateTransactionRequest struct {
	Type        string `json:"type" binding:"required,oneof=expense income"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Description *string `json:"description,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Category    *string `json:"category,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// ValidateTransactionRequest represents the request body for form validation.
type ValidateTransactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

// ValidateTransactionResponse represents the result of form validation.
type ValidateTransactionResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// BulkDeleteTransactionsRequest represents the request body for bulk transaction deletion.
type BulkDeleteTransactionsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// BulkDeleteTransactionsResponse represents the response for bulk transaction deletion.
type BulkDeleteTransactionsResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Type:        string(txn.Type),
		Description: txn.Description,
		Amount:      txn.Amount.String(),
		Category:    txn.Category,
		Date:        txn.Date,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Total:        output.Total,
	}
}
