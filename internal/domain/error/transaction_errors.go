// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the transaction amount is invalid.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrInvalidTransactionForm is returned when manual form input violates one or more rules.
	ErrInvalidTransactionForm = errors.New("invalid transaction form")

	// ErrEmptyTransactionIDs is returned when an empty list of transaction IDs is provided.
	ErrEmptyTransactionIDs = errors.New("transaction IDs list cannot be empty")

	// ErrTransactionIDsNotFound is returned when one or more transaction IDs are not found.
	ErrTransactionIDsNotFound = errors.New("one or more transactions not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010004"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"
	ErrCodeEmptyTransactionIDs      TransactionErrorCode = "TXN-010007"
	ErrCodeTransactionIDsNotFound   TransactionErrorCode = "TXN-010008"
	ErrCodeInvalidTransactionForm   TransactionErrorCode = "TXN-010009"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationError carries the full list of rule violations for a manual form
// submission so the caller can display every problem at once.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrInvalidTransactionForm.Error()
	}
	result := e.Messages[0]
	for _, m := range e.Messages[1:] {
		result += "; " + m
	}
	return result
}

// Unwrap returns the sentinel form error so errors.Is works.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidTransactionForm
}

// NewValidationError creates a ValidationError from collected messages.
func NewValidationError(messages []string) *ValidationError {
	return &ValidationError{Messages: messages}
}
