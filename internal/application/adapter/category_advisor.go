// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryAdvisor suggests a category from the advisory list for a transaction
// description. Implementations may call an external model; callers must treat
// the advisor as best-effort and degrade gracefully when it is unavailable.
type CategoryAdvisor interface {
	// IsAvailable reports whether the advisor is configured and usable.
	IsAvailable() bool

	// SuggestCategory picks one category from the suggested list for the
	// given type that best matches the description.
	SuggestCategory(ctx context.Context, description string, transactionType entity.TransactionType) (string, error)
}
