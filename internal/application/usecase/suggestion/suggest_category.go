// Package suggestion implements the AI-assisted category suggestion use case.
package suggestion

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SuggestCategoryInput represents the input for a category suggestion.
type SuggestCategoryInput struct {
	Description     string
	TransactionType entity.TransactionType
}

// SuggestCategoryOutput represents the suggested category.
type SuggestCategoryOutput struct {
	Category string
}

// SuggestCategoryUseCase asks the configured advisor for a category matching
// the description. Suggestions are best-effort: when the advisor is missing,
// failing or answers off-list, the default category is returned instead of an
// error so clients never block on it.
type SuggestCategoryUseCase struct {
	advisor adapter.CategoryAdvisor
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(advisor adapter.CategoryAdvisor) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{advisor: advisor}
}

// Execute returns a category from the advisory list for the given type.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"description is required",
			nil,
		)
	}
	if !entity.IsValidTransactionType(input.TransactionType) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return &SuggestCategoryOutput{Category: entity.DefaultCategory}, nil
	}

	category, err := uc.advisor.SuggestCategory(ctx, input.Description, input.TransactionType)
	if err != nil {
		slog.Warn("Category advisor failed, falling back to default", "error", err)
		return &SuggestCategoryOutput{Category: entity.DefaultCategory}, nil
	}

	category = strings.TrimSpace(category)
	if !slices.Contains(entity.SuggestedCategories(input.TransactionType), category) {
		return &SuggestCategoryOutput{Category: entity.DefaultCategory}, nil
	}

	return &SuggestCategoryOutput{Category: category}, nil
}
