package suggestion

import (
	"context"
	"errors"
	"testing"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// stubAdvisor returns a canned answer or error.
type stubAdvisor struct {
	available bool
	answer    string
	err       error
}

func (s *stubAdvisor) IsAvailable() bool {
	return s.available
}

func (s *stubAdvisor) SuggestCategory(ctx context.Context, description string, transactionType entity.TransactionType) (string, error) {
	return s.answer, s.err
}

func TestSuggestCategoryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank description", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&stubAdvisor{available: true})

		_, err := uc.Execute(ctx, SuggestCategoryInput{Description: "  ", TransactionType: entity.TransactionTypeExpense})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeMissingTransactionFields {
			t.Errorf("expected missing fields error, got %v", err)
		}
	})

	t.Run("rejects invalid transaction type", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&stubAdvisor{available: true})

		_, err := uc.Execute(ctx, SuggestCategoryInput{Description: "Lunch", TransactionType: "transfer"})

		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) || txnErr.Code != domainerror.ErrCodeInvalidTransactionType {
			t.Errorf("expected invalid type error, got %v", err)
		}
	})

	t.Run("returns advisor answer when on the list", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&stubAdvisor{available: true, answer: "Groceries"})

		output, err := uc.Execute(ctx, SuggestCategoryInput{Description: "Weekly shop", TransactionType: entity.TransactionTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != "Groceries" {
			t.Errorf("expected Groceries, got %q", output.Category)
		}
	})

	t.Run("falls back to default when advisor is unavailable", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&stubAdvisor{available: false})

		output, err := uc.Execute(ctx, SuggestCategoryInput{Description: "Lunch", TransactionType: entity.TransactionTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != entity.DefaultCategory {
			t.Errorf("expected default category, got %q", output.Category)
		}
	})

	t.Run("falls back to default when advisor is nil", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(nil)

		output, err := uc.Execute(ctx, SuggestCategoryInput{Description: "Lunch", TransactionType: entity.TransactionTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != entity.DefaultCategory {
			t.Errorf("expected default category, got %q", output.Category)
		}
	})

	t.Run("falls back to default when advisor errors", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&stubAdvisor{available: true, err: errors.New("rate limited")})

		output, err := uc.Execute(ctx, SuggestCategoryInput{Description: "Lunch", TransactionType: entity.TransactionTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != entity.DefaultCategory {
			t.Errorf("expected default category, got %q", output.Category)
		}
	})

	t.Run("off-list answer falls back to default", func(t *testing.T) {
		uc := NewSuggestCategoryUseCase(&stubAdvisor{available: true, answer: "Cryptocurrency"})

		output, err := uc.Execute(ctx, SuggestCategoryInput{Description: "Lunch", TransactionType: entity.TransactionTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != entity.DefaultCategory {
			t.Errorf("expected default category, got %q", output.Category)
		}
	})

	t.Run("answer list follows the transaction type", func(t *testing.T) {
		// "Salary" is on the income list but not the expense list.
		uc := NewSuggestCategoryUseCase(&stubAdvisor{available: true, answer: "Salary"})

		output, err := uc.Execute(ctx, SuggestCategoryInput{Description: "Paycheck", TransactionType: entity.TransactionTypeExpense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != entity.DefaultCategory {
			t.Errorf("expected default category for off-list expense answer, got %q", output.Category)
		}

		output, err = uc.Execute(ctx, SuggestCategoryInput{Description: "Paycheck", TransactionType: entity.TransactionTypeIncome})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category != "Salary" {
			t.Errorf("expected Salary for income, got %q", output.Category)
		}
	})
}
