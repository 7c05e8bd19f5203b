package dashboard

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func aggregateFixture() []*entity.Transaction {
	userID := uuid.New()
	build := func(txnType entity.TransactionType, amount, category string) *entity.Transaction {
		return entity.NewTransaction(userID, txnType, "item", decimal.RequireFromString(amount), category, "2024-01-15")
	}

	return []*entity.Transaction{
		build(entity.TransactionTypeIncome, "2500", "Work"),
		build(entity.TransactionTypeIncome, "150.25", "Freelance"),
		build(entity.TransactionTypeExpense, "42.50", "Food"),
		build(entity.TransactionTypeExpense, "18.99", "Food"),
		build(entity.TransactionTypeExpense, "3.20", "Transport"),
	}
}

func TestCalculateSummary(t *testing.T) {
	t.Run("totals and identity", func(t *testing.T) {
		summary := CalculateSummary(aggregateFixture())

		if summary.TotalIncome.String() != "2650.25" {
			t.Errorf("TotalIncome = %s, want 2650.25", summary.TotalIncome)
		}
		if summary.TotalExpenses.String() != "64.69" {
			t.Errorf("TotalExpenses = %s, want 64.69", summary.TotalExpenses)
		}
		if !summary.NetIncome.Equal(summary.TotalIncome.Sub(summary.TotalExpenses)) {
			t.Errorf("NetIncome %s does not equal income minus expenses", summary.NetIncome)
		}
		if summary.TransactionCount != 5 {
			t.Errorf("TransactionCount = %d, want 5", summary.TransactionCount)
		}
	})

	t.Run("empty snapshot yields zero summary", func(t *testing.T) {
		summary := CalculateSummary(nil)

		if !summary.TotalIncome.IsZero() || !summary.TotalExpenses.IsZero() || !summary.NetIncome.IsZero() {
			t.Errorf("expected zero totals, got %+v", summary)
		}
		if summary.TransactionCount != 0 {
			t.Errorf("expected zero count, got %d", summary.TransactionCount)
		}
	})

	t.Run("net income can be negative", func(t *testing.T) {
		userID := uuid.New()
		summary := CalculateSummary([]*entity.Transaction{
			entity.NewTransaction(userID, entity.TransactionTypeExpense, "rent", decimal.RequireFromString("900"), "Housing", "2024-01-01"),
		})

		if summary.NetIncome.String() != "-900" {
			t.Errorf("NetIncome = %s, want -900", summary.NetIncome)
		}
	})
}

func TestBuildCategoryData(t *testing.T) {
	t.Run("groups one type partition", func(t *testing.T) {
		data := BuildCategoryData(aggregateFixture(), entity.TransactionTypeExpense)

		if len(data) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(data))
		}
		if data[0].Name != "Food" {
			t.Errorf("expected largest category first, got %q", data[0].Name)
		}
		if data[0].Amount.String() != "61.49" {
			t.Errorf("Food amount = %s, want 61.49", data[0].Amount)
		}
		if data[0].Count != 2 || data[1].Count != 1 {
			t.Errorf("unexpected counts: %d, %d", data[0].Count, data[1].Count)
		}
	})

	t.Run("percentages sum to one hundred", func(t *testing.T) {
		data := BuildCategoryData(aggregateFixture(), entity.TransactionTypeExpense)

		total := 0.0
		for _, group := range data {
			total += group.Percentage
		}
		if math.Abs(total-100) > 0.01 {
			t.Errorf("percentages sum to %f, want ~100", total)
		}
	})

	t.Run("other type partition is excluded", func(t *testing.T) {
		data := BuildCategoryData(aggregateFixture(), entity.TransactionTypeIncome)

		for _, group := range data {
			if group.Name == "Food" || group.Name == "Transport" {
				t.Errorf("expense category %q leaked into income partition", group.Name)
			}
		}
		if len(data) != 2 {
			t.Errorf("expected 2 income categories, got %d", len(data))
		}
	})

	t.Run("empty partition yields no groups", func(t *testing.T) {
		userID := uuid.New()
		onlyIncome := []*entity.Transaction{
			entity.NewTransaction(userID, entity.TransactionTypeIncome, "pay", decimal.RequireFromString("100"), "Work", "2024-01-01"),
		}

		if data := BuildCategoryData(onlyIncome, entity.TransactionTypeExpense); len(data) != 0 {
			t.Errorf("expected no groups, got %d", len(data))
		}
	})

	t.Run("categories compare by exact string", func(t *testing.T) {
		userID := uuid.New()
		snapshot := []*entity.Transaction{
			entity.NewTransaction(userID, entity.TransactionTypeExpense, "a", decimal.RequireFromString("10"), "Food", "2024-01-01"),
			entity.NewTransaction(userID, entity.TransactionTypeExpense, "b", decimal.RequireFromString("10"), "food", "2024-01-01"),
		}

		if data := BuildCategoryData(snapshot, entity.TransactionTypeExpense); len(data) != 2 {
			t.Errorf("expected distinct groups for Food and food, got %d", len(data))
		}
	})
}
