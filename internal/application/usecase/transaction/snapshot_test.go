package transaction

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func snapshotFixture() []*entity.Transaction {
	userID := uuid.New()
	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	build := func(txnType entity.TransactionType, description, amount, category, date string, offset time.Duration) *entity.Transaction {
		txn := entity.NewTransaction(userID, txnType, description, decimal.RequireFromString(amount), category, date)
		txn.CreatedAt = base.Add(offset)
		return txn
	}

	return []*entity.Transaction{
		build(entity.TransactionTypeExpense, "Groceries", "42.50", "Food", "2024-01-15", 0),
		build(entity.TransactionTypeIncome, "Salary", "2500", "Work", "2024-01-16", time.Minute),
		build(entity.TransactionTypeExpense, "Bus ticket", "3.20", "Transport", "2024-01-14", 2*time.Minute),
		build(entity.TransactionTypeExpense, "Dinner out", "18.99", "Food", "2024-01-16", 3*time.Minute),
	}
}

func TestFilterByCategory(t *testing.T) {
	snapshot := snapshotFixture()

	t.Run("exact match", func(t *testing.T) {
		got := FilterByCategory(snapshot, "Food")
		if len(got) != 2 {
			t.Errorf("expected 2 transactions, got %d", len(got))
		}
	})

	t.Run("sentinel all passes through", func(t *testing.T) {
		got := FilterByCategory(snapshot, FilterAll)
		if len(got) != len(snapshot) {
			t.Errorf("expected %d transactions, got %d", len(snapshot), len(got))
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		got := FilterByCategory(snapshot, "food")
		if len(got) != 0 {
			t.Errorf("expected no matches for lowercase category, got %d", len(got))
		}
	})
}

func TestFilterByType(t *testing.T) {
	snapshot := snapshotFixture()

	got := FilterByType(snapshot, "income")
	if len(got) != 1 || got[0].Description != "Salary" {
		t.Errorf("expected only the salary record, got %d records", len(got))
	}

	if got := FilterByType(snapshot, FilterAll); len(got) != len(snapshot) {
		t.Errorf("expected sentinel to pass snapshot through, got %d records", len(got))
	}
}

func TestFilterByDateRange(t *testing.T) {
	snapshot := snapshotFixture()

	t.Run("boundaries are inclusive", func(t *testing.T) {
		got := FilterByDateRange(snapshot, "2024-01-14", "2024-01-15")
		if len(got) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(got))
		}
		for _, txn := range got {
			if txn.Date < "2024-01-14" || txn.Date > "2024-01-15" {
				t.Errorf("transaction outside range: %s", txn.Date)
			}
		}
	})

	t.Run("single day range", func(t *testing.T) {
		got := FilterByDateRange(snapshot, "2024-01-16", "2024-01-16")
		if len(got) != 2 {
			t.Errorf("expected 2 transactions on the boundary day, got %d", len(got))
		}
	})

	t.Run("empty range", func(t *testing.T) {
		got := FilterByDateRange(snapshot, "2023-01-01", "2023-12-31")
		if len(got) != 0 {
			t.Errorf("expected no transactions, got %d", len(got))
		}
	})
}

func TestSearch(t *testing.T) {
	snapshot := snapshotFixture()

	t.Run("matches description case-insensitively", func(t *testing.T) {
		got := Search(snapshot, "GROCER")
		if len(got) != 1 || got[0].Description != "Groceries" {
			t.Errorf("expected the groceries record, got %d records", len(got))
		}
	})

	t.Run("matches category", func(t *testing.T) {
		got := Search(snapshot, "transport")
		if len(got) != 1 {
			t.Errorf("expected 1 record, got %d", len(got))
		}
	})

	t.Run("matches amount substring", func(t *testing.T) {
		got := Search(snapshot, "42.5")
		if len(got) != 1 {
			t.Errorf("expected 1 record, got %d", len(got))
		}
	})

	t.Run("empty query passes through", func(t *testing.T) {
		got := Search(snapshot, "")
		if len(got) != len(snapshot) {
			t.Errorf("expected %d records, got %d", len(snapshot), len(got))
		}
	})
}

func TestSort(t *testing.T) {
	snapshot := snapshotFixture()

	t.Run("amount ascending is numeric", func(t *testing.T) {
		got := Sort(snapshot, "amount", SortAscending)
		for i := 1; i < len(got); i++ {
			if got[i].Amount.LessThan(got[i-1].Amount) {
				t.Errorf("amounts out of order at %d: %s before %s", i, got[i-1].Amount, got[i].Amount)
			}
		}
	})

	t.Run("amount descending", func(t *testing.T) {
		got := Sort(snapshot, "amount", SortDescending)
		if got[0].Amount.String() != "2500" {
			t.Errorf("expected largest amount first, got %s", got[0].Amount)
		}
	})

	t.Run("date ascending", func(t *testing.T) {
		got := Sort(snapshot, "date", SortAscending)
		for i := 1; i < len(got); i++ {
			if got[i].Date < got[i-1].Date {
				t.Errorf("dates out of order at %d", i)
			}
		}
	})

	t.Run("description compares case-insensitively", func(t *testing.T) {
		got := Sort(snapshot, "description", SortAscending)
		if got[0].Description != "Bus ticket" {
			t.Errorf("expected Bus ticket first, got %q", got[0].Description)
		}
	})

	t.Run("empty field sorts first ascending", func(t *testing.T) {
		userID := uuid.New()
		blank := entity.NewTransaction(userID, entity.TransactionTypeExpense, "", decimal.RequireFromString("1"), "Misc", "2024-01-01")
		withBlank := append([]*entity.Transaction{snapshot[0]}, blank)

		got := Sort(withBlank, "description", SortAscending)
		if got[0].Description != "" {
			t.Errorf("expected empty description first, got %q", got[0].Description)
		}

		got = Sort(withBlank, "description", SortDescending)
		if got[len(got)-1].Description != "" {
			t.Errorf("expected empty description last descending, got %q", got[len(got)-1].Description)
		}
	})

	t.Run("unknown field falls back to date", func(t *testing.T) {
		got := Sort(snapshot, "bogus", SortAscending)
		for i := 1; i < len(got); i++ {
			if got[i].Date < got[i-1].Date {
				t.Errorf("dates out of order at %d", i)
			}
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		first := snapshot[0]
		Sort(snapshot, "amount", SortAscending)
		if snapshot[0] != first {
			t.Error("expected input order to be preserved")
		}
	})
}
