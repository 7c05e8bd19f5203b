package interchange

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// stubTransactionRepo serves a fixed snapshot for export tests.
type stubTransactionRepo struct {
	snapshot []*entity.Transaction
	err      error
}

func (s *stubTransactionRepo) Create(ctx context.Context, txn *entity.Transaction) error {
	return nil
}

func (s *stubTransactionRepo) BulkCreate(ctx context.Context, txns []*entity.Transaction) error {
	return nil
}

func (s *stubTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (s *stubTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return s.snapshot, s.err
}

func (s *stubTransactionRepo) Update(ctx context.Context, txn *entity.Transaction) error {
	return nil
}

func (s *stubTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubTransactionRepo) BulkDelete(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) (int64, error) {
	return 0, nil
}

// noopSnapshotCache always misses.
type noopSnapshotCache struct{}

func (noopSnapshotCache) Get(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, bool) {
	return nil, false
}

func (noopSnapshotCache) Set(ctx context.Context, userID uuid.UUID, txns []*entity.Transaction) {}

func (noopSnapshotCache) Invalidate(ctx context.Context, userID uuid.UUID) {}

func exportFixture(userID uuid.UUID) []*entity.Transaction {
	return []*entity.Transaction{
		entity.NewTransaction(userID, entity.TransactionTypeExpense, `Dinner, "fancy"`, decimal.RequireFromString("18.99"), "Food", "2024-01-15"),
		entity.NewTransaction(userID, entity.TransactionTypeIncome, "Salary", decimal.RequireFromString("2500"), "Work", "2024-01-16"),
	}
}

func TestExportCSV(t *testing.T) {
	userID := uuid.New()
	content := ExportCSV(exportFixture(userID))

	lines := strings.Split(content, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Date,Type,Description,Category,Amount" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != `2024-01-15,expense,"Dinner, ""fancy""","Food",18.99` {
		t.Errorf("unexpected expense row: %q", lines[1])
	}
	if strings.HasSuffix(content, "\n") {
		t.Error("expected no trailing newline")
	}

	t.Run("values round trip through the line parser", func(t *testing.T) {
		fields := ParseCSVLine(lines[1])
		if len(fields) != 5 {
			t.Fatalf("expected 5 fields, got %d", len(fields))
		}
		if fields[2] != `Dinner, "fancy"` {
			t.Errorf("description did not round trip: %q", fields[2])
		}
	})

	t.Run("empty snapshot renders header only", func(t *testing.T) {
		if got := ExportCSV(nil); got != "Date,Type,Description,Category,Amount" {
			t.Errorf("expected bare header, got %q", got)
		}
	})
}

func TestExportJSON(t *testing.T) {
	userID := uuid.New()
	fixture := exportFixture(userID)

	content, err := ExportJSON(fixture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("round trips through the JSON parser", func(t *testing.T) {
		records, warnings, err := ParseJSONTransactions(content, userID.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", warnings)
		}
		if len(records) != len(fixture) {
			t.Fatalf("expected %d records, got %d", len(fixture), len(records))
		}
		for i, record := range records {
			if record.Description != fixture[i].Description {
				t.Errorf("record %d description = %q, want %q", i, record.Description, fixture[i].Description)
			}
			if !record.Amount.Equal(fixture[i].Amount) {
				t.Errorf("record %d amount = %s, want %s", i, record.Amount, fixture[i].Amount)
			}
			if record.Date != fixture[i].Date {
				t.Errorf("record %d date = %q, want %q", i, record.Date, fixture[i].Date)
			}
		}
	})

	t.Run("empty snapshot renders an empty array", func(t *testing.T) {
		content, err := ExportJSON(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if content != "[]" {
			t.Errorf("expected empty array, got %q", content)
		}
	})
}

func TestExportTransactionsUseCase(t *testing.T) {
	userID := uuid.New()
	repo := &stubTransactionRepo{snapshot: exportFixture(userID)}
	uc := NewExportTransactionsUseCase(repo, noopSnapshotCache{})

	t.Run("json export sets content type and filename", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ExportTransactionsInput{
			UserID: userID,
			Format: entity.ImportFormatJSON,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ContentType != "application/json" {
			t.Errorf("unexpected content type %q", output.ContentType)
		}
		if !strings.HasPrefix(output.Filename, "expense-tracker-") || !strings.HasSuffix(output.Filename, ".json") {
			t.Errorf("unexpected filename %q", output.Filename)
		}
	})

	t.Run("csv export sets content type and filename", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ExportTransactionsInput{
			UserID: userID,
			Format: entity.ImportFormatCSV,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ContentType != "text/csv" {
			t.Errorf("unexpected content type %q", output.ContentType)
		}
		if !strings.HasSuffix(output.Filename, ".csv") {
			t.Errorf("unexpected filename %q", output.Filename)
		}
	})

	t.Run("unsupported format is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ExportTransactionsInput{
			UserID: userID,
			Format: entity.ImportFormat("xml"),
		})

		var icxErr *domainerror.InterchangeError
		if !errors.As(err, &icxErr) || icxErr.Code != domainerror.ErrCodeUnsupportedExportFormat {
			t.Errorf("expected unsupported export format error, got %v", err)
		}
	})
}
