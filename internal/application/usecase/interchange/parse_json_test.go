package interchange

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const jsonTestUserID = "7b0d1a52-9f64-4a7b-8a31-2f4ce04deec5"

func TestParseJSONTransactions(t *testing.T) {
	t.Run("parses canonical records", func(t *testing.T) {
		jsonText := `[
			{"id":"t1","type":"expense","description":"Groceries","amount":42.50,"category":"Food","date":"2024-01-15"},
			{"id":"t2","type":"income","description":"Salary","amount":2500,"category":"Work","date":"2024-01-16"}
		]`

		records, warnings, err := ParseJSONTransactions(jsonText, jsonTestUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", warnings)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].ID != "t1" || records[0].Amount.String() != "42.5" {
			t.Errorf("unexpected first record: %+v", records[0])
		}
		if records[1].UserID != jsonTestUserID {
			t.Errorf("expected user id to be stamped, got %q", records[1].UserID)
		}
	})

	t.Run("malformed file is a hard failure", func(t *testing.T) {
		records, warnings, err := ParseJSONTransactions(`{"not":"an array"`, jsonTestUserID)

		if err == nil {
			t.Fatal("expected error for malformed JSON")
		}
		var icxErr *domainerror.InterchangeError
		if !errors.As(err, &icxErr) || icxErr.Code != domainerror.ErrCodeMalformedJSONImport {
			t.Errorf("expected malformed import error, got %v", err)
		}
		if records != nil || warnings != nil {
			t.Errorf("expected nothing imported, got %v / %v", records, warnings)
		}
	})

	t.Run("legacy expense documents are normalized", func(t *testing.T) {
		jsonText := `[{"id":"old-1","name":"Lunch & snacks","price":9.90}]`

		records, warnings, err := ParseJSONTransactions(jsonText, jsonTestUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", warnings)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}

		record := records[0]
		if record.Type != string(entity.TransactionTypeExpense) {
			t.Errorf("expected expense type, got %q", record.Type)
		}
		if record.Description != "Lunch  snacks" {
			t.Errorf("expected sanitized description, got %q", record.Description)
		}
		if record.Category != entity.DefaultCategory {
			t.Errorf("expected default category, got %q", record.Category)
		}
		if record.Date != time.Now().UTC().Format(entity.DateLayout) {
			t.Errorf("expected today's date, got %q", record.Date)
		}
	})

	t.Run("skips record with invalid type", func(t *testing.T) {
		jsonText := `[{"type":"transfer","description":"Move","amount":100,"category":"Banking","date":"2024-01-15"}]`

		records, warnings, err := ParseJSONTransactions(jsonText, jsonTestUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "invalid transaction type") {
			t.Errorf("expected invalid type warning, got %v", warnings)
		}
	})

	t.Run("skips record with non-positive amount", func(t *testing.T) {
		jsonText := `[{"type":"expense","description":"Refund","amount":-5,"category":"Shopping","date":"2024-01-15"}]`

		records, warnings, err := ParseJSONTransactions(jsonText, jsonTestUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "invalid amount") {
			t.Errorf("expected invalid amount warning, got %v", warnings)
		}
	})

	t.Run("skips unrecognized document shapes", func(t *testing.T) {
		jsonText := `[{"foo":"bar"}]`

		records, warnings, err := ParseJSONTransactions(jsonText, jsonTestUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "unrecognized document shape") {
			t.Errorf("expected shape warning, got %v", warnings)
		}
	})

	t.Run("defaults missing category and date on canonical records", func(t *testing.T) {
		jsonText := `[{"type":"expense","description":"Parking","amount":3}]`

		records, _, err := ParseJSONTransactions(jsonText, jsonTestUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].Category != entity.DefaultCategory {
			t.Errorf("expected default category, got %q", records[0].Category)
		}
		if records[0].Date != time.Now().UTC().Format(entity.DateLayout) {
			t.Errorf("expected today's date, got %q", records[0].Date)
		}
	})

	t.Run("generates ids for records missing one", func(t *testing.T) {
		jsonText := `[{"type":"expense","description":"Parking","amount":3,"category":"Transport","date":"2024-01-15"}]`

		records, _, err := ParseJSONTransactions(jsonText, jsonTestUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 1 || records[0].ID == "" {
			t.Errorf("expected generated id, got %+v", records)
		}
	})

	t.Run("keeps valid records when some are invalid", func(t *testing.T) {
		jsonText := `[
			{"type":"expense","description":"Groceries","amount":42.50,"category":"Food","date":"2024-01-15"},
			{"type":"transfer","description":"Move","amount":100,"category":"Banking","date":"2024-01-15"},
			{"type":"income","description":"Salary","amount":2500,"category":"Work","date":"2024-01-16"}
		]`

		records, warnings, err := ParseJSONTransactions(jsonText, jsonTestUserID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}
		if len(warnings) != 1 {
			t.Errorf("expected 1 warning, got %v", warnings)
		}
	})
}
