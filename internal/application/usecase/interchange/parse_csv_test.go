package interchange

import (
	"strings"
	"testing"
)

const csvTestUserID = "7b0d1a52-9f64-4a7b-8a31-2f4ce04deec5"

func TestParseCSVTransactions(t *testing.T) {
	t.Run("parses valid rows under a header", func(t *testing.T) {
		csvText := "Date,Type,Description,Category,Amount\n" +
			"2024-01-15,expense,Groceries,Food,42.50\n" +
			"2024-01-16,income,Salary,Work,2500"

		records, warnings := ParseCSVTransactions(csvText, csvTestUserID)

		if len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", warnings)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}
		if records[0].Type != "expense" || records[0].Description != "Groceries" {
			t.Errorf("unexpected first record: %+v", records[0])
		}
		if records[0].Amount.String() != "42.5" {
			t.Errorf("expected amount 42.5, got %s", records[0].Amount)
		}
		if records[1].Type != "income" {
			t.Errorf("expected income record, got %+v", records[1])
		}
		if records[0].UserID != csvTestUserID {
			t.Errorf("expected user id to be stamped, got %q", records[0].UserID)
		}
	})

	t.Run("headerless file treats first line as data", func(t *testing.T) {
		records, warnings := ParseCSVTransactions("2024-01-15,expense,Coffee,Food,4.20", csvTestUserID)

		if len(warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", warnings)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
	})

	t.Run("skips row with invalid transaction type", func(t *testing.T) {
		csvText := "Date,Type,Description,Category,Amount\n" +
			"2024-01-15,transfer,Move money,Banking,100"

		records, warnings := ParseCSVTransactions(csvText, csvTestUserID)

		if len(records) != 0 {
			t.Fatalf("expected no records, got %d", len(records))
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "invalid transaction type") {
			t.Errorf("expected invalid type warning, got %v", warnings)
		}
	})

	t.Run("skips row with non-positive amount", func(t *testing.T) {
		csvText := "Date,Type,Description,Category,Amount\n" +
			"2024-01-15,expense,Refund,Shopping,-5"

		records, warnings := ParseCSVTransactions(csvText, csvTestUserID)

		if len(records) != 0 {
			t.Fatalf("expected no records, got %d", len(records))
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "invalid amount") {
			t.Errorf("expected invalid amount warning, got %v", warnings)
		}
	})

	t.Run("skips row with wrong field count", func(t *testing.T) {
		csvText := "Date,Type,Description,Category,Amount\n" +
			"2024-01-15,expense,Groceries,Food"

		_, warnings := ParseCSVTransactions(csvText, csvTestUserID)

		if len(warnings) != 1 || !strings.Contains(warnings[0], "expected 5 fields, got 4") {
			t.Errorf("expected field count warning, got %v", warnings)
		}
	})

	t.Run("skips row with blank required fields", func(t *testing.T) {
		csvText := "Date,Type,Description,Category,Amount\n" +
			"2024-01-15,expense,   ,Food,10"

		_, warnings := ParseCSVTransactions(csvText, csvTestUserID)

		if len(warnings) != 1 || !strings.Contains(warnings[0], "missing required fields") {
			t.Errorf("expected missing fields warning, got %v", warnings)
		}
	})

	t.Run("keeps valid rows when some rows are malformed", func(t *testing.T) {
		csvText := "Date,Type,Description,Category,Amount\n" +
			"2024-01-15,expense,Groceries,Food,42.50\n" +
			"not,a,valid\n" +
			"2024-01-16,income,Salary,Work,2500"

		records, warnings := ParseCSVTransactions(csvText, csvTestUserID)

		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}
		if len(warnings) != 1 {
			t.Errorf("expected 1 warning, got %v", warnings)
		}
	})

	t.Run("strips ampersands and trims imported text fields", func(t *testing.T) {
		csvText := "Date,Type,Description,Category,Amount\n" +
			`2024-01-15,expense," Fish & Chips ","Food & Drink",12.00`

		records, _ := ParseCSVTransactions(csvText, csvTestUserID)

		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].Description != "Fish  Chips" {
			t.Errorf("expected sanitized description, got %q", records[0].Description)
		}
		if records[0].Category != "Food  Drink" {
			t.Errorf("expected sanitized category, got %q", records[0].Category)
		}
	})

	t.Run("assigns provisional imported ids", func(t *testing.T) {
		csvText := "Date,Type,Description,Category,Amount\n" +
			"2024-01-15,expense,Groceries,Food,42.50"

		records, _ := ParseCSVTransactions(csvText, csvTestUserID)

		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if !strings.HasPrefix(records[0].ID, "imported-") {
			t.Errorf("expected imported- id prefix, got %q", records[0].ID)
		}
	})

	t.Run("blank lines are ignored", func(t *testing.T) {
		csvText := "\n\nDate,Type,Description,Category,Amount\n\n" +
			"2024-01-15,expense,Groceries,Food,42.50\n\n"

		records, warnings := ParseCSVTransactions(csvText, csvTestUserID)

		if len(records) != 1 || len(warnings) != 0 {
			t.Errorf("expected 1 record and no warnings, got %d records, %v", len(records), warnings)
		}
	})
}
