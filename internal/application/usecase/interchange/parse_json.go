package interchange

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// importedDocument is the tagged union of the two record shapes found in
// backup files: the canonical type/description/amount shape and the legacy
// name/price expense shape. It is normalized to a Record at this boundary so
// only one shape ever reaches the rest of the engine.
type importedDocument struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	CreatedAt   *time.Time      `json:"createdAt"`

	// Legacy expense document fields
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ParseJSONTransactions parses a JSON backup file into validated interchange
// records. A malformed file is a hard failure: nothing is imported. Individual
// records failing validation are skipped with a warning, using the same rules
// and sanitization as the CSV path.
func ParseJSONTransactions(jsonText, userID string) ([]Record, []string, error) {
	var documents []importedDocument
	if err := json.Unmarshal([]byte(jsonText), &documents); err != nil {
		return nil, nil, domainerror.NewInterchangeError(
			domainerror.ErrCodeMalformedJSONImport,
			"malformed JSON import file",
			err,
		)
	}

	var records []Record
	var warnings []string

	for i, doc := range documents {
		record, ok := normalizeDocument(doc)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("record %d: unrecognized document shape", i))
			continue
		}

		if !entity.IsValidTransactionType(entity.TransactionType(record.Type)) {
			warnings = append(warnings, fmt.Sprintf("record %d: invalid transaction type %q", i, record.Type))
			continue
		}
		if !record.Amount.IsPositive() {
			warnings = append(warnings, fmt.Sprintf("record %d: invalid amount %q", i, record.Amount))
			continue
		}
		if record.Description == "" || record.Category == "" || record.Date == "" {
			warnings = append(warnings, fmt.Sprintf("record %d: missing required fields", i))
			continue
		}

		if record.ID == "" {
			record.ID = GenerateLocalID()
		}
		record.UserID = userID
		records = append(records, record)
	}

	for _, warning := range warnings {
		slog.Warn("Skipping invalid JSON record", "reason", warning)
	}

	return records, warnings, nil
}

// normalizeDocument maps either document shape onto the canonical record.
func normalizeDocument(doc importedDocument) (Record, bool) {
	switch {
	case doc.Type != "" && doc.Description != "":
		category := doc.Category
		if category == "" {
			category = entity.DefaultCategory
		}
		date := doc.Date
		if date == "" {
			date = currentDate()
		}
		return Record{
			ID:          doc.ID,
			Type:        strings.ToLower(strings.TrimSpace(doc.Type)),
			Description: sanitizeField(doc.Description),
			Amount:      doc.Amount,
			Category:    sanitizeField(category),
			Date:        date,
			CreatedAt:   doc.CreatedAt,
		}, true

	case doc.Name != "" && doc.Price.IsPositive():
		// Legacy expense document: convert to the canonical shape.
		return Record{
			ID:          doc.ID,
			Type:        string(entity.TransactionTypeExpense),
			Description: sanitizeField(doc.Name),
			Amount:      doc.Price,
			Category:    entity.DefaultCategory,
			Date:        currentDate(),
		}, true
	}

	return Record{}, false
}

// currentDate returns today's date in the canonical YYYY-MM-DD encoding.
func currentDate() string {
	return time.Now().UTC().Format(entity.DateLayout)
}
