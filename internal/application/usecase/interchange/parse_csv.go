package interchange

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// csvColumnCount is the number of positional columns in the interchange CSV
// format: Date, Type, Description, Category, Amount.
const csvColumnCount = 5

// ParseCSVTransactions parses CSV text into validated interchange records,
// tagging each with the owning user. Parsing is best-effort and partial:
// malformed rows are skipped with a warning and never abort the whole import.
// The returned warnings describe every skipped row.
func ParseCSVTransactions(csvText, userID string) ([]Record, []string) {
	lines := strings.Split(csvText, "\n")
	now := time.Now().UnixMilli()

	var records []Record
	var warnings []string
	headerChecked := false

	for i, rawLine := range lines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		// The first non-blank line is treated as a header when it mentions
		// the date column; otherwise it is data.
		if !headerChecked {
			headerChecked = true
			if strings.Contains(strings.ToLower(line), "date") {
				continue
			}
		}

		fields := ParseCSVLine(line)
		if len(fields) != csvColumnCount {
			warnings = append(warnings, fmt.Sprintf("line %d: expected %d fields, got %d", i+1, csvColumnCount, len(fields)))
			continue
		}

		date := strings.TrimSpace(fields[0])
		transactionType := strings.ToLower(strings.TrimSpace(fields[1]))
		description := fields[2]
		category := fields[3]
		amountText := strings.TrimSpace(fields[4])

		if date == "" || transactionType == "" || strings.TrimSpace(description) == "" ||
			strings.TrimSpace(category) == "" || amountText == "" {
			warnings = append(warnings, fmt.Sprintf("line %d: missing required fields", i+1))
			continue
		}

		if !entity.IsValidTransactionType(entity.TransactionType(transactionType)) {
			warnings = append(warnings, fmt.Sprintf("line %d: invalid transaction type %q", i+1, transactionType))
			continue
		}

		amount, err := decimal.NewFromString(amountText)
		if err != nil || !amount.IsPositive() {
			warnings = append(warnings, fmt.Sprintf("line %d: invalid amount %q", i+1, amountText))
			continue
		}

		records = append(records, Record{
			ID:          fmt.Sprintf("imported-%d-%d", now, i),
			Type:        transactionType,
			Description: sanitizeField(description),
			Amount:      amount,
			Category:    sanitizeField(category),
			Date:        date,
			UserID:      userID,
		})
	}

	for _, warning := range warnings {
		slog.Warn("Skipping malformed CSV row", "reason", warning)
	}

	return records, warnings
}
