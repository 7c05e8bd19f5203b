package transaction

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormData represents a manual transaction entry as submitted by a client,
// before any type conversion.
type FormData struct {
	Description string
	Amount      string
	Category    string
	Date        string
}

// ValidateForm checks a manual entry against all form rules and returns every
// violated rule at once, so the caller can display all problems together.
// An empty result means the form is valid.
func ValidateForm(data FormData) []string {
	var errs []string

	if strings.TrimSpace(data.Description) == "" {
		errs = append(errs, "Description is required")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(data.Amount))
	if data.Amount == "" || err != nil || !amount.IsPositive() {
		errs = append(errs, "Amount must be a valid number greater than 0")
	}

	if data.Category == "" {
		errs = append(errs, "Category is required")
	}

	if data.Date == "" {
		errs = append(errs, "Date is required")
	}

	return errs
}
