// Package transaction contains transaction-related use cases.
package transaction

import (
	"sort"
	"strings"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// FilterAll is the sentinel filter value that disables a filter.
const FilterAll = "all"

// SortDirection controls the order of a snapshot sort.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// FilterByCategory returns the transactions matching the category exactly.
// The sentinel "all" passes the snapshot through unchanged.
func FilterByCategory(transactions []*entity.Transaction, category string) []*entity.Transaction {
	if category == FilterAll {
		return transactions
	}
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Category == category {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// FilterByType returns the transactions matching the type exactly.
// The sentinel "all" passes the snapshot through unchanged.
func FilterByType(transactions []*entity.Transaction, transactionType string) []*entity.Transaction {
	if transactionType == FilterAll {
		return transactions
	}
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if string(txn.Type) == transactionType {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// FilterByDateRange returns the transactions dated within [startDate, endDate],
// inclusive at both boundaries. Lexicographic comparison is valid because dates
// are zero-padded fixed-width YYYY-MM-DD strings.
func FilterByDateRange(transactions []*entity.Transaction, startDate, endDate string) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Date >= startDate && txn.Date <= endDate {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// Search returns the transactions whose description, category, or amount string
// contains the query, case-insensitively.
func Search(transactions []*entity.Transaction, query string) []*entity.Transaction {
	if query == "" {
		return transactions
	}
	needle := strings.ToLower(query)
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if strings.Contains(strings.ToLower(txn.Description), needle) ||
			strings.Contains(strings.ToLower(txn.Category), needle) ||
			strings.Contains(txn.Amount.String(), needle) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// Sort returns a copy of the snapshot ordered by the given field. Amount is
// compared numerically; every other field compares as a case-insensitive
// string. Transactions with an empty field value sort first ascending and
// last descending. Unknown fields fall back to date ordering.
func Sort(transactions []*entity.Transaction, field string, direction SortDirection) []*entity.Transaction {
	sorted := make([]*entity.Transaction, len(transactions))
	copy(sorted, transactions)

	less := func(a, b *entity.Transaction) bool {
		if field == "amount" {
			return a.Amount.LessThan(b.Amount)
		}

		av, bv := fieldValue(a, field), fieldValue(b, field)
		if av == "" || bv == "" {
			return av == "" && bv != ""
		}
		return strings.ToLower(av) < strings.ToLower(bv)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == SortDescending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// fieldValue extracts the string form of a sortable transaction field.
func fieldValue(txn *entity.Transaction, field string) string {
	switch field {
	case "description":
		return txn.Description
	case "category":
		return txn.Category
	case "type":
		return string(txn.Type)
	case "createdAt":
		return txn.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000000")
	default:
		return txn.Date
	}
}
