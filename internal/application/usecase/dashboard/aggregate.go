// Package dashboard contains summary and category breakdown use cases.
package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// Summary holds aggregate totals derived from a transaction snapshot.
// It is recomputed on demand and never persisted.
type Summary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetIncome        decimal.Decimal
	TransactionCount int
}

// CategoryData holds the per-category rollup for one type partition.
type CategoryData struct {
	Name       string
	Amount     decimal.Decimal
	Count      int
	Percentage float64
}

// CalculateSummary derives aggregate totals from a transaction list.
// The input may be empty; callers must pre-filter by user or date range.
func CalculateSummary(transactions []*entity.Transaction) Summary {
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for _, txn := range transactions {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			totalIncome = totalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			totalExpenses = totalExpenses.Add(txn.Amount)
		}
	}

	return Summary{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		NetIncome:        totalIncome.Sub(totalExpenses),
		TransactionCount: len(transactions),
	}
}

// BuildCategoryData groups the type partition of a transaction list by category
// and computes each group's share of the partition total. Categories are
// compared by exact string equality. The result is sorted by amount descending;
// ties keep first-seen order.
func BuildCategoryData(transactions []*entity.Transaction, transactionType entity.TransactionType) []CategoryData {
	partitionTotal := decimal.Zero
	groups := make(map[string]*CategoryData)
	order := make([]string, 0)

	for _, txn := range transactions {
		if txn.Type != transactionType {
			continue
		}
		partitionTotal = partitionTotal.Add(txn.Amount)

		group, ok := groups[txn.Category]
		if !ok {
			group = &CategoryData{Name: txn.Category, Amount: decimal.Zero}
			groups[txn.Category] = group
			order = append(order, txn.Category)
		}
		group.Amount = group.Amount.Add(txn.Amount)
		group.Count++
	}

	result := make([]CategoryData, 0, len(order))
	for _, name := range order {
		group := groups[name]
		if partitionTotal.IsPositive() {
			pct, _ := group.Amount.Mul(decimal.NewFromInt(100)).Div(partitionTotal).Float64()
			group.Percentage = pct
		}
		result = append(result, *group)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})

	return result
}
