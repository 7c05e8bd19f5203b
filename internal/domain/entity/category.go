package entity

// Suggested category lists presented to clients for each transaction type.
// Categories remain free text at the data layer; these lists are advisory only.
var (
	ExpenseCategories = []string{
		"Food & Dining",
		"Transportation",
		"Entertainment",
		"Shopping",
		"Bills & Utilities",
		"Healthcare",
		"Education",
		"Travel",
		"Groceries",
		"Other",
	}

	IncomeCategories = []string{
		"Salary",
		"Freelance",
		"Business",
		"Investment",
		"Gift",
		"Bonus",
		"Other",
	}
)

// DefaultCategory is used when a record reaches the system without a category,
// such as legacy documents normalized at the import boundary.
const DefaultCategory = "Other"

// SuggestedCategories returns the advisory category list for the given type.
func SuggestedCategories(transactionType TransactionType) []string {
	if transactionType == TransactionTypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}
