// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard summary in API responses.
// Totals use exact decimal string conversion.
type SummaryResponse struct {
	TotalIncome      string `json:"total_income"`
	TotalExpenses    string `json:"total_expenses"`
	NetIncome        string `json:"net_income"`
	TransactionCount int    `json:"transaction_count"`
}

// CategoryDataResponse represents one category rollup in API responses.
type CategoryDataResponse struct {
	Name       string  `json:"name"`
	Amount     string  `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the category breakdown in API responses.
type CategoryBreakdownResponse struct {
	Type       string                 `json:"type"`
	Categories []CategoryDataResponse `json:"categories"`
}

// ToSummaryResponse converts a dashboard Summary to a SummaryResponse DTO.
func ToSummaryResponse(summary dashboard.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:      summary.TotalIncome.String(),
		TotalExpenses:    summary.TotalExpenses.String(),
		NetIncome:        summary.NetIncome.String(),
		TransactionCount: summary.TransactionCount,
	}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to its DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	categories := make([]CategoryDataResponse, len(output.Categories))
	for i, category := range output.Categories {
		categories[i] = CategoryDataResponse{
			Name:       category.Name,
			Amount:     category.Amount.String(),
			Count:      category.Count,
			Percentage: category.Percentage,
		}
	}

	return CategoryBreakdownResponse{
		Type:       string(output.Type),
		Categories: categories,
	}
}
