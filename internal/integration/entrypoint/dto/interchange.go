// Package dto defines data transfer objects for API requests and responses.
package dto

// ImportTransactionsRequest represents the request body for a bulk import.
// Content carries the raw file text; format selects the parser.
type ImportTransactionsRequest struct {
	Format  string `json:"format" binding:"required,oneof=json csv"`
	Content string `json:"content" binding:"required"`
}

// ImportTransactionsResponse represents the result of a bulk import.
type ImportTransactionsResponse struct {
	ImportedCount int      `json:"imported_count"`
	SkippedCount  int      `json:"skipped_count"`
	Warnings      []string `json:"warnings"`
}
