// Package dto defines data transfer objects for API requests and responses.
package dto

// SuggestCategoryRequest represents the request body for a category suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=expense income"`
}

// SuggestCategoryResponse represents the suggested category.
type SuggestCategoryResponse struct {
	Category string `json:"category"`
}

// SuggestedCategoriesResponse represents the advisory category lists.
type SuggestedCategoriesResponse struct {
	Type       string   `json:"type"`
	Categories []string `json:"categories"`
}
