// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles suggested category list endpoints.
type CategoryController struct{}

// NewCategoryController creates a new category controller instance.
func NewCategoryController() *CategoryController {
	return &CategoryController{}
}

// ListSuggested handles GET /categories/suggested requests. Categories are
// free text at the data layer; these lists are advisory only.
func (c *CategoryController) ListSuggested(ctx *gin.Context) {
	transactionType := entity.TransactionType(ctx.DefaultQuery("type", string(entity.TransactionTypeExpense)))
	if !entity.IsValidTransactionType(transactionType) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "type must be income or expense",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestedCategoriesResponse{
		Type:       string(transactionType),
		Categories: entity.SuggestedCategories(transactionType),
	})
}
