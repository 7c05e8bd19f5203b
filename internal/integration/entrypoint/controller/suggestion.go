// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/suggestion"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// SuggestionController handles category suggestion endpoints.
type SuggestionController struct {
	suggestUseCase *suggestion.SuggestCategoryUseCase
}

// NewSuggestionController creates a new suggestion controller instance.
func NewSuggestionController(suggestUseCase *suggestion.SuggestCategoryUseCase) *SuggestionController {
	return &SuggestionController{
		suggestUseCase: suggestUseCase,
	}
}

// SuggestCategory handles POST /suggestions/category requests.
func (c *SuggestionController) SuggestCategory(ctx *gin.Context) {
	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), suggestion.SuggestCategoryInput{
		Description:     req.Description,
		TransactionType: entity.TransactionType(req.Type),
	})
	if err != nil {
		var txnErr *domainerror.TransactionError
		if errors.As(err, &txnErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: txnErr.Message,
				Code:  string(txnErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category: output.Category,
	})
}
