// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.GetSummaryInput{
		UserID:    userID,
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}

// GetCategoryBreakdown handles GET /dashboard/categories requests.
func (c *DashboardController) GetCategoryBreakdown(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionType := ctx.DefaultQuery("type", string(entity.TransactionTypeExpense))

	input := dashboard.GetCategoryBreakdownInput{
		UserID:    userID,
		Type:      entity.TransactionType(transactionType),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
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
			Error: "Failed to compute category breakdown",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryBreakdownResponse(output))
}
