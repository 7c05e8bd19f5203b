// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/interchange"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// InterchangeController handles transaction import and export endpoints.
type InterchangeController struct {
	importUseCase *interchange.ImportTransactionsUseCase
	exportUseCase *interchange.ExportTransactionsUseCase
}

// NewInterchangeController creates a new interchange controller instance.
func NewInterchangeController(
	importUseCase *interchange.ImportTransactionsUseCase,
	exportUseCase *interchange.ExportTransactionsUseCase,
) *InterchangeController {
	return &InterchangeController{
		importUseCase: importUseCase,
		exportUseCase: exportUseCase,
	}
}

// Import handles POST /transactions/import requests.
func (c *InterchangeController) Import(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ImportTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := interchange.ImportTransactionsInput{
		UserID:  userID,
		Format:  entity.ImportFormat(req.Format),
		Content: req.Content,
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInterchangeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportTransactionsResponse{
		ImportedCount: output.ImportedCount,
		SkippedCount:  output.SkippedCount,
		Warnings:      output.Warnings,
	})
}

// Export handles GET /transactions/export requests. The rendered file is
// returned as a download with the format-appropriate content type.
func (c *InterchangeController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	format := ctx.DefaultQuery("format", string(entity.ImportFormatJSON))

	input := interchange.ExportTransactionsInput{
		UserID: userID,
		Format: entity.ImportFormat(format),
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInterchangeError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	ctx.Data(http.StatusOK, output.ContentType, []byte(output.Content))
}

// handleInterchangeError maps import/export errors to HTTP responses.
func (c *InterchangeController) handleInterchangeError(ctx *gin.Context, err error) {
	var icxErr *domainerror.InterchangeError
	if errors.As(err, &icxErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: icxErr.Message,
			Code:  string(icxErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
