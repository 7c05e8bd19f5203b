// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase       *transaction.ListTransactionsUseCase
	createUseCase     *transaction.CreateTransactionUseCase
	updateUseCase     *transaction.UpdateTransactionUseCase
	deleteUseCase     *transaction.DeleteTransactionUseCase
	bulkDeleteUseCase *transaction.BulkDeleteTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	bulkDeleteUseCase *transaction.BulkDeleteTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		bulkDeleteUseCase: bulkDeleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := transaction.ListTransactionsInput{
		UserID:    userID,
		Category:  ctx.Query("category"),
		Type:      ctx.Query("type"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
		Search:    ctx.Query("search"),
		SortField: ctx.Query("sortField"),
	}

	if dir := ctx.Query("sortDir"); dir != "" {
		input.SortDir = transaction.SortDirection(dir)
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:      userID,
		Type:        entity.TransactionType(req.Type),
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Description:   req.Description,
		Amount:        req.Amount,
		Category:      req.Category,
		Date:          req.Date,
	}

	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	input := transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// BulkDelete handles POST /transactions/bulk-delete requests.
func (c *TransactionController) BulkDelete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.BulkDeleteTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	transactionIDs := make([]uuid.UUID, 0, len(req.IDs))
	for _, idStr := range req.IDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid transaction ID format: " + idStr,
			})
			return
		}
		transactionIDs = append(transactionIDs, id)
	}

	input := transaction.BulkDeleteTransactionsInput{
		UserID: userID,
		IDs:    transactionIDs,
	}

	output, err := c.bulkDeleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BulkDeleteTransactionsResponse{
		DeletedCount: output.DeletedCount,
	})
}

// Validate handles POST /transactions/validate requests. It runs the form
// rules without persisting anything, so clients can surface every violation
// before submitting.
func (c *TransactionController) Validate(ctx *gin.Context) {
	var req dto.ValidateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	messages := transaction.ValidateForm(transaction.FormData{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date,
	})

	ctx.JSON(http.StatusOK, dto.ValidateTransactionResponse{
		Valid:  len(messages) == 0,
		Errors: messages,
	})
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Code:    string(domainerror.ErrCodeInvalidTransactionForm),
			Details: validationErr.Messages,
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeEmptyTransactionIDs,
		domainerror.ErrCodeInvalidTransactionForm:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
