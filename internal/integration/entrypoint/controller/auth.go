// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	googleLoginUseCase  *auth.GoogleLoginUseCase
	refreshTokenUseCase *auth.RefreshTokenUseCase
	logoutUseCase       *auth.LogoutUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	googleLoginUseCase *auth.GoogleLoginUseCase,
	refreshTokenUseCase *auth.RefreshTokenUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
) *AuthController {
	return &AuthController{
		googleLoginUseCase:  googleLoginUseCase,
		refreshTokenUseCase: refreshTokenUseCase,
		logoutUseCase:       logoutUseCase,
	}
}

// GoogleLogin handles POST /auth/google requests.
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.googleLoginUseCase.Execute(ctx.Request.Context(), auth.GoogleLoginInput{
		IDToken: req.IDToken,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.IsNewUser {
		status = http.StatusCreated
	}

	ctx.JSON(status, dto.AuthResponse{
		User:         dto.ToUserResponse(output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		IsNewUser:    output.IsNewUser,
	})
}

// Refresh handles POST /auth/refresh requests.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.refreshTokenUseCase.Execute(ctx.Request.Context(), auth.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutUserInput{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAuthError maps auth errors to HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(c.getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeMissingToken:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidGoogleToken,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
