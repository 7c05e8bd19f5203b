package auth

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for refreshing a session.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the new token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase exchanges a valid refresh token for a new token pair.
type RefreshTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{tokenService: tokenService}
}

// Execute rotates the refresh token and returns the new pair.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"refresh token is required",
			nil,
		)
	}

	pair, err := uc.tokenService.RefreshTokenPair(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"refresh token is invalid or expired",
			err,
		)
	}

	return &RefreshTokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
