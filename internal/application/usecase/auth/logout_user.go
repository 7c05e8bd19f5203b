package auth

import (
	"context"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for ending a session.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserUseCase revokes the session's refresh token. Logout is
// idempotent: revoking an unknown or already revoked token succeeds.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokenService: tokenService}
}

// Execute revokes the refresh token.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	if input.RefreshToken == "" {
		return nil
	}

	if err := uc.tokenService.RevokeRefreshToken(ctx, input.RefreshToken); err != nil {
		slog.Warn("Failed to revoke refresh token at logout", "error", err)
	}
	return nil
}
