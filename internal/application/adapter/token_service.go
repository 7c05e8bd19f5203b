// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the validated claims of a session token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService defines the interface for session token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// RefreshTokenPair validates a refresh token and issues a new pair,
	// revoking the old refresh token.
	RefreshTokenPair(ctx context.Context, refreshToken string) (*TokenPair, error)

	// RevokeRefreshToken revokes a refresh token (logout).
	RevokeRefreshToken(ctx context.Context, refreshToken string) error
}
