// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret          []byte
	tokenRepository persistence.TokenRepository
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, tokenRepository persistence.TokenRepository) adapter.TokenService {
	return &tokenService{
		secret:          []byte(secret),
		tokenRepository: tokenRepository,
	}
}

// GenerateTokenPair generates a new access and refresh token pair.
func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	accessToken, err := s.generateJWT(userID, email, tokenTypeAccess, accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.generateJWT(userID, email, tokenTypeRefresh, refreshTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(refreshTokenDuration)
	if err := s.tokenRepository.SaveRefreshToken(ctx, refreshToken, userID, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeAccess {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	return &adapter.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
	}, nil
}

// RefreshTokenPair validates a refresh token and issues a new pair,
// revoking the old refresh token.
func (s *tokenService) RefreshTokenPair(ctx context.Context, refreshToken string) (*adapter.TokenPair, error) {
	claims, err := s.parseJWT(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeRefresh {
		return nil, domainerror.ErrInvalidToken
	}

	valid, err := s.tokenRepository.IsRefreshTokenValid(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	// Rotate: invalidate the old token before issuing the new pair.
	if err := s.tokenRepository.InvalidateRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	return s.GenerateTokenPair(ctx, userID, claims.Email)
}

// RevokeRefreshToken revokes a refresh token.
func (s *tokenService) RevokeRefreshToken(ctx context.Context, token string) error {
	return s.tokenRepository.InvalidateRefreshToken(ctx, token)
}

// generateJWT creates a new JWT token with the given parameters.
func (s *tokenService) generateJWT(userID uuid.UUID, email, tokenType string, duration time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:    userID.String(),
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "expense-tracker",
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	return claims, nil
}
