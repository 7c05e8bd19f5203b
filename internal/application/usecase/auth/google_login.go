// Package auth implements the Google sign-in and session token use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GoogleLoginInput represents the input for signing in with a Google ID token.
type GoogleLoginInput struct {
	IDToken string
}

// GoogleLoginOutput represents the result of a successful sign-in.
type GoogleLoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
	IsNewUser    bool
}

// GoogleLoginUseCase handles sign-in with a Google ID token. Accounts are
// provisioned on first sign-in; subsequent sign-ins refresh the profile
// fields from the verified identity.
type GoogleLoginUseCase struct {
	identityProvider adapter.IdentityProvider
	userRepo         adapter.UserRepository
	tokenService     adapter.TokenService
}

// NewGoogleLoginUseCase creates a new GoogleLoginUseCase instance.
func NewGoogleLoginUseCase(
	identityProvider adapter.IdentityProvider,
	userRepo adapter.UserRepository,
	tokenService adapter.TokenService,
) *GoogleLoginUseCase {
	return &GoogleLoginUseCase{
		identityProvider: identityProvider,
		userRepo:         userRepo,
		tokenService:     tokenService,
	}
}

// Execute verifies the ID token, upserts the account and issues a token pair.
func (uc *GoogleLoginUseCase) Execute(ctx context.Context, input GoogleLoginInput) (*GoogleLoginOutput, error) {
	if input.IDToken == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"id token is required",
			nil,
		)
	}

	identity, err := uc.identityProvider.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidGoogleToken,
			"google id token verification failed",
			domainerror.ErrInvalidGoogleToken,
		)
	}

	user, err := uc.userRepo.FindByGoogleSubject(ctx, identity.Subject)
	isNewUser := false

	switch {
	case err == nil:
		if user.Email != identity.Email || user.DisplayName != identity.DisplayName {
			user.Email = identity.Email
			user.DisplayName = identity.DisplayName
			if updateErr := uc.userRepo.Update(ctx, user); updateErr != nil {
				slog.Warn("Failed to refresh user profile at sign-in", "error", updateErr, "user_id", user.ID)
			}
		}

	case errors.Is(err, domainerror.ErrUserNotFound):
		user = entity.NewUser(identity.Subject, identity.Email, identity.DisplayName)
		if createErr := uc.userRepo.Create(ctx, user); createErr != nil {
			return nil, fmt.Errorf("failed to provision user: %w", createErr)
		}
		isNewUser = true
		slog.Info("Provisioned new user from Google sign-in", "user_id", user.ID)

	default:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	pair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return &GoogleLoginOutput{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		IsNewUser:    isNewUser,
	}, nil
}
