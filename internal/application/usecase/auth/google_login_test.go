package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// stubIdentityProvider verifies any token as a fixed identity.
type stubIdentityProvider struct {
	identity *adapter.GoogleIdentity
	err      error
}

func (s *stubIdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (*adapter.GoogleIdentity, error) {
	return s.identity, s.err
}

// stubUserRepo is an in-memory user store keyed by Google subject.
type stubUserRepo struct {
	users   map[string]*entity.User
	created int
	updated int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*entity.User)}
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	s.users[user.GoogleSubject] = user
	s.created++
	return nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (s *stubUserRepo) FindByGoogleSubject(ctx context.Context, subject string) (*entity.User, error) {
	if user, ok := s.users[subject]; ok {
		return user, nil
	}
	return nil, domainerror.ErrUserNotFound
}

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error {
	s.users[user.GoogleSubject] = user
	s.updated++
	return nil
}

// stubTokenService issues fixed tokens.
type stubTokenService struct {
	revoked []string
}

func (s *stubTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (s *stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func (s *stubTokenService) RefreshTokenPair(ctx context.Context, refreshToken string) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{AccessToken: "access2", RefreshToken: "refresh2"}, nil
}

func (s *stubTokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	s.revoked = append(s.revoked, refreshToken)
	return nil
}

func testIdentity() *adapter.GoogleIdentity {
	return &adapter.GoogleIdentity{
		Subject:     "google-sub-1",
		Email:       "user@example.com",
		DisplayName: "Test User",
	}
}

func TestGoogleLoginUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing id token", func(t *testing.T) {
		uc := NewGoogleLoginUseCase(&stubIdentityProvider{identity: testIdentity()}, newStubUserRepo(), &stubTokenService{})

		_, err := uc.Execute(ctx, GoogleLoginInput{})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeMissingFields {
			t.Errorf("expected missing fields error, got %v", err)
		}
	})

	t.Run("rejects unverifiable token", func(t *testing.T) {
		provider := &stubIdentityProvider{err: errors.New("bad signature")}
		uc := NewGoogleLoginUseCase(provider, newStubUserRepo(), &stubTokenService{})

		_, err := uc.Execute(ctx, GoogleLoginInput{IDToken: "bogus"})

		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidGoogleToken {
			t.Errorf("expected invalid google token error, got %v", err)
		}
	})

	t.Run("provisions a new user on first sign-in", func(t *testing.T) {
		repo := newStubUserRepo()
		uc := NewGoogleLoginUseCase(&stubIdentityProvider{identity: testIdentity()}, repo, &stubTokenService{})

		output, err := uc.Execute(ctx, GoogleLoginInput{IDToken: "valid"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.IsNewUser {
			t.Error("expected IsNewUser to be true")
		}
		if repo.created != 1 {
			t.Errorf("expected 1 user created, got %d", repo.created)
		}
		if output.User.Email != "user@example.com" {
			t.Errorf("unexpected user email %q", output.User.Email)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
	})

	t.Run("second sign-in finds the existing user", func(t *testing.T) {
		repo := newStubUserRepo()
		uc := NewGoogleLoginUseCase(&stubIdentityProvider{identity: testIdentity()}, repo, &stubTokenService{})

		first, err := uc.Execute(ctx, GoogleLoginInput{IDToken: "valid"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, GoogleLoginInput{IDToken: "valid"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if second.IsNewUser {
			t.Error("expected IsNewUser to be false on second sign-in")
		}
		if first.User.ID != second.User.ID {
			t.Error("expected the same user across sign-ins")
		}
		if repo.created != 1 {
			t.Errorf("expected 1 user created, got %d", repo.created)
		}
	})

	t.Run("refreshes profile fields from the verified identity", func(t *testing.T) {
		repo := newStubUserRepo()
		provider := &stubIdentityProvider{identity: testIdentity()}
		uc := NewGoogleLoginUseCase(provider, repo, &stubTokenService{})

		if _, err := uc.Execute(ctx, GoogleLoginInput{IDToken: "valid"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		provider.identity = &adapter.GoogleIdentity{
			Subject:     "google-sub-1",
			Email:       "renamed@example.com",
			DisplayName: "Renamed User",
		}

		output, err := uc.Execute(ctx, GoogleLoginInput{IDToken: "valid"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.User.Email != "renamed@example.com" || output.User.DisplayName != "Renamed User" {
			t.Errorf("expected refreshed profile, got %q / %q", output.User.Email, output.User.DisplayName)
		}
		if repo.updated != 1 {
			t.Errorf("expected 1 profile update, got %d", repo.updated)
		}
	})
}

func TestLogoutUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the refresh token", func(t *testing.T) {
		tokens := &stubTokenService{}
		uc := NewLogoutUserUseCase(tokens)

		if err := uc.Execute(ctx, LogoutUserInput{RefreshToken: "refresh"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tokens.revoked) != 1 || tokens.revoked[0] != "refresh" {
			t.Errorf("expected refresh token revoked, got %v", tokens.revoked)
		}
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		tokens := &stubTokenService{}
		uc := NewLogoutUserUseCase(tokens)

		if err := uc.Execute(ctx, LogoutUserInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tokens.revoked) != 0 {
			t.Errorf("expected no revocations, got %v", tokens.revoked)
		}
	})
}
