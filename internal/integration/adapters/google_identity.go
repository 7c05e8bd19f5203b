// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// googleIdentityProvider implements adapter.IdentityProvider using Google's
// ID token verification endpoint. The configured OAuth client ID is enforced
// as the token audience.
type googleIdentityProvider struct {
	clientID string
}

// NewGoogleIdentityProvider creates a new Google identity provider instance.
func NewGoogleIdentityProvider(clientID string) adapter.IdentityProvider {
	return &googleIdentityProvider{
		clientID: clientID,
	}
}

// VerifyIDToken verifies a Google ID token and returns the identity it asserts.
func (p *googleIdentityProvider) VerifyIDToken(ctx context.Context, token string) (*adapter.GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, token, p.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidGoogleToken, err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)

	if payload.Subject == "" || email == "" {
		return nil, domainerror.ErrInvalidGoogleToken
	}

	return &adapter.GoogleIdentity{
		Subject:     payload.Subject,
		Email:       email,
		DisplayName: name,
	}, nil
}
