package mock

import (
	"context"
	"errors"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// IdentityProvider derives a stable Google identity from the raw token string,
// so scenarios can sign in as any user without real token verification.
// The literal token "invalid" always fails verification.
type IdentityProvider struct{}

// VerifyIDToken implements adapter.IdentityProvider.
func (p *IdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (*adapter.GoogleIdentity, error) {
	if idToken == "" || idToken == "invalid" {
		return nil, errors.New("token verification failed")
	}
	return &adapter.GoogleIdentity{
		Subject:     "google-sub-" + idToken,
		Email:       idToken + "@example.com",
		DisplayName: idToken,
	}, nil
}

// Advisor is a canned CategoryAdvisor.
type Advisor struct {
	Available bool
	Answer    string
	Err       error
}

// IsAvailable implements adapter.CategoryAdvisor.
func (a *Advisor) IsAvailable() bool {
	return a.Available
}

// SuggestCategory implements adapter.CategoryAdvisor.
func (a *Advisor) SuggestCategory(ctx context.Context, description string, transactionType entity.TransactionType) (string, error) {
	return a.Answer, a.Err
}

var (
	_ adapter.IdentityProvider = (*IdentityProvider)(nil)
	_ adapter.CategoryAdvisor  = (*Advisor)(nil)
)
