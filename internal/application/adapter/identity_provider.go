// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// GoogleIdentity represents a verified Google account identity.
type GoogleIdentity struct {
	Subject     string
	Email       string
	DisplayName string
}

// IdentityProvider verifies Google ID tokens presented at sign-in.
type IdentityProvider interface {
	// VerifyIDToken verifies a Google ID token and returns the identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleIdentity, error)
}
