package oauth

import (
	"context"

	domainerrors "autobuy.backend/internal/domain/errors"
)

// Provider names accepted by the auth gateway
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
	ProviderApple    = "apple"
)

// Identity is the subset of a third-party profile the gateway needs
type Identity struct {
	Email    string
	FullName string
}

// Verifier validates a provider-issued token and extracts the identity.
// Implementations return domainerrors.ErrInvalidToken when the token does
// not verify or the provider omits a usable email.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// Verifiers maps provider name to verifier
type Verifiers map[string]Verifier

// For returns the verifier for a provider
func (v Verifiers) For(provider string) (Verifier, error) {
	verifier, ok := v[provider]
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}
	return verifier, nil
}
