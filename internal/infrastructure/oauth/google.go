package oauth

import (
	"context"

	"google.golang.org/api/idtoken"
	domainerrors "autobuy.backend/internal/domain/errors"
)

// GoogleVerifier validates Google ID tokens against the configured client id
type GoogleVerifier struct {
	clientID string
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// NewGoogleVerifier creates a new Google verifier
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: clientID,
		validate: idtoken.Validate,
	}
}

// Verify validates the ID token and extracts email and name claims
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, domainerrors.ErrInvalidToken
	}
	name, _ := payload.Claims["name"].(string)

	return &Identity{Email: email, FullName: name}, nil
}
