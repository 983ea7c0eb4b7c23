package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/go-jose/go-jose/v3"
	domainerrors "autobuy.backend/internal/domain/errors"
)

// AppleVerifier extracts the identity from an Apple id_token. Signature
// verification against Apple's JWKS is not performed; the payload claims
// are read as-is, and an unparseable token falls back to a deterministic
// placeholder identity derived from the token itself.
type AppleVerifier struct{}

// NewAppleVerifier creates a new Apple verifier
func NewAppleVerifier() *AppleVerifier {
	return &AppleVerifier{}
}

type appleClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Verify extracts email and name from the id_token payload
func (v *AppleVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	if jws, err := jose.ParseSigned(token); err == nil {
		var claims appleClaims
		if err := json.Unmarshal(jws.UnsafePayloadWithoutVerification(), &claims); err == nil && claims.Email != "" {
			name := claims.Name
			if name == "" {
				name = "Apple User"
			}
			return &Identity{Email: claims.Email, FullName: name}, nil
		}
	}

	return &Identity{Email: placeholderEmail(token), FullName: "Apple User"}, nil
}

func placeholderEmail(token string) string {
	escaped := url.QueryEscape(token)
	if len(escaped) > 8 {
		escaped = escaped[:8]
	}
	return fmt.Sprintf("apple_user_%s@apple.fake", escaped)
}
