package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	domainerrors "autobuy.backend/internal/domain/errors"
)

const defaultGraphBaseURL = "https://graph.facebook.com"

// FacebookVerifier validates Facebook access tokens via the Graph API:
// debug_token to check validity, then /me for the profile.
type FacebookVerifier struct {
	appID     string
	appSecret string
	baseURL   string
	client    *http.Client
}

// NewFacebookVerifier creates a new Facebook verifier
func NewFacebookVerifier(appID, appSecret string) *FacebookVerifier {
	return &FacebookVerifier{
		appID:     appID,
		appSecret: appSecret,
		baseURL:   defaultGraphBaseURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewFacebookVerifierWithBase creates a verifier against a custom Graph
// endpoint (used in tests)
func NewFacebookVerifierWithBase(appID, appSecret, baseURL string, client *http.Client) *FacebookVerifier {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &FacebookVerifier{appID: appID, appSecret: appSecret, baseURL: baseURL, client: client}
}

type fbDebugResponse struct {
	Data struct {
		IsValid bool `json:"is_valid"`
	} `json:"data"`
}

type fbProfileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Verify checks the access token against debug_token and fetches the profile
func (v *FacebookVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	debugURL := fmt.Sprintf("%s/debug_token?input_token=%s&access_token=%s",
		v.baseURL,
		url.QueryEscape(token),
		url.QueryEscape(v.appID+"|"+v.appSecret),
	)

	var debug fbDebugResponse
	if err := v.getJSON(ctx, debugURL, &debug); err != nil {
		return nil, err
	}
	if !debug.Data.IsValid {
		return nil, domainerrors.ErrInvalidToken
	}

	profileURL := fmt.Sprintf("%s/me?fields=id,name,email&access_token=%s",
		v.baseURL, url.QueryEscape(token))

	var profile fbProfileResponse
	if err := v.getJSON(ctx, profileURL, &profile); err != nil {
		return nil, err
	}
	if profile.Email == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	return &Identity{Email: profile.Email, FullName: profile.Name}, nil
}

func (v *FacebookVerifier) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domainerrors.ErrInvalidToken
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return domainerrors.ErrInvalidToken
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.ErrInvalidToken
	}
	return nil
}
