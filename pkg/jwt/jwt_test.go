package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID, "a@x.com", "buyer")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "buyer", claims.AccountType)
	assert.NotEmpty(t, claims.ID)

	refreshClaims, err := svc.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, claims.ID, refreshClaims.ID)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute, -time.Minute)

	pair, err := svc.GenerateTokenPair(uuid.New(), "a@x.com", "buyer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	svc := NewTokenService("secret-a", 15*time.Minute, time.Hour)
	other := NewTokenService("secret-b", 15*time.Minute, time.Hour)

	pair, err := svc.GenerateTokenPair(uuid.New(), "a@x.com", "buyer")
	require.NoError(t, err)

	_, err = other.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("test-secret", 15*time.Minute, time.Hour)
	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetTokenService_RoundTrip(t *testing.T) {
	svc := NewResetTokenService("reset-secret", 600*time.Second)
	userID := uuid.New()

	token, err := svc.Generate(userID)
	require.NoError(t, err)

	got, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestResetTokenService_Expired(t *testing.T) {
	svc := NewResetTokenService("reset-secret", -time.Second)

	token, err := svc.Generate(uuid.New())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestResetTokenService_RejectsAccessToken(t *testing.T) {
	// An access token signed with the same secret must not pass as a reset
	// token: its purpose claim does not match.
	secret := "shared-secret"
	tokens := NewTokenService(secret, 15*time.Minute, time.Hour)
	reset := NewResetTokenService(secret, 600*time.Second)

	pair, err := tokens.GenerateTokenPair(uuid.New(), "a@x.com", "buyer")
	require.NoError(t, err)

	_, err = reset.Validate(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsResetToken(t *testing.T) {
	// A reset token signed with the same secret must never validate as a
	// bearer token, or a pending user could mint working credentials from
	// the password-reset flow.
	secret := "shared-secret"
	tokens := NewTokenService(secret, 15*time.Minute, time.Hour)
	reset := NewResetTokenService(secret, 600*time.Second)

	token, err := reset.Generate(uuid.New())
	require.NoError(t, err)

	_, err = tokens.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
