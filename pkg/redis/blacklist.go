package redis

import (
	"context"
	"time"
)

const blacklistPrefix = "token:blacklist:"

// TokenBlacklist stores revoked refresh-token ids until their natural expiry.
// A blacklisted token can no longer be exchanged for new access tokens.
type TokenBlacklist struct{}

// NewTokenBlacklist creates a new token blacklist backed by the shared client
func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{}
}

// Add revokes a token id for the remainder of its lifetime. A non-positive
// ttl means the token already expired and there is nothing to store.
func (b *TokenBlacklist) Add(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return Set(ctx, blacklistPrefix+tokenID, "revoked", ttl)
}

// Contains reports whether a token id has been revoked
func (b *TokenBlacklist) Contains(ctx context.Context, tokenID string) (bool, error) {
	return Exists(ctx, blacklistPrefix+tokenID)
}
