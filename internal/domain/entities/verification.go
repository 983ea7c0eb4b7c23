package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Code lifetimes. Expiry is a wall-clock comparison against the creation
// timestamp performed at read time; codes are never renewed.
const (
	EmailCodeTTL         = 10 * time.Minute
	PhoneCodeTTL         = 3 * time.Minute
	PasswordResetCodeTTL = 10 * time.Minute
)

// EmailVerificationCode is a short-lived code mailed on registration.
// A user may own several at once; confirmation consumes all of them.
type EmailVerificationCode struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Code      string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired reports whether the code is past its TTL at the given instant
func (c *EmailVerificationCode) IsExpired(now time.Time) bool {
	return now.After(c.CreatedAt.Add(EmailCodeTTL))
}

// PhoneVerificationCode is keyed by phone number; the phone may not yet
// belong to any user.
type PhoneVerificationCode struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	Code      string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired reports whether the code is past its TTL at the given instant
func (c *PhoneVerificationCode) IsExpired(now time.Time) bool {
	return now.After(c.CreatedAt.Add(PhoneCodeTTL))
}

// PasswordResetCode belongs to a user (email-initiated) or a bare phone
// number (SMS-initiated).
type PasswordResetCode struct {
	ID        uuid.UUID   `json:"id"`
	UserID    null.String `json:"user_id,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Code      string      `json:"-"`
	ViaSMS    bool        `json:"via_sms"`
	CreatedAt time.Time   `json:"created_at"`
}

// IsExpired reports whether the code is past its TTL at the given instant
func (c *PasswordResetCode) IsExpired(now time.Time) bool {
	return now.After(c.CreatedAt.Add(PasswordResetCodeTTL))
}
