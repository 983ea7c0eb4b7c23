package repositories

import (
	"context"

	"github.com/google/uuid"
	"autobuy.backend/internal/domain/entities"
)

// EmailCodeRepository defines email verification code operations.
// Lookup is by code value alone, newest first; confirmation deletes all of
// the owner's outstanding codes.
type EmailCodeRepository interface {
	Create(ctx context.Context, userID uuid.UUID, code string) error
	LatestByCode(ctx context.Context, code string) (*entities.EmailVerificationCode, error)
	DeleteForUser(ctx context.Context, userID uuid.UUID) error
}

// PhoneCodeRepository defines phone verification code operations
type PhoneCodeRepository interface {
	Create(ctx context.Context, phone, code string) error
	LatestByPhoneAndCode(ctx context.Context, phone, code string) (*entities.PhoneVerificationCode, error)
}

// PasswordResetCodeRepository defines password reset code operations
type PasswordResetCodeRepository interface {
	Create(ctx context.Context, code *entities.PasswordResetCode) error
	LatestByPhoneAndCode(ctx context.Context, phone, code string) (*entities.PasswordResetCode, error)
}
