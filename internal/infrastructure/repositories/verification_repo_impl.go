package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/infrastructure/models"
)

// EmailCodeRepository implements email verification code operations
type EmailCodeRepository struct {
	db *gorm.DB
}

// NewEmailCodeRepository creates a new email code repository
func NewEmailCodeRepository(db *gorm.DB) *EmailCodeRepository {
	return &EmailCodeRepository{db: db}
}

// Create persists a new code for the user
func (r *EmailCodeRepository) Create(ctx context.Context, userID uuid.UUID, code string) error {
	m := &models.EmailVerificationCode{
		ID:     uuid.New(),
		UserID: userID,
		Code:   code,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// LatestByCode returns the newest record matching the code value. Lookup is
// by value alone, not scoped to a user; expiry is checked by the caller.
func (r *EmailCodeRepository) LatestByCode(ctx context.Context, code string) (*entities.EmailVerificationCode, error) {
	var m models.EmailVerificationCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.EmailVerificationCode{
		ID:        m.ID,
		UserID:    m.UserID,
		Code:      m.Code,
		CreatedAt: m.CreatedAt,
	}, nil
}

// DeleteForUser removes every outstanding code owned by the user
func (r *EmailCodeRepository) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.EmailVerificationCode{}).Error
}

// PhoneCodeRepository implements phone verification code operations
type PhoneCodeRepository struct {
	db *gorm.DB
}

// NewPhoneCodeRepository creates a new phone code repository
func NewPhoneCodeRepository(db *gorm.DB) *PhoneCodeRepository {
	return &PhoneCodeRepository{db: db}
}

// Create persists a new code for the phone number
func (r *PhoneCodeRepository) Create(ctx context.Context, phone, code string) error {
	m := &models.PhoneVerificationCode{
		ID:    uuid.New(),
		Phone: phone,
		Code:  code,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// LatestByPhoneAndCode returns the newest record matching the exact pair
func (r *PhoneCodeRepository) LatestByPhoneAndCode(ctx context.Context, phone, code string) (*entities.PhoneVerificationCode, error) {
	var m models.PhoneVerificationCode
	err := r.db.WithContext(ctx).
		Where("phone = ? AND code = ?", phone, code).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.PhoneVerificationCode{
		ID:        m.ID,
		Phone:     m.Phone,
		Code:      m.Code,
		CreatedAt: m.CreatedAt,
	}, nil
}

// PasswordResetCodeRepository implements password reset code operations
type PasswordResetCodeRepository struct {
	db *gorm.DB
}

// NewPasswordResetCodeRepository creates a new password reset code repository
func NewPasswordResetCodeRepository(db *gorm.DB) *PasswordResetCodeRepository {
	return &PasswordResetCodeRepository{db: db}
}

// Create persists a new reset code
func (r *PasswordResetCodeRepository) Create(ctx context.Context, code *entities.PasswordResetCode) error {
	m := &models.PasswordResetCode{
		ID:     uuid.New(),
		Phone:  code.Phone,
		Code:   code.Code,
		ViaSMS: code.ViaSMS,
	}
	if code.UserID.Valid {
		userID, err := uuid.Parse(code.UserID.String)
		if err != nil {
			return domainerrors.ErrInvalidInput
		}
		m.UserID = &userID
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	code.ID = m.ID
	code.CreatedAt = m.CreatedAt
	return nil
}

// LatestByPhoneAndCode returns the newest record matching the exact pair
func (r *PasswordResetCodeRepository) LatestByPhoneAndCode(ctx context.Context, phone, code string) (*entities.PasswordResetCode, error) {
	var m models.PasswordResetCode
	err := r.db.WithContext(ctx).
		Where("phone = ? AND code = ?", phone, code).
		Order("created_at DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	out := &entities.PasswordResetCode{
		ID:        m.ID,
		Phone:     m.Phone,
		Code:      m.Code,
		ViaSMS:    m.ViaSMS,
		CreatedAt: m.CreatedAt,
	}
	if m.UserID != nil {
		out.UserID = null.StringFrom(m.UserID.String())
	}
	return out, nil
}
