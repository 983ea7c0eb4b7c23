package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/volatiletech/null/v8"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/domain/repositories"
	"autobuy.backend/internal/infrastructure/notify"
	"autobuy.backend/pkg/crypto"
	"autobuy.backend/pkg/jwt"
	"autobuy.backend/pkg/logger"

	"go.uber.org/zap"
)

// PasswordResetUsecase handles the two-step forgotten-password flow
type PasswordResetUsecase struct {
	userRepo    repositories.UserRepository
	resetCodes  repositories.PasswordResetCodeRepository
	resetTokens *jwt.ResetTokenService
	notifier    notify.Notifier
}

// NewPasswordResetUsecase creates a new password reset usecase
func NewPasswordResetUsecase(
	userRepo repositories.UserRepository,
	resetCodes repositories.PasswordResetCodeRepository,
	resetTokens *jwt.ResetTokenService,
	notifier notify.Notifier,
) *PasswordResetUsecase {
	return &PasswordResetUsecase{
		userRepo:    userRepo,
		resetCodes:  resetCodes,
		resetTokens: resetTokens,
		notifier:    notifier,
	}
}

// Init starts a reset by email (signed token) or by phone (SMS code).
// Unknown identifiers succeed without side effects so the endpoint never
// discloses whether an account exists.
func (u *PasswordResetUsecase) Init(ctx context.Context, input *entities.ResetInitInput) error {
	switch {
	case input.Email != "":
		return u.initByEmail(ctx, input.Email)
	case input.Phone != "":
		return u.initByPhone(ctx, input.Phone)
	default:
		return domainerrors.ErrInvalidInput
	}
}

func (u *PasswordResetUsecase) initByEmail(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := u.resetTokens.Generate(user.ID)
	if err != nil {
		return err
	}

	u.deliver(ctx, entities.NotifyEmail, user.Email, fmt.Sprintf("Password reset token: %s", token))
	return nil
}

func (u *PasswordResetUsecase) initByPhone(ctx context.Context, phone string) error {
	user, err := u.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}

	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		return err
	}
	record := &entities.PasswordResetCode{
		UserID: null.StringFrom(user.ID.String()),
		Phone:  phone,
		Code:   code,
		ViaSMS: true,
	}
	if err := u.resetCodes.Create(ctx, record); err != nil {
		return err
	}

	u.deliver(ctx, entities.NotifySMS, phone, fmt.Sprintf("Password reset code: %s", code))
	return nil
}

// Confirm finishes a reset. The caller proves ownership either with the
// signed token from the email branch or with phone plus SMS code.
func (u *PasswordResetUsecase) Confirm(ctx context.Context, input *entities.ResetConfirmInput) error {
	var user *entities.User
	var err error

	switch {
	case input.Token != "":
		user, err = u.userByToken(ctx, input.Token)
	case input.Phone != "" && input.Code != "":
		user, err = u.userByPhoneCode(ctx, input.Phone, input.Code)
	default:
		return domainerrors.ErrInvalidInput
	}
	if err != nil {
		return err
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, user.ID, passwordHash)
}

func (u *PasswordResetUsecase) userByToken(ctx context.Context, token string) (*entities.User, error) {
	userID, err := u.resetTokens.Validate(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		// A vanished account is indistinguishable from a bad token.
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

func (u *PasswordResetUsecase) userByPhoneCode(ctx context.Context, phone, code string) (*entities.User, error) {
	record, err := u.resetCodes.LatestByPhoneAndCode(ctx, phone, code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}
		return nil, err
	}
	if record.IsExpired(time.Now()) {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := u.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (u *PasswordResetUsecase) deliver(ctx context.Context, method entities.NotificationMethod, recipient, message string) {
	if err := u.notifier.Send(ctx, method, recipient, message); err != nil {
		logger.Warn(ctx, "reset delivery failed",
			zap.String("channel", string(method)),
			zap.String("recipient", recipient),
			zap.Error(err),
		)
	}
}
