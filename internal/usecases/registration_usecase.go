package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/domain/repositories"
	"autobuy.backend/internal/infrastructure/notify"
	"autobuy.backend/pkg/crypto"
	"autobuy.backend/pkg/jwt"
	"autobuy.backend/pkg/logger"
)

// ModerationNotifier announces users awaiting manual approval. Implementations
// are best-effort; a failed dispatch never fails the calling workflow.
type ModerationNotifier interface {
	NotifyPending(ctx context.Context, user *entities.User)
}

// RegistrationUsecase handles signup and account verification
type RegistrationUsecase struct {
	userRepo   repositories.UserRepository
	emailCodes repositories.EmailCodeRepository
	phoneCodes repositories.PhoneCodeRepository
	tokens     *jwt.TokenService
	notifier   notify.Notifier
	moderation ModerationNotifier
}

// NewRegistrationUsecase creates a new registration usecase
func NewRegistrationUsecase(
	userRepo repositories.UserRepository,
	emailCodes repositories.EmailCodeRepository,
	phoneCodes repositories.PhoneCodeRepository,
	tokens *jwt.TokenService,
	notifier notify.Notifier,
	moderation ModerationNotifier,
) *RegistrationUsecase {
	return &RegistrationUsecase{
		userRepo:   userRepo,
		emailCodes: emailCodes,
		phoneCodes: phoneCodes,
		tokens:     tokens,
		notifier:   notifier,
		moderation: moderation,
	}
}

// Register registers a new user via email. The account stays inactive until
// the mailed verification code is confirmed.
func (u *RegistrationUsecase) Register(ctx context.Context, input *entities.RegisterInput) error {
	if input.Phone == "" || len(input.Password) < 6 {
		return domainerrors.ErrInvalidInput
	}

	accountType := entities.AccountType(input.AccountType)
	if accountType == "" {
		accountType = entities.AccountTypeBuyer
	}
	if !accountType.Valid() {
		return domainerrors.ErrInvalidInput
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return err
	}

	user := &entities.User{
		Email:         input.Email,
		FullName:      input.FullName,
		Phone:         input.Phone,
		PasswordHash:  passwordHash,
		AccountType:   accountType,
		AccountStatus: entities.AccountStatusPending,
		IsActive:      false,
		// Pre-set for buyers; does not authorize login until activation.
		IsApproved: accountType == entities.AccountTypeBuyer,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return err
	}

	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		return err
	}
	if err := u.emailCodes.Create(ctx, user.ID, code); err != nil {
		return err
	}

	u.deliver(ctx, entities.NotifyEmail, user.Email, fmt.Sprintf("Email confirmation code: %s", code))
	return nil
}

// ConfirmEmail consumes a verification code, activates the owning account
// and returns a fresh token pair. Buyers are auto-approved; every other
// account type stays pending and moderators are notified.
func (u *RegistrationUsecase) ConfirmEmail(ctx context.Context, code string) (*jwt.TokenPair, error) {
	record, err := u.emailCodes.LatestByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCode
		}
		return nil, err
	}
	if record.IsExpired(time.Now()) {
		return nil, domainerrors.ErrExpiredCode
	}

	user, err := u.userRepo.GetByID(ctx, record.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCode
		}
		return nil, err
	}

	user.IsActive = true
	if user.AccountType.RequiresModeration() {
		user.AccountStatus = entities.AccountStatusPending
		user.IsApproved = false
	} else {
		user.AccountStatus = entities.AccountStatusApproved
		user.IsApproved = true
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.AccountType.RequiresModeration() {
		u.moderation.NotifyPending(ctx, user)
	}

	if err := u.emailCodes.DeleteForUser(ctx, user.ID); err != nil {
		return nil, err
	}

	return u.tokens.GenerateTokenPair(user.ID, user.Email, string(user.AccountType))
}

// SendPhoneCode issues a short-lived SMS verification code for the phone
// number. The number does not have to belong to an existing user.
func (u *RegistrationUsecase) SendPhoneCode(ctx context.Context, phone string) error {
	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		return err
	}
	if err := u.phoneCodes.Create(ctx, phone, code); err != nil {
		return err
	}

	u.deliver(ctx, entities.NotifySMS, phone, fmt.Sprintf("SMS verification code: %s", code))
	return nil
}

// RegisterByPhone registers a user against a previously issued phone code.
// The account is created active and approved regardless of account type;
// moderators are still notified for non-buyers.
func (u *RegistrationUsecase) RegisterByPhone(ctx context.Context, input *entities.RegisterByPhoneInput) (*jwt.TokenPair, error) {
	record, err := u.phoneCodes.LatestByPhoneAndCode(ctx, input.Phone, input.Code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCode
		}
		return nil, err
	}
	if record.IsExpired(time.Now()) {
		return nil, domainerrors.ErrExpiredCode
	}

	accountType := entities.AccountType(input.AccountType)
	if accountType == "" {
		accountType = entities.AccountTypeBuyer
	}
	if !accountType.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	password, err := crypto.GenerateRandomPassword()
	if err != nil {
		return nil, err
	}
	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		// Phone accounts have no mailbox; the placeholder keeps the email
		// column unique and doubles as a duplicate-registration guard.
		Email:         fmt.Sprintf("%s@sms.fake", input.Phone),
		FullName:      input.FullName,
		Phone:         input.Phone,
		PasswordHash:  passwordHash,
		AccountType:   accountType,
		AccountStatus: entities.AccountStatusApproved,
		IsActive:      true,
		IsApproved:    true,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if accountType.RequiresModeration() {
		u.moderation.NotifyPending(ctx, user)
	}

	return u.tokens.GenerateTokenPair(user.ID, user.Email, string(user.AccountType))
}

// deliver hands a code off to the outbound transport. Delivery is out of
// scope; failures are logged and swallowed.
func (u *RegistrationUsecase) deliver(ctx context.Context, method entities.NotificationMethod, recipient, message string) {
	if err := u.notifier.Send(ctx, method, recipient, message); err != nil {
		logger.Warn(ctx, "code delivery failed",
			zap.String("channel", string(method)),
			zap.String("recipient", recipient),
			zap.Error(err),
		)
	}
}
