package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/pkg/crypto"
	"autobuy.backend/pkg/jwt"
)

type resetFixture struct {
	users      *MockUserRepository
	resetCodes *MockResetCodeRepository
	notifier   *MockNotifier
	tokens     *jwt.ResetTokenService
	usecase    *PasswordResetUsecase
}

func newResetFixture(maxAge time.Duration) *resetFixture {
	f := &resetFixture{
		users:      new(MockUserRepository),
		resetCodes: new(MockResetCodeRepository),
		notifier:   new(MockNotifier),
		tokens:     jwt.NewResetTokenService("test-secret", maxAge),
	}
	f.usecase = NewPasswordResetUsecase(f.users, f.resetCodes, f.tokens, f.notifier)
	return f
}

func TestResetInit_ByEmailSendsToken(t *testing.T) {
	f := newResetFixture(10 * time.Minute)
	ctx := context.Background()
	user := &entities.User{ID: uuid.New(), Email: "user@example.com"}

	f.users.On("GetByEmail", ctx, "user@example.com").Return(user, nil)
	f.notifier.On("Send", ctx, entities.NotifyEmail, "user@example.com",
		mock.MatchedBy(func(msg string) bool { return msg != "" })).Return(nil)

	require.NoError(t, f.usecase.Init(ctx, &entities.ResetInitInput{Email: "user@example.com"}))
	f.notifier.AssertExpectations(t)
}

func TestResetInit_UnknownEmailSucceedsSilently(t *testing.T) {
	f := newResetFixture(10 * time.Minute)
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domainerrors.ErrNotFound)

	require.NoError(t, f.usecase.Init(ctx, &entities.ResetInitInput{Email: "nobody@example.com"}))
	f.notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResetInit_ByPhoneStoresCodeAndSendsSMS(t *testing.T) {
	f := newResetFixture(10 * time.Minute)
	ctx := context.Background()
	user := &entities.User{ID: uuid.New(), Phone: "+380501114400"}

	f.users.On("GetByPhone", ctx, "+380501114400").Return(user, nil)
	f.resetCodes.On("Create", ctx, mock.MatchedBy(func(c *entities.PasswordResetCode) bool {
		return c.Phone == "+380501114400" && c.ViaSMS &&
			len(c.Code) == 6 && c.UserID == null.StringFrom(user.ID.String())
	})).Return(nil)
	f.notifier.On("Send", ctx, entities.NotifySMS, "+380501114400", mock.Anything).Return(nil)

	require.NoError(t, f.usecase.Init(ctx, &entities.ResetInitInput{Phone: "+380501114400"}))
	f.resetCodes.AssertExpectations(t)
}

func TestResetInit_EmptyInput(t *testing.T) {
	f := newResetFixture(10 * time.Minute)

	err := f.usecase.Init(context.Background(), &entities.ResetInitInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestResetConfirm_ByToken(t *testing.T) {
	f := newResetFixture(10 * time.Minute)
	ctx := context.Background()
	user := &entities.User{ID: uuid.New(), Email: "user@example.com"}

	token, err := f.tokens.Generate(user.ID)
	require.NoError(t, err)

	f.users.On("GetByID", ctx, user.ID).Return(user, nil)
	f.users.On("UpdatePassword", ctx, user.ID, mock.MatchedBy(func(hash string) bool {
		return crypto.CheckPassword("new-password", hash)
	})).Return(nil)

	require.NoError(t, f.usecase.Confirm(ctx, &entities.ResetConfirmInput{
		Token:       token,
		NewPassword: "new-password",
	}))
	f.users.AssertExpectations(t)
}

func TestResetConfirm_ExpiredToken(t *testing.T) {
	f := newResetFixture(-time.Second)
	ctx := context.Background()

	token, err := f.tokens.Generate(uuid.New())
	require.NoError(t, err)

	err = f.usecase.Confirm(ctx, &entities.ResetConfirmInput{
		Token:       token,
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	f.users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetConfirm_TokenForDeletedUser(t *testing.T) {
	f := newResetFixture(10 * time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	token, err := f.tokens.Generate(userID)
	require.NoError(t, err)

	f.users.On("GetByID", ctx, userID).Return(nil, domainerrors.ErrNotFound)

	err = f.usecase.Confirm(ctx, &entities.ResetConfirmInput{
		Token:       token,
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestResetConfirm_ByPhoneCode(t *testing.T) {
	f := newResetFixture(10 * time.Minute)
	ctx := context.Background()
	user := &entities.User{ID: uuid.New(), Phone: "+380501114411"}

	f.resetCodes.On("LatestByPhoneAndCode", ctx, "+380501114411", "123456").
		Return(&entities.PasswordResetCode{
			Phone:     "+380501114411",
			Code:      "123456",
			ViaSMS:    true,
			CreatedAt: time.Now().Add(-time.Minute),
		}, nil)
	f.users.On("GetByPhone", ctx, "+380501114411").Return(user, nil)
	f.users.On("UpdatePassword", ctx, user.ID, mock.Anything).Return(nil)

	require.NoError(t, f.usecase.Confirm(ctx, &entities.ResetConfirmInput{
		Phone:       "+380501114411",
		Code:        "123456",
		NewPassword: "new-password",
	}))
}

func TestResetConfirm_ExpiredPhoneCode(t *testing.T) {
	f := newResetFixture(10 * time.Minute)
	ctx := context.Background()

	f.resetCodes.On("LatestByPhoneAndCode", ctx, "+380501114422", "123456").
		Return(&entities.PasswordResetCode{
			Phone:     "+380501114422",
			Code:      "123456",
			CreatedAt: time.Now().Add(-11 * time.Minute),
		}, nil)

	err := f.usecase.Confirm(ctx, &entities.ResetConfirmInput{
		Phone:       "+380501114422",
		Code:        "123456",
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestResetConfirm_PhoneCodeWithoutUser(t *testing.T) {
	f := newResetFixture(10 * time.Minute)
	ctx := context.Background()

	f.resetCodes.On("LatestByPhoneAndCode", ctx, "+380501114433", "123456").
		Return(&entities.PasswordResetCode{
			Phone:     "+380501114433",
			Code:      "123456",
			CreatedAt: time.Now(),
		}, nil)
	f.users.On("GetByPhone", ctx, "+380501114433").Return(nil, domainerrors.ErrNotFound)

	err := f.usecase.Confirm(ctx, &entities.ResetConfirmInput{
		Phone:       "+380501114433",
		Code:        "123456",
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestResetConfirm_NoProof(t *testing.T) {
	f := newResetFixture(10 * time.Minute)

	err := f.usecase.Confirm(context.Background(), &entities.ResetConfirmInput{
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
