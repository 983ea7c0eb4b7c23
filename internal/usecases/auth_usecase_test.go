package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/infrastructure/oauth"
	"autobuy.backend/pkg/crypto"
	"autobuy.backend/pkg/jwt"
)

type authFixture struct {
	users     *MockUserRepository
	blacklist *MockBlacklist
	google    *MockVerifier
	tokens    *jwt.TokenService
	usecase   *AuthUsecase
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:     new(MockUserRepository),
		blacklist: new(MockBlacklist),
		google:    new(MockVerifier),
		tokens:    newTestTokenService(),
	}
	f.usecase = NewAuthUsecase(f.users, f.tokens, f.blacklist, oauth.Verifiers{
		oauth.ProviderGoogle: f.google,
	})
	return f
}

func approvedUser(t *testing.T, email, password string) *entities.User {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return &entities.User{
		ID:            uuid.New(),
		Email:         email,
		PasswordHash:  hash,
		AccountType:   entities.AccountTypeBuyer,
		AccountStatus: entities.AccountStatusApproved,
		IsActive:      true,
		IsApproved:    true,
	}
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	user := approvedUser(t, "user@example.com", "secret123")

	f.users.On("GetByEmail", ctx, "user@example.com").Return(user, nil)

	pair, err := f.usecase.Login(ctx, &entities.LoginInput{
		Email:    "user@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := f.tokens.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "buyer", claims.AccountType)
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	user := approvedUser(t, "user@example.com", "secret123")

	f.users.On("GetByEmail", ctx, "user@example.com").Return(user, nil)

	_, err := f.usecase.Login(ctx, &entities.LoginInput{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domainerrors.ErrNotFound)

	_, err := f.usecase.Login(ctx, &entities.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestLogin_PendingDealerRejectedWithRightPassword(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	user := approvedUser(t, "dealer@example.com", "secret123")
	user.AccountType = entities.AccountTypeDealer
	user.AccountStatus = entities.AccountStatusPending
	user.IsApproved = false

	f.users.On("GetByEmail", ctx, "dealer@example.com").Return(user, nil)

	_, err := f.usecase.Login(ctx, &entities.LoginInput{
		Email:    "dealer@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotApproved)
}

func TestLogin_InactiveRejected(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	user := approvedUser(t, "user@example.com", "secret123")
	user.IsActive = false

	f.users.On("GetByEmail", ctx, "user@example.com").Return(user, nil)

	_, err := f.usecase.Login(ctx, &entities.LoginInput{
		Email:    "user@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotApproved)
}

func TestOAuthLogin_FirstLoginCreatesApprovedUser(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.google.On("Verify", ctx, "provider-token").Return(&oauth.Identity{
		Email:    "new@gmail.com",
		FullName: "New User",
	}, nil)
	f.users.On("GetByEmail", ctx, "new@gmail.com").Return(nil, domainerrors.ErrNotFound)
	f.users.On("Create", ctx, mock.MatchedBy(func(u *entities.User) bool {
		return u.Email == "new@gmail.com" &&
			u.IsActive && u.IsApproved &&
			u.AccountStatus == entities.AccountStatusApproved &&
			u.PasswordHash != ""
	})).Return(nil)

	pair, err := f.usecase.OAuthLogin(ctx, oauth.ProviderGoogle, "provider-token")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	f.users.AssertExpectations(t)
}

func TestOAuthLogin_SecondLoginReusesAccount(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	existing := approvedUser(t, "known@gmail.com", "irrelevant")

	f.google.On("Verify", ctx, "provider-token").Return(&oauth.Identity{
		Email: "known@gmail.com",
	}, nil)
	f.users.On("GetByEmail", ctx, "known@gmail.com").Return(existing, nil)

	pair, err := f.usecase.OAuthLogin(ctx, oauth.ProviderGoogle, "provider-token")
	require.NoError(t, err)

	claims, err := f.tokens.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, claims.UserID)
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOAuthLogin_BadProviderToken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	f.google.On("Verify", ctx, "bad-token").Return(nil, domainerrors.ErrInvalidToken)

	_, err := f.usecase.OAuthLogin(ctx, oauth.ProviderGoogle, "bad-token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestOAuthLogin_UnknownProvider(t *testing.T) {
	f := newAuthFixture()

	_, err := f.usecase.OAuthLogin(context.Background(), "myspace", "token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestRefresh_Success(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	user := approvedUser(t, "user@example.com", "secret123")

	pair, err := f.tokens.GenerateTokenPair(user.ID, user.Email, string(user.AccountType))
	require.NoError(t, err)

	f.blacklist.On("Contains", ctx, mock.Anything).Return(false, nil)
	f.users.On("GetByID", ctx, user.ID).Return(user, nil)

	fresh, err := f.usecase.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.NotEmpty(t, fresh.RefreshToken)
}

func TestRefresh_RevokedToken(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	user := approvedUser(t, "user@example.com", "secret123")

	pair, err := f.tokens.GenerateTokenPair(user.ID, user.Email, string(user.AccountType))
	require.NoError(t, err)

	f.blacklist.On("Contains", ctx, mock.Anything).Return(true, nil)

	_, err = f.usecase.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRefresh_GarbageToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.usecase.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestRefresh_DeletedUser(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	userID := uuid.New()

	pair, err := f.tokens.GenerateTokenPair(userID, "gone@example.com", "buyer")
	require.NoError(t, err)

	f.blacklist.On("Contains", ctx, mock.Anything).Return(false, nil)
	f.users.On("GetByID", ctx, userID).Return(nil, domainerrors.ErrNotFound)

	_, err = f.usecase.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestLogout_BlacklistsRemainingLifetime(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	pair, err := f.tokens.GenerateTokenPair(uuid.New(), "user@example.com", "buyer")
	require.NoError(t, err)

	f.blacklist.On("Add", ctx, mock.MatchedBy(func(id string) bool {
		return id != ""
	}), mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 6*24*time.Hour
	})).Return(nil)

	require.NoError(t, f.usecase.Logout(ctx, pair.RefreshToken))
	f.blacklist.AssertExpectations(t)
}

func TestLogout_GarbageToken(t *testing.T) {
	f := newAuthFixture()

	err := f.usecase.Logout(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	f.blacklist.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	user := approvedUser(t, "user@example.com", "secret123")
	user.FullName = "Old Name"
	user.Phone = "+380501110000"

	f.users.On("GetByID", ctx, user.ID).Return(user, nil)
	f.users.On("Update", ctx, mock.MatchedBy(func(u *entities.User) bool {
		return u.FullName == "New Name" && u.Phone == "+380501110000"
	})).Return(nil)

	name := "New Name"
	updated, err := f.usecase.UpdateProfile(ctx, user.ID, &entities.ProfileUpdateInput{
		FullName: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FullName)
}

func TestUpdateProfile_RejectsUnknownAccountType(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()
	user := approvedUser(t, "user@example.com", "secret123")

	f.users.On("GetByID", ctx, user.ID).Return(user, nil)

	bad := "pirate"
	_, err := f.usecase.UpdateProfile(ctx, user.ID, &entities.ProfileUpdateInput{
		AccountType: &bad,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	f.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
