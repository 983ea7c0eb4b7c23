package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/domain/repositories"
	"autobuy.backend/internal/infrastructure/oauth"
	"autobuy.backend/pkg/crypto"
	"autobuy.backend/pkg/jwt"
)

// TokenBlacklist revokes refresh tokens by their JTI until natural expiry
type TokenBlacklist interface {
	Add(ctx context.Context, tokenID string, ttl time.Duration) error
	Contains(ctx context.Context, tokenID string) (bool, error)
}

// AuthUsecase handles login, token lifecycle and profile access
type AuthUsecase struct {
	userRepo  repositories.UserRepository
	tokens    *jwt.TokenService
	blacklist TokenBlacklist
	verifiers oauth.Verifiers
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	tokens *jwt.TokenService,
	blacklist TokenBlacklist,
	verifiers oauth.Verifiers,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		tokens:    tokens,
		blacklist: blacklist,
		verifiers: verifiers,
	}
}

// Login authenticates by email and password. Accounts that are inactive or
// not yet approved are rejected even with correct credentials.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*jwt.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.CanLogin() {
		return nil, domainerrors.ErrNotApproved
	}

	return u.tokens.GenerateTokenPair(user.ID, user.Email, string(user.AccountType))
}

// OAuthLogin verifies a provider token and signs in the matching account,
// creating it on first login. Provider-backed accounts are active and
// approved from the start; no moderation gate applies on this path.
func (u *AuthUsecase) OAuthLogin(ctx context.Context, provider, token string) (*jwt.TokenPair, error) {
	verifier, err := u.verifiers.For(provider)
	if err != nil {
		return nil, err
	}

	identity, err := verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByEmail(ctx, identity.Email)
	if errors.Is(err, domainerrors.ErrNotFound) {
		user, err = u.createOAuthUser(ctx, identity)
	}
	if err != nil {
		return nil, err
	}

	return u.tokens.GenerateTokenPair(user.ID, user.Email, string(user.AccountType))
}

func (u *AuthUsecase) createOAuthUser(ctx context.Context, identity *oauth.Identity) (*entities.User, error) {
	password, err := crypto.GenerateRandomPassword()
	if err != nil {
		return nil, err
	}
	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:         identity.Email,
		FullName:      identity.FullName,
		PasswordHash:  passwordHash,
		AccountType:   entities.AccountTypeBuyer,
		AccountStatus: entities.AccountStatusApproved,
		IsActive:      true,
		IsApproved:    true,
	}

	err = u.userRepo.Create(ctx, user)
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		// Lost a concurrent first-login race; the other request created it.
		return u.userRepo.GetByEmail(ctx, user.Email)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Refresh exchanges a valid, non-revoked refresh token for a new pair
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	revoked, err := u.blacklist.Contains(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}
		return nil, err
	}

	return u.tokens.GenerateTokenPair(user.ID, user.Email, string(user.AccountType))
}

// Logout blacklists the refresh token for the remainder of its lifetime.
// Any failure collapses into a generic invalid-input error.
func (u *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := u.tokens.ValidateToken(refreshToken)
	if err != nil {
		return domainerrors.ErrInvalidInput
	}

	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if err := u.blacklist.Add(ctx, claims.ID, ttl); err != nil {
		return domainerrors.ErrInvalidInput
	}
	return nil
}

// GetProfile returns the profile of the given user
func (u *AuthUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies a partial update to the user's own profile
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.ProfileUpdateInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.AccountType != nil {
		accountType := entities.AccountType(*input.AccountType)
		if !accountType.Valid() {
			return nil, domainerrors.ErrInvalidInput
		}
		user.AccountType = accountType
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
