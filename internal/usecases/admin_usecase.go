package usecases

import (
	"context"

	"github.com/google/uuid"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/domain/repositories"
)

// AdminUsecase covers the moderation back office
type AdminUsecase struct {
	userRepo repositories.UserRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(userRepo repositories.UserRepository) *AdminUsecase {
	return &AdminUsecase{userRepo: userRepo}
}

// ListUsers returns accounts matching the search term over name, email
// and phone. An empty term returns everyone.
func (u *AdminUsecase) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, search)
}

// SetStatus resolves a pending moderation request. Only approved and
// rejected are valid verdicts.
func (u *AdminUsecase) SetStatus(ctx context.Context, userID uuid.UUID, status entities.AccountStatus) (*entities.User, error) {
	if status != entities.AccountStatusApproved && status != entities.AccountStatusRejected {
		return nil, domainerrors.ErrInvalidInput
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.AccountStatus = status
	user.IsApproved = status == entities.AccountStatusApproved

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
