package usecases

import (
	"context"

	"autobuy.backend/internal/domain/entities"
	"autobuy.backend/internal/domain/repositories"
)

// PageUsecase serves published content pages
type PageUsecase struct {
	pageRepo repositories.PageRepository
}

// NewPageUsecase creates a new page usecase
func NewPageUsecase(pageRepo repositories.PageRepository) *PageUsecase {
	return &PageUsecase{pageRepo: pageRepo}
}

// List returns pages newest first, optionally filtered by kind
func (u *PageUsecase) List(ctx context.Context, kind string) ([]*entities.Page, error) {
	return u.pageRepo.List(ctx, entities.PageKind(kind))
}

// GetBySlug returns a single page by its slug
func (u *PageUsecase) GetBySlug(ctx context.Context, slug string) (*entities.Page, error) {
	return u.pageRepo.GetBySlug(ctx, slug)
}
