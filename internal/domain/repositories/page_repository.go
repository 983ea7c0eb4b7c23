package repositories

import (
	"context"

	"autobuy.backend/internal/domain/entities"
)

// PageRepository defines read access to CMS content pages
type PageRepository interface {
	List(ctx context.Context, kind entities.PageKind) ([]*entities.Page, error)
	GetBySlug(ctx context.Context, slug string) (*entities.Page, error)
}
