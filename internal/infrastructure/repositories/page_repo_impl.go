package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/infrastructure/models"
)

// PageRepository implements read access to CMS content pages
type PageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new page repository
func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

// List lists pages, optionally filtered by kind, newest published first
func (r *PageRepository) List(ctx context.Context, kind entities.PageKind) ([]*entities.Page, error) {
	var pageModels []models.Page
	query := r.db.WithContext(ctx).Order("published_at DESC, created_at DESC")
	if kind != "" {
		query = query.Where("kind = ?", string(kind))
	}
	if err := query.Find(&pageModels).Error; err != nil {
		return nil, err
	}

	pages := make([]*entities.Page, 0, len(pageModels))
	for i := range pageModels {
		pages = append(pages, pageToEntity(&pageModels[i]))
	}
	return pages, nil
}

// GetBySlug gets a page by its unique slug
func (r *PageRepository) GetBySlug(ctx context.Context, slug string) (*entities.Page, error) {
	var m models.Page
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return pageToEntity(&m), nil
}

func pageToEntity(m *models.Page) *entities.Page {
	return &entities.Page{
		ID:          m.ID,
		Kind:        entities.PageKind(m.Kind),
		Slug:        m.Slug,
		Title:       m.Title,
		Intro:       m.Intro,
		Body:        m.Body,
		Price:       m.Price,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
