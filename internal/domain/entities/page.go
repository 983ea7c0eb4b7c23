package entities

import (
	"time"

	"github.com/google/uuid"
)

// PageKind distinguishes content-page schemas
type PageKind string

const (
	PageKindBlogIndex    PageKind = "blog_index"
	PageKindBlogPost     PageKind = "blog_post"
	PageKindGarageIndex  PageKind = "garage_index"
	PageKindGaragePost   PageKind = "garage_post"
	PageKindCatalogIndex PageKind = "catalog_index"
	PageKindCatalogItem  PageKind = "catalog_item"
)

// Page is an inert CMS content record. Rendering and rich-text formats are
// a presentation concern and not handled here.
type Page struct {
	ID          uuid.UUID  `json:"id"`
	Kind        PageKind   `json:"kind"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Intro       string     `json:"intro,omitempty"`
	Body        string     `json:"body,omitempty"`
	Price       string     `json:"price,omitempty"` // catalog items only, decimal string
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"-"`
}
