package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"autobuy.backend/internal/interfaces/http/response"
	"autobuy.backend/internal/usecases"
)

// PageHandler serves published content pages
type PageHandler struct {
	pages *usecases.PageUsecase
}

// NewPageHandler creates a new page handler
func NewPageHandler(pages *usecases.PageUsecase) *PageHandler {
	return &PageHandler{pages: pages}
}

// List returns pages, optionally filtered by kind
// GET /api/v1/pages?kind=blog_post
func (h *PageHandler) List(c *gin.Context) {
	pages, err := h.pages.List(c.Request.Context(), c.Query("kind"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": pages})
}

// GetBySlug returns a single page
// GET /api/v1/pages/:slug
func (h *PageHandler) GetBySlug(c *gin.Context) {
	page, err := h.pages.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, page)
}
