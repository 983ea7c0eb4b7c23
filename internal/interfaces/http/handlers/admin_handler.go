package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/interfaces/http/response"
	"autobuy.backend/internal/usecases"
)

// AdminHandler covers the moderation back office
type AdminHandler struct {
	admin *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admin *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListUsers returns accounts matching an optional search term
// GET /api/v1/admin/users?search=...
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": users})
}

// SetStatus resolves a pending moderation request
// PUT /api/v1/admin/users/:id/status
func (h *AdminHandler) SetStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid user id"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.admin.SetStatus(c.Request.Context(), userID, entities.AccountStatus(input.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}
