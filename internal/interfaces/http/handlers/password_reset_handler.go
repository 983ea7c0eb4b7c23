package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/interfaces/http/response"
	"autobuy.backend/internal/usecases"
)

// PasswordResetHandler handles the forgotten-password endpoints
type PasswordResetHandler struct {
	reset *usecases.PasswordResetUsecase
}

// NewPasswordResetHandler creates a new password reset handler
func NewPasswordResetHandler(reset *usecases.PasswordResetUsecase) *PasswordResetHandler {
	return &PasswordResetHandler{reset: reset}
}

// Init starts a reset by email or phone
// POST /api/v1/reset-password/init/
func (h *PasswordResetHandler) Init(c *gin.Context) {
	var input entities.ResetInitInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.reset.Init(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	// Same answer whether or not the account exists.
	response.Success(c, http.StatusOK, gin.H{
		"detail": "If the account exists, reset instructions were sent",
	})
}

// Confirm finishes a reset with a token or a phone code
// POST /api/v1/reset-password/confirm/
func (h *PasswordResetHandler) Confirm(c *gin.Context) {
	var input entities.ResetConfirmInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.reset.Confirm(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"detail": "Password updated",
	})
}
