package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/interfaces/http/middleware"
	"autobuy.backend/internal/interfaces/http/response"
	"autobuy.backend/internal/usecases"
)

// AuthHandler handles login, token lifecycle and profile endpoints
type AuthHandler struct {
	auth *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles email and password login
// POST /api/v1/login/
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.auth.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotApproved) {
			c.JSON(http.StatusForbidden, gin.H{
				"detail": "account is awaiting approval",
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// OAuthLogin exchanges a provider token for a local token pair. The
// provider name comes from the route.
// POST /api/v1/auth/:provider/
func (h *AuthHandler) OAuthLogin(c *gin.Context) {
	var input struct {
		IDToken     string `json:"id_token"`
		AccessToken string `json:"access_token"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	token := input.IDToken
	if token == "" {
		token = input.AccessToken
	}
	if token == "" {
		response.Error(c, domainerrors.BadRequest("token is required"))
		return
	}

	pair, err := h.auth.OAuthLogin(c.Request.Context(), c.Param("provider"), token)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Refresh exchanges a refresh token for a new pair
// POST /api/v1/token/refresh/
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		Refresh string `json:"refresh" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), input.Refresh)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidToken) {
			response.Error(c, domainerrors.Unauthorized("refresh token is invalid or revoked"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Logout revokes the submitted refresh token
// POST /api/v1/logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	var input struct {
		Refresh string `json:"refresh" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.auth.Logout(c.Request.Context(), input.Refresh); err != nil {
		response.Error(c, domainerrors.BadRequest("could not log out"))
		return
	}

	c.Status(http.StatusResetContent)
}

// GetProfile returns the authenticated user's profile
// GET /api/v1/profile/
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	user, err := h.auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

// UpdateProfile applies a partial update to the authenticated user
// PATCH /api/v1/profile/
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	var input entities.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}
