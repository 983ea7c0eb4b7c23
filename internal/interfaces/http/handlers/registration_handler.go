package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"autobuy.backend/internal/domain/entities"
	domainerrors "autobuy.backend/internal/domain/errors"
	"autobuy.backend/internal/interfaces/http/response"
	"autobuy.backend/internal/usecases"
)

// RegistrationHandler handles signup and verification endpoints
type RegistrationHandler struct {
	registration *usecases.RegistrationUsecase
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registration *usecases.RegistrationUsecase) *RegistrationHandler {
	return &RegistrationHandler{registration: registration}
}

// Register handles email registration
// POST /api/v1/register/
func (h *RegistrationHandler) Register(c *gin.Context) {
	var input entities.RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.registration.Register(c.Request.Context(), &input); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			// Duplicate email reads as a field error, same as the rest of
			// the registration form validation.
			response.Error(c, domainerrors.BadRequest("email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// ConfirmEmail consumes a mailed verification code
// POST /api/v1/register/confirm/
func (h *RegistrationHandler) ConfirmEmail(c *gin.Context) {
	var input entities.ConfirmEmailInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.registration.ConfirmEmail(c.Request.Context(), input.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// SendPhoneCode issues an SMS verification code
// POST /api/v1/phone/send-code/
func (h *RegistrationHandler) SendPhoneCode(c *gin.Context) {
	var input entities.SendPhoneCodeInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.registration.SendPhoneCode(c.Request.Context(), input.Phone); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"detail": "Verification code sent",
	})
}

// RegisterByPhone registers against a previously issued SMS code
// POST /api/v1/phone/register/
func (h *RegistrationHandler) RegisterByPhone(c *gin.Context) {
	var input entities.RegisterByPhoneInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.registration.RegisterByPhone(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.BadRequest("phone already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, pair)
}
