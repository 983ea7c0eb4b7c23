package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "autobuy.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Domain sentinel errors are translated to
// their HTTP shape; anything unrecognized becomes a 500.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ErrorWithStatus sends an error response with a specific status and message
func ErrorWithStatus(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrInvalidCode):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeInvalidCode, "invalid verification code", err)
	case errors.Is(err, domainerrors.ErrExpiredCode):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeExpiredCode, "verification code expired", err)
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeInvalidCredentials, "invalid email or password", err)
	case errors.Is(err, domainerrors.ErrNotApproved):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeNotApproved, "account is pending approval", err)
	case errors.Is(err, domainerrors.ErrInvalidToken):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeInvalidToken, "invalid or expired token", err)
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeUserNotFound, "user not found", err)
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeValidation, "invalid input", err)
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "resource already exists", err)
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeUnauthorized, "unauthorized", err)
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.NewAppError(http.StatusForbidden, domainerrors.CodeForbidden, "forbidden", err)
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NewAppError(http.StatusNotFound, domainerrors.CodeNotFound, "resource not found", err)
	default:
		return domainerrors.InternalError(err)
	}
}
