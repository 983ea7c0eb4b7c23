package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const resetPurpose = "password_reset"

// resetClaims are carried by password-reset tokens. They are deliberately
// separate from Claims so a reset token can never pass as an access token.
type resetClaims struct {
	UserID  uuid.UUID `json:"userId"`
	Purpose string    `json:"purpose"`
	jwt.RegisteredClaims
}

// ResetTokenService issues and verifies signed, time-limited password-reset
// tokens encoding a user id.
type ResetTokenService struct {
	secret []byte
	maxAge time.Duration
}

// NewResetTokenService creates a new reset token service
func NewResetTokenService(secret string, maxAge time.Duration) *ResetTokenService {
	return &ResetTokenService{
		secret: []byte(secret),
		maxAge: maxAge,
	}
}

// Generate returns a signed reset token for the given user
func (s *ResetTokenService) Generate(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &resetClaims{
		UserID:  userID,
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies signature and age and returns the encoded user id
func (s *ResetTokenService) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &resetClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrExpiredToken
		}
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*resetClaims)
	if !ok || !token.Valid || claims.Purpose != resetPurpose {
		return uuid.Nil, ErrInvalidToken
	}

	return claims.UserID, nil
}
