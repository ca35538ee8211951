package services

import (
	"fmt"
	"time"

	"inkwell/internal/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenTTL is the only session-termination mechanism; there is no
// revocation list.
const AdminTokenTTL = 7 * 24 * time.Hour

type TokenService struct {
	secret string
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: secret}
}

func (s *TokenService) Sign(adminID string) (string, error) {
	if s.secret == "" {
		return "", apperrors.Configuration("JWT secret not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": adminID,
		"exp":      time.Now().Add(AdminTokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded admin id.
// Every verification failure reads as Unauthorized; only a missing secret is
// a server-side configuration error.
func (s *TokenService) Verify(tokenString string) (string, error) {
	if s.secret == "" {
		return "", apperrors.Configuration("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.Unauthorized()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.Unauthorized()
	}
	adminID, _ := claims["admin_id"].(string)
	if adminID == "" {
		return "", apperrors.Unauthorized()
	}
	return adminID, nil
}
