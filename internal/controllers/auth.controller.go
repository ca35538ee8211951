package controllers

import (
	"errors"
	"net/http"

	"inkwell/internal/apperrors"
	"inkwell/internal/repository"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// AuthController handles admin login and token issuance.
type AuthController struct {
	admins repository.AdminRepository
	tokens *services.TokenService
	log    zerolog.Logger
}

func NewAuthController(admins repository.AdminRepository, tokens *services.TokenService, log zerolog.Logger) *AuthController {
	return &AuthController{
		admins: admins,
		tokens: tokens,
		log:    log.With().Str("controller", "auth").Logger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies the credentials and issues a 7-day token. An unknown email
// and a wrong password are indistinguishable to the caller.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ac.log, bindingError(err))
		return
	}

	admin, err := ac.admins.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, ac.log, apperrors.Unauthorized())
			return
		}
		respondError(c, ac.log, err)
		return
	}

	if !services.VerifyPassword(admin.PasswordHash, req.Password) {
		respondError(c, ac.log, apperrors.Unauthorized())
		return
	}

	token, err := ac.tokens.Sign(admin.ID)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
