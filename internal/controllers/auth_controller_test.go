package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"inkwell/internal/controllers"
	"inkwell/internal/models"
	"inkwell/internal/repository/mocks"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthRouter(secret string) (*gin.Engine, *mocks.MockAdminRepository) {
	mockRepo := new(mocks.MockAdminRepository)
	controller := controllers.NewAuthController(mockRepo, services.NewTokenService(secret), zerolog.Nop())
	router := setupTestRouter()
	router.POST("/api/admin/login", controller.Login)
	return router, mockRepo
}

func testAdmin(t *testing.T, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Admin{ID: "admin-1", Email: "admin@example.com", PasswordHash: string(hash)}
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials issue token", func(t *testing.T) {
		router, mockRepo := setupAuthRouter("test-secret")
		mockRepo.On("FindByEmail", "admin@example.com").Return(testAdmin(t, "password"), nil)

		w := performRequest(router, http.MethodPost, "/api/admin/login",
			map[string]interface{}{"email": "admin@example.com", "password": "password"})

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotEmpty(t, body["token"])

		adminID, err := services.NewTokenService("test-secret").Verify(body["token"])
		require.NoError(t, err)
		assert.Equal(t, "admin-1", adminID)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		router, mockRepo := setupAuthRouter("test-secret")
		mockRepo.On("FindByEmail", "admin@example.com").Return(testAdmin(t, "password"), nil)
		mockRepo.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		wrongPassword := performRequest(router, http.MethodPost, "/api/admin/login",
			map[string]interface{}{"email": "admin@example.com", "password": "nope"})
		unknownEmail := performRequest(router, http.MethodPost, "/api/admin/login",
			map[string]interface{}{"email": "ghost@example.com", "password": "password"})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := setupAuthRouter("test-secret")

		w := performRequest(router, http.MethodPost, "/api/admin/login",
			map[string]interface{}{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email must be a valid email, password is required", errorMessage(t, w))
	})

	t.Run("missing signing secret is a server error", func(t *testing.T) {
		router, mockRepo := setupAuthRouter("")
		mockRepo.On("FindByEmail", "admin@example.com").Return(testAdmin(t, "password"), nil)

		w := performRequest(router, http.MethodPost, "/api/admin/login",
			map[string]interface{}{"email": "admin@example.com", "password": "password"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "JWT secret not configured", errorMessage(t, w))
	})
}
