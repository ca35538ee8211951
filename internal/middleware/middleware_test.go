package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func setupRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(services.NewTokenService(secret)))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetString("admin_id")})
	})
	return router
}

func validToken(t *testing.T) string {
	t.Helper()
	token, err := services.NewTokenService(testSecret).Sign("admin-1")
	require.NoError(t, err)
	return token
}

func expiredToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": "admin-1",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc123", expectedStatus: http.StatusUnauthorized},
		{name: "bare token without scheme", header: validToken(t), expectedStatus: http.StatusUnauthorized},
		{name: "malformed token", header: "Bearer not.a.jwt", expectedStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + expiredToken(t), expectedStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + validToken(t), expectedStatus: http.StatusOK},
	}

	router := setupRouter(testSecret)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":{"message":"Unauthorized"}}`, w.Body.String())
			}
		})
	}
}

func TestAuthMiddlewareAdmitsAndSetsAdminID(t *testing.T) {
	router := setupRouter(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin_id":"admin-1"}`, w.Body.String())
}

func TestAuthMiddlewareMissingSecretIsServerError(t *testing.T) {
	router := setupRouter("")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+validToken(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"JWT secret not configured"}}`, w.Body.String())
}
