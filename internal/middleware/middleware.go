package middleware

import (
	"net/http"
	"strings"

	"inkwell/internal/apperrors"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin surface. The system has a single role, so
// a valid unexpired token is the whole check; no per-request claims are
// inspected beyond the embedded admin id.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortUnauthorized(c)
			return
		}

		adminID, err := tokens.Verify(parts[1])
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindConfiguration {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": gin.H{"message": apperrors.MessageOf(err)},
				})
				return
			}
			abortUnauthorized(c)
			return
		}

		c.Set("admin_id", adminID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"message": "Unauthorized"},
	})
}
