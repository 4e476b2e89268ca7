package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/usecase/auth"
)

// AdminMiddleware gates the admin/debug surface behind a bearer token
// issued by the auth use case.
type AdminMiddleware struct {
	authUseCase *auth.AdminAuthUseCase
}

func NewAdminMiddleware(authUseCase *auth.AdminAuthUseCase) *AdminMiddleware {
	return &AdminMiddleware{
		authUseCase: authUseCase,
	}
}

func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Missing bearer token",
			})
			return
		}

		if err := m.authUseCase.VerifyToken(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid or expired token",
			})
			return
		}

		c.Next()
	}
}
