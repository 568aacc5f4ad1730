package middleware

import (
	"net/http"
	"strings"

	userRepo "eduhub.vn/studyportal/internal/modules/user/repository"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves an opaque bearer token against the users table.
// There is no signature to verify; the token is valid exactly while it sits
// in some user row.
type AuthMiddleware struct {
	userRepo userRepo.UserRepository
}

func NewAuthMiddleware(userRepo userRepo.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{userRepo: userRepo}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		user, err := m.userRepo.FindByToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
