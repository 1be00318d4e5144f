package api

import (
	"net/http"
	"strings"

	"github.com/barelyrics/barelyrics-api/internal/auth"
	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// adminUserKey is the context key carrying the authenticated admin identity
const adminUserKey = "admin_user"

// requireAuth validates the bearer token and stores the admin identity in
// the request context. Missing, malformed and expired tokens all produce
// the same 401.
func requireAuth(authSvc service.AuthService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization format"})
			c.Abort()
			return
		}

		user, err := authSvc.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(adminUserKey, user)
		c.Next()
	}
}

// requireRole gates the route on the role claim of the authenticated
// identity. Insufficient role is a 403, distinct from the 401 of a failed
// authentication.
func requireRole(minRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentAdmin(c)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}
		if !auth.Satisfies(user.Role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentAdmin returns the authenticated admin identity, or nil
func currentAdmin(c *gin.Context) *models.AdminUser {
	value, ok := c.Get(adminUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.AdminUser)
	if !ok {
		return nil
	}
	return user
}
