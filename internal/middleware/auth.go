package middleware

import (
	"net/http"

	"b2b-marketplace/internal/flash"
	"b2b-marketplace/internal/models"

	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole admits only identities whose role matches exactly. There
// is no role hierarchy: an admin does not pass a supplier check. A deny
// is a navigational redirect to the login page, not an error response.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != role {
			flash.Add(c, flash.Danger, "Access denied.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
