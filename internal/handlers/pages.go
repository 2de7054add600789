package handlers

import (
	"net/http"

	"b2b-marketplace/internal/middleware"
	"b2b-marketplace/internal/models"

	"github.com/gin-gonic/gin"
)

// Index dispatches to the dashboard matching the current role.
func (h *Handler) Index(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	switch user.Role {
	case models.RoleAdmin:
		c.Redirect(http.StatusFound, "/admin/dashboard")
	case models.RoleSupplier:
		c.Redirect(http.StatusFound, "/supplier/dashboard")
	default:
		c.Redirect(http.StatusFound, "/buyer/dashboard")
	}
}
