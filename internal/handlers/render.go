package handlers

import (
	"b2b-marketplace/internal/flash"
	"b2b-marketplace/internal/middleware"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and feeds every template the current identity and
// the pending flash notices.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user, ok := middleware.CurrentUser(c); ok {
		data["CurrentUser"] = user
		data["CurrentUsername"] = user.Username
		data["CurrentUserRole"] = user.Role
	}

	data["Flashes"] = flash.Pop(c)

	c.HTML(status, tmpl, data)
}
