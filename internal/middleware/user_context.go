package middleware

import (
	"b2b-marketplace/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userKey = "CurrentUser"

// InjectUser resolves the session's user_id to an account for the
// duration of the request. A stale cookie (deleted account, cleared
// session) resolves to unauthenticated.
func InjectUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := db.First(&user, uid).Error; err == nil {
					c.Set(userKey, user)
				}
			}
		}

		c.Next()
	}
}

// CurrentUser returns the identity resolved by InjectUser, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
