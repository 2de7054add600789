package handlers

import (
	"net/http"
	"strings"

	"b2b-marketplace/internal/flash"
	"b2b-marketplace/internal/hash"
	"b2b-marketplace/internal/middleware"
	"b2b-marketplace/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowRegister(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "register.html", nil)
}

func (h *Handler) Register(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	role := models.UserRole(c.PostForm("role"))

	if username == "" || password == "" || role == "" {
		flash.Add(c, flash.Danger, "All fields are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	// the admin role can never be self-registered
	switch role {
	case models.RoleSupplier, models.RoleBuyer:
		// ok
	default:
		flash.Add(c, flash.Danger, "Invalid role selected.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	var count int64
	h.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		flash.Add(c, flash.Danger, "Username already exists.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	digest, err := hash.Password(password)
	if err != nil {
		flash.Add(c, flash.Danger, "Registration failed.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: digest,
		Role:         role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		flash.Add(c, flash.Danger, "Registration failed.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	flash.Add(c, flash.Success, "Registration successful! Please login.")
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) ShowLogin(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "login.html", nil)
}

func (h *Handler) Login(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	// the rejection text must not reveal whether the username exists
	var user models.User
	err := h.DB.Where("username = ?", username).First(&user).Error
	if err != nil || !hash.Check(user.PasswordHash, password) {
		flash.Add(c, flash.Danger, "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	flash.Add(c, flash.Success, "Login successful!")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()

	flash.Add(c, flash.Success, "Logged out successfully.")
	c.Redirect(http.StatusFound, "/login")
}
