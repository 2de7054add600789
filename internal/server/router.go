package server

import (
	"net/http"

	"b2b-marketplace/internal/config"
	"b2b-marketplace/internal/handlers"
	"b2b-marketplace/internal/middleware"
	"b2b-marketplace/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("mp_session", store))

	r.Use(middleware.InjectUser(db))

	h := handlers.New(db)

	// ENTRY
	r.GET("/", h.Index)

	// AUTH
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/logout", h.Logout)
	auth.GET("/product/:id", h.ViewProduct)
	auth.GET("/search", h.Search)

	// ADMIN
	admin := r.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))

	admin.GET("/dashboard", h.AdminDashboard)
	admin.GET("/product/delete/:id", h.AdminDeleteProduct)

	// SUPPLIER
	supplier := r.Group("/supplier")
	supplier.Use(middleware.RequireRole(models.RoleSupplier))

	supplier.GET("/dashboard", h.SupplierDashboard)
	supplier.GET("/product/add", h.ShowAddProduct)
	supplier.POST("/product/add", h.AddProduct)
	supplier.GET("/product/edit/:id", h.ShowEditProduct)
	supplier.POST("/product/edit/:id", h.EditProduct)
	supplier.GET("/product/delete/:id", h.DeleteProduct)

	// BUYER
	buyer := r.Group("/buyer")
	buyer.Use(middleware.RequireRole(models.RoleBuyer))

	buyer.GET("/dashboard", h.BuyerDashboard)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
