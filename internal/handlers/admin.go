package handlers

import (
	"net/http"
	"strconv"

	"b2b-marketplace/internal/flash"
	"b2b-marketplace/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminDashboard(c *gin.Context) {
	var users []models.User
	if err := h.DB.Order("username asc").Find(&users).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to load users")
		return
	}

	var products []models.Product
	if err := h.DB.Preload("Supplier").Find(&products).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to load products")
		return
	}

	var totalSuppliers, totalBuyers int64
	h.DB.Model(&models.User{}).Where("role = ?", models.RoleSupplier).Count(&totalSuppliers)
	h.DB.Model(&models.User{}).Where("role = ?", models.RoleBuyer).Count(&totalBuyers)

	render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"users":          users,
		"products":       products,
		"totalUsers":     len(users),
		"totalProducts":  len(products),
		"totalSuppliers": totalSuppliers,
		"totalBuyers":    totalBuyers,
	})
}

// AdminDeleteProduct removes any product regardless of owner; the
// ownership rule only binds suppliers.
func (h *Handler) AdminDeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		c.String(http.StatusNotFound, "Product not found")
		return
	}

	if err := h.DB.Unscoped().Delete(&product).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to delete product")
		return
	}

	flash.Add(c, flash.Success, "Product deleted successfully.")
	c.Redirect(http.StatusFound, "/admin/dashboard")
}
