package handlers

import (
	"net/http"
	"strconv"

	"b2b-marketplace/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) BuyerDashboard(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Preload("Supplier").Find(&products).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to load products")
		return
	}

	render(c, http.StatusOK, "buyer_dashboard.html", gin.H{
		"products": products,
	})
}

// ViewProduct shows a single product to any authenticated role.
func (h *Handler) ViewProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	if err := h.DB.Preload("Supplier").First(&product, id).Error; err != nil {
		c.String(http.StatusNotFound, "Product not found")
		return
	}

	render(c, http.StatusOK, "product_view.html", gin.H{
		"product": product,
	})
}
