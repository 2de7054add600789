package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"b2b-marketplace/internal/flash"
	"b2b-marketplace/internal/middleware"
	"b2b-marketplace/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SupplierDashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var products []models.Product
	if err := h.DB.Where("supplier_id = ?", user.ID).Find(&products).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to load products")
		return
	}

	render(c, http.StatusOK, "supplier_dashboard.html", gin.H{
		"products": products,
	})
}

func (h *Handler) ShowAddProduct(c *gin.Context) {
	render(c, http.StatusOK, "product_form.html", gin.H{
		"action": "Add",
	})
}

type productForm struct {
	Name          string
	Description   string
	Price         float64
	Category      string
	MinOrderQty   int
	ImageFilename string
}

// parseProductForm validates the add/edit form. Every field except the
// image is required; price and quantity must parse as positive numbers.
func parseProductForm(c *gin.Context) (productForm, string) {
	form := productForm{
		Name:          strings.TrimSpace(c.PostForm("name")),
		Description:   strings.TrimSpace(c.PostForm("description")),
		Category:      strings.TrimSpace(c.PostForm("category")),
		ImageFilename: strings.TrimSpace(c.PostForm("image_filename")),
	}

	priceStr := strings.TrimSpace(c.PostForm("price"))
	qtyStr := strings.TrimSpace(c.PostForm("min_order_qty"))

	if form.Name == "" || form.Description == "" || priceStr == "" ||
		form.Category == "" || qtyStr == "" {
		return form, "All fields except image are required."
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	qty, qtyErr := strconv.Atoi(qtyStr)
	if err != nil || qtyErr != nil || price <= 0 || qty <= 0 {
		return form, "Invalid price or quantity value."
	}

	form.Price = price
	form.MinOrderQty = qty
	return form, ""
}

func (h *Handler) AddProduct(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	form, errMsg := parseProductForm(c)
	if errMsg != "" {
		flash.Add(c, flash.Danger, errMsg)
		c.Redirect(http.StatusFound, "/supplier/product/add")
		return
	}

	product := models.Product{
		Name:          form.Name,
		Description:   form.Description,
		Price:         form.Price,
		Category:      form.Category,
		MinOrderQty:   form.MinOrderQty,
		ImageFilename: form.ImageFilename,
		SupplierID:    user.ID,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		flash.Add(c, flash.Danger, "Failed to save product.")
		c.Redirect(http.StatusFound, "/supplier/product/add")
		return
	}

	flash.Add(c, flash.Success, "Product added successfully!")
	c.Redirect(http.StatusFound, "/supplier/dashboard")
}

// loadOwnProduct fetches a product and enforces the ownership rule: a
// supplier may only touch products it listed. An ownership mismatch is
// a redirect to the supplier's own dashboard, not a 404.
func (h *Handler) loadOwnProduct(c *gin.Context) (models.Product, bool) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Invalid product ID")
		return models.Product{}, false
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		c.String(http.StatusNotFound, "Product not found")
		return models.Product{}, false
	}

	if product.SupplierID != user.ID {
		flash.Add(c, flash.Danger, "Access denied.")
		c.Redirect(http.StatusFound, "/supplier/dashboard")
		return models.Product{}, false
	}

	return product, true
}

func (h *Handler) ShowEditProduct(c *gin.Context) {
	product, ok := h.loadOwnProduct(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "product_form.html", gin.H{
		"action":  "Edit",
		"product": product,
	})
}

func (h *Handler) EditProduct(c *gin.Context) {
	product, ok := h.loadOwnProduct(c)
	if !ok {
		return
	}

	form, errMsg := parseProductForm(c)
	if errMsg != "" {
		flash.Add(c, flash.Danger, errMsg)
		c.Redirect(http.StatusFound, "/supplier/product/edit/"+c.Param("id"))
		return
	}

	// every field is overwritten, there is no partial update
	product.Name = form.Name
	product.Description = form.Description
	product.Price = form.Price
	product.Category = form.Category
	product.MinOrderQty = form.MinOrderQty
	product.ImageFilename = form.ImageFilename

	if err := h.DB.Save(&product).Error; err != nil {
		flash.Add(c, flash.Danger, "Failed to save product.")
		c.Redirect(http.StatusFound, "/supplier/dashboard")
		return
	}

	flash.Add(c, flash.Success, "Product updated successfully!")
	c.Redirect(http.StatusFound, "/supplier/dashboard")
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	product, ok := h.loadOwnProduct(c)
	if !ok {
		return
	}

	if err := h.DB.Unscoped().Delete(&product).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to delete product")
		return
	}

	flash.Add(c, flash.Success, "Product deleted successfully.")
	c.Redirect(http.StatusFound, "/supplier/dashboard")
}
