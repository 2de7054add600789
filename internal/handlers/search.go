package handlers

import (
	"net/http"

	"b2b-marketplace/internal/catalog"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Search(c *gin.Context) {
	keyword := c.Query("keyword")
	category := c.Query("category")
	sort := c.Query("sort")

	products, err := catalog.Search(h.DB, keyword, category, sort)
	if err != nil {
		c.String(http.StatusInternalServerError, "Search failed")
		return
	}

	categories, err := catalog.Categories(h.DB)
	if err != nil {
		c.String(http.StatusInternalServerError, "Search failed")
		return
	}

	render(c, http.StatusOK, "search.html", gin.H{
		"products":         products,
		"categories":       categories,
		"keyword":          keyword,
		"selectedCategory": category,
		"sortBy":           sort,
	})
}
