package catalog

import (
	"b2b-marketplace/internal/models"

	"gorm.io/gorm"
)

const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
)

// Search lists products matching the given filters. Filters compose
// conjunctively; an empty keyword or category is a no-op. The keyword
// matches as a substring of name OR description; case sensitivity
// follows the store's LIKE collation. Any sort value other than
// price_low/price_high leaves the storage order, which is not
// guaranteed.
func Search(db *gorm.DB, keyword, category, sort string) ([]models.Product, error) {
	q := db.Model(&models.Product{})

	if keyword != "" {
		pattern := "%" + keyword + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	switch sort {
	case SortPriceLow:
		q = q.Order("price asc")
	case SortPriceHigh:
		q = q.Order("price desc")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Categories returns the distinct category values across all products,
// for the search filter selector. Order is not guaranteed.
func Categories(db *gorm.DB) ([]string, error) {
	var categories []string
	if err := db.Model(&models.Product{}).
		Distinct().
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
