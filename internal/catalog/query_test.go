package catalog

import (
	"testing"

	"b2b-marketplace/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	return db
}

func seedProducts(t *testing.T, db *gorm.DB) {
	t.Helper()

	supplier := models.User{Username: "acme", PasswordHash: "x", Role: models.RoleSupplier}
	require.NoError(t, db.Create(&supplier).Error)

	products := []models.Product{
		{Name: "Steel Widget", Description: "Heavy duty widget", Price: 12.50, Category: "Tools", MinOrderQty: 5, SupplierID: supplier.ID},
		{Name: "Plastic Gear", Description: "Small widget gear", Price: 3.25, Category: "Tools", MinOrderQty: 100, SupplierID: supplier.ID},
		{Name: "Copper Wire", Description: "Spool of wire", Price: 8.00, Category: "Electrical", MinOrderQty: 10, SupplierID: supplier.ID},
		{Name: "Widget Polish", Description: "Cleaning compound", Price: 20.00, Category: "Chemicals", MinOrderQty: 2, SupplierID: supplier.ID},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

func TestSearch_NoFiltersReturnsAll(t *testing.T) {
	db := initTestDB(t)
	seedProducts(t, db)

	products, err := Search(db, "", "", "")
	require.NoError(t, err)
	require.Len(t, products, 4)
}

func TestSearch_KeywordMatchesNameOrDescription(t *testing.T) {
	db := initTestDB(t)
	seedProducts(t, db)

	products, err := Search(db, "Widget", "", "")
	require.NoError(t, err)

	// "Steel Widget" and "Widget Polish" by name, "Plastic Gear" via
	// its description
	names := map[string]bool{}
	for _, p := range products {
		names[p.Name] = true
	}
	require.True(t, names["Steel Widget"])
	require.True(t, names["Widget Polish"])
	require.False(t, names["Copper Wire"])
}

func TestSearch_KeywordAndCategoryCompose(t *testing.T) {
	db := initTestDB(t)
	seedProducts(t, db)

	products, err := Search(db, "Widget", "Tools", "")
	require.NoError(t, err)

	for _, p := range products {
		require.Equal(t, "Tools", p.Category)
	}
	names := map[string]bool{}
	for _, p := range products {
		names[p.Name] = true
	}
	require.True(t, names["Steel Widget"])
	require.False(t, names["Widget Polish"]) // right keyword, wrong category
}

func TestSearch_CategoryExactMatch(t *testing.T) {
	db := initTestDB(t)
	seedProducts(t, db)

	products, err := Search(db, "", "Electrical", "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Copper Wire", products[0].Name)

	// no partial category matches
	products, err = Search(db, "", "Elec", "")
	require.NoError(t, err)
	require.Empty(t, products)
}

func TestSearch_SortByPrice(t *testing.T) {
	db := initTestDB(t)
	seedProducts(t, db)

	asc, err := Search(db, "", "", SortPriceLow)
	require.NoError(t, err)
	require.Len(t, asc, 4)
	for i := 1; i < len(asc); i++ {
		require.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc, err := Search(db, "", "", SortPriceHigh)
	require.NoError(t, err)
	require.Len(t, desc, 4)
	for i := 1; i < len(desc); i++ {
		require.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}
}

func TestSearch_UnknownSortIsAccepted(t *testing.T) {
	db := initTestDB(t)
	seedProducts(t, db)

	products, err := Search(db, "", "", "name_asc")
	require.NoError(t, err)
	require.Len(t, products, 4)
}

func TestCategories_Distinct(t *testing.T) {
	db := initTestDB(t)
	seedProducts(t, db)

	categories, err := Categories(db)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Tools", "Electrical", "Chemicals"}, categories)
}
