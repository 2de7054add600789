package database

import (
	"path/filepath"
	"testing"

	"b2b-marketplace/internal/config"
	"b2b-marketplace/internal/hash"
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

// The bootstrap seeds a fixed, well-known admin credential. That is a
// documented weakness of the application, pinned here so a silent
// change shows up.
func TestOpen_SeedsDefaultAdmin(t *testing.T) {
	cfg := &config.Config{
		SQLitePath:    filepath.Join(t.TempDir(), "test.db"),
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}

	db, err := Open(cfg)
	require.NoError(t, err)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.NotEqual(t, "admin123", admin.PasswordHash)
	require.True(t, hash.Check(admin.PasswordHash, "admin123"))

	// a second startup against the same file must not duplicate it
	db2, err := Open(cfg)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db2.Model(&models.User{}).
		Where("username = ?", "admin").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteAccount_CascadesToProducts(t *testing.T) {
	db := initTestDB(t)

	s1 := models.User{Username: "s1", PasswordHash: "x", Role: models.RoleSupplier}
	s2 := models.User{Username: "s2", PasswordHash: "x", Role: models.RoleSupplier}
	require.NoError(t, db.Create(&s1).Error)
	require.NoError(t, db.Create(&s2).Error)

	for _, p := range []models.Product{
		{Name: "A", Description: "a", Price: 1, Category: "c", MinOrderQty: 1, SupplierID: s1.ID},
		{Name: "B", Description: "b", Price: 2, Category: "c", MinOrderQty: 1, SupplierID: s1.ID},
		{Name: "C", Description: "c", Price: 3, Category: "c", MinOrderQty: 1, SupplierID: s1.ID},
		{Name: "D", Description: "d", Price: 4, Category: "c", MinOrderQty: 1, SupplierID: s2.ID},
	} {
		require.NoError(t, db.Create(&p).Error)
	}

	require.NoError(t, DeleteAccount(db, s1.ID))

	var user models.User
	err := db.Unscoped().Where("username = ?", "s1").First(&user).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var owned int64
	require.NoError(t, db.Unscoped().Model(&models.Product{}).
		Where("supplier_id = ?", s1.ID).Count(&owned).Error)
	require.EqualValues(t, 0, owned)

	// the other supplier's product is untouched
	var rest int64
	require.NoError(t, db.Model(&models.Product{}).
		Where("supplier_id = ?", s2.ID).Count(&rest).Error)
	require.EqualValues(t, 1, rest)
}
