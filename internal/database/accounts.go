package database

import (
	"b2b-marketplace/internal/models"

	"gorm.io/gorm"
)

// DeleteAccount removes an account together with every product it owns,
// in a single transaction. Deleting a product never touches the account;
// the cascade only runs in this direction.
func DeleteAccount(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("supplier_id = ?", id).
			Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.User{}, id).Error
	})
}
