package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name          string  `gorm:"size:200;not null"`
	Description   string  `gorm:"type:text;not null"`
	Price         float64 `gorm:"not null"` // positive
	Category      string  `gorm:"size:100;not null"`
	MinOrderQty   int     `gorm:"not null"` // positive
	ImageFilename string  `gorm:"size:200"` // optional, not validated

	SupplierID uint `gorm:"not null;index"`
	Supplier   User
}
