package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleSupplier UserRole = "supplier"
	RoleBuyer    UserRole = "buyer"
)

type User struct {
	gorm.Model
	Username     string   `gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string   `gorm:"size:200;not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`

	// products listed by this account (suppliers only);
	// removed together with the account, see database.DeleteAccount
	Products []Product `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE"`
}
