package database

import (
	"log"
	"time"

	"b2b-marketplace/internal/config"
	"b2b-marketplace/internal/hash"
	"b2b-marketplace/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the configured store, runs migrations and seeds the
// bootstrap admin account. With no DB_DSN configured it falls back to a
// local single-file sqlite database.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(dialector(cfg), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
	); err != nil {
		return nil, err
	}

	ensureAdmin(db, cfg.AdminUsername, cfg.AdminPassword)

	return db, nil
}

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDSN != "" {
		return postgres.Open(cfg.DBDSN)
	}
	return sqlite.Open(cfg.SQLitePath)
}

// the admin account can only come from config, never from registration
func ensureAdmin(db *gorm.DB, username, password string) {
	var count int64
	if err := db.Model(&models.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		// admin already exists, nothing to do
		return
	}

	digest, err := hash.Password(password)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: digest,
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s (password: %s)", username, password)
}
