package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/assignment-tracker/internal/models"
)

// Migrate creates any missing tables. There is no schema versioning.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("running database migrations")
	err := db.AutoMigrate(
		&models.User{},
		&models.Assignment{},
		&models.AssignmentMessage{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("database migrations completed")
	return nil
}

// SeedUsers returns the accounts inserted into an empty users table.
func SeedUsers() []models.User {
	adminPhone := "123"
	userPhone := "456"
	return []models.User{
		{Email: "admin@test.com", Password: "123", Phone: &adminPhone},
		{Email: "user@test.com", Password: "123", Phone: &userPhone},
	}
}

// Seed inserts the seed users only when the users table is empty.
// It reports whether anything was inserted.
func Seed(db *gorm.DB, log *zap.Logger) (bool, error) {
	seeded := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if count > 0 {
			return nil
		}

		users := SeedUsers()
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		log.Info("seeded initial users", zap.Int("count", len(SeedUsers())))
	} else {
		log.Debug("users table not empty, skipping seed")
	}
	return seeded, nil
}
