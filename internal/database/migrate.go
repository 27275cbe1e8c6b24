package database

import (
	"kindkart/internal/repository"

	"gorm.io/gorm"
)

// Migrate creates or updates the users, donations and notifications tables.
// Called on API startup, by the seeder and by the test suites.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(repository.Models()...)
}
