package database

import (
	"fmt"

	"hospital-management/internal/domain/entity"

	"gorm.io/gorm"
)

// Migrate creates the users, appointments and prescriptions tables when they
// are absent. Existing tables only gain missing columns and indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Appointment{},
		&entity.Prescription{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
