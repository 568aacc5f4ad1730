package entity

import (
	"gorm.io/gorm"
)

// Migrate creates or updates every table the portal uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Document{},
		&Assignment{},
		&Deadline{},
		&Image{},
		&Link{},
		&Note{},
		&Todo{},
		&ActivityLog{},
		&Comment{},
	)
}
