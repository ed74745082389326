package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Tour{}, "Categories", &TourCategory{}); err != nil {
		return fmt.Errorf("setup tour_categories: %w", err)
	}

	if err := db.AutoMigrate(
		&Admin{},
		&Category{},
		&Tour{},
		&TourCategory{},
		&Announcement{},
		&Booking{},
		&Review{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// The store enforces the one-active-announcement-per-type rule itself
	stmt := `CREATE UNIQUE INDEX IF NOT EXISTS idx_announcements_one_active_per_type
		ON announcements (type) WHERE is_active`
	if err := db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("create active announcement index: %w", err)
	}

	return nil
}
