package config

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tourbooking/models"
)

// SeedAdmin creates the bootstrap back-office account once
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	email := strings.ToLower(cfg.AdminEmail)
	if email == "" || cfg.AdminPassword == "" {
		log.Println("Skip seeding admin: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	log.Println("Seeding admin:", email)
	return db.Create(&models.Admin{Email: email, PasswordHash: string(hash)}).Error
}
