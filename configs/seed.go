package configs

import (
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/albertkemp/home-cooking/entity"
)

// SeedAdmin makes sure one admin account exists. Credentials come from
// ADMIN_EMAIL / ADMIN_PASSWORD, with dev defaults.
func SeedAdmin(db *gorm.DB) error {
	email := getEnv("ADMIN_EMAIL", "admin@home-cooking.local")

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin1234"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     "Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}
