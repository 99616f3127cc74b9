package configs

import (
	"log"
	"strings"

	"github.com/NebiyouChanie/sapore/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB) error {
	email := strings.ToLower(getEnv("ADMIN_EMAIL", ""))
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&entity.Admin{Email: email, Password: string(hash)}).Error
}

// SeedMenuSettings guarantees the single settings row handlers rely on.
func SeedMenuSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.MenuSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&entity.MenuSettings{ShowPrice: true, ShowDescription: true}).Error
}
