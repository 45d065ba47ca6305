package database

import (
	"log"

	"pms_server/config"
	"pms_server/constants"
	"pms_server/helper"
	"pms_server/model"

	"gorm.io/gorm"
)

// SeedData creates the initial super-admin account if no users exist yet.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := config.ConfigOr("SEED_ADMIN_PASSWORD", "changeme-now")
	hash, err := helper.HashPassword(password)
	if err != nil {
		return err
	}

	admin := model.User{
		Name:        "administrator",
		Email:       config.ConfigOr("SEED_ADMIN_EMAIL", "admin@example.com"),
		PhoneNumber: "0000000000",
		Password:    hash,
		Role:        constants.ROLE_SUPER_ADMIN,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("seeded super admin account %s", admin.Email)
	return nil
}
