package database

import (
	"fmt"
	"strconv"

	"pms_server/config"
	"pms_server/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and returns the handle. The handle is
// passed down to routers and handlers; nothing holds a package-level copy.
func Connect() (*gorm.DB, error) {
	port, err := strconv.ParseUint(config.ConfigOr("DB_PORT", "5432"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database port: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	return db, nil
}

// Migrate auto-migrates every model and seeds the baseline account.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.UserProperty{},
		&model.RoomType{},
		&model.Room{},
		&model.IndividualProfile{},
		&model.CompanyProfile{},
		&model.Tax{},
		&model.MealPlan{},
		&model.PropertyFacility{},
		&model.Reservation{},
		&model.License{},
		&model.Payment{},
	); err != nil {
		return err
	}

	return SeedData(db)
}
