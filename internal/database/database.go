package database

import (
	"fmt"

	"github.com/ahamedusman/portfolio-core/internal/config"
	"github.com/ahamedusman/portfolio-core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and ensures the collection tables exist.
// The connection is established once at startup and shared read-only across
// concurrent requests.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.DSN,
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// Migrate runs GORM auto-migration for the nine content collections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ProfileModel{},
		&models.HeaderModel{},
		&models.FooterModel{},
		&models.SkillModel{},
		&models.ExperienceModel{},
		&models.ServiceModel{},
		&models.ProjectModel{},
		&models.TestimonialModel{},
		&models.BlogModel{},
	)
}
