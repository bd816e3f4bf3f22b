package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/resume-ats/internal/models"
)

// InitDatabase opens the hosted Postgres table store and, when enabled,
// migrates the users table under its configured name.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	if !cfg.Database.Enabled() {
		return nil, fmt.Errorf("database is not configured")
	}

	logLevel := logger.Silent
	if cfg.IsDevelopment() && cfg.Log.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.Table(cfg.Database.UsersTable).AutoMigrate(&models.User{}); err != nil {
			return nil, fmt.Errorf("failed to migrate table %s: %w", cfg.Database.UsersTable, err)
		}
	}

	return db, nil
}
