package config

import (
	"fmt"
	"log/slog"

	"restaurant-orders/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB connects to the SQLite file at cfg.Path and migrates the four
// relations. Dishes and orders are stored without database foreign keys so
// that deleting a referenced row leaves the reference dangling.
func OpenDB(cfg DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:                                   logger.Default.LogMode(cfg.LogLevel),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	// one writer, and an in-memory database lives on a single connection
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Dish{},
		&models.Customer{},
		&models.Order{},
	); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	slog.Info("database connected and migrated", "path", cfg.Path)
	return db, nil
}

// CloseDB releases the connection pool behind db
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
