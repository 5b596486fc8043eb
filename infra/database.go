// Package infra wires the application to its Postgres database.
package infra

import (
	"errors"
	"time"

	notificationmodel "github.com/hamzaimran/bitpro/infra/repository/notification"
	transactionmodel "github.com/hamzaimran/bitpro/infra/repository/transaction"
	usermodel "github.com/hamzaimran/bitpro/infra/repository/user"
	"github.com/hamzaimran/bitpro/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens a pooled GORM connection. Query logging is enabled
// in development only.
func NewDBConnection(cfg config.DB, appEnv string) (*gorm.DB, error) {
	if cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return db, nil
}

// Migrate creates or updates the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&usermodel.User{},
		&transactionmodel.Transaction{},
		&notificationmodel.Notification{},
	)
}
