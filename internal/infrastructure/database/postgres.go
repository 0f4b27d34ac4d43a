package database

import (
	"fmt"
	"time"

	"hospital-management/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// DSN builds the libpq connection string for cfg.
func DSN(cfg config.DBConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)
}

// NewGormLogger routes gorm's SQL log through the application logger.
// Statements are logged in development, only slow queries and errors otherwise.
func NewGormLogger(log *logrus.Logger, dev bool) logger.Interface {
	level := logger.Warn
	if dev {
		level = logger.Info
	}

	return logger.New(log, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

func NewPostgresConnection(cfg config.DBConfig, dev bool, log *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), &gorm.Config{
		Logger:                                   NewGormLogger(log, dev),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.WithFields(logrus.Fields{
		"host":     cfg.Host,
		"database": cfg.Name,
	}).Info("Connected to PostgreSQL")

	return db, nil
}
