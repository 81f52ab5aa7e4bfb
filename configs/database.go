package configs

import (
	"fmt"

	"registry.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// ConnectDB opens the Postgres connection from environment settings and
// stores the shared handle.
func ConnectDB() error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_NAME", "registrylink"),
		GetEnv("DB_SSLMODE", "disable"),
		GetEnv("DB_TIMEZONE", "UTC"),
	)

	gormLogLevel := gormlogger.Warn
	if GetEnv("APP_ENV", "development") != "production" {
		gormLogLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormLogLevel),
		TranslateError: true,
	})
	if err != nil {
		configslog.Log.Error("Database connection failed", zap.Error(err))
		return err
	}

	db = conn
	configslog.SLog.Infof("Database connection established (%s@%s)",
		GetEnv("DB_NAME", "registrylink"), GetEnv("DB_HOST", "localhost"))
	return nil
}

// GetDB returns the shared database handle set up by ConnectDB.
func GetDB() *gorm.DB {
	return db
}
