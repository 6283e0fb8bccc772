package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"zidesign/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB opens the shared connection pool. Repositories borrow a connection
// per statement through db.WithContext and hand it back when the statement ends.
func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})

	db, err := gorm.Open(postgres.Open(cfg.DSN()), Options(gormLogger))
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	return db, nil
}

// Options is the gorm configuration every dialect is opened with, tests included.
// TranslateError turns unique violations into gorm.ErrDuplicatedKey.
func Options(l logger.Interface) *gorm.Config {
	return &gorm.Config{
		Logger:         l,
		TranslateError: true,
	}
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
