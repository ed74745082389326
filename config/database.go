package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func gormConfig(env string) *gorm.Config {
	level := gormlogger.Warn
	if env == "dev" {
		level = gormlogger.Info
	}
	return &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
		// unique violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	}
}

// postgresDSN injects DATABASE_AUTH_TOKEN as the password when the URL carries none
func postgresDSN(rawURL, authToken string) (string, error) {
	if authToken == "" {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return "", fmt.Errorf("DATABASE_URL must be a URL when DATABASE_AUTH_TOKEN is set")
	}
	if _, has := u.User.Password(); has {
		return rawURL, nil
	}
	username := ""
	if u.User != nil {
		username = u.User.Username()
	}
	u.User = url.UserPassword(username, authToken)
	return u.String(), nil
}

func openDialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "sqlite":
		path := cfg.DatabaseURL
		if path == "" {
			path = "tourbooking.db"
		}
		return sqlite.Open(path), nil
	default:
		dsn, err := postgresDSN(cfg.DatabaseURL, cfg.DatabaseAuthToken)
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	}
}

func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, gormConfig(cfg.Env))
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == "sqlite" {
		// one writer keeps sqlite from returning SQLITE_BUSY under concurrent requests
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	log.Printf("Connected to %s database", cfg.DBDriver)
	return db, nil
}
