package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// DefaultDatabasePath is used when DB_PATH is not set. The tracker runs
// against a local embedded database; there is no database server.
const DefaultDatabasePath = "education-tracker.db"

func init() {
	// Load env from .env
	godotenv.Load()
}

func DatabasePath() string {
	path := strings.TrimSpace(os.Getenv("DB_PATH"))
	if path == "" {
		return DefaultDatabasePath
	}
	return path
}

// SeedOnEmpty reports whether an empty store should be loaded with the
// example dataset at open. Defaults to true; set SEED_ON_EMPTY=0 to disable.
func SeedOnEmpty() bool {
	v := strings.TrimSpace(os.Getenv("SEED_ON_EMPTY"))
	return v != "0" && !strings.EqualFold(v, "false")
}

// OpenDatabase opens the SQLite file at path (DB_PATH / default when blank)
// and returns an explicit handle. Callers own the handle; there is no
// package-level singleton.
func OpenDatabase(path string) (*gorm.DB, error) {
	if path == "" {
		path = DatabasePath()
	}
	db, err := gorm.Open(sqlite.Open(path), initConfig())
	if err != nil {
		return nil, err
	}
	if sqlDB, derr := db.DB(); derr == nil && sqlDB != nil {
		// SQLite serializes writers; a single connection avoids
		// SQLITE_BUSY during multi-table transactions.
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// InitConfig Initialize Config
func initConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         initLog(),
		NamingStrategy: initNamingStrategy(),
	}
}

// InitLog Connection Log Configuration
func initLog() logger.Interface {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Output to standard output
		logger.Config{
			Colorful:      false,
			LogLevel:      logger.Error, // Adjust log level as needed
			SlowThreshold: time.Second,
		},
	)
	return newLogger
}

// InitNamingStrategy Init NamingStrategy
func initNamingStrategy() *schema.NamingStrategy {
	return &schema.NamingStrategy{
		SingularTable: false,
		TablePrefix:   "",
	}
}
