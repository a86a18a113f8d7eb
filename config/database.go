package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the local database. The app is a single-device
// service, so sqlite on disk is the default; setting DATABASE_URL
// switches to Postgres for hosted deployments.
func ConnectDatabase() error {
	var err error

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
		log.Println("Connected to Postgres database")
		return nil
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "laundry-dash.db"
	}

	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open sqlite database at %s: %w", path, err)
	}

	log.Printf("Opened sqlite database at %s", path)
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
