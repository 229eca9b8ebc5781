package config

import (
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the booking database. Postgres is used when DB_URL is
// set; otherwise an embedded sqlite file, so a single-shop deployment
// needs no infrastructure.
func ConnectDB() (*gorm.DB, error) {
	if dsn := os.Getenv("DB_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "data/barberbook.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
