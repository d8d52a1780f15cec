package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var db *gorm.DB

// InitDB opens the database connection. Driver is "sqlite3" or "postgres".
func InitDB(driver, dsn string) error {
	var err error
	db, err = gorm.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return nil
}

// GetDB returns the database instance.
func GetDB() *gorm.DB {
	return db
}

// CloseDB closes the database connection.
func CloseDB() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
