// Package db manages the default SQLite database connection and schema.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// GetDB returns the database connection, initializing if needed
func GetDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	dbPath, err := GetDBPath()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	opened, err := OpenAt(dbPath)
	if err != nil {
		return nil, err
	}

	db = opened
	return db, nil
}

// OpenAt opens a SQLite database at path, enables foreign keys, and applies
// the schema. Used by GetDB and by integration tests.
func OpenAt(path string) (*sql.DB, error) {
	opened, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := opened.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := opened.Exec(GetSchemaSQL()); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return opened, nil
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// GetDBPath returns the path to the database file
func GetDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".courtstat", "courtstat.db"), nil
}
