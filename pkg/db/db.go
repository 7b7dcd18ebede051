package db

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the frame store in memory for the lifetime of one run.
const MemoryDSN = ":memory:"

// DB is an in-memory SQLite frame store used for grouped aggregations.
type DB struct {
	*sql.DB

	mu     sync.RWMutex
	tables map[string][]string
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin the pool to one.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec(pragmas); err != nil {
		_ = sqlDB.Close() // Close error less important than PRAGMA error
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	return sqlDB, nil
}

// Open creates an empty in-memory frame store.
func Open() (*DB, error) {
	sqlDB, err := openDB(MemoryDSN)
	if err != nil {
		return nil, err
	}

	db := &DB{
		DB:     sqlDB,
		tables: make(map[string][]string),
	}

	if err := db.InitSchema(); err != nil {
		_ = db.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// InitSchema creates the catalogue of loaded datasets
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}
