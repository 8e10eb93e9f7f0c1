package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // Ensure sqlite3 driver is registered
)

// NewSQLXSQLiteDB opens (and creates if necessary) the single-file sqlite
// database at the given path. WAL mode and a busy timeout let the storage
// engine serialize concurrent writers.
func NewSQLXSQLiteDB(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path)

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database at %s: %w", path, err)
	}

	// sqlite permits a single writer; a second connection would only
	// queue behind the busy timeout.
	db.SetMaxOpenConns(1)

	return db, nil
}
