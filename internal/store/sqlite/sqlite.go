// Package sqlite implements the media index and label corpus on a single
// SQLite database file.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"gallerysearch/internal/store"
)

//go:embed schema.sql
var schema string

// Store is a SQLite-backed implementation of store.Store.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at the given path and initializes
// the schema. Use ":memory:" for an ephemeral store in tests.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Verify interface compliance
var _ store.Store = (*Store)(nil)
