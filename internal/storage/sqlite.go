// Package storage persists the combined car table to a SQLite database file.
package storage

import (
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps the SQLite connection holding the all_cars table.
type Store struct {
	conn *sqlx.DB
}

// Open opens the database file, creating it if absent, and applies the
// declarative schema. The caller owns the returned Store and must Close it.
func Open(dbfile string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", dbfile)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", dbfile)
	}

	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "applying schema to %s", dbfile)
	}

	return &Store{conn: conn}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.conn.Close()
}
