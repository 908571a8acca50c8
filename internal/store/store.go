// Package store persists edge lists in a SQLite file so graphs can be
// imported once and recomputed many times. It is an input/output adapter:
// component computation itself never touches it.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite connection holding one graph.
type Store struct {
	conn *sql.DB
	Path string
}

// Open opens (or creates) a SQLite graph database with WAL mode and foreign
// keys enabled.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return &Store{conn: conn, Path: path}, nil
}

// Init creates the schema if it does not exist yet.
func (s *Store) Init() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS vertices (
			id TEXT PRIMARY KEY
		);
		CREATE TABLE IF NOT EXISTS edges (
			source TEXT NOT NULL REFERENCES vertices(id),
			target TEXT NOT NULL REFERENCES vertices(id)
		);
	`)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}
