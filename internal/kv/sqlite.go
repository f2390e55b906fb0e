package kv

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// SQLite is the durable Store implementation: a single kv table in a local
// SQLite file. One row per key, values stored as JSON text.
//
// Only NewSQLite returns errors. Once open, Get/Set/Remove follow the Store
// contract: runtime failures are logged at Warn and otherwise invisible, so
// a locked or full database never takes the application down.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and ensures the
// kv table exists.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("kv.NewSQLite: open: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("kv.NewSQLite: create table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Get implements Store.
func (s *SQLite) Get(key string, dest any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			slog.Warn("kv: read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.Warn("kv: discarding corrupt value", "key", key, "error", err)
		return false
	}
	return true
}

// Set implements Store.
func (s *SQLite) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("kv: value not serializable, write skipped", "key", key, "error", err)
		return
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		slog.Warn("kv: write failed", "key", key, "error", err)
	}
}

// Remove implements Store.
func (s *SQLite) Remove(key string) {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		slog.Warn("kv: delete failed", "key", key, "error", err)
	}
}
