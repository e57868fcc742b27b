// Package localstore provides the durable local storage backing the record
// store: a single SQLite file holding independently keyed JSON blobs, one per
// domain collection, plus a cache of the last known sales snapshot.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Blob keys. Each key maps to one JSON-serialized collection.
const (
	KeyOperatori    = "operatori"
	KeyAgenti       = "agenti"
	KeyMetodi       = "metodi_pagamento"
	KeyConfigRemota = "config_remota"
	KeyVendite      = "vendite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS blobs (
	chiave TEXT PRIMARY KEY,
	valore BLOB NOT NULL
);`

// Store wraps the SQLite handle. WAL mode allows concurrent reads during
// writes; the pool is capped at a single connection because SQLite supports
// one writer at a time.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path. Idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping local store: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifies the handle is still usable (health checks).
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Get unmarshals the blob stored under key into dest. Returns false when the
// key has never been written, leaving dest untouched.
func (s *Store) Get(ctx context.Context, key string, dest any) (bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `SELECT valore FROM blobs WHERE chiave = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read blob %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode blob %q: %w", key, err)
	}
	return true, nil
}

// Put JSON-serializes v and writes it under key, replacing any prior value.
func (s *Store) Put(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode blob %q: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO blobs (chiave, valore) VALUES (?, ?)
		ON CONFLICT (chiave) DO UPDATE SET valore = excluded.valore
	`, key, raw)
	if err != nil {
		return fmt.Errorf("write blob %q: %w", key, err)
	}
	return nil
}

// Delete removes the blob stored under key, if present.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE chiave = ?`, key)
	if err != nil {
		return fmt.Errorf("delete blob %q: %w", key, err)
	}
	return nil
}
