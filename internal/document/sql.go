// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

// sqlDialect holds the statements that differ between database engines.
type sqlDialect struct {
	ensure string
	load   string
	save   string
}

var postgresDialect = sqlDialect{
	ensure: `INSERT INTO documents (name, body) VALUES ($1, $2::jsonb)
		ON CONFLICT (name) DO NOTHING`,
	load: `SELECT body::text FROM documents WHERE name = $1`,
	save: `INSERT INTO documents (name, body, updated_at) VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`,
}

var sqliteDialect = sqlDialect{
	ensure: `INSERT OR IGNORE INTO documents (name, body) VALUES (?, ?)`,
	load:   `SELECT body FROM documents WHERE name = ?`,
	save: `INSERT INTO documents (name, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
}

const sqliteSchema = `CREATE TABLE IF NOT EXISTS documents (
	name       TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLBackend stores documents as rows of a single documents table.
// Postgres keeps the body as jsonb; SQLite as text.
type SQLBackend struct {
	db      *sql.DB
	dialect sqlDialect
	owned   bool
}

// NewPostgresBackend wraps an open PostgreSQL pool. The documents table
// must already exist (see database.Migrate). The pool stays owned by the
// caller.
func NewPostgresBackend(db *sql.DB) *SQLBackend {
	return &SQLBackend{db: db, dialect: postgresDialect}
}

// OpenSQLite opens (creating if needed) the SQLite database at path and
// makes sure the documents table exists.
func OpenSQLite(path string) (*SQLBackend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// A single connection keeps writes serialized and lets ":memory:"
	// databases survive between statements.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	slog.Info("sqlite document store opened", "path", path)
	return &SQLBackend{db: db, dialect: sqliteDialect, owned: true}, nil
}

// Ensure inserts the seed row unless a row with that name already exists.
func (b *SQLBackend) Ensure(ctx context.Context, name string, seed []byte) (bool, error) {
	res, err := b.db.ExecContext(ctx, b.dialect.ensure, name, string(seed))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Load reads the document body, or returns ErrMissing when no row matches.
func (b *SQLBackend) Load(ctx context.Context, name string) ([]byte, error) {
	var body string
	err := b.db.QueryRowContext(ctx, b.dialect.load, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMissing
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

// Save upserts the document row.
func (b *SQLBackend) Save(ctx context.Context, name string, data []byte) error {
	_, err := b.db.ExecContext(ctx, b.dialect.save, name, string(data))
	return err
}

// Close releases the database handle when the backend opened it itself.
func (b *SQLBackend) Close() error {
	if !b.owned {
		return nil
	}
	return b.db.Close()
}
