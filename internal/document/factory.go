package document

import (
	"database/sql"
	"fmt"
	"io"
)

// Backend kinds accepted by New.
const (
	KindJSON     = "json"
	KindPostgres = "postgres"
	KindSQLite   = "sqlite"
	KindMemory   = "memory"
)

// Options carries the settings each backend kind needs.
type Options struct {
	// Dir is the data directory for the json backend.
	Dir string
	// DB is an open, migrated PostgreSQL pool for the postgres backend.
	DB *sql.DB
	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string
}

// New returns the backend named by kind. An empty kind selects json.
// The returned closer releases resources the backend opened itself and is
// never nil.
func New(kind string, opts Options) (Backend, io.Closer, error) {
	switch kind {
	case "", KindJSON:
		if opts.Dir == "" {
			return nil, nil, fmt.Errorf("json backend: data directory is required")
		}
		return NewFileBackend(opts.Dir), nopCloser{}, nil
	case KindPostgres:
		if opts.DB == nil {
			return nil, nil, fmt.Errorf("postgres backend: database handle is required")
		}
		return NewPostgresBackend(opts.DB), nopCloser{}, nil
	case KindSQLite:
		if opts.SQLitePath == "" {
			return nil, nil, fmt.Errorf("sqlite backend: path is required")
		}
		b, err := OpenSQLite(opts.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	case KindMemory:
		return NewMemoryBackend(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", kind)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
