// Package sqlite stores garden snapshots in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
)

// SnapshotGateway implements output.SnapshotGateway on a snapshots table
type SnapshotGateway struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path and applies the schema
func Open(ctx context.Context, path string) (*SnapshotGateway, error) {
	// The driver opens path through the C library, so the directory has to
	// exist on the OS filesystem rather than an afero one
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps :memory: databases alive across calls
	db.SetMaxOpenConns(1)

	gw, err := NewSnapshotGateway(ctx, db, path)
	if err != nil {
		db.Close()
		return nil, err
	}
	return gw, nil
}

// NewSnapshotGateway wraps an open database and applies the schema
func NewSnapshotGateway(ctx context.Context, db *sql.DB, path string) (*SnapshotGateway, error) {
	if err := NewMigrator(db).Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return &SnapshotGateway{db: db, path: path}, nil
}

// Load returns the payload stored for key
func (g *SnapshotGateway) Load(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := g.db.QueryRowContext(ctx, "SELECT payload FROM snapshots WHERE storage_key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, output.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	return payload, nil
}

// Save upserts the payload for key
func (g *SnapshotGateway) Save(ctx context.Context, key string, data []byte) error {
	_, err := g.db.ExecContext(ctx, `
		INSERT INTO snapshots (storage_key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(storage_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, key, data)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Location returns the database path and key
func (g *SnapshotGateway) Location(key string) string {
	return fmt.Sprintf("sqlite://%s#%s", g.path, key)
}

// Close closes the database
func (g *SnapshotGateway) Close() error {
	return g.db.Close()
}

var _ output.SnapshotGateway = (*SnapshotGateway)(nil)
