package output

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned by Load when nothing has been persisted yet
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotGateway persists one opaque document per storage key.
// Implementations exist for the local filesystem, S3 and SQLite.
type SnapshotGateway interface {
	// Load returns the last saved snapshot or ErrSnapshotNotFound
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the snapshot stored under key
	Save(ctx context.Context, key string, data []byte) error

	// Location describes where key is stored (path, s3 URI, table row)
	Location(key string) string
}
