package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
	"github.com/YoshitsuguKoike/smartfarm/internal/infra/persistence/file"
	"github.com/spf13/afero"
)

// StorageDir is the directory under the home directory holding snapshots
const StorageDir = ".storage"

// FileSnapshotGateway implements SnapshotGateway on a filesystem.
// Directory structure: <baseDir>/.storage/<key>
type FileSnapshotGateway struct {
	fs      afero.Fs
	baseDir string
}

// NewFileSnapshotGateway creates a filesystem-backed snapshot gateway
func NewFileSnapshotGateway(fs afero.Fs, baseDir string) *FileSnapshotGateway {
	return &FileSnapshotGateway{
		fs:      fs,
		baseDir: baseDir,
	}
}

// Load reads the snapshot file for key
func (g *FileSnapshotGateway) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, ok, err := file.ReadFileIfExists(g.fs, g.Location(key))
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	if !ok {
		return nil, output.ErrSnapshotNotFound
	}
	return data, nil
}

// Save replaces the snapshot file for key atomically
func (g *FileSnapshotGateway) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := file.WriteFileAtomic(g.fs, g.Location(key), data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Location returns the snapshot path for key
func (g *FileSnapshotGateway) Location(key string) string {
	return filepath.Join(g.baseDir, StorageDir, key)
}
