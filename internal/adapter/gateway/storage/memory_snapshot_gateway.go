package storage

import (
	"context"
	"sync"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
)

// MemorySnapshotGateway keeps snapshots in process memory.
// Nothing survives the process; it backs the "memory" storage type and tests.
type MemorySnapshotGateway struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemorySnapshotGateway creates an empty in-memory gateway
func NewMemorySnapshotGateway() *MemorySnapshotGateway {
	return &MemorySnapshotGateway{snapshots: make(map[string][]byte)}
}

// Load returns a copy of the snapshot for key
func (g *MemorySnapshotGateway) Load(ctx context.Context, key string) ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	data, ok := g.snapshots[key]
	if !ok {
		return nil, output.ErrSnapshotNotFound
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of data under key
func (g *MemorySnapshotGateway) Save(ctx context.Context, key string, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.snapshots[key] = append([]byte(nil), data...)
	return nil
}

// Location returns a memory URI for key
func (g *MemorySnapshotGateway) Location(key string) string {
	return "memory://" + key
}

var (
	_ output.SnapshotGateway = (*MemorySnapshotGateway)(nil)
	_ output.SnapshotGateway = (*FileSnapshotGateway)(nil)
	_ output.SnapshotGateway = (*S3SnapshotGateway)(nil)
)
