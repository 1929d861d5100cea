package garden

import (
	"encoding/json"
	"fmt"
)

// SchemaVersion is the version written into every snapshot
const SchemaVersion = 1

// StorageKeyPrefix matches the storage key used by the original integration
const StorageKeyPrefix = "smart_home_farming.garden_data"

// StorageKey returns the snapshot key for one configured entry
func StorageKey(entryID string) string {
	if entryID == "" {
		return StorageKeyPrefix
	}
	return StorageKeyPrefix + "." + entryID
}

// Snapshot is the versioned envelope persisted for a document
type Snapshot struct {
	Version int       `json:"version"`
	Key     string    `json:"key"`
	Data    *Document `json:"data"`
}

// EncodeSnapshot serializes doc under key
func EncodeSnapshot(key string, doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(Snapshot{Version: SchemaVersion, Key: key, Data: doc}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	return data, nil
}

// DecodeSnapshot parses a persisted snapshot.
// An envelope without data yields an empty document.
func DecodeSnapshot(data []byte) (*Document, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if snap.Version > SchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snap.Version)
	}
	doc := snap.Data
	if doc == nil {
		doc = NewDocument()
	}
	doc.FillMissing()
	return doc, nil
}
