package repository

import (
	"context"

	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/entry"
)

// EntryRepository defines the interface for configured entry persistence
type EntryRepository interface {
	// Save creates or replaces an entry
	Save(ctx context.Context, cfg *entry.Config) error

	// FindByID returns the entry or entry.ErrEntryNotFound
	FindByID(ctx context.Context, id string) (*entry.Config, error)

	// FindAll returns every entry ordered by ID (creation order for ULIDs)
	FindAll(ctx context.Context) ([]*entry.Config, error)

	// Delete removes an entry. Its garden snapshot is left in place.
	Delete(ctx context.Context, id string) error
}
