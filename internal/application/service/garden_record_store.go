package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/garden"
	"go.uber.org/zap"
)

// GardenRecordStore keeps the garden document of one entry in memory and
// writes the full snapshot after every append.
// Records are append-only: nothing updates or deletes them.
type GardenRecordStore struct {
	mu      sync.Mutex
	gateway output.SnapshotGateway
	key     string
	doc     *garden.Document
	now     func() time.Time
	logger  *zap.Logger
}

// StoreOption configures a GardenRecordStore
type StoreOption func(*GardenRecordStore)

// WithClock overrides the timestamp source
func WithClock(now func() time.Time) StoreOption {
	return func(s *GardenRecordStore) { s.now = now }
}

// WithStoreLogger sets the logger
func WithStoreLogger(logger *zap.Logger) StoreOption {
	return func(s *GardenRecordStore) { s.logger = logger }
}

// NewGardenRecordStore creates a store persisting under key through gateway.
// Load must be called before any other operation.
func NewGardenRecordStore(gateway output.SnapshotGateway, key string, opts ...StoreOption) *GardenRecordStore {
	s := &GardenRecordStore{
		gateway: gateway,
		key:     key,
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key of the document
func (s *GardenRecordStore) Key() string {
	return s.key
}

// Load reads the last snapshot, or starts an empty document when nothing is stored.
// Calling Load again discards in-memory state and re-reads the snapshot.
func (s *GardenRecordStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.gateway.Load(ctx, s.key)
	if errors.Is(err, output.ErrSnapshotNotFound) {
		s.doc = garden.NewDocument()
		s.logger.Debug("no garden snapshot, starting empty", zap.String("location", s.gateway.Location(s.key)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", garden.ErrStorageUnavailable, err)
	}

	doc, err := garden.DecodeSnapshot(data)
	if err != nil {
		return err
	}
	s.doc = doc
	s.logger.Debug("garden snapshot loaded",
		zap.String("location", s.gateway.Location(s.key)),
		zap.Int("records", doc.Len()))
	return nil
}

// Save writes the full in-memory document, replacing the prior snapshot
func (s *GardenRecordStore) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *GardenRecordStore) saveLocked(ctx context.Context) error {
	if s.doc == nil {
		return garden.ErrNotLoaded
	}
	data, err := garden.EncodeSnapshot(s.key, s.doc)
	if err != nil {
		return fmt.Errorf("%w: %v", garden.ErrStorageWrite, err)
	}
	if err := s.gateway.Save(ctx, s.key, data); err != nil {
		return fmt.Errorf("%w: %v", garden.ErrStorageWrite, err)
	}
	return nil
}

// AddPlantingPlan appends a generated plan and persists
func (s *GardenRecordStore) AddPlantingPlan(ctx context.Context, plan map[string]interface{}) (garden.Record, error) {
	return s.add(ctx, garden.CategoryPlantingPlans, plan)
}

// AddPlantingRecord appends a planting event and persists
func (s *GardenRecordStore) AddPlantingRecord(ctx context.Context, record map[string]interface{}) (garden.Record, error) {
	return s.add(ctx, garden.CategoryPlantingRecords, record)
}

// AddHarvestRecord appends a harvest event and persists
func (s *GardenRecordStore) AddHarvestRecord(ctx context.Context, record map[string]interface{}) (garden.Record, error) {
	return s.add(ctx, garden.CategoryHarvestRecords, record)
}

// add stamps a copy of fields, appends it and saves.
// A failed save leaves the append in memory.
func (s *GardenRecordStore) add(ctx context.Context, c garden.Category, fields map[string]interface{}) (garden.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return nil, garden.ErrNotLoaded
	}
	rec, err := garden.Stamp(fields, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.doc.Append(c, rec); err != nil {
		return nil, err
	}
	if err := s.saveLocked(ctx); err != nil {
		s.logger.Error("garden snapshot not persisted after append",
			zap.String("category", c.String()),
			zap.Error(err))
		return rec, err
	}
	s.logger.Debug("record appended", zap.String("category", c.String()), zap.String("created_at", rec.CreatedAt()))
	return rec, nil
}

// Plants returns the plant sequence. Callers must not modify it.
func (s *GardenRecordStore) Plants() []garden.Record {
	return s.view(garden.CategoryPlants)
}

// PlantingPlans returns the planting-plan sequence. Callers must not modify it.
func (s *GardenRecordStore) PlantingPlans() []garden.Record {
	return s.view(garden.CategoryPlantingPlans)
}

// PlantingRecords returns the planting-record sequence. Callers must not modify it.
func (s *GardenRecordStore) PlantingRecords() []garden.Record {
	return s.view(garden.CategoryPlantingRecords)
}

// HarvestRecords returns the harvest-record sequence. Callers must not modify it.
func (s *GardenRecordStore) HarvestRecords() []garden.Record {
	return s.view(garden.CategoryHarvestRecords)
}

func (s *GardenRecordStore) view(c garden.Category) []garden.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil
	}
	seq := s.doc.Sequence(c)
	// Cap the view so an append through it reallocates instead of writing into the store
	return seq[:len(seq):len(seq)]
}
