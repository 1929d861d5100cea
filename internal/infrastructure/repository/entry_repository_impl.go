package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/entry"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/repository"
	"github.com/YoshitsuguKoike/smartfarm/internal/infra/persistence/file"
)

// EntriesDir is the directory under the home directory holding entry files
const EntriesDir = "entries"

const entryExt = ".yaml"

// EntryRepositoryImpl stores one YAML file per entry.
// Layout: <baseDir>/entries/<id>.yaml
type EntryRepositoryImpl struct {
	fs  afero.Fs
	dir string
}

// NewEntryRepositoryImpl creates a file-based entry repository
func NewEntryRepositoryImpl(fs afero.Fs, baseDir string) repository.EntryRepository {
	return &EntryRepositoryImpl{
		fs:  fs,
		dir: filepath.Join(baseDir, EntriesDir),
	}
}

// Save writes the entry file atomically. API keys are stored, so the file is private.
func (r *EntryRepositoryImpl) Save(ctx context.Context, cfg *entry.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal entry %s: %w", cfg.ID, err)
	}
	if err := file.WriteFileAtomic(r.fs, r.path(cfg.ID), data, 0o600); err != nil {
		return fmt.Errorf("failed to save entry %s: %w", cfg.ID, err)
	}
	return nil
}

// FindByID loads one entry file
func (r *EntryRepositoryImpl) FindByID(ctx context.Context, id string) (*entry.Config, error) {
	if id == "" || strings.ContainsAny(id, `/\`) {
		return nil, fmt.Errorf("%w: %q", entry.ErrEntryNotFound, id)
	}
	data, ok, err := file.ReadFileIfExists(r.fs, r.path(id))
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %s: %w", id, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", entry.ErrEntryNotFound, id)
	}
	return decodeEntry(data, id)
}

// FindAll loads every entry file, sorted by ID
func (r *EntryRepositoryImpl) FindAll(ctx context.Context) ([]*entry.Config, error) {
	infos, err := afero.ReadDir(r.fs, r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*entry.Config{}, nil
		}
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	entries := make([]*entry.Config, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || !strings.HasSuffix(name, entryExt) || strings.HasPrefix(name, ".") {
			continue
		}
		id := strings.TrimSuffix(name, entryExt)
		data, err := afero.ReadFile(r.fs, filepath.Join(r.dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read entry %s: %w", id, err)
		}
		cfg, err := decodeEntry(data, id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, cfg)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries, nil
}

// Delete removes the entry file
func (r *EntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	if err := r.fs.Remove(r.path(id)); err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", id, err)
	}
	return nil
}

func (r *EntryRepositoryImpl) path(id string) string {
	return filepath.Join(r.dir, id+entryExt)
}

func decodeEntry(data []byte, id string) (*entry.Config, error) {
	var cfg entry.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse entry %s: %w", id, err)
	}
	if cfg.ID == "" {
		cfg.ID = id
	}
	if cfg.Version == 0 {
		cfg.Version = entry.ConfigVersion
	}
	return &cfg, nil
}
