package repository

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/entry"
)

func newTestEntry(t *testing.T) *entry.Config {
	t.Helper()
	return entry.New("api-key", "Europe/Berlin", []bed.Definition{
		{Name: "Raised bed 1", Type: bed.TypeRaisedBed, Length: 2, Width: 1, ColdFrame: true, Sunlight: bed.SunlightDirect},
	})
}

func TestEntryRepository_SaveFind(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := NewEntryRepositoryImpl(fs, "/home/farm")
	ctx := context.Background()

	cfg := newTestEntry(t)
	require.NoError(t, repo.Save(ctx, cfg))

	exists, err := afero.Exists(fs, "/home/farm/entries/"+cfg.ID+".yaml")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := repo.FindByID(ctx, cfg.ID)
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, got.ID)
	assert.Equal(t, cfg.APIKey, got.APIKey)
	assert.Equal(t, cfg.Beds, got.Beds)
	assert.True(t, cfg.CreatedAt.Equal(got.CreatedAt))
}

func TestEntryRepository_FindByID_NotFound(t *testing.T) {
	repo := NewEntryRepositoryImpl(afero.NewMemMapFs(), "/home/farm")

	for _, id := range []string{"missing", "", "../escape"} {
		_, err := repo.FindByID(context.Background(), id)
		assert.ErrorIs(t, err, entry.ErrEntryNotFound, id)
	}
}

func TestEntryRepository_FindAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := NewEntryRepositoryImpl(fs, "/home/farm")
	ctx := context.Background()

	empty, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := newTestEntry(t)
	second := newTestEntry(t)
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, afero.WriteFile(fs, "/home/farm/entries/notes.txt", []byte("ignored"), 0o644))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID)
}

func TestEntryRepository_SaveRejectsInvalid(t *testing.T) {
	repo := NewEntryRepositoryImpl(afero.NewMemMapFs(), "/home/farm")
	cfg := newTestEntry(t)
	cfg.APIKey = ""

	assert.ErrorIs(t, repo.Save(context.Background(), cfg), entry.ErrMissingAPIKey)
}

func TestEntryRepository_Delete(t *testing.T) {
	repo := NewEntryRepositoryImpl(afero.NewMemMapFs(), "/home/farm")
	ctx := context.Background()
	cfg := newTestEntry(t)
	require.NoError(t, repo.Save(ctx, cfg))

	require.NoError(t, repo.Delete(ctx, cfg.ID))
	_, err := repo.FindByID(ctx, cfg.ID)
	assert.ErrorIs(t, err, entry.ErrEntryNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, cfg.ID), entry.ErrEntryNotFound)
}

func TestEntryRepository_CorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/farm/entries/bad.yaml", []byte("beds: [unclosed"), 0o644))
	repo := NewEntryRepositoryImpl(fs, "/home/farm")

	_, err := repo.FindByID(context.Background(), "bad")
	assert.Error(t, err)
	_, err = repo.FindAll(context.Background())
	assert.Error(t, err)
}
