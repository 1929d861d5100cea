package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/entry"
	"github.com/YoshitsuguKoike/smartfarm/internal/infrastructure/repository"
)

func bedNames(t *testing.T, data map[string]interface{}) []string {
	t.Helper()
	beds := data["beds"].([]interface{})
	names := make([]string, len(beds))
	for i, b := range beds {
		names[i] = b.(map[string]interface{})["name"].(string)
	}
	return names
}

func TestSetupCommand_FromFlags(t *testing.T) {
	env := newTestEnv()

	result, err := env.executeJSON(t, "setup",
		"--api-key", "test-key",
		"--location", "home",
		"--bed", "raised_bed:4x2:direct",
		"--bed", "raised_bed:3x1:indirect:cold",
		"--bed", "pot:1x1:direct")
	require.NoError(t, err)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, []string{"Raised bed 1", "Raised bed 2", "Pot 1"}, bedNames(t, data))
	assert.NotContains(t, data, "api_key")

	saved, err := repository.NewEntryRepositoryImpl(env.fs, testHome).FindByID(context.Background(), data["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "test-key", saved.APIKey)
	assert.True(t, saved.Beds[1].ColdFrame)
	assert.Equal(t, bed.SunlightIndirect, saved.Beds[1].Sunlight)
}

func TestSetupCommand_InvalidLocation(t *testing.T) {
	env := newTestEnv()

	result, err := env.executeJSON(t, "setup", "--api-key", "k", "--location", "moon")
	require.Error(t, err)
	fields := result["fields"].(map[string]interface{})
	assert.Equal(t, "invalid_location", fields["location"])

	all, err := repository.NewEntryRepositoryImpl(env.fs, testHome).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSetupCommand_InvalidBedFlag(t *testing.T) {
	env := newTestEnv()

	_, err := env.execute(t, nil, "setup", "--api-key", "k", "--location", "home", "--bed", "raised_bed:wide:direct")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --bed")
}

func TestSetupCommand_ZonesFromSettings(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, afero.WriteFile(env.fs, filepath.Join(testHome, "setting.yaml"), []byte("zones: [allotment]\n"), 0o644))

	_, err := env.execute(t, nil, "setup", "--api-key", "k", "--location", "home")
	require.Error(t, err)

	_, err = env.execute(t, nil, "setup", "--api-key", "k", "--location", "allotment")
	require.NoError(t, err)
}

func TestSetupCommand_Interactive(t *testing.T) {
	env := newTestEnv()
	prompter := &scriptedPrompter{t: t, answers: []interface{}{
		// API key, location "home", add a bed
		"secret", 0, true,
		// raised bed 4x2, no cold frame, direct sunlight, add another
		0, "4", "2", false, 0, true,
		// pot 1x1, cold frame, indirect sunlight, done
		2, "1", "1", true, 1, false,
	}}

	out, err := env.execute(t, prompter, "--output", "json", "setup")
	require.NoError(t, err, out)
	assert.Empty(t, prompter.answers)
	assert.Equal(t, "API key", prompter.labels[0])

	all, err := repository.NewEntryRepositoryImpl(env.fs, testHome).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "secret", all[0].APIKey)
	require.Len(t, all[0].Beds, 2)
	assert.Equal(t, "Raised bed 1", all[0].Beds[0].Name)
	assert.Equal(t, "Pot 1", all[0].Beds[1].Name)
	assert.True(t, all[0].Beds[1].ColdFrame)
}

func TestSetupCommand_InteractiveNoBeds(t *testing.T) {
	env := newTestEnv()
	prompter := &scriptedPrompter{t: t, answers: []interface{}{"secret", 0, false}}

	_, err := env.execute(t, prompter, "setup")
	require.NoError(t, err)

	all, err := repository.NewEntryRepositoryImpl(env.fs, testHome).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Beds)
}

func TestReconfigureCommand_ContinuesNumbering(t *testing.T) {
	env := newTestEnv()
	id := env.setupEntry(t, "--bed", "raised_bed:4x2:direct")

	result, err := env.executeJSON(t, "reconfigure", "--bed", "raised_bed:2x2:direct", "--bed", "deep_bed:2x1:indirect")
	require.NoError(t, err)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, id, data["id"])
	assert.Equal(t, []string{"Raised bed 1", "Raised bed 2", "Deep bed 1"}, bedNames(t, data))
}

func TestReconfigureCommand_Interactive(t *testing.T) {
	env := newTestEnv()
	env.setupEntry(t)
	prompter := &scriptedPrompter{t: t, answers: []interface{}{
		true, 1, "3", "1", false, 0, false,
	}}

	_, err := env.execute(t, prompter, "reconfigure")
	require.NoError(t, err)

	all, err := repository.NewEntryRepositoryImpl(env.fs, testHome).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all[0].Beds, 1)
	assert.Equal(t, "Deep bed 1", all[0].Beds[0].Name)
}

func TestEntriesCommand(t *testing.T) {
	env := newTestEnv()

	result, err := env.executeJSON(t, "entries")
	require.NoError(t, err)
	assert.Empty(t, result["data"].(map[string]interface{})["entries"])

	first := env.setupEntry(t)
	second := env.setupEntry(t)

	result, err = env.executeJSON(t, "entries")
	require.NoError(t, err)
	entries := result["data"].(map[string]interface{})["entries"].([]interface{})
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0].(map[string]interface{})["id"])
	assert.Equal(t, second, entries[1].(map[string]interface{})["id"])
}

func TestRemoveCommand(t *testing.T) {
	env := newTestEnv()
	id := env.setupEntry(t)

	_, err := env.execute(t, nil, "remove", id)
	require.NoError(t, err)

	all, err := repository.NewEntryRepositoryImpl(env.fs, testHome).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = env.execute(t, nil, "remove", id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entry.ErrEntryNotFound))
}
