package file_test

import (
	"testing"

	"github.com/YoshitsuguKoike/smartfarm/internal/infra/persistence/file"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		data    []byte
		setupFS func(fs afero.Fs) error
		wantErr bool
	}{
		{
			name: "Write new file in missing directory",
			path: ".storage/smart_home_farming.garden_data",
			data: []byte(`{"version":1}`),
		},
		{
			name: "Overwrite existing file",
			path: "entries/01H.yaml",
			data: []byte("id: 01H\n"),
			setupFS: func(fs afero.Fs) error {
				return afero.WriteFile(fs, "entries/01H.yaml", []byte("old"), 0o644)
			},
		},
		{
			name: "Empty data",
			path: "empty.json",
			data: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tt.setupFS != nil {
				require.NoError(t, tt.setupFS(fs))
			}

			err := file.WriteFileAtomic(fs, tt.path, tt.data, 0o600)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			content, err := afero.ReadFile(fs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, content)

			info, err := fs.Stat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, "-rw-------", info.Mode().Perm().String())
		})
	}
}

func TestWriteFileAtomic_NoTempFilesLeft(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, file.WriteFileAtomic(fs, "dir/a.json", []byte("1"), 0o644))
	require.NoError(t, file.WriteFileAtomic(fs, "dir/a.json", []byte("2"), 0o644))

	entries, err := afero.ReadDir(fs, "dir")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.json", entries[0].Name())
}

func TestWriteFileAtomic_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	assert.Error(t, file.WriteFileAtomic(fs, "dir/a.json", []byte("1"), 0o644))
}

func TestReadFileIfExists(t *testing.T) {
	fs := afero.NewMemMapFs()

	data, ok, err := file.ReadFileIfExists(fs, "missing.json")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)

	require.NoError(t, afero.WriteFile(fs, "present.json", []byte("x"), 0o644))
	data, ok, err = file.ReadFileIfExists(fs, "present.json")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("x"), data)
}
