package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, domain.DefaultMaxResults, cfg.MaxResults)
	assert.True(t, cfg.IncludeBody)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Config{
		NotesDir:      "/home/me/notes",
		DataDir:       "/home/me/.zettelview/data",
		MaxResults:    25,
		CaseSensitive: true,
		IncludeBody:   false,
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_results = not-a-number"), 0600))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg, "broken files fall back to defaults")
}

func TestLoad_ZeroMaxResultsFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_results = 0"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxResults, cfg.MaxResults)
}
