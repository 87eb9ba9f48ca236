// Package file provides the TOML-backed application configuration.
// Configuration is stored in a single file within the zettelview
// config directory, ~/.zettelview/config.toml by default.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
)

// Config holds the user-adjustable settings.
type Config struct {
	// NotesDir is the markdown directory the importer reads.
	NotesDir string `toml:"notes_dir"`

	// DataDir is where the SQLite note database lives.
	// Empty means ~/.zettelview/data.
	DataDir string `toml:"data_dir"`

	// MaxResults is the default result cap for searches.
	MaxResults int `toml:"max_results"`

	// CaseSensitive disables case folding for searches.
	CaseSensitive bool `toml:"case_sensitive"`

	// IncludeBody controls whether search results carry note bodies.
	IncludeBody bool `toml:"include_body"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		MaxResults:  domain.DefaultMaxResults,
		IncludeBody: true,
	}
}

// DefaultPath returns ~/.zettelview/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".zettelview", "config.toml"), nil
}

// Load reads the configuration from path. A missing file is not an
// error; defaults are returned so first runs need no setup.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = domain.DefaultMaxResults
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if
// needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
