// Package config handles global sift configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global sift configuration.
type Config struct {
	// Output is the default output format: "table" or "json".
	Output string `toml:"output"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors
	// ("#RRGGBB").
	Accent string `toml:"accent"`
}

// DefaultPath returns the default config file location,
// e.g. ~/.config/sift/config.toml.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "sift", "config.toml"), nil
}

// Load reads the config at path. A missing file yields the zero config,
// not an error; explicit paths that fail to parse do error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
