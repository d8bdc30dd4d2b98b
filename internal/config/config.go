// Package config loads solver defaults from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-adjustable solver defaults. Zero values are
// filled in by Default before use.
type Config struct {
	// MaxDepth is the default reorientation budget for searches.
	MaxDepth int `yaml:"max_depth"`

	// CheapMoves lists reorientations whose cost is counted as a
	// single turn, separated by spaces (e.g. "x y2").
	CheapMoves string `yaml:"cheap_moves"`

	// StickerNotation switches solution output from O-notation to
	// sticker notation.
	StickerNotation bool `yaml:"sticker_notation"`

	// ShowAll prints every solution found instead of only the
	// cheapest ones.
	ShowAll bool `yaml:"show_all"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{MaxDepth: 5}
}

// DefaultPath returns the default config file path in the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".rocket", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error;
// the defaults are returned instead.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories
// as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
