// Package config handles loading the todoapp.toml configuration file
// and its defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultTheme = "classic"
	DefaultDebug = false
)

// EnvDataDir overrides the configured data directory when set.
const EnvDataDir = "TODOAPP_DATA_DIR"

// Config holds the full configuration for todoapp.
type Config struct {
	// DataDir is where the persisted todo blob lives.
	DataDir string `toml:"data_dir"`

	// Theme selects the rendering theme (classic, neon, mono).
	Theme string `toml:"theme"`

	// Debug switches the logger to verbose console output.
	Debug bool `toml:"debug"`
}

// Load reads ~/.config/todoapp/config.toml, applying defaults for any
// unset field. A missing config file yields the defaults. The data dir
// can always be overridden through TODOAPP_DATA_DIR.
func Load() (*Config, error) {
	cfg := &Config{Theme: DefaultTheme, Debug: DefaultDebug}

	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	if err == nil {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if env := strings.TrimSpace(os.Getenv(EnvDataDir)); env != "" {
		cfg.DataDir = env
	}
	if cfg.DataDir == "" {
		cfg.DataDir, err = defaultDataDir()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return cfg, nil
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "todoapp", "config.toml"), nil
}

func defaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".todoapp"), nil
}
