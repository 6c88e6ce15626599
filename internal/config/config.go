package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// ConfigPathEnv overrides the config file location (for testing).
	ConfigPathEnv = "TUICALC_CONFIG"
	// DebugLogEnv names a file to receive debug logs; overrides debug_log.
	DebugLogEnv = "TUICALC_DEBUG_LOG"
	// DefaultConfigPath is relative to os.UserConfigDir.
	DefaultConfigPath = "tuicalc/config.toml"
)

// Theme holds the colors used by the ui. Values are lipgloss color strings
// ("#1e1e2d", "205").
type Theme struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Operator   string `toml:"operator"`
	Pressed    string `toml:"pressed"`
	Equals     string `toml:"equals"`
	Border     string `toml:"border"`
}

// Config is the optional user configuration.
type Config struct {
	Placeholder string `toml:"placeholder"`
	FlashMS     int    `toml:"flash_ms"`
	DebugLog    string `toml:"debug_log"`
	Theme       Theme  `toml:"theme"`

	// Path is the file the config was read from; empty when defaults were used.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Placeholder: "0",
		FlashMS:     120,
		Theme: Theme{
			Background: "#141414",
			Foreground: "#dcdcdc",
			Operator:   "#1e1e2d",
			Pressed:    "#f31d58",
			Equals:     "#787878",
			Border:     "#1e1e1e",
		},
	}
}

// Flash is how long a pressed button stays highlighted.
func (c Config) Flash() time.Duration {
	return time.Duration(c.FlashMS) * time.Millisecond
}

// Path returns the config file location: $TUICALC_CONFIG if set, otherwise
// DefaultConfigPath under the user config dir.
func Path() (string, error) {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultConfigPath), nil
}

// Load reads the config file from Path. A missing file yields Default().
func Load() (Config, error) {
	cfg := Default()
	// Without a config dir only the defaults and env overrides apply.
	if p, err := Path(); err == nil {
		if cfg, err = LoadFile(p); err != nil {
			return Default(), err
		}
	}
	if v := os.Getenv(DebugLogEnv); v != "" {
		cfg.DebugLog = v
	}
	return cfg, nil
}

// LoadFile reads path on top of Default(). Keys missing from the file keep
// their default values. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	cfg.Path = path
	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.FlashMS < 0 {
		return fmt.Errorf("flash_ms must be >= 0, got %d", c.FlashMS)
	}
	return nil
}
