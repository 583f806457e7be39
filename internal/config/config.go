// Package config loads the demo application's optional JSON configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"tuikit/internal/jsonutil"
	"tuikit/internal/widget"
)

// EnvPath overrides the default config file location when set.
const EnvPath = "SAMPLETUI_CONFIG"

// Config holds the demo's startup settings. All fields have working
// defaults, so the file may specify any subset.
type Config struct {
	CheckKind     string `json:"check_kind"`
	RadioKind     string `json:"radio_kind"`
	RadioColor    string `json:"radio_color"`
	ConsoleHeight int    `json:"console_height"`
	Theme         Theme  `json:"theme"`
}

// Theme carries accent color overrides as terminal color strings
// (ANSI indexes or hex).
type Theme struct {
	Accent string `json:"accent"`
	Border string `json:"border"`
}

func Default() Config {
	return Config{
		CheckKind:     "large",
		RadioKind:     "large",
		RadioColor:    "blue",
		ConsoleHeight: 7,
	}
}

// CheckboxKind resolves the configured checkbox glyph set.
func (c Config) CheckboxKind() widget.CheckKind {
	k, _ := widget.CheckKindNamed(c.CheckKind)
	return k
}

// RadioButtonKind resolves the configured radio glyph set.
func (c Config) RadioButtonKind() widget.RadioKind {
	k, _ := widget.RadioKindNamed(c.RadioKind)
	return k
}

func (c Config) validate() error {
	if _, ok := widget.CheckKindNamed(c.CheckKind); !ok {
		return fmt.Errorf("unknown check_kind %q", c.CheckKind)
	}
	if _, ok := widget.RadioKindNamed(c.RadioKind); !ok {
		return fmt.Errorf("unknown radio_kind %q", c.RadioKind)
	}
	if c.ConsoleHeight < 3 {
		return fmt.Errorf("console_height %d too small", c.ConsoleHeight)
	}
	return nil
}

// Path returns the config file location: $SAMPLETUI_CONFIG if set,
// otherwise ~/.config/sampletui/config.json.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sampletui", "config.json")
}

// Load reads the config file at path. A missing file yields the defaults;
// a present but malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := jsonutil.UnmarshalWithContext(data, &cfg, "parse config"); err != nil {
		return Default(), err
	}
	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
