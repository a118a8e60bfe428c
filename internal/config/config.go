// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/wdpick/internal/ranges"
	"github.com/javiermolinar/wdpick/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Picker PickerConfig `toml:"picker"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// PickerConfig holds date picker settings.
type PickerConfig struct {
	Ranges []string `toml:"ranges"` // predefined range labels, in display order
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "frappe",
		},
		Picker: PickerConfig{
			Ranges: ranges.Labels(),
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "wdpick", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WDPICK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("WDPICK_RANGES"); v != "" {
		cfg.Picker.Ranges = splitList(v)
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("invalid theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if len(c.Picker.Ranges) == 0 {
		return errors.New("at least one predefined range must be configured")
	}
	seen := make(map[string]bool, len(c.Picker.Ranges))
	for _, label := range c.Picker.Ranges {
		if seen[label] {
			return fmt.Errorf("duplicate predefined range: %s", label)
		}
		seen[label] = true
	}
	if _, err := c.PredefinedRanges(nil); err != nil {
		return err
	}
	return nil
}

// PredefinedRanges returns the configured catalog entries anchored to clock.
func (c *Config) PredefinedRanges(clock ranges.Clock) ([]ranges.PredefinedRange, error) {
	return ranges.Select(ranges.Catalog(clock), c.Picker.Ranges)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
