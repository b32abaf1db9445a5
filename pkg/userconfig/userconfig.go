// Package userconfig provides user-level configuration for toggle.
// This configuration is stored in ~/.config/toggle/config.yaml and contains
// the defaults the demo starts with.
package userconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/natefinch/atomic"

	"github.com/docker/toggle/pkg/paths"
)

// Settings represents global user settings
type Settings struct {
	// ClickLimit is how many changes the linked toggles accept before
	// ignoring further toggles. Zero means the built-in default.
	ClickLimit int `yaml:"click_limit,omitempty"`
	// UncontrolledInitialOn starts the standalone toggle switched on
	UncontrolledInitialOn bool `yaml:"uncontrolled_initial_on,omitempty"`
}

// CurrentVersion is the current version of the user config format
const CurrentVersion = "v1"

// Setting keys accepted by Set.
const (
	KeyClickLimit            = "click_limit"
	KeyUncontrolledInitialOn = "uncontrolled_initial_on"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyClickLimit, KeyUncontrolledInitialOn}

// Config represents the user-level toggle configuration
type Config struct {
	// Version is the config format version
	Version string `yaml:"version,omitempty"`
	// Settings contains global user settings
	Settings *Settings `yaml:"settings,omitempty"`
}

// Path returns the path to the config file
func Path() string {
	return filepath.Join(paths.GetConfigDir(), "config.yaml")
}

// Load loads the user configuration from the config file.
// A missing file yields an empty configuration.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(configPath string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.GetSettings().validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// Save saves the configuration to the config file
func (c *Config) Save() error {
	return c.saveTo(Path())
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Ensure version is always set to current version when saving
	c.Version = CurrentVersion

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}

// GetSettings returns the global settings, or an empty Settings if not set
func (c *Config) GetSettings() *Settings {
	if c.Settings == nil {
		return &Settings{}
	}
	return c.Settings
}

// Set updates a single setting from its textual form.
func (c *Config) Set(key, value string) error {
	if c.Settings == nil {
		c.Settings = &Settings{}
	}

	switch key {
	case KeyClickLimit:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		if n < 0 {
			return fmt.Errorf("invalid %s %d: must not be negative", key, n)
		}
		c.Settings.ClickLimit = n
	case KeyUncontrolledInitialOn:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		c.Settings.UncontrolledInitialOn = b
	default:
		return fmt.Errorf("unknown setting %q (valid: %v)", key, Keys)
	}
	return nil
}

func (s *Settings) validate() error {
	if s.ClickLimit < 0 {
		return errors.New("click_limit must not be negative")
	}
	return nil
}

// IsKey reports whether key is a known setting.
func IsKey(key string) bool {
	return slices.Contains(Keys, key)
}
