// Package config handles configuration loading and validation for citeview.
package config

import (
	"fmt"
	"os"

	"github.com/colonyops/citeview/internal/core/citation"
	"github.com/colonyops/citeview/internal/core/styles"
	"gopkg.in/yaml.v3"
)

// UnverifiedMode selects how a citation without a verification result is
// displayed. In every mode such a citation is inert.
type UnverifiedMode string

const (
	// UnverifiedPlain shows the citation as its literal text, untagged.
	UnverifiedPlain UnverifiedMode = "plain"
	// UnverifiedFlagged shows the tag in a muted style with an "unverified" flag.
	UnverifiedFlagged UnverifiedMode = "flagged"
)

// IsValid reports whether m is a known mode.
func (m UnverifiedMode) IsValid() bool {
	return m == UnverifiedPlain || m == UnverifiedFlagged
}

// DefaultDetailWidth is the detail pane width in cells.
const DefaultDetailWidth = 48

// Config holds the application configuration.
type Config struct {
	Theme       string               `yaml:"theme"`
	Unverified  UnverifiedMode       `yaml:"unverified"`
	CopyCommand string               `yaml:"copy_command"` // receives the citation text on stdin
	Detail      DetailConfig         `yaml:"detail"`
	Watch       bool                 `yaml:"watch"`
	Classifier  *citation.Classifier `yaml:"classifier,omitempty"` // nil uses the built-in tables
}

// DetailConfig configures the citation detail pane.
type DetailConfig struct {
	Width int `yaml:"width"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:      styles.DefaultTheme,
		Unverified: UnverifiedPlain,
		Detail: DetailConfig{
			Width: DefaultDetailWidth,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Unverified == "" {
		c.Unverified = defaults.Unverified
	}
	if c.Detail.Width == 0 {
		c.Detail.Width = defaults.Detail.Width
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if !c.Unverified.IsValid() {
		return fmt.Errorf("unverified must be %q or %q, got %q", UnverifiedPlain, UnverifiedFlagged, c.Unverified)
	}

	if c.Detail.Width < 1 {
		return fmt.Errorf("detail.width must be at least 1")
	}

	if err := c.validateClassifier(); err != nil {
		return fmt.Errorf("classifier: %w", err)
	}

	return nil
}

// Palette returns the palette of the configured theme.
func (c *Config) Palette() styles.Palette {
	p, ok := styles.GetPalette(c.Theme)
	if !ok {
		p, _ = styles.GetPalette(styles.DefaultTheme)
	}
	return p
}

// CitationClassifier returns the configured classifier, or the built-in
// tables when no override is set.
func (c *Config) CitationClassifier() citation.Classifier {
	if c.Classifier == nil {
		return citation.DefaultClassifier()
	}
	return *c.Classifier
}
