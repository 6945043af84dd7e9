package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/adrg/xdg"
)

// StyleNames maps block kinds to the document library's paragraph style
// identifiers. The defaults match the styles docbridge writes; they are
// configurable because documents produced elsewhere may use different
// names for the same visual roles.
type StyleNames struct {
	Title       string `json:"title"`
	Heading1    string `json:"heading1"`
	Heading2    string `json:"heading2"`
	Heading3    string `json:"heading3"`
	ListBullet  string `json:"list_bullet"`
	ListBullet2 string `json:"list_bullet2"` // nested bullet, one level
	ListNumber  string `json:"list_number"`
	Quote       string `json:"quote"`
	Normal      string `json:"normal"`
}

// Config holds the visual-style-dependent conversion constants: style
// names per block kind, the indent threshold marking a nested bullet,
// and how horizontal rules are drawn and recognized.
type Config struct {
	Styles StyleNames `json:"styles"`

	// NestedIndent is the leading-whitespace column count at which a
	// Markdown bullet is treated as nested.
	NestedIndent int `json:"nested_indent"`

	// RuleGlyph and RuleWidth control the paragraph written for a
	// horizontal rule: RuleGlyph repeated RuleWidth times.
	RuleGlyph string `json:"rule_glyph"`
	RuleWidth int    `json:"rule_width"`

	// RuleMinLength is the minimum run of rule characters for a
	// document paragraph to be read back as a horizontal rule.
	RuleMinLength int `json:"rule_min_length"`
}

// DefaultConfig returns the built-in conversion settings.
func DefaultConfig() *Config {
	return &Config{
		Styles: StyleNames{
			Title:       "Title",
			Heading1:    "Heading1",
			Heading2:    "Heading2",
			Heading3:    "Heading3",
			ListBullet:  "ListBullet",
			ListBullet2: "ListBullet2",
			ListNumber:  "ListNumber",
			Quote:       "Quote",
			Normal:      "Normal",
		},
		NestedIndent:  2,
		RuleGlyph:     "─",
		RuleWidth:     50,
		RuleMinLength: 10,
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config on all platforms for consistency.
// Can be overridden for testing.
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "docbridge", "config.json")
	}
	return filepath.Join(home, ".config", "docbridge", "config.json")
}

// Load reads configuration from the config path, filling every omitted
// field from the defaults. A missing file yields the defaults.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes configuration to the config path.
func (c *Config) Save() error {
	configPath := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	names := []struct {
		field, value string
	}{
		{"title", c.Styles.Title},
		{"heading1", c.Styles.Heading1},
		{"heading2", c.Styles.Heading2},
		{"heading3", c.Styles.Heading3},
		{"list_bullet", c.Styles.ListBullet},
		{"list_bullet2", c.Styles.ListBullet2},
		{"list_number", c.Styles.ListNumber},
		{"quote", c.Styles.Quote},
		{"normal", c.Styles.Normal},
	}
	for _, n := range names {
		if n.value == "" {
			return fmt.Errorf("style name %s cannot be empty", n.field)
		}
	}

	if c.NestedIndent <= 0 {
		return fmt.Errorf("nested_indent must be positive")
	}
	if utf8.RuneCountInString(c.RuleGlyph) != 1 {
		return fmt.Errorf("rule_glyph must be a single character")
	}
	if c.RuleWidth <= 0 {
		return fmt.Errorf("rule_width must be positive")
	}
	if c.RuleMinLength <= 0 {
		return fmt.Errorf("rule_min_length must be positive")
	}
	return nil
}
