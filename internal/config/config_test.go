package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty style name", func(c *Config) { c.Styles.Heading2 = "" }},
		{"zero nested indent", func(c *Config) { c.NestedIndent = 0 }},
		{"multi-character rule glyph", func(c *Config) { c.RuleGlyph = "--" }},
		{"zero rule width", func(c *Config) { c.RuleWidth = 0 }},
		{"zero rule min length", func(c *Config) { c.RuleMinLength = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	orig := ConfigPath
	ConfigPath = func() string { return filepath.Join(dir, "config.json") }
	defer func() { ConfigPath = orig }()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Styles.Title != DefaultConfig().Styles.Title {
		t.Errorf("expected default config, got %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	orig := ConfigPath
	ConfigPath = func() string { return filepath.Join(dir, "config.json") }
	defer func() { ConfigPath = orig }()

	partial := `{"nested_indent": 4, "styles": {"title": "DocTitle"}}`
	if err := os.WriteFile(ConfigPath(), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NestedIndent != 4 {
		t.Errorf("NestedIndent = %d, want 4", cfg.NestedIndent)
	}
	if cfg.Styles.Title != "DocTitle" {
		t.Errorf("Title style = %q, want DocTitle", cfg.Styles.Title)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Styles.Quote != "Quote" {
		t.Errorf("Quote style = %q, want default Quote", cfg.Styles.Quote)
	}
	if cfg.RuleWidth != 50 {
		t.Errorf("RuleWidth = %d, want default 50", cfg.RuleWidth)
	}
}

func TestSaveRoundtrip(t *testing.T) {
	dir := t.TempDir()
	orig := ConfigPath
	ConfigPath = func() string { return filepath.Join(dir, "sub", "config.json") }
	defer func() { ConfigPath = orig }()

	cfg := DefaultConfig()
	cfg.RuleWidth = 30
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.RuleWidth != 30 {
		t.Errorf("RuleWidth = %d, want 30", loaded.RuleWidth)
	}
}

func TestLoadInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	orig := ConfigPath
	ConfigPath = func() string { return filepath.Join(dir, "config.json") }
	defer func() { ConfigPath = orig }()

	bad := `{"rule_width": -1}`
	if err := os.WriteFile(ConfigPath(), []byte(bad), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestPartialStyleOverrideKeepsSiblings(t *testing.T) {
	// json.Unmarshal into a populated struct replaces only the fields
	// present in the document, so a partial styles object must keep the
	// untouched names. This pins that behavior for the nested struct.
	dir := t.TempDir()
	orig := ConfigPath
	ConfigPath = func() string { return filepath.Join(dir, "config.json") }
	defer func() { ConfigPath = orig }()

	partial := `{"styles": {"list_bullet": "BulletA"}}`
	if err := os.WriteFile(ConfigPath(), []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Styles.ListBullet != "BulletA" {
		t.Errorf("ListBullet = %q, want BulletA", cfg.Styles.ListBullet)
	}
	if cfg.Styles.ListNumber != "ListNumber" {
		t.Errorf("ListNumber = %q, want default preserved", cfg.Styles.ListNumber)
	}
}
