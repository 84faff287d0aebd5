package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Theme != "default" {
		t.Errorf("theme = %q, want default", cfg.Theme)
	}
	if cfg.MinSpacing != 18 || cfg.LevelHeight != 5 || cfg.Margin != 10 {
		t.Errorf("layout defaults = %v/%v/%v", cfg.MinSpacing, cfg.LevelHeight, cfg.Margin)
	}
	if cfg.MinScale != 0.2 || cfg.MaxScale != 3.0 {
		t.Errorf("scale defaults = %v/%v", cfg.MinScale, cfg.MaxScale)
	}
	if cfg.AnimationMs != 600 || cfg.StepDelayMs != 120 {
		t.Errorf("timing defaults = %v/%v", cfg.AnimationMs, cfg.StepDelayMs)
	}
	if cfg.MaxResults != 50 {
		t.Errorf("max_results = %d, want 50", cfg.MaxResults)
	}
}

func TestLoadFromFilePartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `theme = "tokyo-night"
min_spacing = 24.0
repo_url = "https://github.com/user/notes/blob/main"

[settings]
editor = "vim"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Theme != "tokyo-night" {
		t.Errorf("theme = %q, want tokyo-night", cfg.Theme)
	}
	if cfg.MinSpacing != 24 {
		t.Errorf("min_spacing = %v, want 24", cfg.MinSpacing)
	}
	if cfg.RepoURL != "https://github.com/user/notes/blob/main" {
		t.Errorf("repo_url = %q", cfg.RepoURL)
	}
	// Unset fields are backfilled with defaults.
	if cfg.LevelHeight != 5 || cfg.MaxResults != 50 {
		t.Errorf("defaults not applied: %v/%v", cfg.LevelHeight, cfg.MaxResults)
	}
	if cfg.Settings["editor"] != "vim" {
		t.Errorf("settings = %v", cfg.Settings)
	}
}

func TestLoadFromFileInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestMaxScaleMustExceedMinScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "min_scale = 1.5\nmax_scale = 1.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxScale <= cfg.MinScale {
		t.Errorf("max_scale %v not corrected above min_scale %v", cfg.MaxScale, cfg.MinScale)
	}
}

func TestSessionSettingsOverride(t *testing.T) {
	cfg, _ := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	cfg.Settings["theme"] = "default"

	if got := cfg.Get("theme"); got != "default" {
		t.Errorf("Get = %q, want persisted value", got)
	}
	cfg.Set("theme", "tokyo-night")
	if got := cfg.Get("theme"); got != "tokyo-night" {
		t.Errorf("Get = %q, want session override", got)
	}
	if got := cfg.Get("missing"); got != "" {
		t.Errorf("Get missing = %q, want empty", got)
	}
}
