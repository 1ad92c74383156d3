package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.StartPage != nil || cfg.App.Seed != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[app]\nstart-page = \"skills\"\nseed = 42\ntrack-visits = false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.App.StartPage == nil || *cfg.App.StartPage != "skills" {
		t.Fatalf("unexpected start page: %v", cfg.App.StartPage)
	}
	if cfg.App.Seed == nil || *cfg.App.Seed != 42 {
		t.Fatalf("unexpected seed: %v", cfg.App.Seed)
	}
	if cfg.App.TrackVisits == nil || *cfg.App.TrackVisits {
		t.Fatalf("expected track-visits=false, got %v", cfg.App.TrackVisits)
	}
	if cfg.App.Chart != nil {
		t.Fatalf("expected chart unset, got %q", *cfg.App.Chart)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[app]\ncolour = true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "app.colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestHomeOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv(HomeEnv, root)
	if got := DefaultConfigPath(); got != filepath.Join(root, "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join(root, "folio.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
	if got := DefaultAssetDir(); got != filepath.Join(root, "assets") {
		t.Fatalf("unexpected asset dir: %s", got)
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv(HomeEnv, "")
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultContentPath(); got != filepath.Join("/cfg", "folio", "content.toml") {
		t.Fatalf("unexpected content path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "folio", "folio.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
