package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/folio/internal/config"
	"github.com/verte-zerg/folio/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv(config.HomeEnv, root)
	if err := os.WriteFile(filepath.Join(root, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return root
}

func TestResolveAppConfigPrecedence(t *testing.T) {
	writeConfig(t, "[app]\nstart-page = \"skills\"\nchart = \"area\"\nseed = 9\ntrack-visits = false\n")
	cmd := newRootCmd()
	if err := cmd.Flags().Set("page", "about"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	cfg, err := resolveAppConfig(cmd)
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	if cfg.StartPage != model.PageAbout {
		t.Fatalf("flag must win over config, got %v", cfg.StartPage)
	}
	if cfg.Chart != model.ChartArea || cfg.Seed != 9 {
		t.Fatalf("config values not applied: %+v", cfg)
	}
	if cfg.TrackVisits {
		t.Fatalf("expected tracking disabled by config")
	}
	if cfg.Category != model.FilterAll {
		t.Fatalf("expected default category, got %v", cfg.Category)
	}
}

func TestResolveAppConfigRejectsUnknownPage(t *testing.T) {
	writeConfig(t, "[app]\nstart-page = \"blog\"\n")
	_, err := resolveAppConfig(newRootCmd())
	if err == nil || !strings.Contains(err.Error(), "--page") {
		t.Fatalf("expected page error, got %v", err)
	}
}

func TestProjectsCommand(t *testing.T) {
	writeConfig(t, "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"projects", "--category", "automation"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "Projects (Automation): 1 of 4") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestDataCommandIsReproducible(t *testing.T) {
	writeConfig(t, "")
	run := func() string {
		cmd := newRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"data", "--seed", "11", "--chart", "bar", "--width", "30"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}
		return out.String()
	}
	first := run()
	if first != run() {
		t.Fatalf("same seed must print the same output")
	}
	if !strings.Contains(first, "Demo data (seed 11)") {
		t.Fatalf("unexpected output:\n%s", first)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	root := writeConfig(t, defaultConfigTemplate())
	cfg, err := config.LoadConfig(filepath.Join(root, "config.toml"))
	if err != nil {
		t.Fatalf("template must decode: %v", err)
	}
	if cfg.App.StartPage != nil {
		t.Fatalf("template values must be commented out")
	}
}
