// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "folio"

// HomeEnv overrides both the config and data roots when set.
const HomeEnv = "FOLIO_HOME"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func configDir() string {
	if v := os.Getenv(HomeEnv); v != "" {
		return v
	}
	return filepath.Join(XDGConfigHome(), appName)
}

func dataDir() string {
	if v := os.Getenv(HomeEnv); v != "" {
		return v
	}
	return filepath.Join(XDGDataHome(), appName)
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.toml")
}

// DefaultContentPath returns the default content catalog path.
func DefaultContentPath() string {
	return filepath.Join(configDir(), "content.toml")
}

// DefaultAssetDir returns the default directory images are resolved against.
func DefaultAssetDir() string {
	return filepath.Join(configDir(), "assets")
}

// DefaultDBPath returns the default path for the SQLite database.
func DefaultDBPath() string {
	return filepath.Join(dataDir(), "folio.db")
}
