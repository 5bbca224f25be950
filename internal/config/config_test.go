package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultCurrency != "USD" {
		t.Fatalf("default currency = %q, want USD", cfg.General.DefaultCurrency)
	}
	if cfg.General.TripSort != "newest" || cfg.General.ExpenseSort != "newest" {
		t.Fatalf("default sort orders = %q/%q, want newest/newest", cfg.General.TripSort, cfg.General.ExpenseSort)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultCurrency = "EUR"
	cfg.General.TripSort = "oldest"
	cfg.Appearance.Theme = "catppuccin-mocha"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DefaultCurrency != "EUR" {
		t.Fatalf("currency = %q, want EUR", got.General.DefaultCurrency)
	}
	if got.General.TripSort != "oldest" {
		t.Fatalf("trip sort = %q, want oldest", got.General.TripSort)
	}
	if got.Appearance.Theme != "catppuccin-mocha" {
		t.Fatalf("theme = %q", got.Appearance.Theme)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "tripkit", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestDBPathOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DBPath(cfg); got != filepath.Join("/tmp/xdg-data", "tripkit", "ledger.db") {
		t.Fatalf("DBPath default = %q", got)
	}

	cfg.General.DBPath = "/elsewhere/ledger.db"
	if got := DBPath(cfg); got != "/elsewhere/ledger.db" {
		t.Fatalf("DBPath override = %q", got)
	}
}
