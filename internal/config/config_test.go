package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Driver != DriverSQLite {
		t.Errorf("default driver = %s, want %s", cfg.Driver, DriverSQLite)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("DATABASE_URL", "")

	want := &Config{Version: "1", Driver: DriverPostgres, DSN: "postgres://localhost/courtstat"}
	if err := SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got.Driver != want.Driver || got.DSN != want.DSN {
		t.Errorf("loaded config = %+v, want %+v", got, want)
	}
}

func TestLoadConfigDatabaseURLOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	if err := SaveConfig(&Config{Version: "1", Driver: DriverSQLite}); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	t.Setenv("DATABASE_URL", "postgres://db.example/courtstat")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Driver != DriverPostgres {
		t.Errorf("driver = %s, want %s", cfg.Driver, DriverPostgres)
	}
	if cfg.DSN != "postgres://db.example/courtstat" {
		t.Errorf("dsn = %s", cfg.DSN)
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("DATABASE_URL", "")

	dir := filepath.Join(tmpDir, ".courtstat")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() with malformed file succeeded, want error")
	}
}
