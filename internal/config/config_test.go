package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Bar.File != nil || cfg.Lines.File != nil || cfg.Server.Addr != nil {
		t.Fatalf("missing file should give an empty config: %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected an error for an empty path")
	}
}

func TestLoadConfig(t *testing.T) {
	const doc = `
[bar]
file = "austria.csv"
locale = "de"
padding = 0.4

[lines]
file = "https://example.org/fertility.csv"
opacity-dimmed = 0.1

[server]
addr = ":9090"

[log]
level = "debug"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Bar.File == nil || *cfg.Bar.File != "austria.csv" {
		t.Errorf("bar file not decoded")
	}
	if cfg.Bar.Locale == nil || *cfg.Bar.Locale != "de" {
		t.Errorf("bar locale not decoded")
	}
	if cfg.Bar.Padding == nil || *cfg.Bar.Padding != 0.4 {
		t.Errorf("bar padding not decoded")
	}
	if cfg.Bar.Category != nil {
		t.Errorf("unset value should stay nil")
	}
	if cfg.Lines.Dimmed == nil || *cfg.Lines.Dimmed != 0.1 {
		t.Errorf("dimmed opacity not decoded")
	}
	if cfg.Server.Addr == nil || *cfg.Server.Addr != ":9090" {
		t.Errorf("server address not decoded")
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Errorf("log level not decoded")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[bar\nfile = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("want decode error, got %v", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "datavis", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}
