package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"setlist/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.toml")

	cfg, resolved, exists, err := config.Load(missing)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected no config file to be found")
	}
	if resolved != missing {
		t.Fatalf("expected resolved path %q, got %q", missing, resolved)
	}
	if cfg.Paths.DataDir == "" || cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadParsesAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `[paths]
data_dir = "` + dir + `/data"

[channel]
url = "https://www.youtube.com/channel/UC7A7bGRVdIwo93nA3x-OQ"
name = "Test Channel"

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Paths.DataDir != filepath.Join(dir, "data") {
		t.Fatalf("unexpected data dir %q", cfg.Paths.DataDir)
	}
	if cfg.Channel.Name != "Test Channel" {
		t.Fatalf("unexpected channel name %q", cfg.Channel.Name)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "data", "library.db") {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath())
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad log format", "[logging]\nformat = \"yaml\"\n"},
		{"bad log level", "[logging]\nlevel = \"verbose\"\n"},
		{"negative timeout", "[channel]\nrequest_timeout = -1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleWritesParseableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(raw), "[paths]") {
		t.Fatalf("sample config missing [paths] section:\n%s", raw)
	}

	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
