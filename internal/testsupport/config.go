package testsupport

import (
	"path/filepath"
	"testing"

	"setlist/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.ExportDir = filepath.Join(base, "exports")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithChannel sets the channel preview settings on the test config.
func WithChannel(url, name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Channel.URL = url
		cfg.Channel.Name = name
	}
}
