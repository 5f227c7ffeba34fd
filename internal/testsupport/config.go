package testsupport

import (
	"path/filepath"
	"testing"

	"movieshelf/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Library.DataDir = filepath.Join(base, "data")
	cfg.Website.OutputDir = filepath.Join(base, "site")
	cfg.Logging.LogDir = filepath.Join(base, "logs")
	cfg.OMDb.APIKey = "test"

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithBackend selects the store backend on the test config.
func WithBackend(backend string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Library.Backend = backend
	}
}

// WithSingleUser enables the legacy single-collection mode.
func WithSingleUser(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Library.SingleUser = true
		cfg.Library.DefaultUser = name
	}
}
