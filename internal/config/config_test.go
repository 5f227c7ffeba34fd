package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movieshelf/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Library.Backend != "sqlite" {
		t.Fatalf("default backend = %q, want sqlite", cfg.Library.Backend)
	}
	if cfg.Search.FuzzyCutoff != 0.4 || cfg.Search.FuzzyLimit != 5 {
		t.Fatalf("unexpected fuzzy defaults: %+v", cfg.Search)
	}
	if cfg.OMDb.TimeoutSeconds != 5 {
		t.Fatalf("default omdb timeout = %d, want 5", cfg.OMDb.TimeoutSeconds)
	}
}

func TestLoadOverridesAndExpandsPaths(t *testing.T) {
	base := t.TempDir()
	path := writeConfig(t, `
[library]
data_dir = "`+base+`/data"
backend = "memory"

[validation]
max_year = 2030
`)
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Library.Backend != "memory" {
		t.Fatalf("backend = %q, want memory", cfg.Library.Backend)
	}
	if cfg.Library.DataDir != filepath.Join(base, "data") {
		t.Fatalf("data dir = %q, want %q", cfg.Library.DataDir, filepath.Join(base, "data"))
	}
	if cfg.Validation.MaxYear != 2030 {
		t.Fatalf("max year = %d, want 2030", cfg.Validation.MaxYear)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[library]
backend = "postgres"
`)
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoadRejectsInvalidRanges(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"cutoff", "[search]\nfuzzy_cutoff = 1.5\n"},
		{"limit", "[search]\nfuzzy_limit = 0\n"},
		{"years", "[validation]\nmin_year = 2030\nmax_year = 2000\n"},
		{"ratings", "[validation]\nmin_rating = 9.0\nmax_rating = 1.0\n"},
		{"timeout", "[omdb]\ntimeout_seconds = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "env-key")
	path := writeConfig(t, "")
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	key, err := cfg.RequireOMDbKey()
	if err != nil {
		t.Fatalf("RequireOMDbKey returned error: %v", err)
	}
	if key != "env-key" {
		t.Fatalf("key = %q, want env-key", key)
	}
}

func TestRequireOMDbKeyMissing(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "")
	path := writeConfig(t, "")
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, err := cfg.RequireOMDbKey(); err == nil {
		t.Fatal("expected configuration error when api key missing")
	} else if !strings.Contains(err.Error(), "OMDB_API_KEY") {
		t.Fatalf("error should mention the env var, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[omdb]") {
		t.Fatal("sample config missing omdb section")
	}
}
