package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.Library.Backend = strings.ToLower(strings.TrimSpace(c.Library.Backend))
	c.Library.DefaultUser = strings.TrimSpace(c.Library.DefaultUser)
	c.OMDb.APIKey = strings.TrimSpace(c.OMDb.APIKey)
	if c.OMDb.APIKey == "" {
		c.OMDb.APIKey = strings.TrimSpace(os.Getenv(omdbAPIKeyEnvVariable))
	}
	c.OMDb.BaseURL = strings.TrimSpace(c.OMDb.BaseURL)
	c.Website.PageTitle = strings.TrimSpace(c.Website.PageTitle)

	for _, field := range []struct {
		name  string
		value *string
	}{
		{"library.data_dir", &c.Library.DataDir},
		{"website.output_dir", &c.Website.OutputDir},
		{"logging.log_dir", &c.Logging.LogDir},
	} {
		if strings.TrimSpace(*field.value) == "" {
			continue
		}
		expanded, err := expandPath(*field.value)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	switch c.Library.Backend {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("library.backend must be \"sqlite\" or \"memory\", got %q", c.Library.Backend)
	}
	if strings.TrimSpace(c.Library.DataDir) == "" {
		return errors.New("library.data_dir must be set")
	}
	if c.Library.SingleUser && c.Library.DefaultUser == "" {
		return errors.New("library.default_user must be set when library.single_user is true")
	}
	if c.OMDb.BaseURL == "" {
		return errors.New("omdb.base_url must be set")
	}
	if c.OMDb.TimeoutSeconds <= 0 {
		return errors.New("omdb.timeout_seconds must be positive")
	}
	if c.Search.FuzzyCutoff < 0 || c.Search.FuzzyCutoff > 1 {
		return errors.New("search.fuzzy_cutoff must be between 0 and 1")
	}
	if c.Search.FuzzyLimit <= 0 {
		return errors.New("search.fuzzy_limit must be positive")
	}
	if c.Validation.MinYear > c.Validation.MaxYear {
		return errors.New("validation.min_year must not exceed validation.max_year")
	}
	if c.Validation.MinRating > c.Validation.MaxRating {
		return errors.New("validation.min_rating must not exceed validation.max_rating")
	}
	if strings.TrimSpace(c.Website.OutputDir) == "" {
		return errors.New("website.output_dir must be set")
	}
	return nil
}

// RequireOMDbKey returns the configured API key or a configuration error
// telling the user how to supply one. Metadata fetches must never go out
// with a blank key.
func (c *Config) RequireOMDbKey() (string, error) {
	if c.OMDb.APIKey != "" {
		return c.OMDb.APIKey, nil
	}
	defaultPath, err := DefaultConfigPath()
	if err != nil {
		defaultPath = "~/.config/movieshelf/config.toml"
	}
	return "", fmt.Errorf("omdb.api_key is required for metadata lookups. Set %s or edit %s (create with 'movieshelf config init')", omdbAPIKeyEnvVariable, defaultPath)
}
