// Package config loads and validates the movieshelf configuration file.
//
// Configuration lives in a TOML file at ~/.config/movieshelf/config.toml or
// ./movieshelf.toml. Defaults cover every field, so a missing file yields a
// working configuration. The OMDb API key may be supplied via the
// OMDB_API_KEY environment variable instead of the file.
package config
