package config

const (
	defaultDataDir        = "~/.local/share/movieshelf"
	defaultBackend        = "sqlite"
	defaultUserName       = "default"
	defaultOMDbBaseURL    = "http://www.omdbapi.com/"
	defaultOMDbTimeout    = 5
	defaultFuzzyCutoff    = 0.4
	defaultFuzzyLimit     = 5
	defaultMinYear        = 1900
	defaultMaxYear        = 2025
	defaultMinRating      = 0.0
	defaultMaxRating      = 10.0
	defaultWebsiteDir     = "~/.local/share/movieshelf/site"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
	omdbAPIKeyEnvVariable = "OMDB_API_KEY"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Library: Library{
			DataDir:     defaultDataDir,
			Backend:     defaultBackend,
			DefaultUser: defaultUserName,
		},
		OMDb: OMDb{
			BaseURL:        defaultOMDbBaseURL,
			TimeoutSeconds: defaultOMDbTimeout,
		},
		Search: Search{
			FuzzyCutoff: defaultFuzzyCutoff,
			FuzzyLimit:  defaultFuzzyLimit,
		},
		Validation: Validation{
			MinYear:   defaultMinYear,
			MaxYear:   defaultMaxYear,
			MinRating: defaultMinRating,
			MaxRating: defaultMaxRating,
		},
		Website: Website{
			OutputDir: defaultWebsiteDir,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
