// Package config provides CLI configuration loading: a 4-provider koanf
// pipeline (defaults, file, environment, flags) layered in precedence
// order, matching the engine's host-process configuration the way the
// teacher codebase layers its own CLI config.
package config

import (
	engineconfig "github.com/gazetteerlabs/placematch/internal/config"
)

// Config holds CLI-level configuration: where to find gazetteer data and
// the engine's property list, how to serve it, and how to log.
type Config struct {
	// DataDir holds (or is searched for) the engine property list file
	// and, in text-file mode, the places/place_words data files.
	DataDir string `koanf:"data_dir"`

	// PlacesFile and WordsFile are explicit paths to the text-file
	// gazetteer source (spec §6). Relative paths resolve against DataDir.
	// Ignored when DatabaseURL is set.
	PlacesFile string `koanf:"places_file"`
	WordsFile  string `koanf:"words_file"`

	// DatabaseURL selects backed (SQL) mode when non-empty; absent means
	// in-memory mode (spec §6). Conventionally sourced from the
	// DATABASE_URL environment variable.
	DatabaseURL string `koanf:"database_url"`

	// HTTPAddr is the listen address for the serve command.
	HTTPAddr string `koanf:"http_addr"`

	// DefaultMode and DefaultNumResults seed the HTTP API's request
	// defaults when a caller omits them.
	DefaultMode       string `koanf:"default_mode"`
	DefaultNumResults int    `koanf:"default_num_results"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"` // "text" or "json"
	Verbose   bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultFileName    = "placematch.yaml"
	DefaultFileNameAlt = "placematch.yml"

	DefaultDataDir          = "."
	DefaultPlacesFile       = "places.txt"
	DefaultWordsFile        = "place_words.txt"
	DefaultHTTPAddr         = ":8080"
	DefaultMode             = "best"
	DefaultNumResults       = 3
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	envPrefix               = "PLACEMATCH_"
)

// EngineConfig loads the engine's typed property-list configuration from
// c.DataDir, re-exported here so CLI commands need only one Config value
// to construct the engine.
func (c *Config) EngineConfig() (*engineconfig.Config, error) {
	return engineconfig.LoadFromDir(c.DataDir)
}
