package config

import "fmt"

// Validate checks the configuration for internally-inconsistent values.
// It does not touch the filesystem: the gazetteer/engine files named by
// the config are opened lazily by the command that needs them.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	switch c.DefaultMode {
	case "best", "required", "new":
	default:
		return fmt.Errorf("default_mode must be one of best, required, new; got %q", c.DefaultMode)
	}
	if c.DefaultNumResults <= 0 {
		return fmt.Errorf("default_num_results must be positive, got %d", c.DefaultNumResults)
	}
	return nil
}

// ResolvedPlacesFile returns PlacesFile resolved against DataDir.
func (c *Config) ResolvedPlacesFile() string {
	return resolvePath(c.DataDir, c.PlacesFile)
}

// ResolvedWordsFile returns WordsFile resolved against DataDir.
func (c *Config) ResolvedWordsFile() string {
	return resolvePath(c.DataDir, c.WordsFile)
}
