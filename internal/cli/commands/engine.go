package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gazetteerlabs/placematch/internal/cli/config"
	"github.com/gazetteerlabs/placematch/internal/engine"
	"github.com/gazetteerlabs/placematch/pkg/core"
)

// createEngine builds an engine from the CLI's resolved configuration:
// backed mode when cfg.DatabaseURL is set (spec §6), otherwise the text
// files resolved against cfg.DataDir; the engine's own property-list
// configuration is read from cfg.DataDir in both modes.
func createEngine(cfg *config.Config) (*engine.Engine, error) {
	return engine.New(context.Background(), engine.Config{
		ConfigDir:   cfg.DataDir,
		PlacesFile:  cfg.ResolvedPlacesFile(),
		WordsFile:   cfg.ResolvedWordsFile(),
		DatabaseURL: cfg.DatabaseURL,
		Logger:      newLogger(cfg),
	})
}

// newLogger builds the slog.Logger every command constructs its engine
// with, honoring the CLI config's log_level and log_format fields.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// modeFromString parses the standardize mode flag/config value,
// defaulting to best on an empty string.
func modeFromString(s string) (core.Mode, error) {
	switch s {
	case "", "best":
		return core.ModeBest, nil
	case "required":
		return core.ModeRequired, nil
	case "new":
		return core.ModeNew, nil
	default:
		return core.ModeBest, fmt.Errorf("unknown mode %q, want best|required|new", s)
	}
}
