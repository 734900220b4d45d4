// Package engine assembles the gazetteer store, configuration, and
// resolver into the single process-wide object the external interfaces
// (spec §6) are built on: standardize, place, set_error_handler.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gazetteerlabs/placematch/internal/config"
	"github.com/gazetteerlabs/placematch/internal/errorreport"
	"github.com/gazetteerlabs/placematch/internal/normalizer"
	"github.com/gazetteerlabs/placematch/internal/resolver"
	"github.com/gazetteerlabs/placematch/pkg/core"
	"github.com/gazetteerlabs/placematch/pkg/gazetteer"
)

// Config holds everything needed to build an Engine. Exactly one of the
// text-file pair or DatabaseURL should be set; DatabaseURL takes
// precedence when both are present, matching spec §6's "DATABASE_URL
// selects backed mode; absent → in-memory mode."
type Config struct {
	// ConfigDir is loaded via internal/config.LoadFromDir.
	ConfigDir string

	// PlacesFile and WordsFile are the in-memory mode's text sources.
	PlacesFile string
	WordsFile  string

	// DatabaseURL selects backed mode: a postgres:// or duckdb:// (or
	// empty-path in-memory duckdb) connection string.
	DatabaseURL string

	Logger *slog.Logger
}

// Engine is process-wide and read-mostly (spec §5): after New returns,
// every field it holds is read-only except the error handler, which is
// swapped atomically, and the backing store's own internal caches.
type Engine struct {
	cfg      *config.Config
	store    gazetteer.Store
	closer   interface{ Close() error }
	resolver *resolver.Resolver
	handler  atomic.Pointer[errorreport.Handler]
	logger   *slog.Logger
}

// New performs the engine's one-time initialization: parses
// configuration and loads the gazetteer index, either from text files
// or from a backing SQL store fronted by a cache. Any failure here is
// fatal at construction, per spec §7.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	engineCfg, err := config.LoadFromDir(cfg.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("engine: loading configuration: %w", err)
	}

	store, closer, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("engine: loading gazetteer: %w", err)
	}

	e := &Engine{
		cfg:      engineCfg,
		store:    store,
		closer:   closer,
		resolver: resolver.New(engineCfg, store, store, normalizer.New()),
		logger:   logger,
	}
	e.SetErrorHandler(errorreport.Discard{})
	return e, nil
}

func openStore(ctx context.Context, cfg Config, logger *slog.Logger) (gazetteer.Store, interface{ Close() error }, error) {
	if cfg.DatabaseURL != "" {
		backing, err := openBackingStore(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		cached := gazetteer.NewCachedStore(backing, logger)
		return cached, cached, nil
	}

	store, err := gazetteer.LoadTextFiles(cfg.PlacesFile, cfg.WordsFile)
	if err != nil {
		return nil, nil, err
	}
	return store, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetErrorHandler installs handler for subsequent resolve calls. A nil
// handler is replaced with errorreport.Discard. Safe to call
// concurrently with in-flight resolves; a resolve already past the
// point where it reads the handler keeps using the old one.
func (e *Engine) SetErrorHandler(handler errorreport.Handler) {
	if handler == nil {
		handler = errorreport.Discard{}
	}
	e.handler.Store(&handler)
}

func (e *Engine) currentHandler() errorreport.Handler {
	if h := e.handler.Load(); h != nil {
		return *h
	}
	return errorreport.Discard{}
}

// Standardize implements spec §6's full standardize signature. A zero
// numResults defaults to 1. default_country is accepted but reserved
// (spec §9, open question (b)): it is no-op today.
func (e *Engine) Standardize(text string, _ int, mode core.Mode, numResults int) []core.PlaceScore {
	if numResults <= 0 {
		numResults = 1
	}
	callID := uuid.NewString()
	e.logger.Debug("standardize", slog.String("call_id", callID), slog.String("mode", mode.String()))
	results := e.resolver.Resolve(e.currentHandler(), text, mode, numResults)
	e.logger.Debug("standardize done", slog.String("call_id", callID), slog.Int("results", len(results)))
	return results
}

// StandardizeDefault implements the `standardize(text, num_results)`
// convenience signature: mode = BEST, no default country.
func (e *Engine) StandardizeDefault(text string, numResults int) []core.PlaceScore {
	return e.Standardize(text, 0, core.ModeBest, numResults)
}

// StandardizeOne implements `standardize(text, default_country?) →
// Place?`: the single best match, or nil if none.
func (e *Engine) StandardizeOne(text string, defaultCountry int) *core.Place {
	results := e.Standardize(text, defaultCountry, core.ModeBest, 1)
	if len(results) == 0 {
		return nil
	}
	return results[0].Place
}

// Place implements spec §6's `place(id) → Place?`.
func (e *Engine) Place(id int) (*core.Place, bool) {
	return e.store.Place(id)
}

// Close releases the backing store's resources, if any were opened.
func (e *Engine) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}
