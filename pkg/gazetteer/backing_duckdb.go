package gazetteer

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/gazetteerlabs/placematch/pkg/core"
)

// DuckDBStore is a BackingStore reading the places and place_words
// tables from an embedded DuckDB file, useful for local development and
// offline batch runs without a PostgreSQL server.
type DuckDBStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenDuckDBStore opens path (or an in-memory database if path is
// empty) as a DuckDB-backed gazetteer source.
func OpenDuckDBStore(ctx context.Context, path string, logger *slog.Logger) (*DuckDBStore, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: opening duckdb connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("gazetteer: pinging duckdb: %w", err)
	}

	return &DuckDBStore{db: db, logger: logger}, nil
}

// LoadPlace implements BackingStore.
func (s *DuckDBStore) LoadPlace(ctx context.Context, id int) (*core.Place, bool, error) {
	row := s.db.QueryRowContext(ctx, placesSelect, id)

	var (
		p                        core.Place
		altNames, types, sources string
		alsoLocatedIn            string
		latitude, longitude      sql.NullFloat64
	)
	err := row.Scan(&p.ID, &p.Name, &altNames, &types, &p.LocatedInID, &alsoLocatedIn,
		&p.Level, &p.CountryID, &latitude, &longitude, &sources)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("gazetteer: loading place %d: %w", id, err)
	}

	p.AltNames = parseAltNames(altNames)
	p.Types = parseTypes(types)
	p.AlsoLocatedInIDs = parseIDEntries(alsoLocatedIn)
	p.Sources = parseSources(sources)
	p.Latitude = latitude.Float64
	p.Longitude = longitude.Float64

	return &p, true, nil
}

// LoadWord implements BackingStore.
func (s *DuckDBStore) LoadWord(ctx context.Context, word string) ([]int, bool, error) {
	var idList string
	err := s.db.QueryRowContext(ctx, wordSelect, word).Scan(&idList)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("gazetteer: loading word %q: %w", word, err)
	}
	return parseCommaIDs(idList), true, nil
}

// Close implements BackingStore.
func (s *DuckDBStore) Close() error {
	return s.db.Close()
}

var _ BackingStore = (*DuckDBStore)(nil)
