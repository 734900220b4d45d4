package gazetteer

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // postgres driver registered as "pgx"

	"github.com/gazetteerlabs/placematch/pkg/core"
)

// PostgresStore is a BackingStore reading the places and place_words
// tables from PostgreSQL. The four delimited text columns (alt_names,
// types, also_located_in_ids, sources) use the same entry/tag encoding
// as the text file loader (see spec §6), so rows decode through the
// same helpers in encoding.go.
type PostgresStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenPostgresStore opens a PostgreSQL connection using dsn, which may
// be a libpq keyword string or a postgres:// URL — both are accepted by
// the pgx stdlib driver. dsn is typically sourced from the DATABASE_URL
// environment variable (spec §6).
func OpenPostgresStore(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: opening postgres connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("gazetteer: pinging postgres: %w", err)
	}

	return &PostgresStore{db: db, logger: logger}, nil
}

const placesSelect = `
SELECT id, name, alt_names, types, located_in_id, also_located_in_ids,
       level, country_id, latitude, longitude, sources
FROM places WHERE id = $1`

// LoadPlace implements BackingStore.
func (s *PostgresStore) LoadPlace(ctx context.Context, id int) (*core.Place, bool, error) {
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

const wordSelect = `SELECT ids FROM place_words WHERE word = $1`

// LoadWord implements BackingStore.
func (s *PostgresStore) LoadWord(ctx context.Context, word string) ([]int, bool, error) {
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
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

var _ BackingStore = (*PostgresStore)(nil)
