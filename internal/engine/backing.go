package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gazetteerlabs/placematch/pkg/gazetteer"
)

// openBackingStore picks the backing store implementation from the
// DATABASE_URL scheme: postgres/postgresql for PostgresStore, duckdb
// for DuckDBStore (an empty path after the scheme opens an in-memory
// database). Any other scheme is an error.
func openBackingStore(ctx context.Context, databaseURL string, logger *slog.Logger) (gazetteer.BackingStore, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return gazetteer.OpenPostgresStore(ctx, databaseURL, logger)
	case strings.HasPrefix(databaseURL, "duckdb://"):
		path := strings.TrimPrefix(databaseURL, "duckdb://")
		return gazetteer.OpenDuckDBStore(ctx, path, logger)
	default:
		return nil, fmt.Errorf("engine: unrecognized DATABASE_URL scheme in %q", databaseURL)
	}
}
