// Package gazetteer provides read-only lookups over the place index and
// the word-to-place inverted index: an in-memory store backed by maps
// loaded from a text source, and a cached store fronting a remote
// key-value or SQL backing store.
package gazetteer

import "github.com/gazetteerlabs/placematch/pkg/core"

// Store is the read interface the matching engine consumes. A missing
// id or word is reported as (nil/nil, false), never as an error: the
// engine treats absence as a logged anomaly, not a fatal condition.
type Store interface {
	// Place resolves a place id to its record.
	Place(id int) (*core.Place, bool)
	// Word resolves a normalized word to the ordered ids of places
	// whose name or an alt name contains it.
	Word(word string) ([]int, bool)
}
