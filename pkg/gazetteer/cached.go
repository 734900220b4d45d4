package gazetteer

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/gazetteerlabs/placematch/pkg/core"
)

// Cache size and TTL bounds from spec §4.1.
const (
	PlaceCacheMaxSize = 50000
	WordCacheMaxSize  = 50000
	CacheTTL          = time.Hour
)

var errAbsent = errors.New("gazetteer: key absent in backing store")

// BackingStore is a remote key-value or SQL source of truth for places
// and words. Implementations issue one query per miss; failures are
// returned to CachedStore, which logs them and reports absence rather
// than propagating the error to the resolver.
type BackingStore interface {
	LoadPlace(ctx context.Context, id int) (*core.Place, bool, error)
	LoadWord(ctx context.Context, word string) ([]int, bool, error)
	Close() error
}

// CachedStore fronts a BackingStore with size- and time-bounded caches.
// Concurrent misses for the same key coalesce onto a single backing
// load via singleflight; duplicate loads across distinct keys are
// acceptable and expected under load.
type CachedStore struct {
	backing BackingStore
	logger  *slog.Logger

	places *expirable.LRU[int, core.Place]
	words  *expirable.LRU[string, []int]

	placeGroup singleflight.Group
	wordGroup  singleflight.Group
}

// NewCachedStore builds a CachedStore over backing. A nil logger
// defaults to a discard logger, matching the rest of the module's
// convention for optional loggers.
func NewCachedStore(backing BackingStore, logger *slog.Logger) *CachedStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CachedStore{
		backing: backing,
		logger:  logger,
		places:  expirable.NewLRU[int, core.Place](PlaceCacheMaxSize, nil, CacheTTL),
		words:   expirable.NewLRU[string, []int](WordCacheMaxSize, nil, CacheTTL),
	}
}

// Place implements Store.
func (c *CachedStore) Place(id int) (*core.Place, bool) {
	if p, ok := c.places.Get(id); ok {
		place := p
		return &place, true
	}

	v, err, _ := c.placeGroup.Do(strconv.Itoa(id), func() (any, error) {
		p, found, err := c.backing.LoadPlace(context.Background(), id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, errAbsent
		}
		return p, nil
	})
	if err != nil {
		if !errors.Is(err, errAbsent) {
			c.logger.Error("gazetteer: place load failed", slog.Int("id", id), slog.Any("error", err))
		}
		return nil, false
	}

	place := v.(*core.Place)
	c.places.Add(id, *place)
	return place, true
}

// Word implements Store.
func (c *CachedStore) Word(word string) ([]int, bool) {
	if ids, ok := c.words.Get(word); ok {
		return ids, true
	}

	v, err, _ := c.wordGroup.Do(word, func() (any, error) {
		ids, found, err := c.backing.LoadWord(context.Background(), word)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, errAbsent
		}
		return ids, nil
	})
	if err != nil {
		if !errors.Is(err, errAbsent) {
			c.logger.Error("gazetteer: word load failed", slog.String("word", word), slog.Any("error", err))
		}
		return nil, false
	}

	ids := v.([]int)
	c.words.Add(word, ids)
	return ids, true
}

// Close releases the backing store's resources.
func (c *CachedStore) Close() error {
	return c.backing.Close()
}

var _ Store = (*CachedStore)(nil)
