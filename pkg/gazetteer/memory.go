package gazetteer

import "github.com/gazetteerlabs/placematch/pkg/core"

// MemoryStore is a read-only, fully in-memory Store. It is built once
// by a loader and never mutated afterward; concurrent reads need no
// locking because the maps are never written to after construction.
type MemoryStore struct {
	places map[int]*core.Place
	words  map[string][]int
}

// NewMemoryStore builds a MemoryStore from already-materialized maps.
// The caller (a loader) owns populating places and words; MemoryStore
// takes ownership of both maps and never modifies them.
func NewMemoryStore(places map[int]*core.Place, words map[string][]int) *MemoryStore {
	if places == nil {
		places = make(map[int]*core.Place)
	}
	if words == nil {
		words = make(map[string][]int)
	}
	return &MemoryStore{places: places, words: words}
}

// Place implements Store.
func (m *MemoryStore) Place(id int) (*core.Place, bool) {
	p, ok := m.places[id]
	return p, ok
}

// Word implements Store.
func (m *MemoryStore) Word(word string) ([]int, bool) {
	ids, ok := m.words[word]
	return ids, ok
}

var _ Store = (*MemoryStore)(nil)
