// Package hierarchy walks the gazetteer containment graph: a place's
// located_in parent plus its also_located_in secondary parents. The walk
// is used to filter a candidate id set down to the descendants of a
// running ancestor set, and to drop candidates that are themselves
// descendants of another candidate in the same set.
package hierarchy

import (
	"github.com/gazetteerlabs/placematch/pkg/core"
)

// maxDepthFactor bounds the ancestor walk at MaxLevels*maxDepthFactor
// hops so that malformed (cyclic) source data cannot recurse forever.
const maxDepthFactor = 4

// Lookup resolves a place id to its record. Implemented by any
// gazetteer store.
type Lookup interface {
	Place(id int) (*core.Place, bool)
}

// IsAncestor walks located_in and each also_located_in edge upward from
// candidateID and reports whether any place on the walk is in ancestors.
// A located_in of 0 terminates that branch. The walk is guarded by a
// visited set and a depth cap so a cycle in the source data cannot hang
// the caller; neither condition should arise from well-formed data.
func IsAncestor(lookup Lookup, candidateID int, ancestors map[int]bool) bool {
	visited := make(map[int]bool)
	return walkUp(lookup, candidateID, ancestors, visited, 0)
}

func walkUp(lookup Lookup, id int, ancestors, visited map[int]bool, depth int) bool {
	if depth > core.MaxLevels*maxDepthFactor {
		return false
	}
	if visited[id] {
		return false
	}
	visited[id] = true

	place, ok := lookup.Place(id)
	if !ok {
		return false
	}

	parents := make([]int, 0, 1+len(place.AlsoLocatedInIDs))
	if place.LocatedInID != 0 {
		parents = append(parents, place.LocatedInID)
	}
	parents = append(parents, place.AlsoLocatedInIDs...)

	for _, parentID := range parents {
		if ancestors[parentID] {
			return true
		}
		if walkUp(lookup, parentID, ancestors, visited, depth+1) {
			return true
		}
	}
	return false
}

// FilterSubplaces returns the subsequence of children that are
// descendants of any place in parents, preserving order.
func FilterSubplaces(lookup Lookup, children []int, parents map[int]bool) []int {
	if len(parents) == 0 {
		return nil
	}
	out := make([]int, 0, len(children))
	for _, id := range children {
		if IsAncestor(lookup, id, parents) {
			out = append(out, id)
		}
	}
	return out
}

// RemoveChildren drops any id from ids that is a descendant of another
// id in the same set. Each id is checked against the full set including
// itself: since IsAncestor only walks strictly upward, a well-formed
// place is never its own ancestor, so the self-comparison is benign and
// intentionally preserved to match the reference behavior.
func RemoveChildren(lookup Lookup, ids []int) []int {
	if len(ids) <= 1 {
		out := make([]int, len(ids))
		copy(out, ids)
		return out
	}

	all := make(map[int]bool, len(ids))
	for _, id := range ids {
		all[id] = true
	}

	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !IsAncestor(lookup, id, all) {
			out = append(out, id)
		}
	}
	return out
}
