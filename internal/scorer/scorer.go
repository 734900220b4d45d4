// Package scorer implements the scorer & result builder (spec §4.6):
// it narrows a resolved candidate set down to its non-nested members,
// weighs each by country bucket and level, breaks ties deterministically,
// and (in NEW mode) synthesizes a finer placeholder place.
package scorer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/gazetteerlabs/placematch/internal/config"
	"github.com/gazetteerlabs/placematch/internal/errorreport"
	"github.com/gazetteerlabs/placematch/internal/hierarchy"
	"github.com/gazetteerlabs/placematch/internal/normalizer"
	"github.com/gazetteerlabs/placematch/pkg/core"
	"github.com/gazetteerlabs/placematch/pkg/gazetteer"
)

// Input bundles what the resolver learned across the whole level-matcher
// walk, everything the scorer needs to build and, if warranted, log the
// final result set.
type Input struct {
	Text           string
	LevelWords     [][]string // all input levels, finest first, as the normalizer produced them
	CandidateIDs   []int
	NameToken      string // the finest matched level's name_token
	LastFoundLevel int    // 0 if the finest input level matched
	Mode           core.Mode
	NumResults     int
	ErrorReported  bool // an earlier level already fired a guarded anomaly
}

// Build runs spec §4.6 over a resolved candidate set.
func Build(cfg *config.Config, store gazetteer.Store, lookup hierarchy.Lookup, handler errorreport.Handler, in Input) []core.PlaceScore {
	ids := in.CandidateIDs
	if len(ids) > 1 {
		ids = hierarchy.RemoveChildren(lookup, ids)
	}

	var results []core.PlaceScore
	switch len(ids) {
	case 0:
		results = nil
	case 1:
		if place, ok := store.Place(ids[0]); ok {
			results = []core.PlaceScore{{Place: place, Score: score(cfg, in.NameToken, place)}}
		}
	default:
		results = buildAmbiguous(cfg, store, handler, in, ids)
	}

	if len(results) > 0 && in.Mode == core.ModeNew && in.LastFoundLevel > 0 {
		results = synthesize(cfg, in, results[0].Place.ID)
	}

	return results
}

func buildAmbiguous(cfg *config.Config, store gazetteer.Store, handler errorreport.Handler, in Input, ids []int) []core.PlaceScore {
	scored := make([]core.PlaceScore, 0, len(ids))
	for _, id := range ids {
		place, ok := store.Place(id)
		if !ok {
			continue
		}
		scored = append(scored, core.PlaceScore{Place: place, Score: score(cfg, in.NameToken, place)})
	}
	if len(scored) == 0 {
		return nil
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Place.ID < scored[j].Place.ID
	})

	if !in.ErrorReported {
		handler.Ambiguous(in.Text, in.LevelWords, ids, scored[0].Place.ID)
	}

	if in.NumResults > 0 && len(scored) > in.NumResults {
		scored = scored[:in.NumResults]
	}
	return scored
}

// score implements the per-place weighing in spec §4.6 step 3.
func score(cfg *config.Config, nameToken string, place *core.Place) float64 {
	weights := cfg.LevelWeights(place.CountryID)
	value := weights[core.ClampLevel(place.Level)-1]
	if nameToken != "" && strings.Contains(normalizer.NormalizeWord(place.Name), nameToken) {
		value += cfg.PrimaryMatchWeight
	}
	return value
}

// synthesize implements the NEW-mode placeholder (spec §4.6, "NEW mode
// synthesis"): a finer, unresolved place one level below the best match,
// named from the coarsest level that never found a hit.
func synthesize(cfg *config.Config, in Input, parentID int) []core.PlaceScore {
	idx := in.LastFoundLevel - 1
	if idx < 0 || idx >= len(in.LevelWords) {
		return nil
	}
	name := generatePlaceName(cfg, in.LevelWords[idx])
	place := &core.Place{Name: name, LocatedInID: parentID}
	return []core.PlaceScore{{Place: place, Score: 0}}
}

// generatePlaceName implements spec §4.6's generate_place_name: the
// longest prefix of words excluding a trailing run of type words, with
// "cemetery" kept as an exception, title-cased.
func generatePlaceName(cfg *config.Config, words []string) string {
	keep := len(words)
	for keep > 0 {
		w := words[keep-1]
		if w == "cemetery" || !cfg.TypeWords[w] {
			break
		}
		keep--
	}
	if keep == 0 {
		keep = len(words)
	}

	out := make([]string, 0, keep)
	for _, w := range words[:keep] {
		out = append(out, titleCase(w))
	}
	return strings.Join(out, " ")
}

func titleCase(w string) string {
	if w == "" {
		return w
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
