// Package matcher implements the level matcher (spec §4.4): one input
// level's word list is matched against the running candidate state via
// word-skip lookup, ancestor filtering, parent-skip backoff, and type
// disambiguation.
package matcher

import (
	"strings"

	"github.com/gazetteerlabs/placematch/internal/config"
	"github.com/gazetteerlabs/placematch/internal/errorreport"
	"github.com/gazetteerlabs/placematch/internal/hierarchy"
	"github.com/gazetteerlabs/placematch/internal/normalizer"
	"github.com/gazetteerlabs/placematch/internal/tokenbuilder"
	"github.com/gazetteerlabs/placematch/pkg/core"
	"github.com/gazetteerlabs/placematch/pkg/gazetteer"
)

// State is the resolver's running cursor across input levels: the
// currently and previously accepted candidate id sets, and the index of
// the finest level that has contributed a match so far.
type State struct {
	Current        []int // nil means absent
	Previous        []int
	LastFoundLevel int
}

// Outcome is what MatchLevel learned about this level, beyond the
// updated State: words that the word-skip lookup peeled off the left
// and that the resolver must re-insert as a new, coarser input level,
// and whether this call already reported one of the four
// first-wins anomalies (token not found, skipping parent level, type
// not found, ambiguous).
type Outcome struct {
	State          State
	RelevelWords   []string
	ErrorReported  bool
}

// MatchLevel runs spec §4.4 over one input level. errorAlreadyReported
// reflects whether an earlier level (or the eventual scorer) has already
// fired one of the four guarded anomaly callbacks for this resolve call;
// MatchLevel will not fire a second one.
func MatchLevel(
	cfg *config.Config,
	store gazetteer.Store,
	lookup hierarchy.Lookup,
	handler errorreport.Handler,
	text string,
	words []string,
	levelIndex int,
	state State,
	errorAlreadyReported bool,
) Outcome {
	m := &matchRun{
		cfg:     cfg,
		store:   store,
		lookup:  lookup,
		handler: handler,
		text:    text,
		words:   words,
		level:   levelIndex,
	}
	return m.run(state, errorAlreadyReported)
}

type matchRun struct {
	cfg     *config.Config
	store   gazetteer.Store
	lookup  hierarchy.Lookup
	handler errorreport.Handler
	text    string
	words   []string
	level   int
}

func (m *matchRun) run(state State, errorAlreadyReported bool) Outcome {
	ids, tokens, usedSkip, found := m.wordSkipLookup()
	if !found {
		reported := false
		if m.hasNonNoiseWord(m.words) && !errorAlreadyReported {
			m.handler.TokenNotFound(m.text, m.words, m.level, hierarchy.RemoveChildren(m.lookup, state.Current))
			reported = true
		}
		return Outcome{State: state, ErrorReported: reported}
	}

	var relevel []string
	if usedSkip > 0 {
		relevel = m.relevelWords(m.words[:usedSkip])
	}

	oldCurrent := state.Current
	oldPrevious := state.Previous

	var accepted []int
	newLastFound := state.LastFoundLevel
	ignoreTypeToken := false
	reported := false
	stepSevenCurrent := oldCurrent

	switch {
	case len(oldCurrent) == 0:
		// Hit with no prior matches.
		accepted = ids
		newLastFound = m.level

	default:
		matching := hierarchy.FilterSubplaces(m.lookup, ids, toSet(oldCurrent))
		switch {
		case len(matching) > 0:
			accepted = matching
			newLastFound = m.level

		case skippable(m.lookup, oldCurrent):
			switch {
			case len(oldPrevious) > 0 && len(hierarchy.FilterSubplaces(m.lookup, ids, toSet(oldPrevious))) > 0:
				accepted = hierarchy.FilterSubplaces(m.lookup, ids, toSet(oldPrevious))
				stepSevenCurrent = oldPrevious
				newLastFound = m.level
				if !errorAlreadyReported {
					m.handler.SkippingParentLevel(m.text, m.words, m.level, hierarchy.RemoveChildren(m.lookup, accepted))
					reported = true
				}

			case !skippable(m.lookup, ids):
				accepted = ids
				stepSevenCurrent = nil
				newLastFound = m.level
				if !errorAlreadyReported {
					m.handler.SkippingParentLevel(m.text, m.words, m.level, hierarchy.RemoveChildren(m.lookup, accepted))
					reported = true
				}

			default:
				// Still empty: this level contributes nothing. Roll the
				// cursor back to the last confirmed pair rather than
				// leaving a half-matched frame in place.
				accepted = oldPrevious
				stepSevenCurrent = oldPrevious
				ignoreTypeToken = true
				if m.hasNonNoiseWord(m.words) && !errorAlreadyReported {
					m.handler.TokenNotFound(m.text, m.words, m.level, hierarchy.RemoveChildren(m.lookup, oldCurrent))
					reported = true
				}
			}

		default:
			accepted = oldPrevious
			stepSevenCurrent = oldPrevious
			ignoreTypeToken = true
			if m.hasNonNoiseWord(m.words) && !errorAlreadyReported {
				m.handler.TokenNotFound(m.text, m.words, m.level, hierarchy.RemoveChildren(m.lookup, oldCurrent))
				reported = true
			}
		}
	}

	if len(accepted) > 1 && tokens.HasType && !ignoreTypeToken {
		filtered := m.filterTypes(tokens.TypeToken, accepted)
		if len(filtered) > 0 {
			accepted = filtered
		} else if !errorAlreadyReported && !reported {
			m.handler.TypeNotFound(m.text, m.words, m.level, hierarchy.RemoveChildren(m.lookup, accepted))
			reported = true
		}
	}

	return Outcome{
		State: State{
			Previous:       stepSevenCurrent,
			Current:        accepted,
			LastFoundLevel: newLastFound,
		},
		RelevelWords:  relevel,
		ErrorReported: reported,
	}
}

// wordSkipLookup implements spec §4.4 step 1.
func (m *matchRun) wordSkipLookup() (ids []int, tokens tokenbuilder.Result, usedSkip int, found bool) {
	for skip := 0; skip < len(m.words); skip++ {
		built := tokenbuilder.Build(m.words, skip, m.cfg.Abbreviations, m.cfg.TypeWords)
		if !built.HasName {
			continue
		}
		got, ok := m.store.Word(built.NameToken)
		if ok && len(got) > 0 {
			return got, built, skip, true
		}
	}
	return nil, tokenbuilder.Result{}, 0, false
}

// relevelWords implements spec §4.4 step 2: the skipped left-hand words,
// minus noise and type words, to be re-inserted as a new coarser level.
func (m *matchRun) relevelWords(skipped []string) []string {
	var out []string
	for _, w := range skipped {
		if w == "" || m.cfg.NoiseWords[w] {
			continue
		}
		if tokenbuilder.IsTypeWord(w, m.cfg.Abbreviations, m.cfg.TypeWords) {
			continue
		}
		out = append(out, w)
	}
	return out
}

func (m *matchRun) hasNonNoiseWord(words []string) bool {
	for _, w := range words {
		if w != "" && !m.cfg.NoiseWords[w] {
			return true
		}
	}
	return false
}

// filterTypes keeps a place if its normalized primary name contains
// typeToken as a substring, or one of its normalized types does.
func (m *matchRun) filterTypes(typeToken string, ids []int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		place, ok := m.store.Place(id)
		if !ok {
			continue
		}
		if placeMatchesType(place, typeToken) {
			out = append(out, id)
		}
	}
	return out
}

func placeMatchesType(place *core.Place, typeToken string) bool {
	if containsToken(normalizer.NormalizeWord(place.Name), typeToken) {
		return true
	}
	for _, t := range place.Types {
		if containsToken(normalizer.NormalizeWord(t), typeToken) {
			return true
		}
	}
	return false
}

func containsToken(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(haystack, needle)
}

// skippable reports whether no place in ids is a country (level 1) or a
// US state (level 2, country USAID). An empty set is vacuously skippable.
func skippable(lookup hierarchy.Lookup, ids []int) bool {
	for _, id := range ids {
		place, ok := lookup.Place(id)
		if !ok {
			continue
		}
		if place.Level == 1 {
			return false
		}
		if place.Level == 2 && place.CountryID == core.USAID {
			return false
		}
	}
	return true
}

func toSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
