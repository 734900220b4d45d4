// Package resolver drives the level matcher across a normalized input's
// levels (spec §4.5): it walks coarsest to finest, threads the running
// candidate state through, handles relevel insertions, and calls the
// scorer to build the final result set.
package resolver

import (
	"github.com/gazetteerlabs/placematch/internal/config"
	"github.com/gazetteerlabs/placematch/internal/errorreport"
	"github.com/gazetteerlabs/placematch/internal/hierarchy"
	"github.com/gazetteerlabs/placematch/internal/matcher"
	"github.com/gazetteerlabs/placematch/internal/normalizer"
	"github.com/gazetteerlabs/placematch/internal/scorer"
	"github.com/gazetteerlabs/placematch/internal/tokenbuilder"
	"github.com/gazetteerlabs/placematch/pkg/core"
	"github.com/gazetteerlabs/placematch/pkg/gazetteer"
)

// Resolver ties the normalizer, the level matcher, and the scorer
// together behind the single entry point the engine calls.
type Resolver struct {
	cfg    *config.Config
	store  gazetteer.Store
	lookup hierarchy.Lookup
	norm   normalizer.Normalizer
}

// New builds a Resolver. lookup is usually the same value as store; it
// is accepted separately because the hierarchy walk only needs Place.
func New(cfg *config.Config, store gazetteer.Store, lookup hierarchy.Lookup, norm normalizer.Normalizer) *Resolver {
	return &Resolver{cfg: cfg, store: store, lookup: lookup, norm: norm}
}

// Resolve implements spec §4.5 end to end: normalize, walk levels
// coarsest to finest (re-queuing relevel words as they surface), then
// hand the final candidate state to the scorer.
func (r *Resolver) Resolve(handler errorreport.Handler, text string, mode core.Mode, numResults int) []core.PlaceScore {
	if handler == nil {
		handler = errorreport.Discard{}
	}

	levels := r.norm.Normalize(text)
	if !anySubstantiveWord(r.cfg, levels) {
		return nil
	}

	// queue holds the levels still to process, coarsest first: the
	// normalizer returns finest-first (§ normalizer doc), so the initial
	// queue is the reverse of levels.
	queue := make([][]string, len(levels))
	for i, lvl := range levels {
		queue[len(levels)-1-i] = lvl
	}

	var state matcher.State
	errorReported := false
	lastNameToken := ""

	for len(queue) > 0 {
		words := queue[0]
		queue = queue[1:]

		levelIndex := levelIndexFor(len(levels), len(queue))
		out := matcher.MatchLevel(r.cfg, r.store, r.lookup, handler, text, words, levelIndex, state, errorReported)
		state = out.State
		if out.ErrorReported {
			errorReported = true
		}

		if built := tokenbuilder.Build(words, 0, r.cfg.Abbreviations, r.cfg.TypeWords); built.HasName {
			lastNameToken = built.NameToken
		}

		if len(out.RelevelWords) > 0 {
			// Inserted immediately ahead of whatever is still queued, so
			// the resolver revisits this overflow before any level that
			// was already pending.
			queue = append([][]string{out.RelevelWords}, queue...)
		}
	}

	if len(state.Current) == 0 {
		if anySubstantiveWord(r.cfg, levels) {
			handler.PlaceNotFound(text, levels)
		}
		return nil
	}

	if mode == core.ModeRequired && state.LastFoundLevel != 0 {
		return nil
	}

	return scorer.Build(r.cfg, r.store, r.lookup, handler, scorer.Input{
		Text:           text,
		LevelWords:     levels,
		CandidateIDs:   state.Current,
		NameToken:      lastNameToken,
		LastFoundLevel: state.LastFoundLevel,
		Mode:           mode,
		NumResults:     numResults,
		ErrorReported:  errorReported,
	})
}

// levelIndexFor recovers the original, finest-first level index for
// reporting purposes: totalLevels is the count before any relevel
// insertions, remainingAfterPop is how many entries are still queued
// once the current one was popped. Relevel insertions report at the
// index of the level they were peeled from, since they carry no index
// of their own.
func levelIndexFor(totalLevels, remainingAfterPop int) int {
	idx := remainingAfterPop
	if idx >= totalLevels {
		idx = totalLevels - 1
	}
	return idx
}

// anySubstantiveWord reports whether any level holds a word that is
// neither noise nor a type word: the resolver treats an input made up
// purely of noise and/or type words the same as empty input (spec §7).
func anySubstantiveWord(cfg *config.Config, levels [][]string) bool {
	for _, level := range levels {
		for _, w := range level {
			if w == "" || cfg.NoiseWords[w] {
				continue
			}
			if tokenbuilder.IsTypeWord(w, cfg.Abbreviations, cfg.TypeWords) {
				continue
			}
			return true
		}
	}
	return false
}
