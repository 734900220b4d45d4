// Package errorreport defines the advisory callback contract a resolve
// call reports its anomalies through (spec §6). None of these callbacks
// may alter resolution: they are notification only, and the resolver
// always returns its best-effort result set regardless of what the
// handler does with them.
package errorreport

// Handler receives resolution anomalies. All five methods are advisory:
// implementations must not block or panic, since a slow or panicking
// handler directly stalls the calling resolve.
//
// At most one of TokenNotFound, SkippingParentLevel, TypeNotFound, and
// Ambiguous fires per resolve call (first wins); PlaceNotFound fires
// independently whenever it applies.
type Handler interface {
	// TokenNotFound reports that levelWords at levelIndex produced no
	// word-index hit. currentIDs is the running candidate set (with
	// descendants of other candidates already removed) at the time of
	// the miss.
	TokenNotFound(text string, levelWords []string, levelIndex int, currentIDs []int)

	// SkippingParentLevel reports that a level's candidates were
	// accepted only after discarding (skipping over) a prior, narrower
	// frame that no longer filters them.
	SkippingParentLevel(text string, levelWords []string, levelIndex int, candidateIDs []int)

	// TypeNotFound reports that a type token was present but filtered
	// the candidate set down to empty, so the unfiltered set was kept.
	TypeNotFound(text string, levelWords []string, levelIndex int, ids []int)

	// Ambiguous reports that resolution ended with more than one
	// candidate; chosenID is the place the scorer picked as the top
	// result. levelWords is the full input, all levels, not just the
	// one that produced the final candidate set.
	Ambiguous(text string, levelWords [][]string, candidateIDs []int, chosenID int)

	// PlaceNotFound reports that no level produced any candidate at
	// all, despite the input holding non-noise words.
	PlaceNotFound(text string, levelWords [][]string)
}

// Discard is a Handler that ignores every callback, the safe default
// for callers that don't need resolution diagnostics.
type Discard struct{}

func (Discard) TokenNotFound(string, []string, int, []int)       {}
func (Discard) SkippingParentLevel(string, []string, int, []int) {}
func (Discard) TypeNotFound(string, []string, int, []int)        {}
func (Discard) Ambiguous(string, [][]string, []int, int)         {}
func (Discard) PlaceNotFound(string, [][]string)                 {}

var _ Handler = Discard{}
