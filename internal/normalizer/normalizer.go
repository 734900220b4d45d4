// Package normalizer turns free-text place references into the level/word
// structure the matching engine consumes. The engine treats the Normalizer
// as an external collaborator (spec §2.2); this package supplies both the
// interface and a concrete default so the engine is runnable standalone.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Normalizer turns raw input text into a list of levels, each a list of
// normalized word tokens, coarsest level last (matching the engine's
// right-to-left traversal order).
type Normalizer interface {
	Normalize(input string) [][]string
}

var (
	levelSepPattern   = regexp.MustCompile(`[,;]+`)
	nonWordPattern    = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	nonAlnumPattern   = regexp.MustCompile(`[^a-z0-9]`)
)

// NormalizeWord reduces s to the same concatenated, diacritic-free,
// alphanumeric-only shape the word index and the token builder use, so a
// gazetteer place name can be compared against a name or type token with
// a plain substring test.
func NormalizeWord(s string) string {
	working := strings.ToLower(s)
	working = unidecode.Unidecode(working)
	return nonAlnumPattern.ReplaceAllString(working, "")
}

// Default is the default Normalizer: lowercases, strips diacritics,
// splits on commas and semicolons into levels, and splits each level
// into words on whitespace. A period is not a level separator: it is
// stripped like any other non-word character, so "St. Louis, Mo." and
// "St Louis, Mo" both yield the level ["st", "louis"] rather than the
// period fracturing "St." into its own level.
type Default struct{}

// New returns the Default normalizer.
func New() *Default {
	return &Default{}
}

// Normalize implements Normalizer.
func (d *Default) Normalize(input string) [][]string {
	working := strings.ToLower(strings.TrimSpace(input))
	working = unidecode.Unidecode(working)
	working = levelSepPattern.ReplaceAllString(working, ",")

	rawLevels := strings.Split(working, ",")
	levels := make([][]string, 0, len(rawLevels))
	for _, level := range rawLevels {
		level = nonWordPattern.ReplaceAllString(level, " ")
		level = whitespacePattern.ReplaceAllString(level, " ")
		level = strings.TrimSpace(level)
		if level == "" {
			continue
		}
		levels = append(levels, strings.Fields(level))
	}
	return levels
}

var _ Normalizer = (*Default)(nil)
