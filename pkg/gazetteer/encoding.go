package gazetteer

import (
	"strconv"
	"strings"

	"github.com/gazetteerlabs/placematch/pkg/core"
)

// entrySep separates repeated entries within a delimited field
// (alt_names, types, also_located_in_ids, sources); tagSep separates an
// entry's text from its optional tag. Shared by the text file loader
// and the SQL backing store, both of which persist these fields the
// same way (see spec §6).
const (
	entrySep = "~"
	tagSep   = ":"
)

func splitEntries(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, entrySep)
}

func parseAltNames(s string) []core.AltName {
	entries := splitEntries(s)
	if len(entries) == 0 {
		return nil
	}
	out := make([]core.AltName, 0, len(entries))
	for _, e := range entries {
		text, source, _ := strings.Cut(e, tagSep)
		out = append(out, core.AltName{Text: text, Source: source})
	}
	return out
}

func parseSources(s string) []core.Source {
	entries := splitEntries(s)
	if len(entries) == 0 {
		return nil
	}
	out := make([]core.Source, 0, len(entries))
	for _, e := range entries {
		text, id, _ := strings.Cut(e, tagSep)
		out = append(out, core.Source{Text: text, ID: id})
	}
	return out
}

func parseTypes(s string) []string {
	return splitEntries(s)
}

func parseIDEntries(s string) []int {
	entries := splitEntries(s)
	return parseIntList(entries)
}

// parseCommaIDs parses the place_words "comma_separated_ids" field.
func parseCommaIDs(s string) []int {
	if s == "" {
		return nil
	}
	return parseIntList(strings.Split(s, ","))
}

func parseIntList(fields []string) []int {
	if len(fields) == 0 {
		return nil
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0.0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0.0
	}
	return v
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
