package gazetteer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gazetteerlabs/placematch/pkg/core"
)

// fieldSep separates the top-level fields of a places or place_words
// record (see spec §6).
const fieldSep = "|"

// LoadTextFiles reads a places file and a place_words file in the
// pipe-delimited format from spec §6 and returns a ready MemoryStore.
// A malformed or unreadable file is a fatal load error; it is never
// surfaced as a resolution anomaly.
func LoadTextFiles(placesPath, wordsPath string) (*MemoryStore, error) {
	placesFile, err := os.Open(placesPath) //nolint:gosec // operator-supplied gazetteer data path
	if err != nil {
		return nil, fmt.Errorf("gazetteer: opening places file: %w", err)
	}
	defer func() { _ = placesFile.Close() }()

	places, err := ParsePlaces(placesFile)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: parsing places file %s: %w", placesPath, err)
	}

	wordsFile, err := os.Open(wordsPath) //nolint:gosec // operator-supplied gazetteer data path
	if err != nil {
		return nil, fmt.Errorf("gazetteer: opening place_words file: %w", err)
	}
	defer func() { _ = wordsFile.Close() }()

	words, err := ParseWords(wordsFile)
	if err != nil {
		return nil, fmt.Errorf("gazetteer: parsing place_words file %s: %w", wordsPath, err)
	}

	return NewMemoryStore(places, words), nil
}

// ParsePlaces decodes the `places` record format:
//
//	id | name | alt_names | types | located_in_id | also_located_in_ids | level | country_id | [latitude] | [longitude] | [sources]
func ParsePlaces(r io.Reader) (map[int]*core.Place, error) {
	places := make(map[int]*core.Place)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if text == "" {
			continue
		}

		fields := strings.Split(text, fieldSep)
		if len(fields) < 8 {
			return nil, fmt.Errorf("line %d: expected at least 8 fields, got %d", line, len(fields))
		}

		p := &core.Place{
			ID:               parseInt(fields[0]),
			Name:             fields[1],
			AltNames:         parseAltNames(fields[2]),
			Types:            parseTypes(fields[3]),
			LocatedInID:      parseInt(fields[4]),
			AlsoLocatedInIDs: parseIDEntries(fields[5]),
			Level:            parseInt(fields[6]),
			CountryID:        parseInt(fields[7]),
		}
		if len(fields) > 8 {
			p.Latitude = parseFloat(fields[8])
		}
		if len(fields) > 9 {
			p.Longitude = parseFloat(fields[9])
		}
		if len(fields) > 10 {
			p.Sources = parseSources(fields[10])
		}

		places[p.ID] = p
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return places, nil
}

// ParseWords decodes the `place_words` record format:
//
//	word | comma_separated_ids
func ParseWords(r io.Reader) (map[string][]int, error) {
	words := make(map[string][]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if text == "" {
			continue
		}

		word, idList, ok := strings.Cut(text, fieldSep)
		if !ok {
			return nil, fmt.Errorf("line %d: expected word%sids, got %q", line, fieldSep, text)
		}
		words[word] = parseCommaIDs(idList)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
