package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gazetteerlabs/placematch/pkg/core"
)

// Raw mirrors the property-list shape from spec §6: every field except
// PrimaryMatchWeight (a single real) is a comma-delimited string (or, for
// weight vectors, a comma-delimited list of reals) as it would be read
// from a file.
// Parse converts a Raw into a validated Config.
type Raw struct {
	TypeWords     string `koanf:"typeWords"`
	Abbreviations string `koanf:"abbreviations"`
	NoiseWords    string `koanf:"noiseWords"`

	LargeCountries  string `koanf:"largeCountries"`
	MediumCountries string `koanf:"mediumCountries"`

	LargeCountryLevelWeights  string `koanf:"largeCountryLevelWeights"`
	MediumCountryLevelWeights string `koanf:"mediumCountryLevelWeights"`
	SmallCountryLevelWeights  string `koanf:"smallCountryLevelWeights"`

	PrimaryMatchWeight float64 `koanf:"primaryMatchWeight"`
}

// DefaultRaw returns a Raw populated with a small English-language
// gazetteer default, sufficient to run the engine without an operator
// supplying a full property list.
func DefaultRaw() Raw {
	return Raw{
		TypeWords:                 "county,cemetery,city,township,parish,borough,province,state,district",
		Abbreviations:             "st=saint,mt=mount,ft=fort,co=county,twp=township,mo=missouri,ca=california,ny=new york",
		NoiseWords:                "the,of,and,in,near",
		LargeCountries:            fmt.Sprintf("%d", core.USAID),
		MediumCountries:           "",
		LargeCountryLevelWeights:  "1,2,4,8",
		MediumCountryLevelWeights: "1,3,6,10",
		SmallCountryLevelWeights:  "1,4,8,12",
		PrimaryMatchWeight:        5,
	}
}

// Parse validates and converts raw into a typed Config. Any malformed
// field (unparsable number, wrong-length weight vector) is a fatal
// configuration error, surfaced as a construction failure per spec §7.
func Parse(raw Raw) (*Config, error) {
	cfg := &Config{
		TypeWords:       splitSet(raw.TypeWords),
		NoiseWords:      splitSet(raw.NoiseWords),
		LargeCountries:  map[int]bool{},
		MediumCountries: map[int]bool{},
	}

	abbreviations, err := splitAbbreviations(raw.Abbreviations)
	if err != nil {
		return nil, fmt.Errorf("config: parsing abbreviations: %w", err)
	}
	cfg.Abbreviations = abbreviations

	if cfg.LargeCountries, err = splitIntSet(raw.LargeCountries); err != nil {
		return nil, fmt.Errorf("config: parsing largeCountries: %w", err)
	}
	if cfg.MediumCountries, err = splitIntSet(raw.MediumCountries); err != nil {
		return nil, fmt.Errorf("config: parsing mediumCountries: %w", err)
	}

	if cfg.LargeCountryLevelWeights, err = splitWeights(raw.LargeCountryLevelWeights); err != nil {
		return nil, fmt.Errorf("config: parsing largeCountryLevelWeights: %w", err)
	}
	if cfg.MediumCountryLevelWeights, err = splitWeights(raw.MediumCountryLevelWeights); err != nil {
		return nil, fmt.Errorf("config: parsing mediumCountryLevelWeights: %w", err)
	}
	if cfg.SmallCountryLevelWeights, err = splitWeights(raw.SmallCountryLevelWeights); err != nil {
		return nil, fmt.Errorf("config: parsing smallCountryLevelWeights: %w", err)
	}

	cfg.PrimaryMatchWeight = raw.PrimaryMatchWeight
	return cfg, nil
}

func splitSet(s string) map[string]bool {
	out := map[string]bool{}
	for _, w := range strings.Split(s, ",") {
		w = strings.TrimSpace(w)
		if w != "" {
			out[w] = true
		}
	}
	return out
}

func splitAbbreviations(s string) (map[string]string, error) {
	out := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		abbr, expansion, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed abbreviation entry %q, expected abbr=expansion", pair)
		}
		out[strings.TrimSpace(abbr)] = strings.TrimSpace(expansion)
	}
	return out, nil
}

func splitIntSet(s string) (map[int]bool, error) {
	out := map[int]bool{}
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, err := strconv.Atoi(entry)
		if err != nil {
			return nil, fmt.Errorf("malformed country id %q: %w", entry, err)
		}
		out[id] = true
	}
	return out, nil
}

func splitWeights(s string) ([core.MaxLevels]float64, error) {
	var out [core.MaxLevels]float64
	fields := strings.Split(s, ",")
	if len(fields) != core.MaxLevels {
		return out, fmt.Errorf("expected %d weights, got %d (%q)", core.MaxLevels, len(fields), s)
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return out, fmt.Errorf("malformed weight %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}
