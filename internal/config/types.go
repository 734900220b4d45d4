// Package config provides the engine's typed configuration record: the
// options listed in spec §6, parsed once and validated before the engine
// is constructed. It is decoupled from CLI concerns so embedders can
// build a Config directly without going through the command-line loader.
package config

import (
	"github.com/gazetteerlabs/placematch/pkg/core"
)

// Config is the engine's typed configuration, replacing the flat
// property list named in spec §6 with validated, already-parsed fields.
type Config struct {
	// TypeWords are common nouns indicating kind of place ("county",
	// "cemetery"); used as disambiguators, never as part of a name token.
	TypeWords map[string]bool
	// Abbreviations maps an abbreviated word to its expansion, e.g.
	// "st" -> "saint".
	Abbreviations map[string]string
	// NoiseWords carry no lookup value and are ignored by the engine.
	NoiseWords map[string]bool

	// LargeCountries and MediumCountries are country ids whose level
	// weights come from LargeCountryLevelWeights / MediumCountryLevelWeights
	// respectively; any other country uses SmallCountryLevelWeights.
	LargeCountries  map[int]bool
	MediumCountries map[int]bool

	// LargeCountryLevelWeights, MediumCountryLevelWeights, and
	// SmallCountryLevelWeights each hold exactly core.MaxLevels entries,
	// indexed by clamped level minus one.
	LargeCountryLevelWeights  [core.MaxLevels]float64
	MediumCountryLevelWeights [core.MaxLevels]float64
	SmallCountryLevelWeights  [core.MaxLevels]float64

	// PrimaryMatchWeight is added to a candidate's score when the name
	// token occurs as a substring of its normalized primary name.
	PrimaryMatchWeight float64
}

// CountryBucket classifies a country id into the weight vector it uses.
type CountryBucket int

const (
	BucketSmall CountryBucket = iota
	BucketMedium
	BucketLarge
)

// BucketFor classifies countryID per the large/medium/small rule in
// spec §4.6.
func (c *Config) BucketFor(countryID int) CountryBucket {
	if c.LargeCountries[countryID] {
		return BucketLarge
	}
	if c.MediumCountries[countryID] {
		return BucketMedium
	}
	return BucketSmall
}

// LevelWeights returns the weight vector for countryID's bucket.
func (c *Config) LevelWeights(countryID int) [core.MaxLevels]float64 {
	switch c.BucketFor(countryID) {
	case BucketLarge:
		return c.LargeCountryLevelWeights
	case BucketMedium:
		return c.MediumCountryLevelWeights
	default:
		return c.SmallCountryLevelWeights
	}
}
