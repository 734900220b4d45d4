package config

import (
	"testing"

	"github.com/gazetteerlabs/placematch/pkg/core"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(DefaultRaw())
	if err != nil {
		t.Fatalf("Parse(DefaultRaw()): %v", err)
	}
	if !cfg.TypeWords["county"] {
		t.Error("expected \"county\" in TypeWords")
	}
	if cfg.Abbreviations["st"] != "saint" {
		t.Errorf("abbreviations[st] = %q, want saint", cfg.Abbreviations["st"])
	}
	if !cfg.LargeCountries[core.USAID] {
		t.Error("expected USAID in LargeCountries")
	}
	if cfg.BucketFor(core.USAID) != BucketLarge {
		t.Errorf("BucketFor(USAID) = %v, want BucketLarge", cfg.BucketFor(core.USAID))
	}
	if cfg.BucketFor(999999) != BucketSmall {
		t.Errorf("BucketFor(unknown) = %v, want BucketSmall", cfg.BucketFor(999999))
	}
}

func TestParse_RejectsWrongLengthWeights(t *testing.T) {
	raw := DefaultRaw()
	raw.LargeCountryLevelWeights = "1,2,3"
	if _, err := Parse(raw); err == nil {
		t.Fatal("expected error for wrong-length weight vector")
	}
}

func TestParse_RejectsMalformedAbbreviation(t *testing.T) {
	raw := DefaultRaw()
	raw.Abbreviations = "st-saint"
	if _, err := Parse(raw); err == nil {
		t.Fatal("expected error for malformed abbreviation entry")
	}
}

func TestParse_RejectsMalformedCountryID(t *testing.T) {
	raw := DefaultRaw()
	raw.LargeCountries = "usa"
	if _, err := Parse(raw); err == nil {
		t.Fatal("expected error for non-numeric country id")
	}
}

func TestLevelWeights_PicksBucket(t *testing.T) {
	cfg, err := Parse(DefaultRaw())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.LevelWeights(core.USAID) != cfg.LargeCountryLevelWeights {
		t.Error("expected large country weights for USAID")
	}
	if cfg.LevelWeights(1) != cfg.SmallCountryLevelWeights {
		t.Error("expected small country weights for an unlisted country")
	}
}
