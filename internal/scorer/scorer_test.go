package scorer

import (
	"testing"

	"github.com/gazetteerlabs/placematch/internal/config"
	"github.com/gazetteerlabs/placematch/internal/errorreport"
	"github.com/gazetteerlabs/placematch/pkg/core"
	"github.com/gazetteerlabs/placematch/pkg/gazetteer"
)

func testStore() *gazetteer.MemoryStore {
	places := map[int]*core.Place{
		1: {ID: 1, Name: "St. Louis", Level: 3, CountryID: core.USAID},
		2: {ID: 2, Name: "St. Louis Cemetery", Level: 4, CountryID: core.USAID, LocatedInID: 1},
		3: {ID: 3, Name: "Somewhere Else", Level: 3, CountryID: core.USAID},
	}
	return gazetteer.NewMemoryStore(places, nil)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse(config.DefaultRaw())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return cfg
}

func TestBuild_SingleCandidate(t *testing.T) {
	store := testStore()
	cfg := testConfig(t)

	results := Build(cfg, store, store, errorreport.Discard{}, Input{
		Text:         "St. Louis Cemetery",
		CandidateIDs: []int{2},
		NameToken:    "stlouiscemetery",
		NumResults:   3,
	})

	if len(results) != 1 || results[0].Place.ID != 2 {
		t.Fatalf("results = %+v, want single place id 2", results)
	}
	// level 4, large-country weight vector index 3 (1,2,4,8 by default) plus primary match.
	wantWeight := cfg.LargeCountryLevelWeights[3] + cfg.PrimaryMatchWeight
	if results[0].Score != wantWeight {
		t.Errorf("Score = %v, want %v", results[0].Score, wantWeight)
	}
}

func TestBuild_RemovesChildrenBeforeScoring(t *testing.T) {
	store := testStore()
	cfg := testConfig(t)

	// Place 2 is a descendant of place 1; only place 1 should remain and
	// resolve to a single-candidate result (no ambiguous callback).
	var ambiguousFired bool
	handler := &countingHandler{onAmbiguous: func() { ambiguousFired = true }}

	results := Build(cfg, store, store, handler, Input{
		Text:         "St. Louis",
		CandidateIDs: []int{1, 2},
		NameToken:    "stlouis",
		NumResults:   3,
	})

	if len(results) != 1 || results[0].Place.ID != 1 {
		t.Fatalf("results = %+v, want single place id 1 (2 is 1's child)", results)
	}
	if ambiguousFired {
		t.Error("did not expect an ambiguous callback once remove_children leaves one candidate")
	}
}

func TestBuild_SortsByScoreThenID(t *testing.T) {
	store := testStore()
	cfg := testConfig(t)

	results := Build(cfg, store, store, errorreport.Discard{}, Input{
		Text:         "St. Louis",
		CandidateIDs: []int{3, 1},
		NameToken:    "stlouis",
		NumResults:   3,
	})

	if len(results) != 2 {
		t.Fatalf("results = %+v, want 2", results)
	}
	// Place 1's name contains the name token ("St. Louis" itself);
	// place 3's doesn't, so place 1 scores higher and sorts first.
	if results[0].Place.ID != 1 {
		t.Errorf("results[0].Place.ID = %d, want 1 (primary match outranks)", results[0].Place.ID)
	}
}

func TestBuild_EmitsAmbiguousWithPreTrimSet(t *testing.T) {
	store := testStore()
	cfg := testConfig(t)

	var gotIDs []int
	var gotChosen int
	handler := &countingHandler{onAmbiguous: func() {}, onAmbiguousFull: func(ids []int, chosen int) {
		gotIDs = ids
		gotChosen = chosen
	}}

	results := Build(cfg, store, store, handler, Input{
		Text:         "St. Louis",
		CandidateIDs: []int{3, 1},
		NameToken:    "stlouis",
		NumResults:   1,
	})

	if len(results) != 1 {
		t.Fatalf("results = %+v, want trimmed to 1", results)
	}
	if len(gotIDs) != 2 {
		t.Errorf("ambiguous callback candidate set = %v, want both pre-trim ids", gotIDs)
	}
	if gotChosen != 1 {
		t.Errorf("ambiguous callback chosen = %d, want 1", gotChosen)
	}
}

func TestBuild_NewModeSynthesizesPlaceholder(t *testing.T) {
	store := testStore()
	cfg := testConfig(t)

	results := Build(cfg, store, store, errorreport.Discard{}, Input{
		Text:           "Cemetery, St. Louis",
		LevelWords:     [][]string{{"cemetery"}, {"st", "louis"}},
		CandidateIDs:   []int{1},
		NameToken:      "stlouis",
		LastFoundLevel: 1,
		Mode:           core.ModeNew,
		NumResults:     3,
	})

	if len(results) != 1 {
		t.Fatalf("results = %+v, want a single synthesized place", results)
	}
	got := results[0]
	if got.Place.Name != "Cemetery" {
		t.Errorf("synthesized name = %q, want Cemetery", got.Place.Name)
	}
	if got.Place.LocatedInID != 1 {
		t.Errorf("synthesized located_in_id = %d, want 1", got.Place.LocatedInID)
	}
	if got.Score != 0 {
		t.Errorf("synthesized score = %v, want 0", got.Score)
	}
}

func TestGeneratePlaceName_DropsTrailingTypeWordsExceptCemetery(t *testing.T) {
	cfg := testConfig(t)

	if got := generatePlaceName(cfg, []string{"saint", "louis", "county"}); got != "Saint Louis" {
		t.Errorf("got %q, want %q", got, "Saint Louis")
	}
	if got := generatePlaceName(cfg, []string{"saint", "louis", "cemetery"}); got != "Saint Louis Cemetery" {
		t.Errorf("got %q, want %q", got, "Saint Louis Cemetery")
	}
	if got := generatePlaceName(cfg, []string{"county"}); got != "County" {
		t.Errorf("all-type-word input: got %q, want %q", got, "County")
	}
}

type countingHandler struct {
	errorreport.Discard
	onAmbiguous     func()
	onAmbiguousFull func(ids []int, chosen int)
}

func (h *countingHandler) Ambiguous(_ string, _ [][]string, ids []int, chosen int) {
	if h.onAmbiguous != nil {
		h.onAmbiguous()
	}
	if h.onAmbiguousFull != nil {
		h.onAmbiguousFull(ids, chosen)
	}
}
