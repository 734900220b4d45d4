package engine

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gazetteerlabs/placematch/internal/errorreport"
	"github.com/gazetteerlabs/placematch/internal/testutil"
	"github.com/gazetteerlabs/placematch/pkg/core"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs("../../cmd/placematch/testdata")
	if err != nil {
		t.Fatalf("Abs: %v", err)
	}
	return dir
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	dir := testdataDir(t)
	eng, err := New(context.Background(), Config{
		ConfigDir:  dir,
		PlacesFile: filepath.Join(dir, "places.txt"),
		WordsFile:  filepath.Join(dir, "place_words.txt"),
		Logger:     testutil.NewTestLogger(t),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = eng.Close() })
	return eng
}

func TestNew_InMemoryMode(t *testing.T) {
	eng := newTestEngine(t)

	place, ok := eng.Place(2)
	if !ok || place.Name != "Missouri" {
		t.Fatalf("Place(2) = %+v, %v, want Missouri", place, ok)
	}
}

func TestNew_UnrecognizedDatabaseURLScheme(t *testing.T) {
	_, err := New(context.Background(), Config{
		ConfigDir:   testdataDir(t),
		DatabaseURL: "mysql://localhost/gazetteer",
	})
	if err == nil {
		t.Fatal("New with an unrecognized DATABASE_URL scheme should fail")
	}
}

func TestEngine_StandardizeDefault(t *testing.T) {
	eng := newTestEngine(t)

	results := eng.StandardizeDefault("St. Louis, Missouri", 3)
	if len(results) != 1 || results[0].Place.Name != "St. Louis" {
		t.Fatalf("results = %+v, want [St. Louis]", results)
	}
}

func TestEngine_StandardizeOne(t *testing.T) {
	eng := newTestEngine(t)

	place := eng.StandardizeOne("Missouri", 0)
	if place == nil || place.Name != "Missouri" {
		t.Fatalf("StandardizeOne = %+v, want Missouri", place)
	}

	if got := eng.StandardizeOne("Nowhere Entirely", 0); got != nil {
		t.Fatalf("StandardizeOne(unmatched) = %+v, want nil", got)
	}
}

func TestEngine_Standardize_ZeroNumResultsDefaultsToOne(t *testing.T) {
	eng := newTestEngine(t)

	results := eng.Standardize("Missouri", 0, core.ModeBest, 0)
	if len(results) != 1 {
		t.Fatalf("results = %+v, want exactly one (zero numResults defaults to 1)", results)
	}
}

func TestEngine_SetErrorHandler(t *testing.T) {
	eng := newTestEngine(t)

	var calls int
	eng.SetErrorHandler(&countingHandler{calls: &calls})

	eng.StandardizeDefault("Nowhere Entirely", 3)
	if calls == 0 {
		t.Error("installed handler was never invoked")
	}
}

func TestEngine_SetErrorHandler_NilRevertsToDiscard(t *testing.T) {
	eng := newTestEngine(t)
	eng.SetErrorHandler(nil)

	// Must not panic, and must behave like Discard.
	eng.StandardizeDefault("Nowhere Entirely", 3)
}

func TestEngine_Close_Idempotent(t *testing.T) {
	eng := newTestEngine(t)
	if err := eng.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := eng.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

type countingHandler struct {
	errorreport.Discard
	calls *int
}

func (h *countingHandler) PlaceNotFound(string, [][]string) {
	*h.calls++
}
