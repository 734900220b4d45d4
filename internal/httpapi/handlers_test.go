package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gazetteerlabs/placematch/internal/engine"
	"github.com/gazetteerlabs/placematch/internal/testutil"
)

func testEngine(t *testing.T) *engine.Engine {
	t.Helper()
	dir := t.TempDir()

	placesPath := filepath.Join(dir, "places.txt")
	wordsPath := filepath.Join(dir, "place_words.txt")
	if err := os.WriteFile(placesPath, []byte("1|Missouri|||||2|1500\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(wordsPath, []byte("missouri|1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	eng, err := engine.New(context.Background(), engine.Config{
		ConfigDir:  dir,
		PlacesFile: placesPath,
		WordsFile:  wordsPath,
		Logger:     testutil.DiscardLogger(),
	})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	t.Cleanup(func() { _ = eng.Close() })
	return eng
}

func TestResolveHandler_ReturnsMatch(t *testing.T) {
	eng := testEngine(t)
	router := NewRouter(eng, "best", 3, testutil.DiscardLogger())

	body := `{"text":"Missouri","numResults":3}`
	req := httptest.NewRequest(http.MethodPost, "/v1/resolve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}

	var results []placeScoreDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(results) != 1 || results[0].Place.Name != "Missouri" {
		t.Fatalf("results = %+v, want a single Missouri match", results)
	}
}

func TestPlaceHandler_NotFound(t *testing.T) {
	eng := testEngine(t)
	router := NewRouter(eng, "best", 3, testutil.DiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/places/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestPlaceHandler_Found(t *testing.T) {
	eng := testEngine(t)
	router := NewRouter(eng, "best", 3, testutil.DiscardLogger())

	req := httptest.NewRequest(http.MethodGet, "/v1/places/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var place placeDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &place); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if place.Name != "Missouri" {
		t.Errorf("place.Name = %q, want Missouri", place.Name)
	}
}

