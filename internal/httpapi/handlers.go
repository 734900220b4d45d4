package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gazetteerlabs/placematch/internal/engine"
	"github.com/gazetteerlabs/placematch/pkg/core"
)

type handlers struct {
	eng               *engine.Engine
	defaultMode       string
	defaultNumResults int
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type resolveRequest struct {
	Text           string `json:"text"`
	DefaultCountry int    `json:"defaultCountry"`
	Mode           string `json:"mode"`
	NumResults     int    `json:"numResults"`
}

type placeScoreDTO struct {
	Place *placeDTO `json:"place"`
	Score float64   `json:"score"`
}

type placeDTO struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Types       []string `json:"types,omitempty"`
	LocatedInID int      `json:"locatedInId,omitempty"`
	Level       int      `json:"level"`
	CountryID   int      `json:"countryId"`
	Latitude    float64  `json:"latitude,omitempty"`
	Longitude   float64  `json:"longitude,omitempty"`
}

func (h *handlers) resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	mode, err := parseMode(req.Mode, h.defaultMode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	numResults := req.NumResults
	if numResults <= 0 {
		numResults = h.defaultNumResults
	}

	results := h.eng.Standardize(req.Text, req.DefaultCountry, mode, numResults)

	dtos := make([]placeScoreDTO, 0, len(results))
	for _, res := range results {
		dtos = append(dtos, placeScoreDTO{Place: toPlaceDTO(res.Place), Score: res.Score})
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *handlers) place(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	place, ok := h.eng.Place(id)
	if !ok {
		writeError(w, http.StatusNotFound, "place not found")
		return
	}
	writeJSON(w, http.StatusOK, toPlaceDTO(place))
}

func parseMode(requested, fallback string) (core.Mode, error) {
	s := requested
	if s == "" {
		s = fallback
	}
	switch s {
	case "best", "":
		return core.ModeBest, nil
	case "required":
		return core.ModeRequired, nil
	case "new":
		return core.ModeNew, nil
	default:
		return core.ModeBest, fmt.Errorf("unknown mode %q", s)
	}
}

func toPlaceDTO(p *core.Place) *placeDTO {
	if p == nil {
		return nil
	}
	return &placeDTO{
		ID:          p.ID,
		Name:        p.Name,
		Types:       p.Types,
		LocatedInID: p.LocatedInID,
		Level:       p.Level,
		CountryID:   p.CountryID,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
