// Package httpapi exposes the engine's standardize/place operations
// (spec §6) over a thin chi-routed JSON surface.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gazetteerlabs/placematch/internal/engine"
)

// NewRouter builds the HTTP surface over eng. defaultMode and
// defaultNumResults seed /v1/resolve when a request omits them.
func NewRouter(eng *engine.Engine, defaultMode string, defaultNumResults int, logger *slog.Logger) chi.Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(middleware.Timeout(30 * time.Second))

	SetupRoutes(r, eng, defaultMode, defaultNumResults)
	return r
}

// SetupRoutes registers the engine's operations onto router, matching
// the teacher codebase's feature-registration idiom.
func SetupRoutes(router chi.Router, eng *engine.Engine, defaultMode string, defaultNumResults int) {
	h := &handlers{eng: eng, defaultMode: defaultMode, defaultNumResults: defaultNumResults}

	router.Get("/healthz", h.health)
	router.Post("/v1/resolve", h.resolve)
	router.Get("/v1/places/{id}", h.place)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("elapsed", time.Since(start)),
			)
		})
	}
}
