// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"
	"github.com/zenazn/goji/web"
)

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	API            *APIHandlers
	AllowedOrigins []string
}

// NewRouter wires the HTTP routes:
//
//	GET  /healthz             liveness
//	GET  /api/state           current snapshot and session counters
//	GET  /api/graph           graph document of the current run
//	GET  /api/history/:index  archived snapshot (0 = initial)
//	POST /api/next            one micro-step
//	POST /api/prev            undo one micro-step
//	POST /api/run             step to termination
//	POST /api/reset           restart; optional JSON graph document body
func NewRouter(logger *slog.Logger, deps RouterDependencies) http.Handler {
	mux := web.New()
	mux.Use(loggingMiddleware(logger))

	mux.Handle("/healthz", only(http.MethodGet, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	}))

	if deps.API != nil {
		api := deps.API
		mux.Handle("/api/state", only(http.MethodGet, api.handleState))
		mux.Handle("/api/graph", only(http.MethodGet, api.handleGraph))
		mux.Handle("/api/history/:index", func(c web.C, w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			api.handleHistory(c.URLParams["index"], w, r)
		})
		mux.Handle("/api/next", only(http.MethodPost, api.handleNext))
		mux.Handle("/api/prev", only(http.MethodPost, api.handlePrev))
		mux.Handle("/api/run", only(http.MethodPost, api.handleRun))
		mux.Handle("/api/reset", only(http.MethodPost, api.handleReset))
	}

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "no route for "+r.URL.Path)
	})

	var handler http.Handler = mux
	if origins := normalizeOrigins(deps.AllowedOrigins); len(origins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler(handler)
	}

	return handler
}

// only rejects every method but method with 405.
func only(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			methodNotAllowed(w, method)
			return
		}
		h(w, r)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	respondError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func normalizeOrigins(origins []string) []string {
	var out []string
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			out = append(out, origin)
		}
	}
	return out
}
