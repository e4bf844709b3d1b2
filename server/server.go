// Package server exposes maze generation over HTTP.
//
// Routes (all GET):
//
//	/api/health                 liveness probe
//	/api/algorithms             generator names
//	/api/mazes/{algorithm}      one freshly generated maze
//
// Every request builds its own grid, so handlers share no mutable state.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/mazes/config"
)

// Server holds the configuration the handlers read.
type Server struct {
	cfg    config.Config
	logger *log.Logger
}

// New returns a Server using cfg. A nil logger falls back to log.Default().
func New(cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	return &Server{cfg: cfg, logger: logger}
}

// Routes builds the router with request IDs, request logging and panic
// recovery.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/algorithms", s.listAlgorithms)
		r.Get("/mazes/{algorithm}", s.getMaze)
	})

	return r
}

// respondJSON writes data as a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("[APP] [ERROR] encoding JSON: %v", err)
	}
}

// respondError writes {"error": message}.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
