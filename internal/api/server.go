// Package api serves stored simulation results as a small read-only JSON
// API.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mopoly/internal/config"
	"mopoly/internal/results"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	cfg   config.APIConfig
	log   *slog.Logger
	store *results.Store
	mux   *chi.Mux
}

func New(cfg config.APIConfig, logger *slog.Logger, store *results.Store) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:   cfg,
		log:   logger,
		store: store,
		mux:   chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/runs", s.handleRunsList)
		r.Get("/runs/{id}", s.handleRunDetail)
	})
}

func (s *Server) handleRunsList(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.ListRuns(r.Context())
	if err != nil {
		s.log.Error("list runs failed", "err", err)
		writeError(w, http.StatusInternalServerError, "list runs failed")
		return
	}
	if runs == nil {
		runs = []results.Run{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (s *Server) handleRunDetail(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	run, err := s.store.GetRun(r.Context(), id)
	if errors.Is(err, results.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		s.log.Error("get run failed", "run_id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "get run failed")
		return
	}
	games, err := s.store.RunGames(r.Context(), id)
	if err != nil {
		s.log.Error("get run games failed", "run_id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "get run failed")
		return
	}
	if games == nil {
		games = []results.GameRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"run": run, "games": games})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
