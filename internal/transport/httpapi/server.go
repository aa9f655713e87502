// Package httpapi exposes the live transcript and suggestion list to the
// presentation layer over a small JSON API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sandevgo/cuebot/internal/core"
	"github.com/sandevgo/cuebot/pkg/log"
)

// SessionView is the read-only surface the API serves from.
type SessionView interface {
	ID() string
	Transcript() []core.Segment
	Suggestions() []core.Suggestion
}

type Server struct {
	srv     *http.Server
	session SessionView
}

func NewServer(addr string, session SessionView) *Server {
	s := &Server{session: session}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/transcript", s.handleTranscript)
	mux.HandleFunc("GET /v1/suggestions", s.handleSuggestions)

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.srv.Addr).Msg("starting http api")
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"session_id": s.session.ID(),
		"segments":   s.session.Transcript(),
	})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"session_id":  s.session.ID(),
		"suggestions": s.session.Suggestions(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
