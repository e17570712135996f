// Package server exposes replay sessions over a JSON HTTP API.
//
//	POST   /sessions                 create from a graph definition
//	GET    /sessions                 list session ids
//	GET    /sessions/{id}            session and current step
//	GET    /sessions/{id}/steps      full history
//	POST   /sessions/{id}/next       advance
//	POST   /sessions/{id}/previous   step back
//	POST   /sessions/{id}/reset      rewind
//	DELETE /sessions/{id}            remove
//	GET    /metrics                  Prometheus
//	GET    /healthz                  liveness
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/dijkstep/config"
	"github.com/katalvlaran/dijkstep/internal/logging"
	"github.com/katalvlaran/dijkstep/session"
	"github.com/katalvlaran/dijkstep/steps"
)

// maxBodyBytes caps graph definitions accepted by POST /sessions.
const maxBodyBytes = 1 << 20

// Server holds the handlers' dependencies.
type Server struct {
	Manager  *session.Manager
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
}

// Option configures NewHandler.
type Option func(*Server)

// WithLogger sets the request error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.Logger = l
		}
	}
}

// WithGatherer serves /metrics from g instead of the default registry.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// NewHandler creates the HTTP handler for mgr.
func NewHandler(mgr *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		Manager:  mgr,
		Logger:   logging.NewNop(),
		Gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.CreateSession)
		r.Get("/", s.ListSessions)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetSession)
			r.Delete("/", s.DeleteSession)
			r.Get("/steps", s.GetSteps)
			r.Post("/next", s.navigate(s.Manager.Next))
			r.Post("/previous", s.navigate(s.Manager.Previous))
			r.Post("/reset", s.navigate(s.Manager.Reset))
		})
	})

	return r
}

// CreateSession handles POST /sessions.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		s.Logger.Warn("CreateSession: read body", "error", err)
		return
	}
	def, err := config.Parse(body, "json")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, step, err := s.Manager.Create(r.Context(), def)
	if err != nil {
		s.fail(w, "CreateSession", err)
		return
	}
	writeJSON(w, http.StatusCreated, SessionResponse{Session: fromRecord(rec), Step: fromStep(step)})
}

// ListSessions handles GET /sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Manager.List(r.Context())
	if err != nil {
		s.fail(w, "ListSessions", err)
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	writeJSON(w, http.StatusOK, listResponse{Sessions: ids})
}

// GetSession handles GET /sessions/{id}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	step, err := s.Manager.Current(r.Context(), id)
	if err != nil {
		s.fail(w, "GetSession", err)
		return
	}
	rec, err := s.Manager.Get(r.Context(), id)
	if err != nil {
		s.fail(w, "GetSession", err)
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{Session: fromRecord(rec), Step: fromStep(step)})
}

// GetSteps handles GET /sessions/{id}/steps.
func (s *Server) GetSteps(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	all, err := s.Manager.Steps(r.Context(), id)
	if err != nil {
		s.fail(w, "GetSteps", err)
		return
	}
	out := make([]StepDTO, len(all))
	for i, st := range all {
		out[i] = fromStep(st)
	}
	writeJSON(w, http.StatusOK, stepsResponse{Steps: out})
}

// DeleteSession handles DELETE /sessions/{id}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}
	if err := s.Manager.Delete(r.Context(), id); err != nil {
		s.fail(w, "DeleteSession", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// navigate adapts one Manager navigation to a handler.
func (s *Server) navigate(move func(context.Context, uuid.UUID) (steps.Step, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.sessionID(w, r)
		if !ok {
			return
		}
		step, err := move(r.Context(), id)
		if err != nil {
			s.fail(w, "Navigate", err)
			return
		}
		writeJSON(w, http.StatusOK, fromStep(step))
	}
}

func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

// fail maps domain errors to statuses. Unexpected errors are logged.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, session.ErrInvalidGraph):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrNoMoreSteps), errors.Is(err, session.ErrAtBeginning):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
		s.Logger.Error(op+" failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}
