package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/rivercross"
	"github.com/aretw0/rivercross/internal/logging"
	"github.com/aretw0/rivercross/internal/presentation/graph"
	"github.com/aretw0/rivercross/internal/sanitize"
	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/search"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Solver defines the subset of the rivercross facade the HTTP API needs.
type Solver interface {
	Solve(ctx context.Context, strategy search.Strategy, start, goal domain.State) (*rivercross.Report, error)
}

// Server exposes a Solver over HTTP.
type Server struct {
	Solver Solver
	Logger *slog.Logger
}

// SolveRequest is the body of POST /solve. States use the two-line file encoding.
type SolveRequest struct {
	Start    string `json:"start"`
	Goal     string `json:"goal"`
	Strategy string `json:"strategy,omitempty"`
}

// SolveResponse is the body returned by POST /solve.
type SolveResponse struct {
	Strategy   string   `json:"strategy"`
	Found      bool     `json:"found"`
	Steps      int      `json:"steps"`
	Expanded   int      `json:"expanded"`
	Actions    []string `json:"actions"`
	Transcript string   `json:"transcript"`
	Cached     bool     `json:"cached"`
}

// MaxBodyBytes caps the POST /solve body before it is decoded.
const MaxBodyBytes = 8 << 10

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a new HTTP handler for the solver.
// A nil logger discards request errors.
func NewHandler(solver Solver, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	server := &Server{Solver: solver, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/solve", server.Solve)
	r.Get("/strategies", server.Strategies)
	r.Get("/graph", server.Graph)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok\n"))
	})
	return r
}

// Solve handles the POST /solve request.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	var body SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeError(w, status, fmt.Errorf("invalid request body: %w", err))
		return
	}

	report, err := s.solve(r.Context(), body.Strategy, body.Start, body.Goal)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	s.writeJSON(w, http.StatusOK, SolveResponse{
		Strategy:   report.Strategy,
		Found:      report.Found,
		Steps:      report.Steps(),
		Expanded:   report.Expanded,
		Actions:    report.Actions,
		Transcript: report.Transcript(),
		Cached:     report.Cached,
	})
}

// Strategies handles the GET /strategies request.
func (s *Server) Strategies(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, search.Strategies())
}

// Graph handles the GET /graph request. Lines inside start and goal may be separated by
// "/" instead of a newline so the states fit in a query string.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	report, err := s.solve(r.Context(), q.Get("strategy"), unfold(q.Get("start")), unfold(q.Get("goal")))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	if !report.Found {
		s.writeError(w, http.StatusNotFound, errors.New("no solution found"))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(report.States, report.Actions))
}

func (s *Server) solve(ctx context.Context, strategy, start, goal string) (*rivercross.Report, error) {
	if strategy == "" {
		strategy = string(search.BFS)
	}
	st, err := search.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	from, err := decode(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	to, err := decode(goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	return s.Solver.Solve(ctx, st, from, to)
}

func decode(text string) (domain.State, error) {
	clean, err := sanitize.Input(text)
	if err != nil {
		return domain.State{}, err
	}
	return domain.Decode(clean)
}

func unfold(s string) string {
	return strings.ReplaceAll(s, "/", "\n")
}

func statusFor(err error) int {
	var perr *domain.ParseError
	switch {
	case errors.As(err, &perr), errors.Is(err, search.ErrUnknownStrategy):
		return http.StatusBadRequest
	case errors.Is(err, sanitize.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, sanitize.ErrInvalidUTF8):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrDepthLimit):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "status", status, "err", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
