package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/rivercross"
	"github.com/aretw0/rivercross/internal/sanitize"
	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/search"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const strategiesURI = "rivercross://strategies"

// Solver defines the interface required by the MCP server to run searches.
type Solver interface {
	Solve(ctx context.Context, strategy search.Strategy, start, goal domain.State) (*rivercross.Report, error)
}

// SolveArgs are the arguments of the solve tool.
type SolveArgs struct {
	Start    string `json:"start"`
	Goal     string `json:"goal"`
	Strategy string `json:"strategy,omitempty"`
}

// SolveResponse aligns with the HTTP API and provides a unified structure across adapters.
type SolveResponse struct {
	Strategy   string   `json:"strategy" jsonschema_description:"The strategy that produced the result"`
	Found      bool     `json:"found" jsonschema_description:"False when the reachable space was exhausted"`
	Steps      int      `json:"steps" jsonschema_description:"Number of crossings"`
	Expanded   int      `json:"expanded" jsonschema_description:"Successors generated during the search"`
	Actions    []string `json:"actions" jsonschema_description:"Crossing labels from start to goal"`
	Transcript string   `json:"transcript" jsonschema_description:"Plain text report"`
	Cached     bool     `json:"cached" jsonschema_description:"True when served from the solution cache"`
}

// ValidateArgs are the arguments of the validate_state tool.
type ValidateArgs struct {
	State string `json:"state"`
}

// ValidateResponse reports whether a state decodes and whether it is safe.
type ValidateResponse struct {
	WellFormed bool          `json:"well_formed" jsonschema_description:"The text decodes as a state"`
	Safe       bool          `json:"safe" jsonschema_description:"No bank has missionaries outnumbered by cannibals"`
	State      *domain.State `json:"state,omitempty" jsonschema_description:"The decoded state"`
	Error      string        `json:"error,omitempty" jsonschema_description:"Decode error, if any"`
}

// Server wraps a Solver and exposes it as an MCP Server.
type Server struct {
	solver    Solver
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(solver Solver) *Server {
	s := &Server{
		solver:    solver,
		mcpServer: server.NewMCPServer("rivercross-mcp", strings.TrimSpace(rivercross.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	solveTool := mcp.NewTool("solve",
		mcp.WithDescription("Solve a missionaries and cannibals crossing. States are two lines 'missionaries,cannibals,boat', left bank first."),
		mcp.WithString("start", mcp.Required(), mcp.Description("Start state, e.g. \"3,3,1\\n0,0,0\"")),
		mcp.WithString("goal", mcp.Required(), mcp.Description("Goal state, e.g. \"0,0,0\\n3,3,1\"")),
		mcp.WithString("strategy",
			mcp.Description("Search strategy (default bfs)"),
			mcp.Enum("bfs", "dfs", "iddfs", "astar"),
		),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	validateTool := mcp.NewTool("validate_state",
		mcp.WithDescription("Decode a state and check the bank safety rule."),
		mcp.WithString("state", mcp.Required(), mcp.Description("State in the two-line encoding")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args SolveArgs) (SolveResponse, error) {
	strategy := args.Strategy
	if strategy == "" {
		strategy = string(search.BFS)
	}
	st, err := search.ParseStrategy(strategy)
	if err != nil {
		return SolveResponse{}, err
	}
	start, err := decode(args.Start)
	if err != nil {
		return SolveResponse{}, fmt.Errorf("start: %w", err)
	}
	goal, err := decode(args.Goal)
	if err != nil {
		return SolveResponse{}, fmt.Errorf("goal: %w", err)
	}

	report, err := s.solver.Solve(ctx, st, start, goal)
	if err != nil {
		return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
	}

	return SolveResponse{
		Strategy:   report.Strategy,
		Found:      report.Found,
		Steps:      report.Steps(),
		Expanded:   report.Expanded,
		Actions:    report.Actions,
		Transcript: report.Transcript(),
		Cached:     report.Cached,
	}, nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args ValidateArgs) (ValidateResponse, error) {
	state, err := decode(args.State)
	if err != nil {
		return ValidateResponse{Error: err.Error()}, nil
	}
	return ValidateResponse{
		WellFormed: true,
		Safe:       state.IsValid(),
		State:      &state,
	}, nil
}

func decode(text string) (domain.State, error) {
	clean, err := sanitize.Input(text)
	if err != nil {
		slog.Warn("MCP input rejected", "err", err, "size", len(text))
		return domain.State{}, err
	}
	return domain.Decode(clean)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(strategiesURI, "Search Strategies",
		mcp.WithResourceDescription("Strategy selectors accepted by the solve tool"),
		mcp.WithMIMEType("application/json"),
	), s.readStrategies)
}

func (s *Server) readStrategies(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(search.Strategies())
	if err != nil {
		return nil, fmt.Errorf("failed to encode strategies: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      strategiesURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
