package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/rivercross"
	"github.com/aretw0/rivercross/pkg/adapters/memory"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return NewServer(rivercross.New(rivercross.WithCache(memory.NewCache())))
}

func TestHandleSolve(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, SolveArgs{
		Start:    "3,3,1\n0,0,0",
		Goal:     "0,0,0\n3,3,1",
		Strategy: "iddfs",
	})
	require.NoError(t, err)
	assert.Equal(t, "iddfs", resp.Strategy)
	assert.True(t, resp.Found)
	assert.Equal(t, 11, resp.Steps)
	assert.Equal(t, 182, resp.Expanded)
	assert.Contains(t, resp.Transcript, "done in 11 steps!")
	assert.False(t, resp.Cached)
}

func TestHandleSolve_Errors(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name string
		args SolveArgs
		want string
	}{
		{"Unknown Strategy", SolveArgs{Start: "1,1,1\n0,0,0", Goal: "0,0,0\n1,1,1", Strategy: "ucs"}, "unknown search strategy"},
		{"Bad Start", SolveArgs{Start: "1,1\n0,0,0", Goal: "0,0,0\n1,1,1"}, "start"},
		{"Bad Goal", SolveArgs{Start: "1,1,1\n0,0,0", Goal: "0,0,0\n1,1,0"}, "goal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSolveTool_StructuredResult(t *testing.T) {
	handler := mcp.NewStructuredToolHandler(newTestServer().handleSolve)

	req := mcp.CallToolRequest{}
	req.Params.Name = "solve"
	req.Params.Arguments = map[string]any{
		"start": "1,1,1\n0,0,0",
		"goal":  "0,0,0\n1,1,1",
	}

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, result.IsError)

	resp, ok := result.StructuredContent.(SolveResponse)
	require.True(t, ok)
	assert.Equal(t, "bfs", resp.Strategy)
	assert.Equal(t, []string{"move 1 missionary and 1 cannibal from left to right"}, resp.Actions)

	req.Params.Arguments = map[string]any{"start": "nope", "goal": "0,0,0\n1,1,1"}
	result, err = handler(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleValidate(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleValidate(context.Background(), mcp.CallToolRequest{}, ValidateArgs{State: "3,3,1\n0,0,0"})
	require.NoError(t, err)
	assert.True(t, resp.WellFormed)
	assert.True(t, resp.Safe)
	require.NotNil(t, resp.State)
	assert.Equal(t, 3, resp.State.Left.Missionaries)

	resp, err = s.handleValidate(context.Background(), mcp.CallToolRequest{}, ValidateArgs{State: "1,2,0\n2,1,1"})
	require.NoError(t, err)
	assert.True(t, resp.WellFormed)
	assert.False(t, resp.Safe)

	resp, err = s.handleValidate(context.Background(), mcp.CallToolRequest{}, ValidateArgs{State: "1,1,1\n1,1,1"})
	require.NoError(t, err)
	assert.False(t, resp.WellFormed)
	assert.Contains(t, resp.Error, "both banks")
}

func TestReadStrategies(t *testing.T) {
	contents, err := newTestServer().readStrategies(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, strategiesURI, text.URI)
	assert.JSONEq(t, `["bfs","dfs","iddfs","astar"]`, text.Text)
}
