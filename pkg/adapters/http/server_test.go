package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aretw0/rivercross"
	"github.com/aretw0/rivercross/pkg/adapters/memory"
	"github.com/aretw0/rivercross/pkg/domain"
	"github.com/aretw0/rivercross/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSolver returns a canned error.
type MockSolver struct {
	Err error
}

func (m *MockSolver) Solve(ctx context.Context, strategy search.Strategy, start, goal domain.State) (*rivercross.Report, error) {
	return nil, m.Err
}

func newTestHandler() http.Handler {
	return NewHandler(rivercross.New(rivercross.WithCache(memory.NewCache())), nil)
}

func postSolve(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/solve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSolve_Classic(t *testing.T) {
	h := newTestHandler()
	body := `{"start": "3,3,1\n0,0,0", "goal": "0,0,0\n3,3,1", "strategy": "bfs"}`

	w := postSolve(t, h, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bfs", resp.Strategy)
	assert.True(t, resp.Found)
	assert.Equal(t, 11, resp.Steps)
	assert.Equal(t, 28, resp.Expanded)
	assert.Len(t, resp.Actions, 11)
	assert.True(t, strings.HasSuffix(resp.Transcript, "done in 11 steps!\n28 nodes were expanded\n"))
	assert.False(t, resp.Cached)

	w = postSolve(t, h, body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)
}

func TestSolve_DefaultsToBreadthFirst(t *testing.T) {
	w := postSolve(t, newTestHandler(), `{"start": "1,1,1\n0,0,0", "goal": "0,0,0\n1,1,1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bfs", resp.Strategy)
	assert.Equal(t, 1, resp.Steps)
}

func TestSolve_NotFoundIsNotAnError(t *testing.T) {
	w := postSolve(t, newTestHandler(), `{"start": "3,3,1\n0,0,0", "goal": "1,2,0\n2,1,1", "strategy": "dfs"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SolveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Actions)
	assert.Contains(t, resp.Transcript, "no solution found")
}

func TestSolve_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"Invalid JSON", `{"start":`, "invalid request body"},
		{"Unknown Strategy", `{"start": "3,3,1\n0,0,0", "goal": "0,0,0\n3,3,1", "strategy": "ucs"}`, "unknown strategy"},
		{"Malformed Start", `{"start": "3,x,1\n0,0,0", "goal": "0,0,0\n3,3,1"}`, "start"},
		{"Ambiguous Goal", `{"start": "3,3,1\n0,0,0", "goal": "0,0,1\n3,3,1"}`, "goal"},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postSolve(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.want)
		})
	}
}

func TestSolve_SolverErrors(t *testing.T) {
	body := `{"start": "3,3,1\n0,0,0", "goal": "0,0,0\n3,3,1", "strategy": "iddfs"}`

	w := postSolve(t, NewHandler(&MockSolver{Err: search.ErrDepthLimit}, nil), body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = postSolve(t, NewHandler(&MockSolver{Err: errors.New("boom")}, nil), body)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStrategies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/strategies", nil)
	w := httptest.NewRecorder()
	newTestHandler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"bfs", "dfs", "iddfs", "astar"}, got)
}

func TestGraph(t *testing.T) {
	q := url.Values{}
	q.Set("start", "3,3,1/0,0,0")
	q.Set("goal", "0,0,0\n3,3,1")
	q.Set("strategy", "astar")

	req := httptest.NewRequest(http.MethodGet, "/graph?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	newTestHandler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, strings.HasPrefix(w.Body.String(), "graph TD\n"))
	assert.Contains(t, w.Body.String(), "class s0 start;")
}

func TestGraph_NoSolution(t *testing.T) {
	q := url.Values{}
	q.Set("start", "4,4,1/0,0,0")
	q.Set("goal", "0,0,0/4,4,1")

	req := httptest.NewRequest(http.MethodGet, "/graph?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	newTestHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	newTestHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok\n", w.Body.String())
}

func TestSolve_OversizedState(t *testing.T) {
	huge := strings.Repeat("9", 2048)
	body := `{"start": "` + huge + `,3,1\n0,0,0", "goal": "0,0,0\n3,3,1"}`

	w := postSolve(t, newTestHandler(), body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestSolve_ControlCharactersStripped(t *testing.T) {
	w := postSolve(t, newTestHandler(), `{"start": "1,1,1\u001b\n0,0,0", "goal": "0,0,0\n1,1,1"}`)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSolve_BodyLimit(t *testing.T) {
	padding := strings.Repeat(" ", MaxBodyBytes)
	body := `{"start": "1,1,1\n0,0,0",` + padding + `"goal": "0,0,0\n1,1,1"}`

	w := postSolve(t, newTestHandler(), body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "invalid request body")
}
