package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathfind-labs/pathfind/metrics"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	graph, err := buildDataset()
	require.NoError(t, err)
	store, err := metrics.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return &server{
		graph:     graph,
		collector: metrics.NewCollector(),
		store:     store,
		log:       zerolog.New(os.Stderr),
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler(rec, req)

	return rec
}

func TestHandleRoute_OK(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s.handleRoute, "/api/route", routeRequest{
		Strategy: "ucs", Start: "Rochester", Goal: "Albany",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp routeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, []string{"Rochester", "Syracuse", "Utica", "Albany"}, resp.Path)
	assert.Equal(t, 235.0, resp.Miles)
	assert.Positive(t, resp.Expanded)

	// The run is recorded and persisted.
	assert.Equal(t, 1, s.collector.Len())
	stored, err := s.store.ForQuery("Rochester", "Albany")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestHandleRoute_UnknownStrategy(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s.handleRoute, "/api/route", routeRequest{
		Strategy: "dijkstra", Start: "Rochester", Goal: "Albany",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRoute_UnknownCity(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s.handleRoute, "/api/route", routeRequest{
		Strategy: "ucs", Start: "Rochester", Goal: "Toronto",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, s.collector.Len())
}

func TestHandleRoute_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/route", nil)
	rec := httptest.NewRecorder()
	s.handleRoute(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleRoute_AllStrategiesAgreeOnReachability(t *testing.T) {
	s := newTestServer(t)
	for name := range strategies {
		rec := postJSON(t, s.handleRoute, "/api/route", routeRequest{
			Strategy: name, Start: "Buffalo", Goal: "New York City",
		})
		require.Equal(t, http.StatusOK, rec.Code, name)

		var resp routeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Found, name)
	}
}

func TestHandleSudoku_OK(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s.handleSudoku, "/api/sudoku", sudokuRequest{
		Solver: "enhanced",
		Grid: [][]int{
			{1, 2, 0, 0},
			{3, 4, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 3},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp sudokuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Solved)
	require.Len(t, resp.Grid, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, resp.Grid[0])
	assert.Equal(t, 1, s.collector.Len())
}

func TestHandleSudoku_Malformed(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s.handleSudoku, "/api/sudoku", sudokuRequest{
		Solver: "backtracking",
		Grid: [][]int{
			{1, 1, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSudoku_UnknownSolver(t *testing.T) {
	s := newTestServer(t)
	rec := postJSON(t, s.handleSudoku, "/api/sudoku", sudokuRequest{
		Solver: "dancing-links", Grid: [][]int{{0}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRuns_Listing(t *testing.T) {
	s := newTestServer(t)
	postJSON(t, s.handleRoute, "/api/route", routeRequest{
		Strategy: "astar", Start: "Rochester", Goal: "Albany",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	rec := httptest.NewRecorder()
	s.handleRuns(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var runs []metrics.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "astar", runs[0].Label)
}

func TestBuildDataset_EdgesMirrored(t *testing.T) {
	g, err := buildDataset()
	require.NoError(t, err)
	assert.Equal(t, len(cities), g.NodeCount())
	assert.Equal(t, len(roads), g.EdgeCount())
	for _, r := range roads {
		_, ok := g.Weight(r.b, r.a)
		assert.True(t, ok, "%s-%s not mirrored", r.b, r.a)
	}
}
