package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pathfind-labs/pathfind/core"
	"github.com/pathfind-labs/pathfind/csp"
	"github.com/pathfind-labs/pathfind/metrics"
	"github.com/pathfind-labs/pathfind/search"
	"github.com/pathfind-labs/pathfind/sudoku"
)

// strategies maps API names to search entry points.
var strategies = map[string]func(*core.Graph, string, string, ...search.Option) (*search.Result, error){
	"dfs":     search.DFS,
	"bfs":     search.BFS,
	"ids":     search.IDS,
	"ucs":     search.UCS,
	"greedy":  search.Greedy,
	"astar":   search.AStar,
	"idastar": search.IDAStar,
}

// solvers maps API names to csp entry points.
var solvers = map[string]func(*sudoku.Board, ...csp.Option) (*csp.Result, error){
	"backtracking": csp.Backtracking,
	"enhanced":     csp.Enhanced,
}

// server holds the shared state of the comparison service.
type server struct {
	graph     *core.Graph
	collector *metrics.Collector
	store     *metrics.Store
	log       zerolog.Logger
}

type routeRequest struct {
	Strategy string `json:"strategy"`
	Start    string `json:"start"`
	Goal     string `json:"goal"`
}

type routeResponse struct {
	Found     bool     `json:"found"`
	Path      []string `json:"path,omitempty"`
	Miles     float64  `json:"miles"`
	Expanded  int      `json:"expanded"`
	ElapsedMS float64  `json:"elapsed_ms"`
}

// handleRoute runs one search strategy over the embedded road network
// and records the run.
func (s *server) handleRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON: %v", err)
		return
	}

	run, ok := strategies[strings.ToLower(req.Strategy)]
	if !ok {
		httpError(w, http.StatusBadRequest, "unknown strategy %q", req.Strategy)
		return
	}

	res, err := run(s.graph, req.Start, req.Goal, search.WithContext(r.Context()))
	switch {
	case errors.Is(err, search.ErrUnknownNode):
		httpError(w, http.StatusBadRequest, "%v", err)
		return
	case err != nil:
		s.log.Error().Err(err).Str("strategy", req.Strategy).Msg("search failed")
		httpError(w, http.StatusInternalServerError, "search failed")
		return
	}

	s.record(metrics.Run{
		Label:    strings.ToLower(req.Strategy),
		Start:    req.Start,
		Goal:     req.Goal,
		Cost:     res.TotalCost,
		Expanded: res.Expanded,
		Elapsed:  res.Elapsed,
	})

	resp := routeResponse{
		Found:     res.Found(),
		Path:      res.Path,
		Expanded:  res.Expanded,
		ElapsedMS: float64(res.Elapsed) / float64(time.Millisecond),
	}
	if res.Found() {
		resp.Miles = res.TotalCost
	}
	writeJSON(w, s.log, http.StatusOK, resp)
}

type sudokuRequest struct {
	Solver string  `json:"solver"`
	Grid   [][]int `json:"grid"`
	Boxes  *bool   `json:"boxes,omitempty"` // nil ⇒ boxes when side is square
}

type sudokuResponse struct {
	Solved     bool    `json:"solved"`
	Grid       [][]int `json:"grid,omitempty"`
	Calls      int     `json:"calls"`
	Backtracks int     `json:"backtracks"`
	Pruned     int     `json:"pruned"`
	ElapsedMS  float64 `json:"elapsed_ms"`
}

// handleSudoku solves one puzzle with the requested strategy and
// records the run.
func (s *server) handleSudoku(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var req sudokuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON: %v", err)
		return
	}

	solve, ok := solvers[strings.ToLower(req.Solver)]
	if !ok {
		httpError(w, http.StatusBadRequest, "unknown solver %q", req.Solver)
		return
	}

	var opts []sudoku.Option
	if req.Boxes != nil && !*req.Boxes {
		opts = append(opts, sudoku.WithoutBoxes())
	}
	board, err := sudoku.New(req.Grid, opts...)
	if errors.Is(err, sudoku.ErrMalformedPuzzle) {
		httpError(w, http.StatusBadRequest, "%v", err)
		return
	} else if err != nil {
		s.log.Error().Err(err).Msg("board construction failed")
		httpError(w, http.StatusInternalServerError, "board construction failed")
		return
	}

	res, err := solve(board, csp.WithContext(r.Context()))
	if err != nil {
		s.log.Error().Err(err).Str("solver", req.Solver).Msg("solve failed")
		httpError(w, http.StatusInternalServerError, "solve failed")
		return
	}

	s.record(metrics.Run{
		Label:    strings.ToLower(req.Solver),
		Start:    fmt.Sprintf("sudoku-%dx%d", board.Side(), board.Side()),
		Expanded: res.Stats.Calls,
		Elapsed:  res.Stats.Elapsed,
	})

	resp := sudokuResponse{
		Solved:     res.Solved,
		Calls:      res.Stats.Calls,
		Backtracks: res.Stats.Backtracks,
		Pruned:     res.Stats.Pruned,
		ElapsedMS:  float64(res.Stats.Elapsed) / float64(time.Millisecond),
	}
	if res.Solved {
		resp.Grid = res.Board.Grid()
	}
	writeJSON(w, s.log, http.StatusOK, resp)
}

// handleRuns returns the most recently persisted runs, newest first.
func (s *server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}

	runs, err := s.store.Recent(50)
	if err != nil {
		s.log.Error().Err(err).Msg("run query failed")
		httpError(w, http.StatusInternalServerError, "run query failed")
		return
	}
	writeJSON(w, s.log, http.StatusOK, runs)
}

// record stamps the run, keeps it in memory, and persists it. Storage
// failures are logged, never surfaced: metrics must not break requests.
func (s *server) record(r metrics.Run) {
	stamped := s.collector.Record(r)
	if err := s.store.Save(stamped); err != nil {
		s.log.Warn().Err(err).Str("label", r.Label).Msg("run not persisted")
	}
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("response write failed")
	}
}

func httpError(w http.ResponseWriter, status int, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": fmt.Sprintf(format, args...),
	})
}
