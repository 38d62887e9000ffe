// Package csp: the constraint-propagation-enhanced strategy - forward
// checking, AC-3 arc consistency, and MRV/LCV ordering heuristics.
package csp

import (
	"sort"
	"time"

	"github.com/pathfind-labs/pathfind/sudoku"
)

// Enhanced solves the board by backtracking with forward checking and
// arc consistency. An AC-3 pass runs once before the search and after
// every assignment; domain removals are trailed as (cell, value) pairs
// and popped on backtrack, never snapshotted. Variable order is
// most-constrained-first, value order least-constraining-first, both
// with fixed deterministic tie-breaks.
//
// The input board is cloned; Result.Board carries the outcome. Domain
// wipeout during the initial propagation short-circuits straight to
// Solved=false without entering the search.
func Enhanced(b *sudoku.Board, opts ...Option) (*Result, error) {
	o, err := validate(b, opts)
	if err != nil {
		return nil, err
	}

	s := &enhancedSolver{board: b.Clone(), opts: o}
	began := time.Now()

	solved := false
	if s.seed() {
		if solved, err = s.solve(); err != nil {
			return nil, err
		}
	}
	s.stats.Elapsed = time.Since(began)

	return &Result{Board: s.board, Solved: solved, Stats: s.stats}, nil
}

// removal is one trailed domain elimination, undone on backtrack.
type removal struct {
	cell, value int
}

// enhancedSolver holds the mutable state of one enhanced run.
type enhancedSolver struct {
	board *sudoku.Board
	opts  Options
	stats Stats
	trail []removal
}

// arc is a directed constraint x≠y examined by AC-3.
type arc struct {
	x, y int
}

// seed establishes arc consistency on the loaded puzzle: clue values
// are forward-checked out of peer domains, then a full AC-3 pass runs.
// Returns false on wipeout (the puzzle is unsolvable as loaded).
func (s *enhancedSolver) seed() bool {
	for i := 0; i < s.board.CellCount(); i++ {
		v := s.board.Value(i)
		if v == 0 {
			continue
		}
		if !s.forwardCheck(i, v) {
			return false
		}
	}

	// Full sweep: every directed peer arc once.
	queue := make([]arc, 0, s.board.CellCount())
	for x := 0; x < s.board.CellCount(); x++ {
		for _, y := range s.board.Peers(x) {
			queue = append(queue, arc{x, y})
		}
	}

	return s.ac3(queue)
}

// solve picks the most-constrained empty cell and tries its values in
// least-constraining order, propagating after each assignment.
func (s *enhancedSolver) solve() (bool, error) {
	s.stats.Calls++
	if err := s.opts.tick(s.stats.Calls); err != nil {
		return false, err
	}

	cell, ok := s.selectCell()
	if !ok {
		return true, nil
	}

	for _, v := range s.orderValues(cell) {
		mark := len(s.trail)
		_ = s.board.Assign(cell, v)

		if s.propagate(cell, v) {
			solved, err := s.solve()
			if err != nil {
				return false, err
			}
			if solved {
				return true, nil
			}
		}

		// Symmetric undo: pop the removal log, then the assignment.
		s.undo(mark)
		s.board.Unassign(cell)
		s.stats.Backtracks++
	}

	return false, nil
}

// selectCell returns the empty cell with the smallest domain
// (most-constrained-variable), ties broken by lowest index.
func (s *enhancedSolver) selectCell() (int, bool) {
	best, bestSize := -1, 0
	for i := 0; i < s.board.CellCount(); i++ {
		if s.board.Value(i) != 0 {
			continue
		}
		size := s.board.DomainSize(i)
		if best == -1 || size < bestSize {
			best, bestSize = i, size
		}
	}

	return best, best != -1
}

// orderValues returns cell's candidates sorted least-constraining
// first: ascending count of peer domains containing the value, ties by
// ascending value.
func (s *enhancedSolver) orderValues(cell int) []int {
	values := s.board.Domain(cell)
	impact := make(map[int]int, len(values))
	for _, v := range values {
		n := 0
		for _, p := range s.board.Peers(cell) {
			if s.board.Value(p) == 0 && s.board.HasCandidate(p, v) {
				n++
			}
		}
		impact[v] = n
	}
	sort.SliceStable(values, func(i, j int) bool {
		if impact[values[i]] != impact[values[j]] {
			return impact[values[i]] < impact[values[j]]
		}

		return values[i] < values[j]
	})

	return values
}

// propagate narrows the assigned cell's own domain to {v}, forward
// checks the peers, and restores arc consistency around the cell.
// Returns false on wipeout; the caller undoes via the trail.
func (s *enhancedSolver) propagate(cell, v int) bool {
	for _, u := range s.board.Domain(cell) {
		if u != v {
			s.eliminate(cell, u)
		}
	}
	if !s.forwardCheck(cell, v) {
		return false
	}

	// Re-establish arc consistency outward from the assignment.
	queue := make([]arc, 0, len(s.board.Peers(cell)))
	for _, p := range s.board.Peers(cell) {
		queue = append(queue, arc{p, cell})
	}

	return s.ac3(queue)
}

// forwardCheck removes v from every empty peer's domain. Wipeout fails
// immediately: search never continues with an empty domain in play.
func (s *enhancedSolver) forwardCheck(cell, v int) bool {
	for _, p := range s.board.Peers(cell) {
		if s.board.Value(p) != 0 {
			continue
		}
		if s.eliminate(p, v) && s.board.DomainSize(p) == 0 {
			return false
		}
	}

	return true
}

// ac3 processes the arc queue until it is empty (consistent) or a
// domain wipes out (returns false). A candidate vx of x loses support
// from peer y exactly when y's domain is the singleton {vx}.
func (s *enhancedSolver) ac3(queue []arc) bool {
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		if !s.revise(a.x, a.y) {
			continue
		}
		if s.board.DomainSize(a.x) == 0 {
			return false
		}
		for _, z := range s.board.Peers(a.x) {
			if z != a.y {
				queue = append(queue, arc{z, a.x})
			}
		}
	}

	return true
}

// revise prunes unsupported candidates of x against y, reporting
// whether anything changed.
func (s *enhancedSolver) revise(x, y int) bool {
	if s.board.DomainSize(y) != 1 {
		return false // y can always pick something different
	}
	forced := s.board.Domain(y)[0]
	if s.board.Value(x) != 0 || !s.board.HasCandidate(x, forced) {
		return false
	}
	s.eliminate(x, forced)

	return true
}

// eliminate trails and counts one domain removal.
func (s *enhancedSolver) eliminate(cell, v int) bool {
	if !s.board.Eliminate(cell, v) {
		return false
	}
	s.trail = append(s.trail, removal{cell, v})
	s.stats.Pruned++

	return true
}

// undo pops the trail back to mark, restoring every removed candidate.
func (s *enhancedSolver) undo(mark int) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		s.board.Restore(s.trail[i].cell, s.trail[i].value)
	}
	s.trail = s.trail[:mark]
}
