// Package csp: the plain backtracking strategy.
package csp

import (
	"time"

	"github.com/pathfind-labs/pathfind/sudoku"
)

// Backtracking solves the board by plain recursive backtracking:
// row-major cell order, ascending value order, immediate consistency
// checks against assigned peers, undo on failure. No domain pruning.
//
// The input board is cloned; Result.Board carries the outcome. An
// unsatisfiable puzzle yields Solved=false with a nil error.
func Backtracking(b *sudoku.Board, opts ...Option) (*Result, error) {
	o, err := validate(b, opts)
	if err != nil {
		return nil, err
	}

	s := &plainSolver{board: b.Clone(), opts: o}
	began := time.Now()
	solved, err := s.solve()
	if err != nil {
		return nil, err
	}
	s.stats.Elapsed = time.Since(began)

	return &Result{Board: s.board, Solved: solved, Stats: s.stats}, nil
}

// plainSolver holds the mutable state of one backtracking run. The
// partial assignment lives in the board; the recursion stack is the
// only other state, so backtracking is a pure unwind.
type plainSolver struct {
	board *sudoku.Board
	opts  Options
	stats Stats
}

// solve assigns the first empty cell (row-major) and recurses. Terminal
// failure is reached when the root's value choices are exhausted.
func (s *plainSolver) solve() (bool, error) {
	s.stats.Calls++
	if err := s.opts.tick(s.stats.Calls); err != nil {
		return false, err
	}

	cell, ok := s.board.FirstEmpty()
	if !ok {
		return true, nil // every cell assigned; groups hold by construction
	}

	for v := 1; v <= s.board.Side(); v++ {
		if !s.board.HasCandidate(cell, v) {
			continue
		}
		if !s.board.IsConsistent(cell, v) {
			continue
		}

		_ = s.board.Assign(cell, v)
		solved, err := s.solve()
		if err != nil {
			return false, err
		}
		if solved {
			return true, nil
		}

		s.board.Unassign(cell)
		s.stats.Backtracks++
	}

	return false, nil
}
