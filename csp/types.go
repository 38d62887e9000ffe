// Package csp: shared option, error, and result definitions for both
// solving strategies.
package csp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pathfind-labs/pathfind/sudoku"
)

// Sentinel errors for solver execution.
var (
	// ErrNilBoard is returned when a nil board pointer is passed.
	ErrNilBoard = errors.New("csp: board is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("csp: invalid option supplied")

	// ErrCallBudget is returned when the WithMaxCalls guard is exceeded
	// before the search terminates.
	ErrCallBudget = errors.New("csp: call budget exceeded")
)

// Option configures solver behavior via functional arguments.
type Option func(*Options)

// Options holds parameters shared by both strategies.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per search call.
	Ctx context.Context

	// MaxCalls, if > 0, aborts the run with ErrCallBudget once that many
	// recursive search calls have been made. Zero disables the guard.
	// Recommended for pathological inputs: plain backtracking is
	// exponential in the worst case.
	MaxCalls int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no call
// budget.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCalls aborts the run after n recursive search calls.
//
//	n > 0:  enforce the budget
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxCalls(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCalls cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCalls = n
	}
}

// Stats reports the effort of one solver run. Collection is pure
// observation and never alters which branch the solver explores.
type Stats struct {
	// Calls counts recursive search invocations.
	Calls int

	// Backtracks counts undone assignments.
	Backtracks int

	// Pruned counts candidate eliminations (enhanced strategy only).
	Pruned int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Result holds the outcome of one solve run.
//
// Unsolvable is a valid terminal outcome, not an error: Solved is false
// and Board holds the untouched puzzle. The input board is never
// mutated; Board is a private working copy.
type Result struct {
	Board  *sudoku.Board
	Solved bool
	Stats  Stats
}

// validate applies options and checks the board.
func validate(b *sudoku.Board, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if b == nil {
		return o, ErrNilBoard
	}

	return o, nil
}

// tick checks cancellation and the call budget; called once per search
// call by both strategies.
func (o *Options) tick(calls int) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
	}
	if o.MaxCalls > 0 && calls > o.MaxCalls {
		return ErrCallBudget
	}

	return nil
}
