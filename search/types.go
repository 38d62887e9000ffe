// Package search: shared option, error, and result definitions for every
// search strategy.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pathfind-labs/pathfind/core"
	"github.com/pathfind-labs/pathfind/heuristic"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrUnknownNode is returned when the start or goal node is absent
	// from the graph. This is an input error, never a silent empty result.
	ErrUnknownNode = errors.New("search: unknown node")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionBudget is returned when the WithMaxExpansions guard is
	// exceeded before the goal is reached.
	ErrExpansionBudget = errors.New("search: expansion budget exceeded")
)

// Option configures search behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by all strategies.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// Heuristic estimates remaining distance to the goal. Used by
	// Greedy, AStar, and IDAStar; ignored by the uninformed strategies.
	// Defaults to heuristic.Haversine.
	Heuristic heuristic.Func

	// MaxExpansions, if > 0, aborts the run with ErrExpansionBudget once
	// that many nodes have been expanded. Zero disables the guard.
	// Recommended for pathological inputs: uninformed search is
	// exponential in the worst case.
	MaxExpansions int

	// OnExpand is called each time a node is expanded (dequeued and
	// processed). Pure observation: it must not mutate the graph.
	OnExpand func(id string)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - heuristic.Haversine
//   - no expansion budget
//   - no-op OnExpand hook
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: heuristic.Haversine,
		OnExpand:  func(string) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic overrides the straight-line estimator used by the
// informed strategies. Passing nil retains the default.
func WithHeuristic(fn heuristic.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithMaxExpansions aborts the run after n expansions.
//
//	n > 0:  enforce the budget
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers an observer called on every node expansion.
func WithOnExpand(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of one search run.
//
// An exhausted run (frontier emptied without reaching the goal) is a
// valid terminal outcome, not an error: Path is empty and TotalCost is
// math.Inf(1).
type Result struct {
	// Path is the ordered node sequence from start to goal, inclusive.
	// Empty when the goal was unreachable.
	Path []string

	// TotalCost is the sum of edge weights along Path, in miles.
	// math.Inf(1) when the goal was unreachable.
	TotalCost float64

	// Expanded counts node expansions. For the iterative-deepening
	// strategies it accumulates across all iterations.
	Expanded int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// exhausted returns the canonical "no path" Result.
func exhausted(expanded int) *Result {
	return &Result{TotalCost: math.Inf(1), Expanded: expanded}
}

// validate applies options and checks the shared preconditions in order:
// option violations first, then nil graph, then start/goal membership.
func validate(g *core.Graph, start, goal string, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrGraphNil
	}
	if !g.HasNode(start) {
		return o, fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}
	if !g.HasNode(goal) {
		return o, fmt.Errorf("%w: goal %q", ErrUnknownNode, goal)
	}

	return o, nil
}

// tick checks cancellation and the expansion budget; called once per
// expansion by every strategy.
func (o *Options) tick(expanded int) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
	}
	if o.MaxExpansions > 0 && expanded > o.MaxExpansions {
		return ErrExpansionBudget
	}

	return nil
}
