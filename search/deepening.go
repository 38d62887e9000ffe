// Package search: iterative-deepening strategies - IDS and IDA*.
//
// Both wrap a bounded depth-first inner search in an outer driver that
// relaxes the bound between iterations: IDS bounds depth (0, 1, 2, …),
// IDA* bounds f = cost + heuristic (next bound = smallest f that
// exceeded the previous one). The inner search shares DFS's path-based
// cycle check and keeps only the current path in memory.
package search

import (
	"fmt"
	"math"
	"time"

	"github.com/pathfind-labs/pathfind/core"
)

// deepener holds the mutable state of one iterative-deepening run.
// expanded accumulates across all iterations of the outer driver.
type deepener struct {
	g    *core.Graph
	goal core.Node
	opts Options

	path   []string        // current partial path, start … current
	onPath map[string]bool // membership index for the cycle check

	expanded int

	// IDS state
	depthLimit int
	cutoff     bool // a branch was pruned by depthLimit this iteration

	// IDA* state
	threshold   float64
	minOverflow float64 // smallest f seen above threshold this iteration
}

// IDS runs iterative deepening search: repeated depth-limited DFS with
// the limit incremented from 0 until the goal is found, the tree below
// the limit is fully explored, or the limit exceeds the node count (an
// upper bound on the graph diameter). Expanded accumulates across all
// depth iterations. Like BFS, IDS finds a fewest-hop path; unlike BFS it
// needs only O(d) frontier memory.
// Complexity: O(b^d) time, O(d) memory.
func IDS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	o, err := validate(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	goalNode, _ := g.Node(goal)
	w := &deepener{g: g, goal: goalNode, opts: o}

	began := time.Now()
	for limit := 0; limit <= g.NodeCount(); limit++ {
		w.depthLimit = limit
		w.cutoff = false
		res, err := w.run(start, w.depthFirst)
		if err != nil {
			return nil, err
		}
		if res != nil {
			res.Elapsed = time.Since(began)
			return res, nil
		}
		// No cutoff means the whole reachable tree fits under the
		// current limit: deepening further cannot find anything new.
		if !w.cutoff {
			break
		}
	}

	res := exhausted(w.expanded)
	res.Elapsed = time.Since(began)

	return res, nil
}

// IDAStar runs iterative deepening A*: depth-first search bounded by an
// f-cost threshold, starting at heuristic(start, goal). Each iteration's
// new threshold is the minimum f that exceeded the previous one. With an
// admissible heuristic the first goal reached is minimum-mileage.
// Complexity: O(b^d) time worst case, O(d) memory.
func IDAStar(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	o, err := validate(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	goalNode, _ := g.Node(goal)
	startNode, _ := g.Node(start)
	w := &deepener{g: g, goal: goalNode, opts: o}
	w.threshold = o.Heuristic(startNode, goalNode)

	began := time.Now()
	for {
		w.minOverflow = math.Inf(1)
		res, err := w.run(start, w.costBounded)
		if err != nil {
			return nil, err
		}
		if res != nil {
			res.Elapsed = time.Since(began)
			return res, nil
		}
		// Every frontier branch genuinely ended (no f exceeded the
		// threshold): the goal is unreachable.
		if math.IsInf(w.minOverflow, 1) {
			res = exhausted(w.expanded)
			res.Elapsed = time.Since(began)

			return res, nil
		}
		w.threshold = w.minOverflow
	}
}

// run resets the path state and invokes one bounded inner search from
// start. A nil Result with nil error means "not found this iteration".
func (w *deepener) run(start string, inner func(id string, depth int, cost float64) (*Result, error)) (*Result, error) {
	w.path = w.path[:0]
	w.onPath = make(map[string]bool)

	return inner(start, 0, 0)
}

// depthFirst is the IDS inner search: DFS pruned at depthLimit.
func (w *deepener) depthFirst(id string, depth int, cost float64) (*Result, error) {
	if res, done, err := w.visit(id, cost); done {
		return res, err
	}
	if depth == w.depthLimit {
		// Unexplored branches remain below this node.
		if deg := w.degree(id); deg > 0 {
			w.cutoff = true
		}
		w.leave(id)

		return nil, nil
	}

	res, err := w.descend(id, depth, cost, w.depthFirst)
	w.leave(id)

	return res, err
}

// costBounded is the IDA* inner search: DFS pruned where f exceeds the
// current threshold, recording the smallest overflow for the next one.
func (w *deepener) costBounded(id string, depth int, cost float64) (*Result, error) {
	node, _ := w.g.Node(id)
	f := cost + w.opts.Heuristic(node, w.goal)
	if f > w.threshold {
		if f < w.minOverflow {
			w.minOverflow = f
		}

		return nil, nil
	}

	if res, done, err := w.visit(id, cost); done {
		return res, err
	}

	res, err := w.descend(id, depth, cost, w.costBounded)
	w.leave(id)

	return res, err
}

// visit expands id: counts it, runs the guards and hook, and tests the
// goal. done=true short-circuits the caller (goal reached or aborted);
// the node is left on the path only when done=false.
func (w *deepener) visit(id string, cost float64) (*Result, bool, error) {
	w.expanded++
	if err := w.opts.tick(w.expanded); err != nil {
		return nil, true, err
	}
	w.opts.OnExpand(id)

	w.path = append(w.path, id)
	w.onPath[id] = true

	if id == w.goal.ID {
		res := &Result{
			Path:      append([]string(nil), w.path...),
			TotalCost: cost,
			Expanded:  w.expanded,
		}
		w.leave(id)

		return res, true, nil
	}

	return nil, false, nil
}

// descend recurses into id's unvisited neighbors in ascending ID order.
func (w *deepener) descend(id string, depth int, cost float64, inner func(string, int, float64) (*Result, error)) (*Result, error) {
	arcs, err := w.g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("search: neighbors of %q: %w", id, err)
	}
	for _, a := range arcs {
		if w.onPath[a.To] {
			continue
		}
		res, err := inner(a.To, depth+1, cost+a.Miles)
		if err != nil || res != nil {
			return res, err
		}
	}

	return nil, nil
}

// leave pops id off the current path on backtrack.
func (w *deepener) leave(id string) {
	w.path = w.path[:len(w.path)-1]
	delete(w.onPath, id)
}

// degree returns the count of neighbors of id not already on the path.
func (w *deepener) degree(id string) int {
	arcs, err := w.g.Neighbors(id)
	if err != nil {
		return 0
	}
	n := 0
	for _, a := range arcs {
		if !w.onPath[a.To] {
			n++
		}
	}

	return n
}
