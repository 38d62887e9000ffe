// Package search: the shared expansion loop behind DFS, BFS, UCS,
// Greedy, and A*. Each strategy supplies a frontier and a revisit
// policy; the loop itself never changes.
package search

import (
	"fmt"
	"time"

	"github.com/pathfind-labs/pathfind/core"
)

// walker encapsulates the mutable state of one frontier-driven run.
type walker struct {
	g    *core.Graph
	goal core.Node
	opts Options
	fr   frontier

	// closed, when non-nil, is the global visited set: a node is
	// expanded at most once (BFS/UCS/Greedy/A*). When nil the revisit
	// policy is path-based instead: a node may be re-expanded on other
	// branches but never revisited on the current path (DFS). The
	// path-based policy keeps DFS complete on finite cyclic graphs.
	closed map[string]bool

	// informed strategies compute a heuristic estimate per child.
	informed bool

	// reverseNeighbors flips the push order so a LIFO frontier still
	// explores neighbors in ascending ID order.
	reverseNeighbors bool

	seq      uint64
	expanded int
}

// runBestFirst validates inputs, runs the expansion loop, and stamps the
// elapsed wall-clock time on the result. configure adapts the walker to
// the strategy (frontier choice, revisit policy, informedness).
func runBestFirst(g *core.Graph, start, goal string, opts []Option, configure func(*walker)) (*Result, error) {
	o, err := validate(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	goalNode, err := g.Node(goal)
	if err != nil {
		return nil, fmt.Errorf("%w: goal %q", ErrUnknownNode, goal)
	}

	w := &walker{g: g, goal: goalNode, opts: o}
	configure(w)

	began := time.Now()
	res, err := w.loop(start)
	if err != nil {
		return nil, err
	}
	res.Elapsed = time.Since(began)

	return res, nil
}

// loop seeds the frontier with the start node and expands until the goal
// is reached or the frontier empties. Emptying is the Exhausted outcome,
// a normal return, not an error.
func (w *walker) loop(start string) (*Result, error) {
	root := &entry{node: start, path: []string{start}}
	if w.informed {
		root.est = w.estimate(start)
	}
	w.fr.push(root)

	for !w.fr.empty() {
		e := w.fr.pop()

		// Skip stale duplicates under the lazy decrease-key pattern.
		if w.closed != nil && w.closed[e.node] {
			continue
		}

		w.expanded++
		if err := w.opts.tick(w.expanded); err != nil {
			return nil, err
		}
		w.opts.OnExpand(e.node)
		if w.closed != nil {
			w.closed[e.node] = true
		}

		// Goal test on expansion, not on push: required for UCS and A*
		// cost optimality.
		if e.node == w.goal.ID {
			return &Result{Path: e.path, TotalCost: e.cost, Expanded: w.expanded}, nil
		}

		if err := w.expand(e); err != nil {
			return nil, err
		}
	}

	return exhausted(w.expanded), nil
}

// expand pushes e's eligible neighbors onto the frontier.
func (w *walker) expand(e *entry) error {
	arcs, err := w.g.Neighbors(e.node)
	if err != nil {
		return fmt.Errorf("search: neighbors of %q: %w", e.node, err)
	}
	if w.reverseNeighbors {
		for i := len(arcs) - 1; i >= 0; i-- {
			w.push(e, arcs[i])
		}
		return nil
	}
	for _, a := range arcs {
		w.push(e, a)
	}

	return nil
}

// push creates and enqueues the child entry for arc a, applying the
// walker's revisit policy.
func (w *walker) push(e *entry, a core.Arc) {
	if w.closed != nil {
		if w.closed[a.To] {
			return
		}
	} else if onPath(e.path, a.To) {
		return
	}

	child := &entry{
		node: a.To,
		cost: e.cost + a.Miles,
		path: extend(e.path, a.To),
	}
	if w.informed {
		child.est = w.estimate(a.To)
	}
	w.seq++
	child.seq = w.seq
	w.fr.push(child)
}

// estimate computes the heuristic from id to the goal node.
// Unknown IDs cannot occur here: every id pushed came from Neighbors.
func (w *walker) estimate(id string) float64 {
	n, _ := w.g.Node(id)

	return w.opts.Heuristic(n, w.goal)
}

// onPath reports whether id already appears on the partial path.
func onPath(path []string, id string) bool {
	for _, p := range path {
		if p == id {
			return true
		}
	}

	return false
}

// extend copies path and appends id; frontier entries never share or
// mutate path slices in place.
func extend(path []string, id string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = id

	return out
}
