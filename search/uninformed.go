// Package search: uninformed strategies - DFS, BFS, and UCS.
package search

import "github.com/pathfind-labs/pathfind/core"

// DFS runs depth-first search from start to goal.
//
// Revisit policy (fixed, affects completeness): a node is skipped only
// when it already lies on the current partial path, so cycles are
// impossible but a node may be re-expanded on sibling branches. This
// keeps DFS complete on finite graphs at the price of re-expansion;
// WithMaxExpansions bounds the worst case. The returned path carries no
// cost-optimality guarantee.
// Complexity: O(b^V) worst case, O(V) typical on sparse road networks.
func DFS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	return runBestFirst(g, start, goal, opts, func(w *walker) {
		w.fr = &lifoFrontier{}
		// LIFO reverses the push order, so push reversed to keep the
		// deterministic ascending-ID exploration order.
		w.reverseNeighbors = true
	})
}

// BFS runs breadth-first search from start to goal.
//
// BFS is optimal in hop count, not in mileage: on this weighted graph it
// returns the fewest-edge path, and TotalCost reports that path's actual
// mileage, which may exceed the UCS optimum.
// Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	return runBestFirst(g, start, goal, opts, func(w *walker) {
		w.fr = &fifoFrontier{}
		w.closed = make(map[string]bool, g.NodeCount())
	})
}

// UCS runs uniform-cost search from start to goal: the frontier is
// ordered by accumulated mileage ascending, ties broken by insertion
// order. On this finite positive-weight graph UCS is complete and
// returns a minimum-mileage path.
// Complexity: O((V + E) log V) time, O(V + E) memory.
func UCS(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	return runBestFirst(g, start, goal, opts, func(w *walker) {
		w.fr = newHeapFrontier(byCost)
		w.closed = make(map[string]bool, g.NodeCount())
	})
}
