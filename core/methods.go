// Package core: thread-safe Graph method implementations.
//
// This file provides O(1) (amortized) node and edge management on the
// Graph type defined in types.go. Adjacency is stored as a nested map
// adj[from][to] = miles, mirrored for both endpoints, allowing constant
// time existence checks and insertions while Neighbors sorts on read for
// deterministic traversal order.
package core

import (
	"math"
	"sort"
)

// AddNode inserts a city with the given ID and coordinates.
// Returns ErrEmptyNodeID if id is empty.
// Adding an existing ID is a no-op (idempotent); coordinates of the
// first insertion win, since nodes are immutable once loaded.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, lat, lon float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil // no-op for existing node
	}
	g.nodes[id] = Node{ID: id, Lat: lat, Lon: lon}

	// Initialize adjacency entry for this node.
	g.muAdj.Lock()
	g.ensureAdj(id)
	g.muAdj.Unlock()

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, exists := g.nodes[id]

	return exists
}

// Node returns the node with the given ID.
// Returns ErrEmptyNodeID or ErrUnknownNode on invalid input.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyNodeID
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrUnknownNode
	}

	return n, nil
}

// AddEdge creates an undirected road edge between two existing nodes.
//
// Validation order:
//  1. Empty endpoint ID          → ErrEmptyNodeID
//  2. Non-positive or NaN weight → ErrInvalidWeight
//  3. from == to                 → ErrSelfLoop
//  4. Endpoint never added       → ErrUnknownNode
//  5. Pair already connected     → ErrDuplicateEdge
//
// Construction-time errors abort before any search begins, so a graph
// that loaded cleanly never crashes a search over weight invariants.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, miles float64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if miles <= 0 || math.IsNaN(miles) || math.IsInf(miles, 0) {
		return ErrInvalidWeight
	}
	if from == to {
		return ErrSelfLoop
	}
	// Both endpoints must have been added explicitly: edges never create
	// nodes, because a node without coordinates would break heuristics.
	g.muNode.RLock()
	_, okFrom := g.nodes[from]
	_, okTo := g.nodes[to]
	g.muNode.RUnlock()
	if !okFrom || !okTo {
		return ErrUnknownNode
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if _, exists := g.adj[from][to]; exists {
		return ErrDuplicateEdge
	}

	// Mirror both directions: the graph is undirected.
	g.ensureAdj(from)
	g.ensureAdj(to)
	g.adj[from][to] = miles
	g.adj[to][from] = miles

	return nil
}

// HasEdge reports whether the two nodes are directly connected.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, ok := g.adj[from][to]

	return ok
}

// Weight returns the road distance between two directly connected nodes.
// A missing connection yields math.Inf(1) and ok=false; no error is
// produced, so callers can probe arbitrary pairs cheaply.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (miles float64, ok bool) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	if w, exists := g.adj[from][to]; exists {
		return w, true
	}

	return math.Inf(1), false
}

// Neighbors returns the arcs leaving node id, sorted by neighbor ID for
// reproducible traversal order across runs.
// Returns ErrEmptyNodeID or ErrUnknownNode on invalid input.
// Complexity: O(d log d), where d is the node degree.
func (g *Graph) Neighbors(id string) ([]Arc, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	g.muNode.RLock()
	if _, ok := g.nodes[id]; !ok {
		g.muNode.RUnlock()
		return nil, ErrUnknownNode
	}
	g.muNode.RUnlock()

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	out := make([]Arc, 0, len(g.adj[id]))
	for to, miles := range g.adj[id] {
		out = append(out, Arc{To: to, Miles: miles})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Nodes returns all node IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NodeCount returns the total number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the total number of undirected edges. O(V).
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	total := 0
	for _, m := range g.adj {
		total += len(m)
	}

	// Each undirected edge is mirrored once per endpoint.
	return total / 2
}

// PathCost sums the edge weights along a node sequence.
// Returns ErrUnknownNode if the path references an absent node, and
// ok=false if two consecutive nodes are not connected.
// Complexity: O(len(path)).
func (g *Graph) PathCost(path []string) (miles float64, ok bool, err error) {
	for i, id := range path {
		if !g.HasNode(id) {
			return 0, false, ErrUnknownNode
		}
		if i == 0 {
			continue
		}
		w, connected := g.Weight(path[i-1], id)
		if !connected {
			return 0, false, nil
		}
		miles += w
	}

	return miles, true, nil
}

// Clone returns a deep copy of the Graph: nodes and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	clone := NewGraph()
	for id, n := range g.nodes {
		clone.nodes[id] = n
		clone.adj[id] = make(map[string]float64, len(g.adj[id]))
	}
	for from, m := range g.adj {
		for to, miles := range m {
			clone.adj[from][to] = miles
		}
	}

	return clone
}

// ensureAdj makes adj[id] non-nil. Callers must hold muAdj.
func (g *Graph) ensureAdj(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}
}
