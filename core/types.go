// Package core defines the central Graph and Node types for a static,
// weighted, undirected road network, and provides thread-safe primitives
// for building and querying it.
//
// Nodes carry an identifier and geographic coordinates; edges carry a
// positive road distance in miles. The graph is simple: at most one edge
// between any pair of nodes, no self-loops. Neighbor iteration order is
// deterministic (sorted by neighbor ID) so that every search strategy
// built on top of core traverses the same graph in the same order on
// every run.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for
// nodes, muAdj for adjacency), so graphs may be shared across goroutines
// with minimal contention.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrUnknownNode   - referenced node was never added.
//	ErrInvalidWeight - edge weight is not a positive, finite number.
//	ErrDuplicateEdge - a second edge between the same pair of nodes.
//	ErrSelfLoop      - edge connecting a node to itself.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrUnknownNode indicates an operation referenced a node that was never added.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrInvalidWeight indicates a non-positive or non-finite edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be positive and finite")

	// ErrDuplicateEdge indicates a parallel edge between an already-connected pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Node represents a city on the road network.
//
// ID uniquely identifies the node within its Graph.
// Lat and Lon are geographic coordinates in decimal degrees.
// Nodes are immutable once added.
type Node struct {
	// ID is the unique identifier for this node (e.g. "Rochester").
	ID string

	// Lat is the latitude in decimal degrees, positive north.
	Lat float64

	// Lon is the longitude in decimal degrees, positive east.
	Lon float64
}

// Arc is one directed view of an undirected road edge, as seen from a
// particular node: the neighbor it leads to and the road distance.
type Arc struct {
	// To is the neighbor node ID.
	To string

	// Miles is the road distance of the connecting edge. Always > 0.
	Miles float64
}

// Graph is the core in-memory road network.
//
// It is undirected, weighted, and simple (no parallel edges, no loops).
// muNode protects the nodes map; muAdj protects the adjacency map.
type Graph struct {
	muNode sync.RWMutex // guards nodes
	muAdj  sync.RWMutex // guards adj

	// nodes maps node ID → Node.
	nodes map[string]Node

	// adj[from][to] = miles; mirrored for both endpoints of every edge.
	adj map[string]map[string]float64
}

// NewGraph creates an empty road network.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
		adj:   make(map[string]map[string]float64),
	}
}
