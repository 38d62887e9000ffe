package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathfind-labs/pathfind/core"
	"github.com/pathfind-labs/pathfind/heuristic"
)

var (
	rochester = core.Node{ID: "Rochester", Lat: 43.1566, Lon: -77.6088}
	nyc       = core.Node{ID: "New York City", Lat: 40.7128, Lon: -74.0060}
	buffalo   = core.Node{ID: "Buffalo", Lat: 42.8864, Lon: -78.8784}
)

func TestHaversine_KnownDistance(t *testing.T) {
	// Rochester to NYC straight-line is roughly 254 miles.
	got := heuristic.Haversine(rochester, nyc)
	assert.InDelta(t, 254, got, 5)
}

func TestHaversine_ZeroAtSameNode(t *testing.T) {
	assert.Zero(t, heuristic.Haversine(rochester, rochester))
}

func TestHaversine_SymmetricNonNegative(t *testing.T) {
	ab := heuristic.Haversine(rochester, buffalo)
	ba := heuristic.Haversine(buffalo, rochester)
	assert.InDelta(t, ab, ba, 1e-9)
	assert.Greater(t, ab, 0.0)
}

func TestHaversine_TriangleInequality(t *testing.T) {
	// Consistency: h(a,c) ≤ h(a,b) + h(b,c).
	ac := heuristic.Haversine(rochester, nyc)
	ab := heuristic.Haversine(rochester, buffalo)
	bc := heuristic.Haversine(buffalo, nyc)
	assert.LessOrEqual(t, ac, ab+bc+1e-9)
}

func TestEuclidean(t *testing.T) {
	a := core.Node{ID: "a", Lat: 0, Lon: 0}
	b := core.Node{ID: "b", Lat: 3, Lon: 4}
	assert.Equal(t, 5.0, heuristic.Euclidean(a, b))
	assert.Zero(t, heuristic.Euclidean(a, a))
}

func TestZero(t *testing.T) {
	assert.Zero(t, heuristic.Zero(rochester, nyc))
}
