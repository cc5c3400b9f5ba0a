// SPDX-License-Identifier: MIT

// Package core: central Graph and Edge types, functional options,
// sentinel errors, and the NewGraph constructor.
//
// Error policy (strict): only package-level sentinels are exposed and
// callers branch with errors.Is. Methods wrap sentinels with context via
// %w where it helps; they never panic on user input.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates a zero-length vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph,
	// or a NaN/±Inf weight anywhere (weights must stay finite).
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted with loops disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted;
	// graphs in this module are always simple.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// IDs are generated atomically as "e1", "e2", … in insertion order.
// Weight is a finite float64; it is zero on unweighted graphs.
type Edge struct {
	// ID uniquely identifies this edge in its Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge weight (zero in unweighted graphs).
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of all edges
// (true = directed, false = undirected; default false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory graph data structure read by the matrix builders.
//
// Storage is map-based for O(1) membership checks:
// adjacency[from][to][edgeID] = struct{}{}; undirected edges are mirrored
// into adjacency[to][from] (loops are stored once).
type Graph struct {
	mu sync.RWMutex // guards all fields below

	// configuration flags (immutable after NewGraph)
	directed   bool
	weighted   bool
	allowLoops bool

	nextEdgeID uint64              // edge ID counter ("e1", "e2", …)
	vertices   map[string]struct{} // vertex ID set
	edges      map[string]*Edge    // edge ID → Edge

	// adjacency[from][to] is the set of edge IDs linking from→to.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// Default: undirected, unweighted, no loops.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero edge weights are permitted.
// This is a policy flag, not a scan of stored weights.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}
