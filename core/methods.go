// SPDX-License-Identifier: MIT

// Package core: vertex and edge lifecycle plus the read queries consumed
// by the matrix builders.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//   - Edges() returns edges in insertion order (numeric edge-ID order).
//   - Weight(u,v) resolves via the single stored edge (graphs are simple).
package core

import (
	"math"
	"sort"
	"strconv"
)

// AddVertex inserts a vertex with the given ID. Adding an existing vertex
// is a no-op (idempotent, like the rest of the builder surface).
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted ascending.
// The matrix builders rely on this order for stable row/column indexing.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// AddEdge creates a new edge from→to with the given weight and returns its
// generated ID. Missing endpoints are created on the fly.
//
// Validation, in order:
//   - empty endpoint ID          → ErrEmptyVertexID
//   - NaN/±Inf weight            → ErrBadWeight
//   - weight ≠ 0 on unweighted   → ErrBadWeight
//   - from == to without loops   → ErrLoopNotAllowed
//   - duplicate (from,to) pair   → ErrMultiEdgeNotAllowed
//
// Undirected edges are mirrored into adjacency[to][from]; loops are stored
// once. Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Simple-graph constraint: at most one edge per ordered pair.
	// For undirected graphs the mirror entry covers the reverse pair.
	if len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// Ensure endpoints exist.
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	// Generate a stable textual edge ID: "e1", "e2", …
	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)

	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e

	g.link(from, to, eid)
	if !g.directed && from != to {
		g.link(to, from, eid) // mirror for undirected edges
	}

	return eid, nil
}

// link records eid in adjacency[from][to], allocating buckets as needed.
// Caller holds the write lock.
func (g *Graph) link(from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}

// HasEdge reports whether at least one edge from→to exists.
// For undirected graphs the orientation of the arguments is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Weight returns the weight of the edge from→to.
// Returns ErrVertexNotFound if either endpoint is missing and
// ErrEdgeNotFound if the vertices are not adjacent.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[from]; !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return 0, ErrVertexNotFound
	}

	for eid := range g.adjacency[from][to] {
		return g.edges[eid].Weight, nil // simple graph: single element
	}

	return 0, ErrEdgeNotFound
}

// Edges returns all edges in insertion order (ascending numeric edge ID).
// Each undirected edge appears exactly once, as stored.
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()

	// Length-then-lexicographic comparison sorts generated IDs numerically
	// ("e2" < "e10") without parsing.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].ID, out[j].ID
		if len(a) != len(b) {
			return len(a) < len(b)
		}

		return a < b
	})

	return out
}

// EdgeCount returns the number of stored edges
// (undirected edges count once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Degree returns the number of edges incident to the vertex: the
// out-degree for directed graphs, the incident-edge count for undirected
// graphs. Self-loops count once.
// Complexity: O(deg(v)).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	deg := 0
	for _, bucket := range g.adjacency[id] {
		deg += len(bucket)
	}

	return deg, nil
}
