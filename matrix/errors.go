// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Builders return
// these sentinels (optionally wrapped with %w context) and callers branch
// via errors.Is; no builder panics on user input.
package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to a builder.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrGraphEmpty indicates a graph with zero vertices; there is no
	// meaningful 0×0 representation to return.
	ErrGraphEmpty = errors.New("matrix: graph has no vertices")

	// ErrGraphNoEdges indicates a graph with zero edges where at least one
	// edge is required (incidence columns).
	ErrGraphNoEdges = errors.New("matrix: graph has no edges")

	// ErrDirectedGraph marks the single unsupported-input condition of the
	// adjacency-derived builders: adjacency, Laplacian and PageRank
	// matrices are not implemented for directed graphs.
	ErrDirectedGraph = errors.New("matrix: not implemented for directed graphs")

	// ErrUnknownVertex indicates a vertex ID absent from the matrix index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrIsolatedVertex is returned by PageRank when a vertex has degree 0:
	// the stochastic normalization 1/deg(v) is undefined for it.
	ErrIsolatedVertex = errors.New("matrix: isolated vertex has no out-degree")

	// ErrOutOfRange indicates a row or column index outside matrix bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
