// SPDX-License-Identifier: MIT

// Package matrix: PageRank transition-operator builder.
package matrix

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/katalvlaran/spectral/core"
)

// PageRank builds the damped column-stochastic transition matrix of the
// undirected graph g:
//
//	P[u,v] = d·A[u,v]/deg(v) + (1−d)/n
//
// where A is the adjacency matrix, deg(v) the (unweighted) degree of v,
// d the damping factor (WithDamping, default 0.85) and n the vertex
// count. The uniform (1−d)/n teleport term touches every entry, so each
// column sums to exactly 1 — the operator of one PageRank power-iteration
// step. The result is dense-ish by construction but kept in CSR so it
// composes with the rest of the package.
//
// PageRank does not iterate and does not compute a PageRank vector; it
// returns the operator only.
//
// Errors: the adjacency builder's surface (ErrGraphNil, ErrDirectedGraph,
// ErrGraphEmpty) plus ErrIsolatedVertex when any vertex has degree 0 —
// the 1/deg(v) normalization is undefined for isolated vertices.
// Complexity: O(V²) time and space (the teleport term is uniform).
func PageRank(g *core.Graph, opts ...Option) (*GraphMatrix, error) {
	a, err := Adjacency(g)
	if err != nil {
		return nil, fmt.Errorf("PageRank: %w", err)
	}

	o := gatherOptions(opts...)
	n := a.Dim()

	// Per-column normalization: 1/deg(v), fail-fast on degree 0.
	invDeg := make([]float64, n)
	for v, id := range a.vertexByIndex {
		deg, degErr := g.Degree(id)
		if degErr != nil {
			return nil, fmt.Errorf("PageRank: Degree(%q): %w", id, degErr)
		}
		if deg == 0 {
			return nil, fmt.Errorf("PageRank: vertex %q: %w", id, ErrIsolatedVertex)
		}
		invDeg[v] = 1 / float64(deg)
	}

	teleport := (1 - o.damping) / float64(n)

	dok := sparse.NewDOK(n, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			dok.Set(u, v, teleport)
		}
	}
	a.Data.DoNonZero(func(u, v int, w float64) {
		dok.Set(u, v, teleport+o.damping*w*invDeg[v])
	})

	return &GraphMatrix{
		Data:          dok.ToCSR(),
		VertexIndex:   a.VertexIndex,
		vertexByIndex: a.vertexByIndex,
	}, nil
}
