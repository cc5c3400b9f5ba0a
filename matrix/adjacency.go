// SPDX-License-Identifier: MIT

// Package matrix: adjacency matrix builder.
package matrix

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/katalvlaran/spectral/core"
)

// defaultWeight is the adjacency entry used for edges of unweighted graphs.
const defaultWeight = 1.0

// Adjacency builds the symmetric sparse adjacency matrix A of the
// undirected graph g: A[u,v] = A[v,u] = weight(u,v) (or 1 when g is
// unweighted) for every edge, 0 elsewhere. Self-loops occupy the diagonal.
//
// Stage 1 (Validate): nil graph → ErrGraphNil; directed graph →
// ErrDirectedGraph; zero vertices → ErrGraphEmpty.
// Stage 2 (Prepare): deterministic vertex indexing (ID ascending).
// Stage 3 (Execute): populate a DOK from the edge list.
// Stage 4 (Finalize): convert to CSR for efficient arithmetic.
//
// Pure function of its input; g is never mutated.
// Complexity: O(V·log V + E) time, O(V + E) space.
func Adjacency(g *core.Graph) (*GraphMatrix, error) {
	if g != nil && g.Directed() {
		return nil, fmt.Errorf("Adjacency: %w", ErrDirectedGraph)
	}

	verts, idx, err := vertexIndex(g)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}

	n := len(verts)
	dok := sparse.NewDOK(n, n)
	weighted := g.Weighted()

	for _, e := range g.Edges() {
		u, ok := idx[e.From]
		if !ok {
			return nil, fmt.Errorf("Adjacency: %q: %w", e.From, ErrUnknownVertex)
		}
		v, ok := idx[e.To]
		if !ok {
			return nil, fmt.Errorf("Adjacency: %q: %w", e.To, ErrUnknownVertex)
		}

		w := defaultWeight
		if weighted {
			w = e.Weight
		}

		dok.Set(u, v, w)
		dok.Set(v, u, w) // mirror; a no-op for loops (u == v)
	}

	return &GraphMatrix{
		Data:          dok.ToCSR(),
		VertexIndex:   idx,
		vertexByIndex: verts,
	}, nil
}
