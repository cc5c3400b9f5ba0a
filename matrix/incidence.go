// SPDX-License-Identifier: MIT

// Package matrix: incidence matrix builder.
//
// Sign convention (structural, weights intentionally ignored):
//   - undirected edge: +1 at both endpoint rows;
//   - undirected self-loop: +2 in the single incident row (both
//     half-edges touch the same vertex);
//   - directed edge: −1 at the source row, +1 at the target row;
//   - directed self-loop: −1 and +1 land in the same cell ⇒ zero column.
package matrix

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/katalvlaran/spectral/core"
)

// Incidence marks (no magic numbers).
const (
	srcMark            = -1.0 // source endpoint of a directed edge
	dstMark            = +1.0 // target endpoint of a directed edge
	undirectedMark     = +1.0 // each endpoint of an undirected edge
	loopUndirectedMark = +2.0 // single incident row of an undirected loop
)

// IncidenceMatrix is a |V|×|E| sparse vertex-by-edge incidence view.
//
// Rows follow core.Vertices() order (ID ascending); columns follow
// core.Edges() order (insertion order), recorded in Edges for reverse
// lookup.
type IncidenceMatrix struct {
	Data        *sparse.CSR    // underlying CSR storage, |V| rows × |E| cols
	VertexIndex map[string]int // vertex ID → row index
	Edges       []*core.Edge   // ordered edges aligned to columns [0..|E|)
}

// Incidence builds the incidence matrix of g. Unlike the adjacency-derived
// builders it accepts directed graphs (the ± sign convention encodes the
// orientation).
//
// Errors: ErrGraphNil, ErrGraphEmpty, and ErrGraphNoEdges when g has no
// edges (an incidence matrix needs at least one column).
// Complexity: O(V·log V + E) time, O(V + E) space.
func Incidence(g *core.Graph) (*IncidenceMatrix, error) {
	verts, idx, err := vertexIndex(g)
	if err != nil {
		return nil, fmt.Errorf("Incidence: %w", err)
	}

	edges := g.Edges()
	if len(edges) == 0 {
		return nil, fmt.Errorf("Incidence: %w", ErrGraphNoEdges)
	}

	directed := g.Directed()
	dok := sparse.NewDOK(len(verts), len(edges))

	for c, e := range edges {
		u, ok := idx[e.From]
		if !ok {
			return nil, fmt.Errorf("Incidence: %q: %w", e.From, ErrUnknownVertex)
		}
		v, ok := idx[e.To]
		if !ok {
			return nil, fmt.Errorf("Incidence: %q: %w", e.To, ErrUnknownVertex)
		}

		switch {
		case u == v && directed:
			// −1 + +1 in the same cell: the column stays zero.
		case u == v:
			dok.Set(u, c, loopUndirectedMark)
		case directed:
			dok.Set(u, c, srcMark)
			dok.Set(v, c, dstMark)
		default:
			dok.Set(u, c, undirectedMark)
			dok.Set(v, c, undirectedMark)
		}
	}

	return &IncidenceMatrix{
		Data:        dok.ToCSR(),
		VertexIndex: idx,
		Edges:       edges,
	}, nil
}
