// SPDX-License-Identifier: MIT

// Package matrix: the GraphMatrix wrapper coupling a CSR matrix with its
// vertex index, shared by every square builder in this package.
package matrix

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/katalvlaran/spectral/core"
)

// GraphMatrix is a square sparse matrix aligned to a graph's vertex set.
//
// Data holds the values in compressed sparse row form; CSR implements
// gonum's mat.Matrix, so Data can be handed to numerical routines as-is.
// VertexIndex maps vertex ID → row/column index; rows follow
// core.Vertices() order (ID ascending).
type GraphMatrix struct {
	Data          *sparse.CSR    // underlying CSR storage
	VertexIndex   map[string]int // vertex ID → row/col index
	vertexByIndex []string       // reverse lookup by index
}

// Dim returns the matrix dimension n (matrices here are n×n).
// Complexity: O(1).
func (m *GraphMatrix) Dim() int {
	r, _ := m.Data.Dims()

	return r
}

// At returns the value at row i, column j.
// Returns ErrOutOfRange for indices outside [0,n).
// Complexity: O(log nnz(row i)).
func (m *GraphMatrix) At(i, j int) (float64, error) {
	n := m.Dim()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("At(%d,%d): dim %d: %w", i, j, n, ErrOutOfRange)
	}

	return m.Data.At(i, j), nil
}

// AtID returns the value at the row of vertex u and the column of vertex v.
// Returns ErrUnknownVertex if either ID is not in the index.
func (m *GraphMatrix) AtID(u, v string) (float64, error) {
	i, ok := m.VertexIndex[u]
	if !ok {
		return 0, fmt.Errorf("AtID: %q: %w", u, ErrUnknownVertex)
	}
	j, ok := m.VertexIndex[v]
	if !ok {
		return 0, fmt.Errorf("AtID: %q: %w", v, ErrUnknownVertex)
	}

	return m.Data.At(i, j), nil
}

// IDOf returns the vertex ID mapped to row/column index i.
func (m *GraphMatrix) IDOf(i int) (string, error) {
	if i < 0 || i >= len(m.vertexByIndex) {
		return "", fmt.Errorf("IDOf(%d): %w", i, ErrOutOfRange)
	}

	return m.vertexByIndex[i], nil
}

// vertexIndex extracts the deterministic vertex ordering of g and its
// inverse map. Shared validation front door for all builders:
// nil graph → ErrGraphNil, zero vertices → ErrGraphEmpty.
// Complexity: O(V·log V).
func vertexIndex(g *core.Graph) ([]string, map[string]int, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, nil, ErrGraphEmpty
	}

	idx := make(map[string]int, len(verts))
	for i, id := range verts {
		idx[id] = i
	}

	return verts, idx, nil
}
