// SPDX-License-Identifier: MIT

// Package matrix: degree and Laplacian builders.
//
// Both delegate the structural work to the adjacency builder and apply the
// standard row-sum sparse Laplacian routine on top of it; there is no
// custom degree bookkeeping here.
package matrix

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/katalvlaran/spectral/core"
)

// Degree builds the diagonal degree matrix D = diag(row sums of A) for the
// undirected graph g. For weighted graphs the diagonal carries weighted
// degrees; for unweighted graphs, plain degree counts.
//
// Shares the adjacency builder's error surface (ErrGraphNil,
// ErrDirectedGraph, ErrGraphEmpty).
// Complexity: O(V·log V + E).
func Degree(g *core.Graph) (*GraphMatrix, error) {
	a, err := Adjacency(g)
	if err != nil {
		return nil, fmt.Errorf("Degree: %w", err)
	}

	n := a.Dim()
	dok := sparse.NewDOK(n, n)
	for i, d := range rowSums(a.Data, n) {
		if d != 0 {
			dok.Set(i, i, d)
		}
	}

	return &GraphMatrix{
		Data:          dok.ToCSR(),
		VertexIndex:   a.VertexIndex,
		vertexByIndex: a.vertexByIndex,
	}, nil
}

// Laplacian builds the graph Laplacian L = D − A of the undirected graph
// g by applying the row-sum Laplacian routine to the adjacency matrix:
// L[i,i] = Σ_j A[i,j] − A[i,i] and L[i,j] = −A[i,j] for i ≠ j.
//
// Shares the adjacency builder's error surface (ErrGraphNil,
// ErrDirectedGraph, ErrGraphEmpty).
// Complexity: O(V·log V + E).
func Laplacian(g *core.Graph) (*GraphMatrix, error) {
	a, err := Adjacency(g)
	if err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}

	return &GraphMatrix{
		Data:          laplacian(a.Data),
		VertexIndex:   a.VertexIndex,
		vertexByIndex: a.vertexByIndex,
	}, nil
}

// laplacian is the sparse Laplacian routine: L = D − A over CSR input.
// Works for any symmetric matrix, not just builder output.
func laplacian(a *sparse.CSR) *sparse.CSR {
	n, _ := a.Dims()
	diag := rowSums(a, n)

	dok := sparse.NewDOK(n, n)
	a.DoNonZero(func(i, j int, v float64) {
		if i == j {
			diag[i] -= v // self-loop: D − A cancels on the diagonal
		} else {
			dok.Set(i, j, -v)
		}
	})
	for i, d := range diag {
		if d != 0 {
			dok.Set(i, i, d)
		}
	}

	return dok.ToCSR()
}

// rowSums accumulates per-row sums of a CSR matrix in one pass.
// Complexity: O(nnz).
func rowSums(a *sparse.CSR, n int) []float64 {
	sums := make([]float64, n)
	a.DoNonZero(func(i, _ int, v float64) {
		sums[i] += v
	})

	return sums
}
