// SPDX-License-Identifier: MIT

// Package eigen: convenience accessors composing the matrix builders with
// the symmetric solver. Pure composition; no independent logic.
package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/matrix"
)

// Laplacian computes the ordered eigenpairs of the graph Laplacian of g.
// See Symmetric for cutoff and option semantics; matrix.Laplacian errors
// (ErrDirectedGraph, ErrGraphNil, ErrGraphEmpty) pass through wrapped.
func Laplacian(g *core.Graph, cutoff int, opts ...Option) ([]float64, []*mat.VecDense, error) {
	lap, err := matrix.Laplacian(g)
	if err != nil {
		return nil, nil, fmt.Errorf("Laplacian: %w", err)
	}

	return Symmetric(lap.Data, cutoff, opts...)
}

// Adjacency computes the ordered eigenpairs of the adjacency matrix of g.
// See Symmetric for cutoff and option semantics; matrix.Adjacency errors
// pass through wrapped.
func Adjacency(g *core.Graph, cutoff int, opts ...Option) ([]float64, []*mat.VecDense, error) {
	adj, err := matrix.Adjacency(g)
	if err != nil {
		return nil, nil, fmt.Errorf("Adjacency: %w", err)
	}

	return Symmetric(adj.Data, cutoff, opts...)
}

// LaplacianAt returns the single Laplacian eigenpair at rank order within
// the ascending spectrum of the order+1 extremal eigenpairs. With
// WithSmallestFirst(), order 0 is the smallest eigenvalue (always 0 for a
// Laplacian) and order 1 the Fiedler pair; by default order selects from
// the largest end.
func LaplacianAt(g *core.Graph, order int, opts ...Option) (float64, *mat.VecDense, error) {
	if order < 0 {
		return 0, nil, fmt.Errorf("LaplacianAt: order %d: %w", order, ErrBadCutoff)
	}

	vals, vecs, err := Laplacian(g, order, opts...)
	if err != nil {
		return 0, nil, fmt.Errorf("LaplacianAt: %w", err)
	}

	return vals[order], vecs[order], nil
}

// AdjacencyAt returns the single adjacency eigenpair at rank order within
// the ascending spectrum of the order+1 extremal eigenpairs.
func AdjacencyAt(g *core.Graph, order int, opts ...Option) (float64, *mat.VecDense, error) {
	if order < 0 {
		return 0, nil, fmt.Errorf("AdjacencyAt: order %d: %w", order, ErrBadCutoff)
	}

	vals, vecs, err := Adjacency(g, order, opts...)
	if err != nil {
		return 0, nil, fmt.Errorf("AdjacencyAt: %w", err)
	}

	return vals[order], vecs[order], nil
}
