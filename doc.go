// Package spectral turns graphs into standard sparse-matrix
// representations and exposes eigen-decompositions of their symmetric
// variants — the algebraic toolbox behind spectral clustering and
// centrality analysis.
//
// The module is a thin, deterministic pipeline:
//
//	core.Graph → matrix builder → (optional) eigen solver → ordered eigenpairs
//
// Everything numerically hard is delegated: compressed sparse storage to
// github.com/james-bowman/sparse, dense symmetric eigen-decomposition to
// gonum.org/v1/gonum/mat. This module ships no solver of its own.
//
// Subpackages:
//
//	core/     — thread-safe in-memory Graph (vertices, edges, weights, degrees)
//	matrix/   — Adjacency, Degree, Laplacian, PageRank, Incidence builders (CSR)
//	eigen/    — symmetric eigen-solver wrapper + Laplacian/Adjacency accessors
//	builder/  — deterministic topology constructors (Complete, Cycle, Path, Star)
//
// Quick taste — algebraic connectivity of a path:
//
//	g, _ := builder.Build(nil, nil, builder.Path(3))
//	lambda, _, _ := eigen.LaplacianAt(g, 1, eigen.WithSmallestFirst())
//	// lambda == 1 (the Fiedler value of P3)
//
// Adjacency, Laplacian and PageRank builders are defined for undirected
// graphs only; directed input is rejected with matrix.ErrDirectedGraph.
package spectral
