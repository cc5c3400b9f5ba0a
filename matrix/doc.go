// Package matrix converts core graphs into compressed sparse matrix
// representations.
//
// The matrix package provides:
//
//   - Adjacency — symmetric CSR adjacency matrix of an undirected graph
//     (edge weight, or 1 when the graph is unweighted).
//   - Degree — diagonal degree matrix D = diag(row sums of A).
//   - Laplacian — graph Laplacian L = D − A via the standard row-sum
//     sparse Laplacian routine applied to the adjacency matrix.
//   - PageRank — the damped column-stochastic transition operator
//     P[u,v] = d·A[u,v]/deg(v) + (1−d)/n. The operator for one PageRank
//     power-iteration step; no iteration is performed here.
//   - Incidence — |V|×|E| vertex-by-edge incidence matrix.
//
// Storage is github.com/james-bowman/sparse (DOK while populating, CSR on
// return). CSR implements gonum's mat.Matrix, so builder output feeds the
// eigen package — or any gonum routine — directly.
//
// Adjacency, Degree, Laplacian and PageRank are defined for undirected
// graphs only and reject directed input with ErrDirectedGraph. Row and
// column indices follow core.Vertices() order (vertex ID ascending), so
// equal graphs always produce equal matrices.
//
// Matrices are ephemeral: built on every call, never cached, never
// mutated by this package after return.
package matrix
