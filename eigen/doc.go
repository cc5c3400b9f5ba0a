// Package eigen computes ordered eigen-decompositions of symmetric graph
// matrices.
//
// The solver is gonum's mat.EigenSym; this package adds the validation,
// extremal-selection and ordering contract around it:
//
//   - Symmetric(a, cutoff, opts...) accepts any symmetric mat.Matrix
//     (the CSR output of the matrix package fits directly), requests
//     k = cutoff+1 eigenpairs from the extremal end of the spectrum —
//     largest eigenvalues by default, smallest with WithSmallestFirst() —
//     and returns eigenvalues and eigenvectors as two parallel slices
//     sorted by eigenvalue ascending, whatever the requested direction.
//   - cutoff == Full (−1) requests n−1 eigenpairs, the maximal extremal
//     request an iterative solver accepts.
//   - Laplacian / Adjacency compose the corresponding matrix builder with
//     Symmetric; LaplacianAt / AdjacencyAt additionally slice out the
//     single eigenpair at a given rank.
//
// Results are recomputed on every call; nothing is cached. Solver
// failures surface as ErrEigenFailed, asymmetric input as
// ErrNotSymmetric (within the WithEpsilon tolerance).
package eigen
