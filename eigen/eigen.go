// SPDX-License-Identifier: MIT

// Package eigen: the symmetric eigen-solver wrapper.
package eigen

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Full is the sentinel cutoff requesting the maximal extremal spectrum:
// n−1 eigenpairs for an n×n matrix (cutoff resolves to n−2, and the
// solver is asked for cutoff+1 pairs).
const Full = -1

// Symmetric computes eigenvalues and eigenvectors of the symmetric matrix
// a, delegating the decomposition to gonum's mat.EigenSym.
//
// k = cutoff+1 eigenpairs are selected from the extremal end of the
// spectrum: the k largest eigenvalues by default, the k smallest with
// WithSmallestFirst(). cutoff == Full requests n−1 pairs. The selected
// pairs are then sorted strictly by eigenvalue ascending, regardless of
// the requested direction or the solver's native ordering, and returned
// as two parallel slices: eigenvalues and the corresponding eigenvectors.
//
// Stage 1 (Validate): nil → ErrNilMatrix; 0×0 → ErrEmptyMatrix;
// non-square → ErrNonSquare; |a[i,j]−a[j,i]| > eps → ErrNotSymmetric;
// cutoff outside [0,n) after resolving Full → ErrBadCutoff.
// Stage 2 (Prepare): densify into a mat.SymDense.
// Stage 3 (Execute): factorize; non-convergence → ErrEigenFailed.
// Stage 4 (Finalize): select k extremal pairs, sort ascending, extract.
//
// Complexity: O(n²) validation + the solver's O(n³) decomposition.
func Symmetric(a mat.Matrix, cutoff int, opts ...Option) ([]float64, []*mat.VecDense, error) {
	if a == nil {
		return nil, nil, fmt.Errorf("Symmetric: %w", ErrNilMatrix)
	}

	n, c := a.Dims()
	if n != c {
		return nil, nil, fmt.Errorf("Symmetric: %dx%d: %w", n, c, ErrNonSquare)
	}
	if n == 0 {
		return nil, nil, fmt.Errorf("Symmetric: %w", ErrEmptyMatrix)
	}

	o := gatherOptions(opts...)

	// Symmetry within eps; fail fast on the first violation.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(a.At(i, j)-a.At(j, i)) > o.eps {
				return nil, nil, fmt.Errorf("Symmetric: a[%d,%d] != a[%d,%d]: %w", i, j, j, i, ErrNotSymmetric)
			}
		}
	}

	if cutoff == Full {
		cutoff = n - 2
	}
	k := cutoff + 1
	if cutoff < 0 || k > n {
		return nil, nil, fmt.Errorf("Symmetric: cutoff %d for dim %d: %w", cutoff, n, ErrBadCutoff)
	}

	// Densify: EigenSym consumes symmetric dense storage.
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, a.At(i, j))
		}
	}

	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return nil, nil, fmt.Errorf("Symmetric: %w", ErrEigenFailed)
	}

	vals := es.Values(nil) // ascending per gonum contract
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Select the k extremal indices, then impose ascending eigenvalue
	// order explicitly — the output contract must not depend on the
	// solver's native ordering.
	sel := make([]int, k)
	start := 0
	if !o.smallestFirst {
		start = n - k
	}
	for i := range sel {
		sel[i] = start + i
	}
	sort.SliceStable(sel, func(i, j int) bool { return vals[sel[i]] < vals[sel[j]] })

	outVals := make([]float64, k)
	outVecs := make([]*mat.VecDense, k)
	for p, ix := range sel {
		outVals[p] = vals[ix]
		outVecs[p] = mat.NewVecDense(n, mat.Col(nil, ix, &vecs))
	}

	return outVals, outVecs, nil
}
