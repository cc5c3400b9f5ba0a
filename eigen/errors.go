// SPDX-License-Identifier: MIT

// Package eigen: sentinel error set. Callers branch with errors.Is;
// functions wrap these with %w context and never panic on user input.
package eigen

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("eigen: matrix is nil")

	// ErrEmptyMatrix indicates a 0×0 matrix; there is no spectrum to return.
	ErrEmptyMatrix = errors.New("eigen: matrix is empty")

	// ErrNonSquare indicates a non-square input matrix.
	ErrNonSquare = errors.New("eigen: matrix is not square")

	// ErrNotSymmetric indicates the input violated symmetry beyond the
	// configured epsilon tolerance.
	ErrNotSymmetric = errors.New("eigen: matrix is not symmetric within eps")

	// ErrEigenFailed indicates the underlying eigensolver did not converge.
	ErrEigenFailed = errors.New("eigen: decomposition did not converge")

	// ErrBadCutoff indicates a cutoff (or rank order) outside the valid
	// range for the matrix dimension.
	ErrBadCutoff = errors.New("eigen: cutoff out of range")
)
