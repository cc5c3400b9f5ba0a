// SPDX-License-Identifier: MIT

// Package eigen_test verifies the ordering contract, the extremal
// selection, the validation surface and a handful of known graph spectra.
package eigen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/matrix"
)

// spectrumDelta tolerates eigensolver round-off on small fixtures.
const spectrumDelta = 1e-9

// mustBuild constructs a fixture graph or aborts the test.
func mustBuild(t *testing.T, con builder.Constructor) *core.Graph {
	t.Helper()

	g, err := builder.Build(nil, nil, con)
	require.NoError(t, err)

	return g
}

// requireSpectrum compares eigenvalues against the expectation in order.
func requireSpectrum(t *testing.T, want, got []float64) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], spectrumDelta, "eigenvalue %d", i)
	}
}

// TestSymmetric_AscendingBothDirections: the returned eigenvalue sequence
// is sorted ascending whether the largest or the smallest end was
// requested.
func TestSymmetric_AscendingBothDirections(t *testing.T) {
	t.Parallel()

	a, err := matrix.Adjacency(mustBuild(t, builder.Cycle(6)))
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		opts []eigen.Option
	}{
		{name: "LargestFirst"},
		{name: "SmallestFirst", opts: []eigen.Option{eigen.WithSmallestFirst()}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			vals, vecs, symErr := eigen.Symmetric(a.Data, 3, tc.opts...)
			require.NoError(t, symErr)
			require.Len(t, vals, 4)
			require.Len(t, vecs, 4)
			assert.IsNonDecreasing(t, vals)
		})
	}
}

// TestSymmetric_KnownSpectra pins classic graph spectra.
func TestSymmetric_KnownSpectra(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		build  func(t *testing.T) *matrix.GraphMatrix
		cutoff int
		opts   []eigen.Option
		want   []float64
	}{
		{
			name: "TriangleLaplacian_FullLargest",
			build: func(t *testing.T) *matrix.GraphMatrix {
				l, err := matrix.Laplacian(mustBuild(t, builder.Cycle(3)))
				require.NoError(t, err)
				return l
			},
			cutoff: eigen.Full, // spectrum {0,3,3}; top n−1 = {3,3}
			want:   []float64{3, 3},
		},
		{
			name: "TriangleLaplacian_FullSmallest",
			build: func(t *testing.T) *matrix.GraphMatrix {
				l, err := matrix.Laplacian(mustBuild(t, builder.Cycle(3)))
				require.NoError(t, err)
				return l
			},
			cutoff: eigen.Full,
			opts:   []eigen.Option{eigen.WithSmallestFirst()},
			want:   []float64{0, 3},
		},
		{
			name: "PathLaplacian_AllSmallest",
			build: func(t *testing.T) *matrix.GraphMatrix {
				l, err := matrix.Laplacian(mustBuild(t, builder.Path(3)))
				require.NoError(t, err)
				return l
			},
			cutoff: 2, // k = 3 = n: the whole spectrum {0,1,3}
			opts:   []eigen.Option{eigen.WithSmallestFirst()},
			want:   []float64{0, 1, 3},
		},
		{
			name: "K4Adjacency_TopOne",
			build: func(t *testing.T) *matrix.GraphMatrix {
				a, err := matrix.Adjacency(mustBuild(t, builder.Complete(4)))
				require.NoError(t, err)
				return a
			},
			cutoff: 0, // single largest of {−1,−1,−1,3}
			want:   []float64{3},
		},
		{
			name: "K4Adjacency_BottomThree",
			build: func(t *testing.T) *matrix.GraphMatrix {
				a, err := matrix.Adjacency(mustBuild(t, builder.Complete(4)))
				require.NoError(t, err)
				return a
			},
			cutoff: 2,
			opts:   []eigen.Option{eigen.WithSmallestFirst()},
			want:   []float64{-1, -1, -1},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			vals, vecs, err := eigen.Symmetric(tc.build(t).Data, tc.cutoff, tc.opts...)
			require.NoError(t, err)
			require.Len(t, vecs, len(tc.want))
			requireSpectrum(t, tc.want, vals)
		})
	}
}

// TestSymmetric_EigenpairResidual: A·v == λ·v for every returned pair,
// and the vectors come back with unit norm.
func TestSymmetric_EigenpairResidual(t *testing.T) {
	t.Parallel()

	a, err := matrix.Adjacency(mustBuild(t, builder.Complete(4)))
	require.NoError(t, err)

	vals, vecs, err := eigen.Symmetric(a.Data, eigen.Full)
	require.NoError(t, err)

	n := a.Dim()
	for p, vec := range vecs {
		require.InDelta(t, 1, mat.Norm(vec, 2), spectrumDelta, "norm of vector %d", p)

		var av mat.VecDense
		av.MulVec(a.Data, vec)
		for i := 0; i < n; i++ {
			require.InDelta(t, vals[p]*vec.AtVec(i), av.AtVec(i), spectrumDelta,
				"residual at pair %d, row %d", p, i)
		}
	}
}

// TestSymmetric_Validation walks the full error surface.
func TestSymmetric_Validation(t *testing.T) {
	t.Parallel()

	sym := mat.NewSymDense(3, []float64{
		2, -1, 0,
		-1, 2, -1,
		0, -1, 2,
	})

	t.Run("NilMatrix", func(t *testing.T) {
		t.Parallel()

		_, _, err := eigen.Symmetric(nil, 0)
		require.ErrorIs(t, err, eigen.ErrNilMatrix)
	})

	t.Run("NonSquare", func(t *testing.T) {
		t.Parallel()

		_, _, err := eigen.Symmetric(mat.NewDense(2, 3, nil), 0)
		require.ErrorIs(t, err, eigen.ErrNonSquare)
	})

	t.Run("Asymmetric", func(t *testing.T) {
		t.Parallel()

		d := mat.NewDense(2, 2, []float64{0, 1, 2, 0})
		_, _, err := eigen.Symmetric(d, 0)
		require.ErrorIs(t, err, eigen.ErrNotSymmetric)
	})

	t.Run("AsymmetricWithinEpsilonPasses", func(t *testing.T) {
		t.Parallel()

		d := mat.NewDense(2, 2, []float64{0, 1, 1.25, 0})
		_, _, err := eigen.Symmetric(d, 0, eigen.WithEpsilon(0.5))
		require.NoError(t, err)
	})

	t.Run("CutoffTooSmall", func(t *testing.T) {
		t.Parallel()

		_, _, err := eigen.Symmetric(sym, -2)
		require.ErrorIs(t, err, eigen.ErrBadCutoff)
	})

	t.Run("CutoffTooLarge", func(t *testing.T) {
		t.Parallel()

		_, _, err := eigen.Symmetric(sym, 3) // k = 4 > n = 3
		require.ErrorIs(t, err, eigen.ErrBadCutoff)
	})
}

// TestWithEpsilon_Validation: nonsensical tolerances panic at option
// construction time.
func TestWithEpsilon_Validation(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { eigen.WithEpsilon(-1) })
	assert.NotPanics(t, func() { eigen.WithEpsilon(0) })
}
