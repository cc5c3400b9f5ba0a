// SPDX-License-Identifier: MIT

// Package matrix_test: shared deterministic fixtures and assertions.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/core"
	"github.com/katalvlaran/spectral/matrix"
)

// delta is the tolerance for floating-point entry comparisons.
const delta = 1e-12

// mustBuild constructs a fixture graph or aborts the test.
func mustBuild(t *testing.T, gopts []core.GraphOption, con builder.Constructor) *core.Graph {
	t.Helper()

	g, err := builder.Build(gopts, nil, con)
	require.NoError(t, err)

	return g
}

// triangle is the 3-vertex undirected unweighted cycle used throughout.
func triangle(t *testing.T) *core.Graph {
	t.Helper()

	return mustBuild(t, nil, builder.Cycle(3))
}

// requireEntries asserts every entry of m against the dense expectation.
func requireEntries(t *testing.T, want [][]float64, m *matrix.GraphMatrix) {
	t.Helper()

	n := m.Dim()
	require.Len(t, want, n)
	for i := 0; i < n; i++ {
		require.Len(t, want[i], n)
		for j := 0; j < n; j++ {
			got, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], got, delta, "entry (%d,%d)", i, j)
		}
	}
}
