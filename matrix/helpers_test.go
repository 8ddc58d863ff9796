// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/subsetgraph/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense ALLOCATES a *Dense from row literals or fails the test.
// All rows must share the same length.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()

	c := 0
	if len(rows) > 0 {
		c = len(rows[0])
	}
	m, err := matrix.NewDense(len(rows), c)
	require.NoError(t, err)
	for i, row := range rows {
		require.Len(t, row, c, "ragged fixture row %d", i)
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// hide wraps any Matrix to hide its concrete type and force the
// interface (non-*Dense) code paths.
type hide struct{ matrix.Matrix }
