// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for CRS storage and arithmetic tests.
//   - Random fixtures use small integer values so sums and products are exact
//     in float64 and entry-wise equality can be asserted bitwise.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crs/sparse"
)

// MustTriplets BUILDS an r×c matrix from triplets or fails the test.
func MustTriplets(t testing.TB, r, c int, ts ...sparse.Triplet[float64]) *sparse.Matrix[float64] {
	t.Helper()
	m, err := sparse.NewFromTriplets(r, c, ts)
	require.NoError(t, err)

	return m
}

// MustDenseRows BUILDS a matrix from dense rows; zeros are not stored.
func MustDenseRows(t testing.TB, rows [][]float64) *sparse.Matrix[float64] {
	t.Helper()
	var ts []sparse.Triplet[float64]
	cols := 0
	for i, row := range rows {
		cols = max(cols, len(row))
		for j, v := range row {
			ts = append(ts, sparse.Triplet[float64]{Row: i, Col: j, Val: v})
		}
	}

	return MustTriplets(t, len(rows), cols, ts...)
}

// RandomSparse RETURNS an r×c matrix with roughly density·r·c entries drawn
// from the integers in [-5, 5] \ {0}.
// Deterministic per seed.
func RandomSparse(t testing.TB, r, c int, density float64, seed int64) *sparse.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := sparse.New[float64](r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() >= density {
				continue
			}
			v := float64(rng.Intn(10) - 5)
			if v >= 0 {
				v++ // shift [0,4] to [1,5] so no zero is drawn
			}
			require.NoError(t, m.Put(i, j, v))
		}
	}

	return m
}

// RequireSameEntries ASSERTS a and b are entry-wise equal through At, and
// that both satisfy the CRS invariants.
func RequireSameEntries(t testing.TB, want, got *sparse.Matrix[float64]) {
	t.Helper()
	require.NoError(t, want.Validate())
	require.NoError(t, got.Validate())
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.Equalf(t, w, g, "entry [%d,%d]", i, j)
		}
	}
}
