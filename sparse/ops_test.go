// Package sparse_test contains unit tests for the arithmetic engine.
package sparse_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crs/sparse"
)

// seeds used by the randomized algebraic property tests.
var propertySeeds = []int64{1, 7, 42, 1337, 9001}

// naiveMul multiplies dense row-major operands; reference for Mul.
func naiveMul(a, b [][]float64, n, k, m int) [][]float64 {
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			for p := 0; p < k; p++ {
				out[i][j] += a[i][p] * b[p][j]
			}
		}
	}

	return out
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()
	for _, seed := range propertySeeds {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			a := RandomSparse(t, 7, 4, 0.35, seed)
			at := sparse.Transpose(a)
			require.Equal(t, a.Cols(), at.Rows())
			require.Equal(t, a.Rows(), at.Cols())
			require.Equal(t, a.NNZ(), at.NNZ())
			RequireSameEntries(t, a, sparse.Transpose(at))
			require.True(t, sparse.Equal(a, sparse.Transpose(at)))
		})
	}
}

func TestTranspose_Entries(t *testing.T) {
	a := MustDenseRows(t, [][]float64{
		{1, 0, 2},
		{0, 3, 0},
	})
	require.Equal(t, "1, 0\n0, 3\n2, 0", sparse.Transpose(a).String())
}

func TestAdd_Associative(t *testing.T) {
	t.Parallel()
	for _, seed := range propertySeeds {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			a := RandomSparse(t, 6, 5, 0.4, seed)
			b := RandomSparse(t, 6, 5, 0.4, seed+1)
			c := RandomSparse(t, 6, 5, 0.4, seed+2)

			ab, err := sparse.Add(a, b)
			require.NoError(t, err)
			left, err := sparse.Add(ab, c)
			require.NoError(t, err)

			bc, err := sparse.Add(b, c)
			require.NoError(t, err)
			right, err := sparse.Add(a, bc)
			require.NoError(t, err)

			RequireSameEntries(t, left, right)
		})
	}
}

func TestAdd_MergeAndCancel(t *testing.T) {
	a := MustDenseRows(t, [][]float64{
		{1, 0, 2},
		{0, 3, 0},
	})
	b := MustDenseRows(t, [][]float64{
		{0, 5, -2},
		{1, 0, 0},
	})
	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	require.NoError(t, sum.Validate())
	require.Equal(t, "1, 5, 0\n1, 3, 0", sum.String())
	require.Equal(t, 4, sum.NNZ(), "cancelled (0,2) must not be stored")

	// Operands untouched.
	require.Equal(t, "1, 0, 2\n0, 3, 0", a.String())
	require.Equal(t, "0, 5, -2\n1, 0, 0", b.String())
}

func TestSubNegate(t *testing.T) {
	a := RandomSparse(t, 5, 5, 0.5, 3)
	b := RandomSparse(t, 5, 5, 0.5, 4)

	d, err := sparse.Sub(a, b)
	require.NoError(t, err)
	viaNeg, err := sparse.Add(a, sparse.Negate(b))
	require.NoError(t, err)
	RequireSameEntries(t, viaNeg, d)

	zero, err := sparse.Sub(a, a)
	require.NoError(t, err)
	require.Zero(t, zero.NNZ())

	nn := sparse.Negate(sparse.Negate(a))
	RequireSameEntries(t, a, nn)
}

func TestScale(t *testing.T) {
	a := MustDenseRows(t, [][]float64{{1, -2}, {0, 4}})
	require.Equal(t, "-2, 4\n0, -8", sparse.Scale(a, -2).String())
	s0 := sparse.Scale(a, 0)
	require.Zero(t, s0.NNZ())
	require.Equal(t, 2, s0.Cols())
}

func TestMul_Identity(t *testing.T) {
	t.Parallel()
	for _, seed := range propertySeeds {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			a := RandomSparse(t, 5, 8, 0.3, seed)
			id, err := sparse.Identity[float64](a.Cols())
			require.NoError(t, err)
			p, err := sparse.Mul(a, id)
			require.NoError(t, err)
			RequireSameEntries(t, a, p)

			idl, err := sparse.Identity[float64](a.Rows())
			require.NoError(t, err)
			p, err = sparse.Mul(idl, a)
			require.NoError(t, err)
			RequireSameEntries(t, a, p)
		})
	}
}

func TestMul_MatchesDense(t *testing.T) {
	t.Parallel()
	for _, seed := range propertySeeds {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			a := RandomSparse(t, 4, 6, 0.4, seed)
			b := RandomSparse(t, 6, 3, 0.4, seed*3)
			p, err := sparse.Mul(a, b)
			require.NoError(t, err)
			require.NoError(t, p.Validate())

			want := naiveMul(sparse.Dense(a), sparse.Dense(b), 4, 6, 3)
			if diff := cmp.Diff(want, sparse.Dense(p)); diff != "" {
				t.Fatalf("Mul mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMul_FractionalApprox(t *testing.T) {
	// Values with no exact binary form; the sparse and dense sums may
	// round differently, so compare within a relative tolerance.
	a := sparse.Scale(RandomSparse(t, 5, 5, 0.5, 3), 0.1)
	b := sparse.Scale(RandomSparse(t, 5, 5, 0.5, 5), 1.0/3)
	p, err := sparse.Mul(a, b)
	require.NoError(t, err)

	want := naiveMul(sparse.Dense(a), sparse.Dense(b), 5, 5, 5)
	if diff := cmp.Diff(want, sparse.Dense(p), cmpopts.EquateApprox(1e-12, 1e-15)); diff != "" {
		t.Fatalf("Mul mismatch (-want +got):\n%s", diff)
	}
}

func TestMulVec(t *testing.T) {
	a := MustDenseRows(t, [][]float64{
		{4, 1, 0},
		{0, 0, 0},
		{0, 1, 4},
	})
	y, err := sparse.MulVec(a, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 0, 14}, y)

	dst := []float64{9, 9, 9}
	require.NoError(t, sparse.MulVecTo(dst, a, []float64{0, 0, 1}))
	require.Equal(t, []float64{0, 0, 4}, dst)
}

func TestHadamard(t *testing.T) {
	a := MustDenseRows(t, [][]float64{
		{4, 1, 0},
		{0, 2, 3},
	})
	b := MustDenseRows(t, [][]float64{
		{2, 0, 5},
		{0, 3, 1},
	})
	h, err := sparse.Hadamard(a, b)
	require.NoError(t, err)
	require.NoError(t, h.Validate())
	require.Equal(t, [][]float64{
		{8, 0, 0},
		{0, 6, 3},
	}, sparse.Dense(h))
	require.Equal(t, 3, h.NNZ())

	for _, seed := range propertySeeds {
		x := RandomSparse(t, 4, 5, 0.5, seed)
		y := RandomSparse(t, 4, 5, 0.5, seed+1)
		xy, err := sparse.Hadamard(x, y)
		require.NoError(t, err)
		yx, err := sparse.Hadamard(y, x)
		require.NoError(t, err)
		require.True(t, sparse.Equal(xy, yx), "seed=%d", seed)
	}
}

func TestDimensionMismatch(t *testing.T) {
	a := RandomSparse(t, 2, 3, 0.5, 11)
	b := RandomSparse(t, 3, 2, 0.5, 12)

	tests := []struct {
		name string
		call func() error
	}{
		{"Add", func() error { _, err := sparse.Add(a, b); return err }},
		{"Sub", func() error { _, err := sparse.Sub(a, b); return err }},
		{"AddNil", func() error { _, err := sparse.Add(a, nil); return err }},
		{"Hadamard", func() error { _, err := sparse.Hadamard(a, b); return err }},
		{"Mul", func() error { _, err := sparse.Mul(a, a); return err }},
		{"MulVec", func() error { _, err := sparse.MulVec(a, []float64{1, 2}); return err }},
		{"MulVecToDst", func() error { return sparse.MulVecTo(make([]float64, 3), a, []float64{1, 2, 3}) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
			require.Equal(t, sparse.KindDimensionMismatch, sparse.KindOf(err))
		})
	}

	_, err := sparse.Mul(a, b) // 2×3 · 3×2 is fine
	require.NoError(t, err)
}

func TestDiagonalDenseTriplets(t *testing.T) {
	a := MustDenseRows(t, [][]float64{
		{4, 1, 0, 2},
		{1, 0, 1, 0},
		{0, 1, 4, 0},
	})
	require.Equal(t, []float64{4, 0, 4}, sparse.Diagonal(a))
	require.Equal(t, [][]float64{
		{4, 1, 0, 2},
		{1, 0, 1, 0},
		{0, 1, 4, 0},
	}, sparse.Dense(a))

	ts := sparse.Triplets(a)
	require.Len(t, ts, a.NNZ())
	require.Equal(t, sparse.Triplet[float64]{Row: 0, Col: 0, Val: 4}, ts[0])
	back := MustTriplets(t, a.Rows(), a.Cols(), ts...)
	require.True(t, sparse.Equal(a, back))
	require.False(t, sparse.Equal(a, sparse.Transpose(a)))
}
