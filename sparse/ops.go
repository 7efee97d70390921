// SPDX-License-Identifier: MIT
// Package sparse provides arithmetic over CRS matrices: negation, addition,
// subtraction, scaling, matrix product, matrix-vector product and transpose.
//
// Purpose:
//   - Every operation is pure: operands are read-only, a fresh Matrix (or
//     vector) is allocated for the result.
//   - Dimension checks fail fast through the central validators and are
//     wrapped with the operation tag.
//
// Notes:
//   - Results go through the triplet compactor (build), so the sorted-row and
//     no-stored-zero invariants hold for every result.

package sparse

import "slices"

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opMul      = "Mul"
	opMulVec   = "MulVec"
)

// Negate returns a copy of a with every value sign-flipped.
// Complexity: O(nnz + nrow).
func Negate[T Scalar](a *Matrix[T]) *Matrix[T] {
	out := a.Clone()
	for k := range out.vals {
		out.vals[k] = -out.vals[k]
	}

	return out
}

// Scale returns alpha·a. alpha == 0 yields a matrix with no stored entries.
// Complexity: O(nnz + nrow).
func Scale[T Scalar](a *Matrix[T], alpha T) *Matrix[T] {
	if alpha == 0 {
		out, _ := New[T](a.nrow, a.ncol) // shape already valid
		return out
	}
	elems := make([]Triplet[T], 0, len(a.vals))
	a.each(func(r, c int, v T) {
		if p := v * alpha; p != 0 { // underflow can produce an exact zero
			elems = append(elems, Triplet[T]{Row: r, Col: c, Val: p})
		}
	})

	return build(a.nrow, a.ncol, elems)
}

// Add returns a + b.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: per row, two-pointer merge of the sorted column lists. Matching
//     columns are summed (and dropped when the sum is exactly zero),
//     non-matching columns pass through unchanged.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(nnz(a) + nnz(b) + nrow).
func Add[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(opAdd, err)
	}

	return merge(a, b, 1), nil
}

// Sub returns a − b. Same contract as Add.
func Sub[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(opSub, err)
	}

	return merge(a, b, -1), nil
}

// merge computes a + sign·b for same-shape operands.
func merge[T Scalar](a, b *Matrix[T], sign T) *Matrix[T] {
	elems := make([]Triplet[T], 0, len(a.vals)+len(b.vals))
	for r := 0; r < a.nrow; r++ {
		ci, ce := a.rowStart[r], a.rowStart[r+1]
		cj, cf := b.rowStart[r], b.rowStart[r+1]
		for ci < ce && cj < cf {
			switch {
			case a.cols[ci] < b.cols[cj]:
				elems = append(elems, Triplet[T]{Row: r, Col: a.cols[ci], Val: a.vals[ci]})
				ci++
			case a.cols[ci] > b.cols[cj]:
				elems = append(elems, Triplet[T]{Row: r, Col: b.cols[cj], Val: sign * b.vals[cj]})
				cj++
			default:
				if s := a.vals[ci] + sign*b.vals[cj]; s != 0 {
					elems = append(elems, Triplet[T]{Row: r, Col: a.cols[ci], Val: s})
				}
				ci++
				cj++
			}
		}
		for ; ci < ce; ci++ {
			elems = append(elems, Triplet[T]{Row: r, Col: a.cols[ci], Val: a.vals[ci]})
		}
		for ; cj < cf; cj++ {
			elems = append(elems, Triplet[T]{Row: r, Col: b.cols[cj], Val: sign * b.vals[cj]})
		}
	}

	return build(a.nrow, a.ncol, elems)
}

// Hadamard returns the element-wise product a ∘ b.
//
// Only columns stored in both rows can be non-zero, so each row is a sorted
// intersection. Underflow to an exact zero drops the entry.
//
// Errors: ErrDimensionMismatch unless the shapes are identical.
// Complexity: O(nnz(a) + nnz(b) + nrow).
//
// Notes:
//   - Hadamard is not matrix multiplication; use Mul for a × b.
func Hadamard[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(opHadamard, err)
	}

	var elems []Triplet[T]
	for r := 0; r < a.nrow; r++ {
		ci, ce := a.rowStart[r], a.rowStart[r+1]
		cj, cf := b.rowStart[r], b.rowStart[r+1]
		for ci < ce && cj < cf {
			switch {
			case a.cols[ci] < b.cols[cj]:
				ci++
			case a.cols[ci] > b.cols[cj]:
				cj++
			default:
				if p := a.vals[ci] * b.vals[cj]; p != 0 {
					elems = append(elems, Triplet[T]{Row: r, Col: a.cols[ci], Val: p})
				}
				ci++
				cj++
			}
		}
	}

	return build(a.nrow, a.ncol, elems), nil
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulShape(a, b).
//   - Stage 2: transpose b once to obtain column-major access.
//   - Stage 3: for every (i, j) compute row_i(a) · row_j(bᵗ) by sorted-list
//     intersection; only non-zero dot products are materialized.
//
// Errors: ErrDimensionMismatch unless a.Cols() == b.Rows().
// Complexity: O(nrow(a)·ncol(b)·(k_a + k_b)) in the worst case; the outer
// double loop is dense, the inner work sparse.
func Mul[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulShape(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}
	t := Transpose(b)

	var elems []Triplet[T]
	for i := 0; i < a.nrow; i++ {
		ae := a.rowStart[i+1]
		if a.rowStart[i] == ae {
			continue // empty row: every dot product is zero
		}
		for j := 0; j < t.nrow; j++ {
			ci, cj, te := a.rowStart[i], t.rowStart[j], t.rowStart[j+1]
			var sum T
			for ci < ae && cj < te {
				switch {
				case a.cols[ci] < t.cols[cj]:
					ci++
				case a.cols[ci] > t.cols[cj]:
					cj++
				default:
					sum += a.vals[ci] * t.vals[cj]
					ci++
					cj++
				}
			}
			if sum != 0 {
				elems = append(elems, Triplet[T]{Row: i, Col: j, Val: sum})
			}
		}
	}

	return build(a.nrow, b.ncol, elems), nil
}

// MulVec returns the dense product a·v.
// Errors: ErrDimensionMismatch unless a.Cols() == len(v).
// Complexity: O(nnz + nrow).
func MulVec[T Scalar](a *Matrix[T], v []T) ([]T, error) {
	out := make([]T, a.nrow)
	if err := MulVecTo(out, a, v); err != nil {
		return nil, err
	}

	return out, nil
}

// MulVecTo stores a·v into dst, overwriting it. Zero rows yield zero.
// Errors: ErrDimensionMismatch unless len(v) == a.Cols() and len(dst) == a.Rows().
// Complexity: O(nnz + nrow), no allocation.
func MulVecTo[T Scalar](dst []T, a *Matrix[T], v []T) error {
	if err := ValidateVecLen(v, a.ncol); err != nil {
		return sparseErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(dst, a.nrow); err != nil {
		return sparseErrorf(opMulVec, err)
	}
	for r := 0; r < a.nrow; r++ {
		var acc T
		for k := a.rowStart[r]; k < a.rowStart[r+1]; k++ {
			acc += a.vals[k] * v[a.cols[k]]
		}
		dst[r] = acc
	}

	return nil
}

// Transpose returns aᵗ, rebuilt from row/col-swapped triplets.
// Complexity: O(nnz log nnz + ncol).
func Transpose[T Scalar](a *Matrix[T]) *Matrix[T] {
	elems := make([]Triplet[T], 0, len(a.vals))
	a.each(func(r, c int, v T) {
		elems = append(elems, Triplet[T]{Row: c, Col: r, Val: v})
	})

	return build(a.ncol, a.nrow, elems)
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidIndex for n < 0.
func Identity[T Scalar](n int) (*Matrix[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	m.vals = make([]T, n)
	m.cols = make([]int, n)
	for i := 0; i < n; i++ {
		m.vals[i] = 1
		m.cols[i] = i
		m.rowStart[i+1] = i + 1
	}

	return m, nil
}

// Diagonal returns the main diagonal as a dense slice of length
// min(Rows, Cols); absent entries are zero.
func Diagonal[T Scalar](a *Matrix[T]) []T {
	n := min(a.nrow, a.ncol)
	d := make([]T, n)
	for i := 0; i < n; i++ {
		if pos, ok := a.find(i, i); ok {
			d[i] = a.vals[pos]
		}
	}

	return d
}

// Equal reports whether a and b have the same shape and are entry-wise equal.
// Because neither side stores zeros, this compares the CRS arrays directly.
func Equal[T Scalar](a, b *Matrix[T]) bool {
	if a.nrow != b.nrow || a.ncol != b.ncol {
		return false
	}

	return slices.Equal(a.rowStart, b.rowStart) &&
		slices.Equal(a.cols, b.cols) &&
		slices.Equal(a.vals, b.vals)
}

// Dense returns a row-major dense copy of a.
// Complexity: O(nrow·ncol).
func Dense[T Scalar](a *Matrix[T]) [][]T {
	out := make([][]T, a.nrow)
	for r := range out {
		out[r] = make([]T, a.ncol)
	}
	a.each(func(r, c int, v T) { out[r][c] = v })

	return out
}

// Triplets returns the stored entries in row-major order.
// NewFromTriplets(a.Rows(), a.Cols(), Triplets(a)) reproduces a.
func Triplets[T Scalar](a *Matrix[T]) []Triplet[T] {
	out := make([]Triplet[T], 0, len(a.vals))
	a.each(func(r, c int, v T) {
		out = append(out, Triplet[T]{Row: r, Col: c, Val: v})
	})

	return out
}

// each visits the stored entries in row-major order.
func (m *Matrix[T]) each(fn func(r, c int, v T)) {
	for r := 0; r < m.nrow; r++ {
		for k := m.rowStart[r]; k < m.rowStart[r+1]; k++ {
			fn(r, m.cols[k], m.vals[k])
		}
	}
}
