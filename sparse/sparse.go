// SPDX-License-Identifier: MIT

// Package sparse - CRS storage (compressed rows) & safe accessors.
//
// Purpose:
//   - Store only non-zero entries: values, their column indices and per-row offsets.
//   - Keep every row's column indices strictly increasing (binary-searchable).
//   - Guarantee safety at the public surface: At/Put return errors instead of panicking.
//
// Layout:
//   - vals[k], cols[k] describe the k-th stored entry.
//   - rowStart[r] is the offset where row r begins; rowStart[nrow] == len(vals).
//   - ncol is tracked separately since trailing all-zero columns are possible.
//
// Complexity quicksheet:
//   - New: O(nrow); NewFromTriplets: O(t log t); At: O(log k); Put (insert): O(nnz + nrow).

package sparse

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxTriplets  = "NewFromTriplets"
	ctxAt        = "At"
	ctxPut       = "Put"
	ctxRemove    = "Remove"
	ctxIncrement = "Increment"
	ctxRow       = "Row"
	ctxValidate  = "Validate"
)

// ---------- Formatting literals  ----------
const (
	_fmtSep    = ", "
	_fmtRowEnd = "\n"
)

// Matrix is a sparse nrow×ncol matrix in compressed-row storage.
// The zero value is not usable; construct with New or NewFromTriplets.
//
// A Matrix is not safe for concurrent use while Put/Remove/Increment may run.
// Concurrent read-only use (At, Row, arithmetic operands) is safe.
type Matrix[T Scalar] struct {
	nrow, ncol int
	vals       []T   // stored non-zero values, row-major
	cols       []int // column index per stored value, sorted within a row
	rowStart   []int // len == nrow+1; rowStart[0] == 0
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New creates an nrow×ncol matrix with no stored entries.
// Zero-sized shapes are allowed; negative sizes return ErrInvalidIndex.
// Complexity: O(nrow).
func New[T Scalar](nrow, ncol int) (*Matrix[T], error) {
	if nrow < 0 || ncol < 0 {
		return nil, indexErrorf(ctxNew, nrow, ncol)
	}

	return &Matrix[T]{
		nrow:     nrow,
		ncol:     ncol,
		rowStart: make([]int, nrow+1),
	}, nil
}

// NewFromTriplets builds an nrow×ncol matrix from an unordered triplet list.
//
// Implementation:
//   - Stage 1: validate shape and every (row, col) against [0,nrow)×[0,ncol).
//   - Stage 2: drop triplets whose value is exactly zero.
//   - Stage 3: stable-sort by (row, col) and compact into CRS.
//
// Behavior highlights:
//   - Exact duplicates collapse to one entry.
//   - Triplets sharing (row, col) with different values: the one appearing
//     LAST in the input wins (last-write-wins). The sort is stable, so input
//     order among equal keys is preserved and the outcome is deterministic.
//   - The caller's slice is not modified.
//
// Errors:
//   - ErrInvalidIndex (negative shape or any index out of range).
//
// Complexity:
//   - Time O(t log t), Space O(t) for t triplets.
func NewFromTriplets[T Scalar](nrow, ncol int, triplets []Triplet[T]) (*Matrix[T], error) {
	if nrow < 0 || ncol < 0 {
		return nil, indexErrorf(ctxTriplets, nrow, ncol)
	}
	elems := make([]Triplet[T], 0, len(triplets))
	for _, e := range triplets {
		if e.Row < 0 || e.Row >= nrow || e.Col < 0 || e.Col >= ncol {
			return nil, indexErrorf(ctxTriplets, e.Row, e.Col)
		}
		if e.Val != 0 {
			elems = append(elems, e)
		}
	}

	return build(nrow, ncol, elems), nil
}

// build sorts elems in place and compacts them into a new Matrix.
// Callers guarantee indices are in range and values are non-zero.
func build[T Scalar](nrow, ncol int, elems []Triplet[T]) *Matrix[T] {
	slices.SortStableFunc(elems, func(a, b Triplet[T]) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	m := &Matrix[T]{
		nrow:     nrow,
		ncol:     ncol,
		vals:     make([]T, 0, len(elems)),
		cols:     make([]int, 0, len(elems)),
		rowStart: make([]int, nrow+1),
	}
	var prev Triplet[T]
	for k, e := range elems {
		if k > 0 && e.Row == prev.Row && e.Col == prev.Col {
			m.vals[len(m.vals)-1] = e.Val // same slot: later triplet wins
			continue
		}
		m.vals = append(m.vals, e.Val)
		m.cols = append(m.cols, e.Col)
		m.rowStart[e.Row+1]++ // count per row, prefix-summed below
		prev = e
	}
	for r := 0; r < nrow; r++ {
		m.rowStart[r+1] += m.rowStart[r]
	}

	return m
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.nrow }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.ncol }

// NNZ returns the number of stored entries.
func (m *Matrix[T]) NNZ() int { return len(m.vals) }

// inRange reports whether (i, j) is a valid coordinate.
func (m *Matrix[T]) inRange(i, j int) bool {
	return i >= 0 && i < m.nrow && j >= 0 && j < m.ncol
}

// find locates column j inside row i by binary search on the row's sorted
// column range. pos is the insertion point when ok is false.
// Complexity: O(log k), k = entries in row i.
func (m *Matrix[T]) find(i, j int) (pos int, ok bool) {
	lo, hi := m.rowStart[i], m.rowStart[i+1]
	off, ok := slices.BinarySearch(m.cols[lo:hi], j)

	return lo + off, ok
}

// At returns the value at (i, j), or zero when no entry is stored there.
// Errors: ErrInvalidIndex when i or j is out of range.
// Complexity: O(log k).
func (m *Matrix[T]) At(i, j int) (T, error) {
	if !m.inRange(i, j) {
		return 0, indexErrorf(ctxAt, i, j)
	}
	if pos, ok := m.find(i, j); ok {
		return m.vals[pos], nil
	}

	return 0, nil
}

// Put writes v at (i, j).
//
// Behavior highlights:
//   - v == 0 is a no-op, EVEN IF an entry is already stored at (i, j): an
//     existing non-zero entry cannot be cleared through Put. Use Remove.
//   - An existing entry is overwritten in place.
//   - A new entry is inserted at its sorted position in row i; subsequent
//     entries shift and the offsets of all later rows are incremented.
//
// Errors: ErrInvalidIndex when i or j is out of range.
// Complexity: O(log k) update, O(nnz + nrow) insert.
func (m *Matrix[T]) Put(i, j int, v T) error {
	if !m.inRange(i, j) {
		return indexErrorf(ctxPut, i, j)
	}
	if v == 0 {
		return nil
	}
	pos, ok := m.find(i, j)
	if ok {
		m.vals[pos] = v
		return nil
	}
	m.insertAt(i, pos, j, v)

	return nil
}

// Remove clears the entry at (i, j); absent entries are left alone.
// Errors: ErrInvalidIndex when i or j is out of range.
// Complexity: O(nnz + nrow) when an entry is removed.
func (m *Matrix[T]) Remove(i, j int) error {
	if !m.inRange(i, j) {
		return indexErrorf(ctxRemove, i, j)
	}
	if pos, ok := m.find(i, j); ok {
		m.deleteAt(i, pos)
	}

	return nil
}

// Increment adds v to the value at (i, j). A sum of exactly zero removes the
// entry, so no stored zero is ever observable.
// Errors: ErrInvalidIndex when i or j is out of range.
func (m *Matrix[T]) Increment(i, j int, v T) error {
	if !m.inRange(i, j) {
		return indexErrorf(ctxIncrement, i, j)
	}
	if v == 0 {
		return nil
	}
	pos, ok := m.find(i, j)
	switch {
	case !ok:
		m.insertAt(i, pos, j, v)
	case m.vals[pos]+v == 0:
		m.deleteAt(i, pos)
	default:
		m.vals[pos] += v
	}

	return nil
}

// insertAt inserts (j, v) at storage position pos belonging to row i.
func (m *Matrix[T]) insertAt(i, pos, j int, v T) {
	m.vals = slices.Insert(m.vals, pos, v)
	m.cols = slices.Insert(m.cols, pos, j)
	for r := i + 1; r <= m.nrow; r++ {
		m.rowStart[r]++
	}
}

// deleteAt removes storage position pos belonging to row i.
func (m *Matrix[T]) deleteAt(i, pos int) {
	m.vals = slices.Delete(m.vals, pos, pos+1)
	m.cols = slices.Delete(m.cols, pos, pos+1)
	for r := i + 1; r <= m.nrow; r++ {
		m.rowStart[r]--
	}
}

// Row returns the stored column indices and values of row i.
// The slices alias the matrix storage and are capacity-limited: treat them as
// read-only and do not retain them across Put/Remove/Increment.
// Errors: ErrInvalidIndex when i is out of range.
func (m *Matrix[T]) Row(i int) ([]int, []T, error) {
	if i < 0 || i >= m.nrow {
		return nil, nil, indexErrorf(ctxRow, i, 0)
	}
	lo, hi := m.rowStart[i], m.rowStart[i+1]

	return m.cols[lo:hi:hi], m.vals[lo:hi:hi], nil
}

// Clone returns a deep copy of m.
// Complexity: O(nnz + nrow).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		nrow:     m.nrow,
		ncol:     m.ncol,
		vals:     slices.Clone(m.vals),
		cols:     slices.Clone(m.cols),
		rowStart: slices.Clone(m.rowStart),
	}
}

// Validate checks the CRS invariants: offsets are monotone and bounded,
// columns are in range and strictly increasing per row, no zero is stored.
// A violation is reported as a wrapped ErrInvalidIndex naming the row.
// Complexity: O(nnz + nrow).
func (m *Matrix[T]) Validate() error {
	if len(m.rowStart) != m.nrow+1 || m.rowStart[0] != 0 || m.rowStart[m.nrow] != len(m.vals) || len(m.cols) != len(m.vals) {
		return sparseErrorf(ctxValidate, fmt.Errorf("row offsets: %w", ErrInvalidIndex))
	}
	for r := 0; r < m.nrow; r++ {
		lo, hi := m.rowStart[r], m.rowStart[r+1]
		if lo > hi || hi > len(m.vals) {
			return indexErrorf(ctxValidate, r, 0)
		}
		for k := lo; k < hi; k++ {
			if m.cols[k] < 0 || m.cols[k] >= m.ncol || m.vals[k] == 0 {
				return indexErrorf(ctxValidate, r, m.cols[k])
			}
			if k > lo && m.cols[k] <= m.cols[k-1] {
				return indexErrorf(ctxValidate, r, m.cols[k])
			}
		}
	}

	return nil
}

// String renders one line per row with the dense values (zeros included)
// joined by ", ". Intended for debugging, not a durable format.
// Complexity: O(nrow*ncol).
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for r := 0; r < m.nrow; r++ {
		if r > 0 {
			sb.WriteString(_fmtRowEnd)
		}
		k, hi := m.rowStart[r], m.rowStart[r+1]
		for c := 0; c < m.ncol; c++ {
			if c > 0 {
				sb.WriteString(_fmtSep)
			}
			var v T
			if k < hi && m.cols[k] == c {
				v = m.vals[k]
				k++
			}
			fmt.Fprint(&sb, v)
		}
	}

	return sb.String()
}
