// Package sparse implements a mutable sparse matrix in compressed-row
// storage (CRS) together with pure arithmetic over it.
//
// The sparse package provides:
//
//   - Matrix[T], generic over the scalar field (float32, float64 or any named
//     type with one of those underlying types).
//   - Construction from an empty shape (New) or an unordered triplet list
//     (NewFromTriplets).
//   - Single-entry access: At (binary search inside the row), Put
//     (insert-or-update, zero is a no-op), Remove, Increment.
//   - Arithmetic producing fresh matrices: Negate, Add, Sub, Scale, Mul,
//     Transpose, plus the dense product MulVec.
//   - A closed error set (ErrInvalidIndex, ErrDimensionMismatch,
//     ErrSingularDiagonal, ErrNonConvergence, ErrInvalidParameter) with
//     ErrorKind/KindOf classification.
//
// Invariants after every observable operation:
//
//	columns within a row are strictly increasing
//	no stored value is exactly zero
//	0 = rowStart[0] ≤ rowStart[r] ≤ rowStart[r+1] ≤ NNZ()
//
// Quirks kept on purpose:
//
//   - Put(i, j, 0) never clears an existing entry; use Remove.
//   - Triplets with the same (row, col) and different values: the last one in
//     input order wins.
//
// Iterative solvers over a Matrix live in package iterative.
package sparse
