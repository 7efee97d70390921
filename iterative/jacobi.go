// SPDX-License-Identifier: MIT

package iterative

import "github.com/katalvlaran/crs/sparse"

// Jacobi solves a·x = b with Jacobi sweeps.
//
// Implementation:
//   - Stage 1: validate a square and len(b) == a.Rows(); start from x0 = b
//     (or WithInitialGuess).
//   - Stage 2: each sweep computes, for every row i,
//     next[i] = (b[i] − Σ_{j≠i} a[i,j]·x[j]) / a[i,i]
//     using only the previous iterate, then swaps the two buffers.
//   - Stage 3: stop when max|next − x| <= threshold.
//
// Errors:
//   - sparse.ErrDimensionMismatch (shape, len(b), initial guess length).
//   - sparse.ErrSingularDiagonal the first time a row has no diagonal entry.
//   - sparse.ErrNonConvergence when maxIter sweeps pass, or the iterate
//     stops being finite.
//
// Complexity: O(nnz + n) per sweep, two n-vectors of extra space.
func Jacobi[T sparse.Scalar](a *sparse.Matrix[T], b []T, opts ...Option) (Result[T], error) {
	const method = MethodJacobi
	if err := sparse.ValidateSystem(a, b); err != nil {
		return Result[T]{}, solveError(method, 0, -1, err)
	}
	o := gatherOptions(opts...)
	n := len(b)
	x, err := startVector(&o, b, n)
	if err != nil {
		return Result[T]{}, solveError(method, 0, -1, err)
	}
	next := make([]T, n)

	for iter := 1; ; iter++ {
		var diff T
		for r := 0; r < n; r++ {
			cols, vals, _ := a.Row(r) // r < n == a.Rows()
			aii, off := splitRow(r, cols, vals, x)
			if aii == 0 {
				return Result[T]{}, solveError(method, iter, r, sparse.ErrSingularDiagonal)
			}
			next[r] = (b[r] - off) / aii
			diff = max(diff, abs(next[r]-x[r]))
		}
		x, next = next, x

		metric := float64(diff)
		o.report(Progress{Method: method, Iteration: iter, Metric: metric})
		if metric <= o.threshold {
			return Result[T]{X: x, Iterations: iter, Metric: metric}, nil
		}
		if !finite(metric) || iter >= o.maxIter {
			return Result[T]{}, solveError(method, iter, -1, sparse.ErrNonConvergence)
		}
	}
}
