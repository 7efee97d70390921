// SPDX-License-Identifier: MIT

package iterative

import "github.com/katalvlaran/crs/sparse"

// GaussSeidel solves a·x = b; it is exactly SOR with λ = 1.
func GaussSeidel[T sparse.Scalar](a *sparse.Matrix[T], b []T, opts ...Option) (Result[T], error) {
	return sor(MethodGaussSeidel, a, b, 1, opts...)
}

// SOR solves a·x = b by successive over-relaxation with factor lambda.
//
// Implementation:
//   - Stage 1: validate the system, then 1 ≤ λ < 2, before any sweep runs.
//   - Stage 2: a single iterate is updated in place, so row i already sees
//     the values rows 0..i-1 wrote during the same sweep:
//     x[i] ← λ·(b[i] − Σ_{j≠i} a[i,j]·x[j]) / a[i,i] + (1−λ)·x[i]
//   - Stage 3: stop when the max per-sweep change is <= threshold.
//
// Errors:
//   - sparse.ErrDimensionMismatch, sparse.ErrInvalidParameter (λ ∉ [1,2)),
//     sparse.ErrSingularDiagonal, sparse.ErrNonConvergence.
//
// Complexity: O(nnz + n) per sweep, one n-vector of extra space.
func SOR[T sparse.Scalar](a *sparse.Matrix[T], b []T, lambda float64, opts ...Option) (Result[T], error) {
	method := MethodSOR
	if lambda == 1 {
		method = MethodGaussSeidel
	}

	return sor(method, a, b, lambda, opts...)
}

func sor[T sparse.Scalar](method Method, a *sparse.Matrix[T], b []T, lambda float64, opts ...Option) (Result[T], error) {
	if err := sparse.ValidateSystem(a, b); err != nil {
		return Result[T]{}, solveError(method, 0, -1, err)
	}
	if !(lambda >= 1 && lambda < 2) { // also rejects NaN
		return Result[T]{}, solveError(method, 0, -1, sparse.ErrInvalidParameter)
	}
	o := gatherOptions(opts...)
	n := len(b)
	x, err := startVector(&o, b, n)
	if err != nil {
		return Result[T]{}, solveError(method, 0, -1, err)
	}
	l := T(lambda)

	for iter := 1; ; iter++ {
		var diff T
		for r := 0; r < n; r++ {
			cols, vals, _ := a.Row(r)
			aii, off := splitRow(r, cols, vals, x)
			if aii == 0 {
				return Result[T]{}, solveError(method, iter, r, sparse.ErrSingularDiagonal)
			}
			xr := l*(b[r]-off)/aii + (1-l)*x[r]
			diff = max(diff, abs(xr-x[r]))
			x[r] = xr
		}

		metric := float64(diff)
		o.report(Progress{Method: method, Lambda: lambda, Iteration: iter, Metric: metric})
		if metric <= o.threshold {
			return Result[T]{X: x, Iterations: iter, Metric: metric}, nil
		}
		if !finite(metric) || iter >= o.maxIter {
			return Result[T]{}, solveError(method, iter, -1, sparse.ErrNonConvergence)
		}
	}
}
