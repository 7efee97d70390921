// SPDX-License-Identifier: MIT

package iterative

import (
	"math"

	"github.com/katalvlaran/crs/sparse"
)

// CG solves a·x = b with the unpreconditioned Conjugate Gradient method.
//
// Implementation:
//   - Stage 1: validate the system and that every row stores a diagonal entry.
//   - Stage 2: x = 0 (or WithInitialGuess), r = b − a·x, p = r.
//   - Stage 3: per iteration: α = (r·r)/(p·ap); x += α·p; r −= α·ap;
//     stop when ‖r‖₂ < threshold; else β = (r'·r')/(r·r), p = r' + β·p.
//
// Behavior highlights:
//   - a must be symmetric positive-definite; this is NOT checked. On other
//     input the method may fail to converge, which surfaces as
//     sparse.ErrNonConvergence (also on breakdown, p·ap == 0).
//   - ‖b − a·x0‖₂ < threshold returns x0 with zero iterations.
//
// Errors:
//   - sparse.ErrDimensionMismatch, sparse.ErrSingularDiagonal,
//     sparse.ErrNonConvergence.
//
// Complexity: one MulVec (O(nnz + n)) per iteration, four n-vectors of space.
func CG[T sparse.Scalar](a *sparse.Matrix[T], b []T, opts ...Option) (Result[T], error) {
	const method = MethodCG
	if err := sparse.ValidateSystem(a, b); err != nil {
		return Result[T]{}, solveError(method, 0, -1, err)
	}
	for r, d := range sparse.Diagonal(a) {
		if d == 0 {
			return Result[T]{}, solveError(method, 0, r, sparse.ErrSingularDiagonal)
		}
	}
	o := gatherOptions(opts...)
	n := len(b)
	x, err := startVector[T](&o, nil, n)
	if err != nil {
		return Result[T]{}, solveError(method, 0, -1, err)
	}

	r := make([]T, n)
	ap := make([]T, n)
	_ = sparse.MulVecTo(ap, a, x) // shapes validated above
	for i := range r {
		r[i] = b[i] - ap[i]
	}
	p := append([]T(nil), r...)
	rr := dot(r, r)
	if res := math.Sqrt(float64(rr)); res < o.threshold {
		return Result[T]{X: x, Metric: res}, nil
	}

	for iter := 1; ; iter++ {
		_ = sparse.MulVecTo(ap, a, p)
		pap := dot(p, ap)
		if pap == 0 || !finite(float64(pap)) {
			return Result[T]{}, solveError(method, iter, -1, sparse.ErrNonConvergence)
		}
		alpha := rr / pap
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		rrNew := dot(r, r)

		res := math.Sqrt(float64(rrNew))
		o.report(Progress{Method: method, Iteration: iter, Metric: res})
		if res < o.threshold {
			return Result[T]{X: x, Iterations: iter, Metric: res}, nil
		}
		if !finite(res) || iter >= o.maxIter {
			return Result[T]{}, solveError(method, iter, -1, sparse.ErrNonConvergence)
		}
		beta := rrNew / rr
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
		rr = rrNew
	}
}
