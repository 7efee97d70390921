// Package iterative solves square sparse linear systems a·x = b with
// stationary and Krylov iterations over a sparse.Matrix.
//
// Methods:
//
//	Jacobi        two iterate buffers; each sweep only reads the previous iterate
//	Gauss-Seidel  in-place sweep (SOR with λ = 1)
//	SOR           in-place sweep blended with the old value, 1 ≤ λ < 2
//	CG            unpreconditioned Conjugate Gradient, for SPD matrices
//
// Stopping rules: Jacobi/SOR stop when max|Δx| over one sweep is <= the
// threshold; CG stops when ‖r‖₂ < threshold. Every solve is synchronous and
// single-threaded; the only bound on its run time is WithMaxIter.
//
// Failures wrap the sparse sentinels in a *SolveError (use errors.Is or
// sparse.KindOf). On failure no partial iterate is returned; a Reporter
// installed with WithReporter sees the metric every WithReportEvery iterations.
//
// Quick example:
//
//	a, _ := sparse.NewFromTriplets(2, 2, []sparse.Triplet[float64]{
//		{Row: 0, Col: 0, Val: 4}, {Row: 0, Col: 1, Val: 1},
//		{Row: 1, Col: 0, Val: 1}, {Row: 1, Col: 1, Val: 3},
//	})
//	res, err := iterative.CG(a, []float64{1, 2}, iterative.WithThreshold(1e-10))
package iterative
