// SPDX-License-Identifier: MIT

// Package crs is a small numeric toolkit built around the compressed-row
// sparse matrix: a storage format, its arithmetic, and the classic
// iterative solvers for A·x = b.
//
// What is in the box?
//
//	sparse/   : Matrix[T] in CRS form: Put/At/Remove/Increment, Add, Sub,
//	             Mul, MulVec, Transpose, Scale, Identity, rendering
//	iterative/: Jacobi, Gauss-Seidel, SOR and Conjugate Gradient with
//	             functional options and per-iteration progress reports
//	progress/ : reporters: zap logger, in-memory recorder with a gonum/plot
//	             convergence chart, fan-out tee
//	cmd/crs/  : CLI reading YAML problem files (show, transpose, solve)
//
// Values are generic over sparse.Scalar (~float32 | ~float64), so a named
// type such as `type Volt float64` works everywhere float64 does.
//
// Quick example:
//
//	a, _ := sparse.NewFromTriplets(2, 2, []sparse.Triplet[float64]{
//		{Row: 0, Col: 0, Val: 4}, {Row: 0, Col: 1, Val: 1},
//		{Row: 1, Col: 0, Val: 1}, {Row: 1, Col: 1, Val: 3},
//	})
//	res, err := iterative.CG(a, []float64{1, 2})
//	// res.X ≈ [1/11, 7/11]
//
// Every failure is one of five sentinels (sparse.ErrInvalidIndex,
// ErrDimensionMismatch, ErrSingularDiagonal, ErrNonConvergence,
// ErrInvalidParameter), matched with errors.Is or classified by sparse.KindOf.
//
//	go get github.com/katalvlaran/crs
package crs
