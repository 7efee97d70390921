// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/crs/sparse"
)

// Method names one of the iterative strategies.
type Method int

const (
	MethodJacobi Method = iota
	MethodGaussSeidel
	MethodSOR
	MethodCG
)

var methodNames = [...]string{
	MethodJacobi:      "Jacobi",
	MethodGaussSeidel: "Gauss-Seidel",
	MethodSOR:         "SOR",
	MethodCG:          "Conjugate Gradient",
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if m < MethodJacobi || m > MethodCG {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a case-insensitive name ("jacobi", "gauss-seidel"/"gs",
// "sor", "cg"/"conjugate-gradient") to a Method.
// Errors: sparse.ErrInvalidParameter for unknown names.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jacobi", "j":
		return MethodJacobi, nil
	case "gauss-seidel", "gaussseidel", "gs":
		return MethodGaussSeidel, nil
	case "sor":
		return MethodSOR, nil
	case "cg", "conjugate-gradient", "conjugate gradient":
		return MethodCG, nil
	}

	return 0, fmt.Errorf("ParseMethod(%q): %w", name, sparse.ErrInvalidParameter)
}

// Result is the outcome of a converged solve.
type Result[T sparse.Scalar] struct {
	X          []T     // approximate solution
	Iterations int     // iterations performed
	Metric     float64 // final stopping metric
}

// Solve dispatches to the solver named by m. For MethodSOR the relaxation
// factor comes from WithRelaxation (DefaultRelaxation otherwise).
func Solve[T sparse.Scalar](m Method, a *sparse.Matrix[T], b []T, opts ...Option) (Result[T], error) {
	switch m {
	case MethodJacobi:
		return Jacobi(a, b, opts...)
	case MethodGaussSeidel:
		return GaussSeidel(a, b, opts...)
	case MethodSOR:
		o := gatherOptions(opts...)
		return SOR(a, b, o.relaxation, opts...)
	case MethodCG:
		return CG(a, b, opts...)
	}

	return Result[T]{}, solveError(m, 0, -1, sparse.ErrInvalidParameter)
}

// ---------- shared kernels ----------

// startVector returns a fresh iterate: a copy of x0 when set, else of def
// (nil def ⇒ zeros).
func startVector[T sparse.Scalar](o *Options, def []T, n int) ([]T, error) {
	x := make([]T, n)
	if o.x0 != nil {
		if err := sparse.ValidateVecLen(o.x0, n); err != nil {
			return nil, fmt.Errorf("initial guess: %w", err)
		}
		for i, v := range o.x0 {
			x[i] = T(v)
		}
		return x, nil
	}
	copy(x, def)

	return x, nil
}

// splitRow returns the stored value at (r, r) of the row given by cols/vals
// and the dot product of the off-diagonal entries with x.
func splitRow[T sparse.Scalar](r int, cols []int, vals []T, x []T) (aii, off T) {
	for k, c := range cols {
		if c == r {
			aii = vals[k]
		} else {
			off += vals[k] * x[c]
		}
	}

	return aii, off
}

func dot[T sparse.Scalar](x, y []T) T {
	var s T
	for i := range x {
		s += x[i] * y[i]
	}

	return s
}

func abs[T sparse.Scalar](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
