// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"

	"github.com/katalvlaran/crs/sparse"
)

// SolveError wraps a sparse sentinel with solve context. The in-progress
// iterate is not part of the error; install a Reporter to observe it.
type SolveError struct {
	Method    Method
	Iteration int // iteration during which the failure occurred; 0 = before iterating
	Row       int // offending row for ErrSingularDiagonal, otherwise -1
	Err       error
}

func (e *SolveError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("iterative: %s: iteration %d, row %d: %v", e.Method, e.Iteration, e.Row, e.Err)
	}

	return fmt.Sprintf("iterative: %s: iteration %d: %v", e.Method, e.Iteration, e.Err)
}

func (e *SolveError) Unwrap() error { return e.Err }

// Kind classifies the wrapped error.
func (e *SolveError) Kind() sparse.ErrorKind { return sparse.KindOf(e.Err) }

// solveError builds a *SolveError; row < 0 means "no row".
func solveError(m Method, iter, row int, err error) error {
	return &SolveError{Method: m, Iteration: iter, Row: row, Err: err}
}
