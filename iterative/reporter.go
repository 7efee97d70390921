// SPDX-License-Identifier: MIT

package iterative

// Progress is one periodic snapshot of a running solve.
type Progress struct {
	Method    Method
	Lambda    float64 // relaxation factor; 1 for Gauss-Seidel, 0 for Jacobi/CG
	Iteration int     // 1-based count of completed iterations
	Metric    float64 // max|Δx| for Jacobi/SOR, ‖r‖₂ for CG
}

// Reporter receives Progress snapshots. It is an optional collaborator and
// has no influence on the algorithm; Report is called synchronously from the
// solving goroutine.
type Reporter interface {
	Report(p Progress)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(p Progress)

// Report calls f(p).
func (f ReporterFunc) Report(p Progress) { f(p) }
