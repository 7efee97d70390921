// SPDX-License-Identifier: MIT

// Package iterative: functional configuration for the solvers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//     The SOR relaxation factor is the exception: it is data the caller may
//     get wrong at runtime, so it is validated by the solver and reported as
//     sparse.ErrInvalidParameter.
package iterative

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the stopping threshold: max|Δx| for Jacobi/SOR,
	// ‖r‖₂ for CG.
	DefaultThreshold = 1e-6

	// DefaultMaxIter caps the number of sweeps/iterations.
	DefaultMaxIter = 1_000_000

	// DefaultRelaxation is the SOR factor used by Solve(MethodSOR, ...) when
	// WithRelaxation is not given.
	DefaultRelaxation = 1.67

	// DefaultReportEvery is the reporting period once a Reporter is set.
	DefaultReportEvery = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid   = "iterative: WithThreshold: threshold must be finite, non-negative"
	panicMaxIterInvalid     = "iterative: WithMaxIter: maxIter must be >= 1"
	panicReportEveryInvalid = "iterative: WithReportEvery: every must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	threshold   float64
	maxIter     int
	relaxation  float64
	reporter    Reporter
	reportEvery int
	x0          []float64 // nil ⇒ solver default start
}

// WithThreshold sets the stopping threshold.
// Panics when threshold is negative, NaN or ±Inf.
func WithThreshold(threshold float64) Option {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = threshold }
}

// WithMaxIter sets the iteration cap. Panics when maxIter < 1.
func WithMaxIter(maxIter int) Option {
	if maxIter < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = maxIter }
}

// WithRelaxation sets the SOR factor λ used by Solve(MethodSOR, ...).
// The value is validated at solve time: λ ∉ [1,2) fails with
// sparse.ErrInvalidParameter before any iteration runs.
func WithRelaxation(lambda float64) Option {
	return func(o *Options) { o.relaxation = lambda }
}

// WithReporter installs a progress sink. A nil reporter disables reporting.
func WithReporter(r Reporter) Option {
	return func(o *Options) { o.reporter = r }
}

// WithReportEvery sets how many iterations pass between two reports.
// Panics when every < 1.
func WithReportEvery(every int) Option {
	if every < 1 {
		panic(panicReportEveryInvalid)
	}

	return func(o *Options) { o.reportEvery = every }
}

// WithInitialGuess sets the starting iterate. Defaults: x0 = b for
// Jacobi/SOR, x0 = 0 for CG. A length different from the system size fails
// with sparse.ErrDimensionMismatch. The slice is copied.
func WithInitialGuess(x0 []float64) Option {
	cp := append([]float64(nil), x0...)
	if cp == nil {
		cp = []float64{}
	}

	return func(o *Options) { o.x0 = cp }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		threshold:   DefaultThreshold,
		maxIter:     DefaultMaxIter,
		relaxation:  DefaultRelaxation,
		reportEvery: DefaultReportEvery,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// report forwards p to the reporter every reportEvery iterations.
func (o *Options) report(p Progress) {
	if o.reporter != nil && p.Iteration%o.reportEvery == 0 {
		o.reporter.Report(p)
	}
}
