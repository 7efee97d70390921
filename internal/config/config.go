// SPDX-License-Identifier: MIT

// Package config reads problem files for the crs command: a sparse matrix as
// (row, col, value) triplets, a right-hand side, and solver settings.
//
//	matrix:
//	  rows: 3
//	  cols: 3
//	  entries: [[0,0,4],[0,1,1],[1,0,1],[1,1,4],[1,2,1],[2,1,1],[2,2,4]]
//	rhs: [1, 2, 3]
//	solver:
//	  method: cg
//	  threshold: 1e-8
//	  max_iter: 500
//
// Zero-valued solver fields fall back to the iterative package defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crs/iterative"
	"github.com/katalvlaran/crs/sparse"
)

// Problem is the top-level document.
type Problem struct {
	Coeffs MatrixSpec `yaml:"matrix"`
	Rhs    []float64  `yaml:"rhs,omitempty"`
	Solver Solver     `yaml:"solver"`
}

// MatrixSpec describes a matrix by shape and stored entries.
type MatrixSpec struct {
	Rows    int         `yaml:"rows"`
	Cols    int         `yaml:"cols"`
	Entries [][]float64 `yaml:"entries"` // each entry is [row, col, value]
}

// Solver holds the solve settings.
type Solver struct {
	MethodName  string    `yaml:"method"`                 // jacobi | gauss-seidel | sor | cg; default cg
	Lambda      float64   `yaml:"lambda,omitempty"`       // SOR factor; 0 = iterative.DefaultRelaxation
	Threshold   float64   `yaml:"threshold,omitempty"`    // 0 = iterative.DefaultThreshold
	MaxIter     int       `yaml:"max_iter,omitempty"`     // 0 = iterative.DefaultMaxIter
	ReportEvery int       `yaml:"report_every,omitempty"` // 0 = iterative.DefaultReportEvery
	X0          []float64 `yaml:"x0,omitempty"`           // initial guess
}

const defaultMethod = "cg"

// Load reads and parses the problem file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes a YAML problem document. Unknown keys are rejected; an
// empty document yields a zero Problem.
func Parse(data []byte) (*Problem, error) {
	p := &Problem{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse problem: %w", err)
	}

	return p, nil
}

// Matrix builds the CRS matrix. Duplicate positions keep the last entry.
// Errors: sparse.ErrInvalidIndex for a negative shape, an entry that is not
// a [row, col, value] triple, a non-integral index or an index out of range.
func (p *Problem) Matrix() (*sparse.Matrix[float64], error) {
	ts := make([]sparse.Triplet[float64], 0, len(p.Coeffs.Entries))
	for k, e := range p.Coeffs.Entries {
		if len(e) != 3 || !isIndex(e[0]) || !isIndex(e[1]) {
			return nil, fmt.Errorf("matrix.entries[%d] %v: %w", k, e, sparse.ErrInvalidIndex)
		}
		ts = append(ts, sparse.Triplet[float64]{Row: int(e[0]), Col: int(e[1]), Val: e[2]})
	}
	m, err := sparse.NewFromTriplets(p.Coeffs.Rows, p.Coeffs.Cols, ts)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}

	return m, nil
}

// isIndex reports whether v holds a non-negative integer.
func isIndex(v float64) bool {
	return v >= 0 && v == math.Trunc(v) && v <= math.MaxInt32
}

// Method parses the configured method name (cg when empty).
func (s *Solver) Method() (iterative.Method, error) {
	name := s.MethodName
	if name == "" {
		name = defaultMethod
	}
	m, err := iterative.ParseMethod(name)
	if err != nil {
		return 0, fmt.Errorf("solver.method: %w", err)
	}

	return m, nil
}

// Options converts the settings into solver options.
// Errors: sparse.ErrInvalidParameter for a negative or non-finite threshold,
// a negative max_iter or report_every.
func (s *Solver) Options() ([]iterative.Option, error) {
	var opts []iterative.Option
	switch {
	case math.IsNaN(s.Threshold) || math.IsInf(s.Threshold, 0) || s.Threshold < 0:
		return nil, fmt.Errorf("solver.threshold %v: %w", s.Threshold, sparse.ErrInvalidParameter)
	case s.MaxIter < 0:
		return nil, fmt.Errorf("solver.max_iter %d: %w", s.MaxIter, sparse.ErrInvalidParameter)
	case s.ReportEvery < 0:
		return nil, fmt.Errorf("solver.report_every %d: %w", s.ReportEvery, sparse.ErrInvalidParameter)
	}
	if s.Threshold > 0 {
		opts = append(opts, iterative.WithThreshold(s.Threshold))
	}
	if s.MaxIter > 0 {
		opts = append(opts, iterative.WithMaxIter(s.MaxIter))
	}
	if s.ReportEvery > 0 {
		opts = append(opts, iterative.WithReportEvery(s.ReportEvery))
	}
	if s.Lambda != 0 {
		opts = append(opts, iterative.WithRelaxation(s.Lambda))
	}
	if s.X0 != nil {
		opts = append(opts, iterative.WithInitialGuess(s.X0))
	}

	return opts, nil
}
