// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (closed, five kinds).
// This file defines ONLY package-level sentinel errors and their ErrorKind
// classification. All operations in sparse and iterative return these
// sentinels (possibly wrapped with an operation tag) and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for consistency. Operations wrap
// with fmt.Errorf("Op: %w", ErrX) so callers still match with errors.Is.

var (
	// ErrInvalidIndex indicates that a row or column index is outside
	// [0,nrow)×[0,ncol), raised at construction or single-entry access.
	ErrInvalidIndex = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes for
	// Add/Sub/Mul/MulVec or a non-square system passed to a solver.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrSingularDiagonal indicates a zero or absent diagonal entry was met
	// during an iterative solve.
	ErrSingularDiagonal = errors.New("sparse: zero diagonal")

	// ErrNonConvergence indicates the iteration cap was reached without
	// meeting the stopping threshold.
	ErrNonConvergence = errors.New("sparse: not converging")

	// ErrInvalidParameter indicates a solver parameter outside its domain,
	// e.g. an SOR relaxation factor outside [1,2).
	ErrInvalidParameter = errors.New("sparse: invalid parameter")
)

// ErrorKind is the closed classification of errors produced by this module.
type ErrorKind int

// Error kinds. KindNone is returned for a nil error and KindUnknown for an
// error that does not wrap any of the sentinels above.
const (
	KindNone ErrorKind = iota
	KindInvalidIndex
	KindDimensionMismatch
	KindSingularDiagonal
	KindNonConvergence
	KindInvalidParameter
	KindUnknown
)

var kindNames = [...]string{
	KindNone:              "None",
	KindInvalidIndex:      "InvalidIndex",
	KindDimensionMismatch: "DimensionMismatch",
	KindSingularDiagonal:  "SingularDiagonal",
	KindNonConvergence:    "NonConvergence",
	KindInvalidParameter:  "InvalidParameter",
	KindUnknown:           "Unknown",
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if k < KindNone || k > KindUnknown {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}

	return kindNames[k]
}

// Sentinel returns the sentinel error of kind k, or nil for KindNone and
// KindUnknown.
func (k ErrorKind) Sentinel() error {
	switch k {
	case KindInvalidIndex:
		return ErrInvalidIndex
	case KindDimensionMismatch:
		return ErrDimensionMismatch
	case KindSingularDiagonal:
		return ErrSingularDiagonal
	case KindNonConvergence:
		return ErrNonConvergence
	case KindInvalidParameter:
		return ErrInvalidParameter
	default:
		return nil
	}
}

// KindOf classifies err into one of the ErrorKind values.
// The check walks the wrap chain with errors.Is, so context added by
// fmt.Errorf("%w") or iterative.SolveError does not hide the kind.
// Complexity: O(depth of the wrap chain).
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for k := KindInvalidIndex; k < KindUnknown; k++ {
		if errors.Is(err, k.Sentinel()) {
			return k
		}
	}

	return KindUnknown
}

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps ErrInvalidIndex with the offending coordinates.
func indexErrorf(tag string, row, col int) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, row, col, ErrInvalidIndex)
}
