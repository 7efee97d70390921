// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/shape/length checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own operation tag on top.
//
// Note:
//  - Validators are exported because the iterative package shares them.
//  - A nil *Matrix is reported as ErrDimensionMismatch: it has no shape that
//    could match anything.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Complexity: O(1).
func ValidateSameShape[T Scalar](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape: nil", ErrDimensionMismatch)
	}
	if a.nrow != b.nrow {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.ncol != b.ncol {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape ensures a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulShape[T Scalar](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulShape: nil", ErrDimensionMismatch)
	}
	if a.ncol != b.nrow {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare[T Scalar](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare: nil", ErrDimensionMismatch)
	}
	if m.nrow != m.ncol {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
// A nil slice is accepted only for n == 0.
// Complexity: O(1).
func ValidateVecLen[T Scalar](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(%d!=%d)", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem is the composite solver precondition: Square(a) → VecLen(b, a.Rows()).
// Complexity: O(1).
func ValidateSystem[T Scalar](a *Matrix[T], b []T) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateVecLen(b, a.nrow); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}

	return nil
}
