// SPDX-License-Identifier: MIT

// Package sparse: scalar constraint and triplet type.
// This file intentionally contains ONLY domain-facing types. Storage lives in
// sparse.go, arithmetic in ops.go and invariant checks in validators.go.
package sparse

// Scalar is the field every Matrix is defined over.
// Named types with a float underlying type (type Volt float64) are accepted,
// which is how a caller supplies a custom numeric type.
type Scalar interface {
	~float32 | ~float64
}

// Triplet is a (row, column, value) tuple used to bulk-construct a Matrix.
type Triplet[T Scalar] struct {
	Row int // zero-based row index
	Col int // zero-based column index
	Val T   // stored value; exact zeros are dropped on construction
}

