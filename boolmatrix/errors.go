// SPDX-License-Identifier: MIT
// Package boolmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// boolmatrix package. Algorithms MUST return these sentinels and tests MUST
// check them via errors.Is. No algorithm panics on user-triggered error
// conditions; panics are reserved for internal invariant violations that the
// spec classifies as fatal (InconsistentDimensions).

package boolmatrix

import "errors"

var (
	// ErrNilMatrix indicates a nil *BoolMatrix receiver or argument.
	ErrNilMatrix = errors.New("boolmatrix: nil matrix")

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("boolmatrix: index out of range")

	// ErrDimensionMismatch indicates two matrices with incompatible shapes
	// for the requested operation (union, matmul, kronecker).
	ErrDimensionMismatch = errors.New("boolmatrix: dimension mismatch")

	// ErrShrink indicates an attempt to resize a store to a smaller
	// dimension than it already has; closures and products only ever grow.
	ErrShrink = errors.New("boolmatrix: resize would shrink matrix")

	// ErrInconsistentStore is the fatal-assertion class from spec §7: a
	// store's matrices drifted out of a shared dimension. Surfacing this
	// means a bug in the engine, not malformed user input.
	ErrInconsistentStore = errors.New("boolmatrix: store matrices have inconsistent dimensions")
)
