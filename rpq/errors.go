// SPDX-License-Identifier: MIT
package rpq

import "errors"

var (
	// ErrNilInput indicates a nil graph or constraint was supplied.
	ErrNilInput = errors.New("rpq: nil input")

	// ErrInvalidQueryShape indicates a query names a "to" set without a
	// "from" set, which is not one of the three recognized shapes
	// (between_all, from_set, from_set+to_set) (spec §4.9, §6).
	ErrInvalidQueryShape = errors.New("rpq: invalid query shape")
)
