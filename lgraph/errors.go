// SPDX-License-Identifier: MIT
package lgraph

import "errors"

var (
	// ErrParse indicates a malformed edge-list line; spec §7 ParseError.
	ErrParse = errors.New("lgraph: parse error")

	// ErrNegativeVertex indicates a vertex id below zero.
	ErrNegativeVertex = errors.New("lgraph: vertex id must be non-negative")

	// ErrNilGraph indicates a nil *LabeledGraph receiver.
	ErrNilGraph = errors.New("lgraph: graph is nil")
)
