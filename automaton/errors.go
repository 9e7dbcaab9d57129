// SPDX-License-Identifier: MIT
package automaton

import "errors"

var (
	// ErrUnexpectedToken indicates a syntactically malformed regex.
	ErrUnexpectedToken = errors.New("automaton: unexpected token")

	// ErrUnexpectedEOF indicates a regex ended mid-expression (e.g. an
	// unclosed parenthesis or a dangling alternation operator).
	ErrUnexpectedEOF = errors.New("automaton: unexpected end of regex")

	// ErrUnsupportedFeature marks a dialect feature the parser cannot
	// translate (spec §7 UnsupportedRegexFeature); the offending substring
	// is included in the wrapping message.
	ErrUnsupportedFeature = errors.New("automaton: unsupported regex feature")

	// ErrEmptyPattern indicates an empty regex string was supplied where a
	// non-empty pattern is required.
	ErrEmptyPattern = errors.New("automaton: empty regex")
)
