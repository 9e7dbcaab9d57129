// SPDX-License-Identifier: MIT
package grammar

import "errors"

var (
	// ErrParse indicates a malformed production line (spec §7 ParseError).
	ErrParse = errors.New("grammar: parse error")

	// ErrNoProductions indicates an empty grammar was supplied where at
	// least a start symbol is required.
	ErrNoProductions = errors.New("grammar: no productions")
)
