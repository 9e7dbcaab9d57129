// SPDX-License-Identifier: MIT
package rfa

import "errors"

var (
	// ErrParse indicates a malformed "HEAD regex" production line.
	ErrParse = errors.New("rfa: parse error")

	// ErrNoProductions indicates an empty production set was supplied.
	ErrNoProductions = errors.New("rfa: no productions")
)
