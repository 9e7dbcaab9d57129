// SPDX-License-Identifier: MIT
package cfpq

import "errors"

// ErrNilInput indicates a nil graph, grammar, or RFA was supplied.
var ErrNilInput = errors.New("cfpq: nil input")
