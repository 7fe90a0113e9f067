// SPDX-License-Identifier: MIT
package pset

import "errors"

// ErrNotASet is returned whenever a relation or basic relation with
// non-zero input arity is handed to a set-shaped constructor.
var ErrNotASet = errors.New("pset: input-tuple arity must be zero")
