// SPDX-License-Identifier: MIT
//
// Sentinel errors for the relation package, same shape as
// basicrel/errors.go's unified sentinel set.
package relation

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRelation indicates a nil *Relation was used where one is required.
	ErrNilRelation = errors.New("relation: nil relation")

	// ErrSpaceMismatch indicates two relations have incompatible spaces.
	ErrSpaceMismatch = errors.New("relation: space mismatch")

	// ErrIndexOutOfRange indicates a basic-relation index fell outside p[].
	ErrIndexOutOfRange = errors.New("relation: index out of range")
)

// errorf wraps an inner error with method context.
func errorf(method string, err error) error {
	return fmt.Errorf("Relation.%s: %w", method, err)
}
