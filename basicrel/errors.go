// SPDX-License-Identifier: MIT
//
// Sentinel errors for the basicrel package, grounded on matrix/errors.go's
// unified sentinel set and matrix/dense.go's denseErrorf wrapping helper.
package basicrel

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRelation indicates a nil *BasicRelation was used where one is required.
	ErrNilRelation = errors.New("basicrel: nil basic relation")

	// ErrNoRoom indicates the constraint store's capacity is exhausted
	// (spec.md §7 error kind 3).
	ErrNoRoom = errors.New("basicrel: no room in constraint store")

	// ErrNoDivRoom indicates the div block's capacity is exhausted.
	ErrNoDivRoom = errors.New("basicrel: no room in div block")

	// ErrSpaceMismatch indicates two basic relations have incompatible spaces.
	ErrSpaceMismatch = errors.New("basicrel: space mismatch")

	// ErrParamMismatch indicates two basic relations disagree on parameter count.
	ErrParamMismatch = errors.New("basicrel: parameter count mismatch")

	// ErrIndexOutOfRange indicates a row/div/dimension index fell outside its range.
	ErrIndexOutOfRange = errors.New("basicrel: index out of range")

	// ErrNegativeCount indicates a negative row/div count was requested.
	ErrNegativeCount = errors.New("basicrel: negative count")
)

// errorf wraps an inner error with method context, same shape as
// matrix/dense.go's denseErrorf: "<Type>.<Method>(...): %w".
func errorf(method string, err error) error {
	return fmt.Errorf("BasicRelation.%s: %w", method, err)
}
