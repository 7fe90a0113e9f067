// SPDX-License-Identifier: MIT
//
// Package basicrel implements BasicRelation: a single convex integer
// polyhedron described by equalities `A·x = 0`, inequalities `B·x >= 0`
// over `[const | params | in | out | divs]`, and an aligned table of div
// definitions (spec.md §4.3–§4.4).
//
// Storage is a dual-ended row arena (spec.md §9 "Dual-ended row arena"):
// one backing slice of capacity c_size, with inequality rows occupying the
// low end and equality rows occupying the high end, growing toward each
// other. This is the same flat-slice-plus-cursor shape as the teacher's
// matrix.Dense, generalized from one growing dimension to two and from
// float64 to arbitrary-precision integers (ivec.Row).
//
// Every public entry point takes ownership of its *BasicRelation arguments:
// on success it returns a new owned value, on failure it returns nil. A
// caller that needs to retain an input must Copy it first (spec.md §3
// "Lifecycle").
//
// Errors:
//
//	ErrNilRelation     - a nil *BasicRelation was used where one is required.
//	ErrNoRoom          - the constraint store's capacity is exhausted.
//	ErrNoDivRoom       - the div block's capacity is exhausted.
//	ErrSpaceMismatch   - two basic relations have incompatible spaces.
//	ErrParamMismatch   - two basic relations disagree on parameter count.
//	ErrIndexOutOfRange - a row/div/dimension index fell outside its range.
package basicrel
