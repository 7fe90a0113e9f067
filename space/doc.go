// SPDX-License-Identifier: MIT
//
// Package space defines the Space descriptor (spec.md §4.1) and the
// DimMap dimension-rewrite table (spec.md §4.2) that every basic relation
// and relation is built on.
//
// A Space is immutable once allocated and is shared by reference (Copy
// bumps a refcount, Free decrements it); this mirrors the teacher's
// core.Graph construction discipline but drops the teacher's sync.RWMutex
// guards, since spec.md §5 specifies the engine is single-threaded and
// purely value-functional from the outside.
//
// Errors:
//
//	ErrNilSpace           - a nil *Space was used where one is required.
//	ErrNegativeDimension  - nparam/n_in/n_out requested as negative.
//	ErrParamMismatch      - two spaces disagree on parameter count.
//	ErrComponentMismatch  - two spaces disagree on the requested component.
//	ErrSetHasInput        - a set-only operation received n_in != 0.
//	ErrIndexOutOfRange    - a dimension index fell outside its component.
package space
