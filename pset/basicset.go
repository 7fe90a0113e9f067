// SPDX-License-Identifier: MIT
//
// File: basicset.go
// Role: BasicSet, the zero-input-arity restriction of basicrel.BasicRelation.
package pset

import (
	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/sample"
	"github.com/katalvlaran/relspace/space"
)

// BasicSet is a basic relation whose input tuple has zero arity.
type BasicSet struct {
	b *basicrel.BasicRelation
}

// checkShape reports ErrNotASet if b carries input dimensions.
func checkShape(b *basicrel.BasicRelation) error {
	if b == nil {
		return basicrel.ErrNilRelation
	}
	if b.Space().NIn() != 0 {
		return ErrNotASet
	}

	return nil
}

// WrapBasic validates b's shape and wraps it as a BasicSet.
func WrapBasic(b *basicrel.BasicRelation) (*BasicSet, error) {
	if err := checkShape(b); err != nil {
		return nil, err
	}

	return &BasicSet{b: b}, nil
}

// Unwrap returns the underlying basic relation.
func (s *BasicSet) Unwrap() *basicrel.BasicRelation { return s.b }

// UniverseSet returns the unconstrained basic set over sp (NIn must be 0).
func UniverseSet(sp *space.Space) (*BasicSet, error) {
	if sp.NIn() != 0 {
		return nil, ErrNotASet
	}
	b, err := basicrel.Universe(sp)
	if err != nil {
		return nil, err
	}

	return &BasicSet{b: b}, nil
}

// EmptySet returns the infeasible basic set over sp (NIn must be 0).
func EmptySet(sp *space.Space) (*BasicSet, error) {
	if sp.NIn() != 0 {
		return nil, ErrNotASet
	}
	b, err := basicrel.Empty(sp)
	if err != nil {
		return nil, err
	}

	return &BasicSet{b: b}, nil
}

// Intersect intersects two basic sets.
func Intersect(s1, s2 *BasicSet) (*BasicSet, error) {
	b, err := basicrel.Intersect(s1.b.Dup(), s2.b.Dup())
	if err != nil {
		return nil, err
	}

	return &BasicSet{b: b}, nil
}

// Fix appends coordinate_pos = v (spec.md §4.5 "Fix", restricted to the
// Out component since sets carry no In coordinates).
func Fix(s *BasicSet, pos int, v int64) (*BasicSet, error) {
	b, err := basicrel.Fix(s.b.Dup(), space.Out, pos, v)
	if err != nil {
		return nil, err
	}

	return &BasicSet{b: b}, nil
}

// LowerBound appends coordinate_pos - v >= 0 (spec.md §4.5 "Lower bound").
func LowerBound(s *BasicSet, pos int, v int64) (*BasicSet, error) {
	b, err := basicrel.LowerBound(s.b.Dup(), space.Out, pos, v)
	if err != nil {
		return nil, err
	}

	return &BasicSet{b: b}, nil
}

// ProjectOut existentially quantifies n coordinates starting at pos
// (spec.md §4.5 "project_out").
func ProjectOut(s *BasicSet, pos, n int) (*BasicSet, error) {
	b, err := basicrel.ProjectOut(s.b.Dup(), space.Out, pos, n)
	if err != nil {
		return nil, err
	}

	return &BasicSet{b: b}, nil
}

// IsEmpty reports whether s has no integer point (spec.md §4.6
// "is_empty").
func IsEmpty(ctx *rctx.Context, s *BasicSet) (bool, error) { return basicrel.IsEmpty(ctx, s.b) }

// FastIsEmpty reports the cached EMPTY flag (spec.md §4.6
// "fast_is_empty").
func FastIsEmpty(s *BasicSet) bool { return basicrel.FastIsEmpty(s.b) }

// IsBox reports whether s is an axis-aligned box (spec.md §4.6 "is_box").
func IsBox(s *BasicSet) bool { return basicrel.IsBox(s.b) }

// Sample returns an integer point of s, if one exists (spec.md §4.6, via
// the sample-search collaborator).
func Sample(ctx *rctx.Context, s *BasicSet) (ivec.Row, bool, error) {
	return sample.Find(ctx, s.b)
}
