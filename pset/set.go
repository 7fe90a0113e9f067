// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: Set, the zero-input-arity restriction of relation.Relation.
package pset

import (
	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/relation"
	"github.com/katalvlaran/relspace/space"
)

// Set is a relation whose input tuple has zero arity.
type Set struct {
	r *relation.Relation
}

// checkRelShape reports ErrNotASet if r carries input dimensions.
func checkRelShape(r *relation.Relation) error {
	if r == nil {
		return relation.ErrNilRelation
	}
	if r.Space().NIn() != 0 {
		return ErrNotASet
	}

	return nil
}

// Wrap validates r's shape and wraps it as a Set.
func Wrap(r *relation.Relation) (*Set, error) {
	if err := checkRelShape(r); err != nil {
		return nil, err
	}

	return &Set{r: r}, nil
}

// Unwrap returns the underlying relation.
func (s *Set) Unwrap() *relation.Relation { return s.r }

// FromBasicSet lifts a single basic set into a (possibly singleton) Set.
func FromBasicSet(b *BasicSet) (*Set, error) {
	r, err := relation.FromBasic(b.b)
	if err != nil {
		return nil, err
	}

	return &Set{r: r}, nil
}

// Universe returns the unconstrained set over sp (NIn must be 0).
func Universe(sp *space.Space) (*Set, error) {
	if sp.NIn() != 0 {
		return nil, ErrNotASet
	}
	r, err := relation.Universe(sp)
	if err != nil {
		return nil, err
	}

	return &Set{r: r}, nil
}

// Empty returns the relation with no basic sets over sp (NIn must be 0).
func Empty(sp *space.Space) (*Set, error) {
	if sp.NIn() != 0 {
		return nil, ErrNotASet
	}
	r, err := relation.Empty(sp)
	if err != nil {
		return nil, err
	}

	return &Set{r: r}, nil
}

// AddBasic appends a basic set (spec.md §4.5 "add_basic").
func AddBasic(s *Set, b *BasicSet) (*Set, error) {
	r, err := relation.AddBasic(s.r, b.b)
	if err != nil {
		return nil, err
	}

	return &Set{r: r}, nil
}

// Union is the (non-disjoint) union of two sets (spec.md §4.5 "Union").
func Union(s1, s2 *Set) (*Set, error) {
	r, err := relation.Union(s1.r, s2.r)
	if err != nil {
		return nil, err
	}

	return &Set{r: r}, nil
}

// Intersect is the intersection of two sets (spec.md §4.5 "Intersect").
func Intersect(s1, s2 *Set) (*Set, error) {
	r, err := relation.Intersect(s1.r, s2.r)
	if err != nil {
		return nil, err
	}

	return &Set{r: r}, nil
}

// Normalize canonicalizes s (spec.md §4.5 "Normalize").
func Normalize(s *Set) (*Set, error) {
	r, err := relation.Normalize(s.r)
	if err != nil {
		return nil, err
	}

	return &Set{r: r}, nil
}

// RemoveEmptyParts drops EMPTY-flagged basic sets (spec.md §4.5
// "Remove-empty-parts").
func RemoveEmptyParts(s *Set) (*Set, error) {
	r, err := relation.RemoveEmptyParts(s.r)
	if err != nil {
		return nil, err
	}

	return &Set{r: r}, nil
}

// IsEmpty reports whether s has no integer point (spec.md §4.6
// "is_empty(R)").
func IsEmpty(ctx *rctx.Context, s *Set) (bool, error) { return relation.IsEmpty(ctx, s.r) }

// FastIsEmpty reports s.n == 0 (spec.md §4.6 "fast_is_empty(R)").
func FastIsEmpty(s *Set) bool { return relation.FastIsEmpty(s.r) }

// IsSubset reports whether every point of s1 is a point of s2 (spec.md
// §4.6 "is_subset").
func IsSubset(s1, s2 *Set) (bool, error) { return relation.IsSubset(s1.r, s2.r) }

// IsEqual reports set equality via mutual subset (spec.md §4.6
// "is_equal").
func IsEqual(s1, s2 *Set) (bool, error) { return relation.IsEqual(s1.r, s2.r) }

// Hash mixes the hashes of every normalized basic set (spec.md §4.6
// "hash").
func Hash(s *Set) (uint64, error) { return relation.Hash(s.r) }
