// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Relation, the finite disjunction of basic relations sharing one
// space (spec.md §4.5 "Relation — container operations"). Storage is a
// Go slice rather than a hand-managed capacity/count pair: append already
// gives grow(n) its amortized-doubling behavior, so the dual-cursor
// arena basicrel needs for its row block has no counterpart here.
package relation

import (
	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/space"
)

// Flags is the boolean flag set carried by a Relation.
type Flags uint8

const (
	// FlagDisjoint asserts the basic relations have pairwise disjoint
	// integer points.
	FlagDisjoint Flags = 1 << iota
	// FlagNormalized marks the basic-relation list as per-basic-normalized,
	// totally sorted, and deduplicated.
	FlagNormalized
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }
func (f *Flags) set(bit Flags)     { *f |= bit }
func (f *Flags) clear(bit Flags)   { *f &^= bit }

// Relation is a finite union of basic relations over a common space
// (spec.md §4.5).
type Relation struct {
	sp    *space.Space
	p     []*basicrel.BasicRelation
	flags Flags
}

// Space returns the shared Space; callers must not mutate it.
func (r *Relation) Space() *space.Space {
	if r == nil {
		return nil
	}

	return r.sp
}

// Size returns the number of basic relations (spec.md §4.6 "size").
func (r *Relation) Size() int {
	if r == nil {
		return 0
	}

	return len(r.p)
}

// Basic returns basic relation i, live (not a copy).
func (r *Relation) Basic(i int) *basicrel.BasicRelation {
	return r.p[i]
}

// IsDisjoint reports the raw DISJOINT flag.
func (r *Relation) IsDisjoint() bool { return r != nil && r.flags.has(FlagDisjoint) }

// IsNormalized reports the raw NORMALIZED flag.
func (r *Relation) IsNormalized() bool { return r != nil && r.flags.has(FlagNormalized) }

// ForeachBasic calls fn on every basic relation in order, stopping early
// if fn returns false (spec.md §4.6 "foreach_basic").
func (r *Relation) ForeachBasic(fn func(i int, b *basicrel.BasicRelation) bool) {
	if r == nil {
		return
	}
	for i, b := range r.p {
		if !fn(i, b) {
			return
		}
	}
}

// Alloc allocates an empty Relation over sp with capacity hint n (spec.md
// §4.5 "alloc"); n only pre-sizes the backing slice.
func Alloc(sp *space.Space, n int) (*Relation, error) {
	if sp == nil {
		return nil, ErrNilRelation
	}
	if n < 0 {
		n = 0
	}

	return &Relation{sp: sp.Copy(), p: make([]*basicrel.BasicRelation, 0, n)}, nil
}

// Empty returns the relation with zero basic relations over sp: the
// empty set/relation (spec.md §4.5 "empty").
func Empty(sp *space.Space) (*Relation, error) {
	return Alloc(sp, 0)
}

// Universe returns the relation consisting of a single unconstrained
// basic relation over sp (spec.md §4.5 "universe").
func Universe(sp *space.Space) (*Relation, error) {
	r, err := Alloc(sp, 1)
	if err != nil {
		return nil, err
	}
	u, err := basicrel.Universe(sp)
	if err != nil {
		return nil, err
	}
	r.p = append(r.p, u)
	r.flags.set(FlagDisjoint)

	return r, nil
}

// FromBasic wraps a single basic relation as a one-element Relation
// (spec.md §4.5 "from_basic"). Drops b and returns Empty(b.Space()) when
// b is fast-empty.
func FromBasic(b *basicrel.BasicRelation) (*Relation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	r, err := Alloc(b.Space(), 1)
	if err != nil {
		return nil, err
	}
	if b.IsEmptyFlagged() {
		return r, nil
	}
	r.p = append(r.p, b)
	r.flags.set(FlagDisjoint)

	return r, nil
}

// checkSpace verifies r1 and r2 share an equal space (spec.md §4.5's
// space-equality precondition on every container operation).
func checkSpace(r1, r2 *Relation) error {
	if r1 == nil || r2 == nil {
		return ErrNilRelation
	}
	if !space.Equal(r1.sp, r2.sp) {
		return ErrSpaceMismatch
	}

	return nil
}
