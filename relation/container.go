// SPDX-License-Identifier: MIT
//
// File: container.go
// Role: AddBasic, Union, UnionDisjoint — the container-level operations
// of spec.md §4.5.
package relation

import "github.com/katalvlaran/relspace/basicrel"

// AddBasic appends b to r, validating b's space matches r's and dropping
// b if it is fast-empty (spec.md §4.5 "add_basic"). Clears NORMALIZED.
func AddBasic(r *Relation, b *basicrel.BasicRelation) (*Relation, error) {
	if r == nil || b == nil {
		return nil, ErrNilRelation
	}
	if !spaceMatchesBasic(r, b) {
		return nil, ErrSpaceMismatch
	}
	if b.IsEmptyFlagged() {
		return r, nil
	}
	r.p = append(r.p, b)
	r.flags.clear(FlagNormalized)

	return r, nil
}

// UnionDisjoint concatenates r1 and r2's basic-relation lists over their
// common space, preserving DISJOINT iff both operands carried it
// (spec.md §4.5 "Union (disjoint)").
func UnionDisjoint(r1, r2 *Relation) (*Relation, error) {
	if err := checkSpace(r1, r2); err != nil {
		return nil, err
	}
	out, err := Alloc(r1.sp, len(r1.p)+len(r2.p))
	if err != nil {
		return nil, err
	}
	out.p = append(out.p, r1.p...)
	out.p = append(out.p, r2.p...)
	if r1.flags.has(FlagDisjoint) && r2.flags.has(FlagDisjoint) {
		out.flags.set(FlagDisjoint)
	}

	return out, nil
}

// Union is UnionDisjoint but unconditionally clears DISJOINT once the
// result holds more than one basic relation (spec.md §4.5 "Union").
func Union(r1, r2 *Relation) (*Relation, error) {
	out, err := UnionDisjoint(r1, r2)
	if err != nil {
		return nil, err
	}
	if len(out.p) > 1 {
		out.flags.clear(FlagDisjoint)
	}

	return out, nil
}

// Intersect returns the pairwise intersection of r1 and r2's basic
// relations, discarding empties (spec.md §4.5 "Intersect"). DISJOINT is
// carried iff both operands had it.
func Intersect(r1, r2 *Relation) (*Relation, error) {
	if err := checkSpace(r1, r2); err != nil {
		return nil, err
	}
	if len(r1.p) == 0 || len(r2.p) == 0 {
		return Alloc(r1.sp, 0)
	}
	out, err := Alloc(r1.sp, len(r1.p)*len(r2.p))
	if err != nil {
		return nil, err
	}
	for _, bi := range r1.p {
		for _, bj := range r2.p {
			ij, err := basicrel.Intersect(bi.Dup(), bj.Dup())
			if err != nil {
				return nil, err
			}
			if ij.IsEmptyFlagged() {
				continue
			}
			out.p = append(out.p, ij)
		}
	}
	if r1.flags.has(FlagDisjoint) && r2.flags.has(FlagDisjoint) {
		out.flags.set(FlagDisjoint)
	}

	return out, nil
}

// spaceMatchesBasic reports whether basic relation b's space equals r's.
func spaceMatchesBasic(r *Relation, b *basicrel.BasicRelation) bool {
	bsp := b.Space()

	return r.sp.NParam() == bsp.NParam() && r.sp.NIn() == bsp.NIn() && r.sp.NOut() == bsp.NOut()
}
