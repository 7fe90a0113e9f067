// SPDX-License-Identifier: MIT
//
// File: predicates.go
// Role: the boolean query family of spec.md §4.6 at the relation level.
package relation

import (
	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/space"
)

// IsEmpty reports whether r has no integer point: the conjunction of
// basicrel.IsEmpty over every basic relation (spec.md §4.6 "is_empty(R)").
func IsEmpty(ctx *rctx.Context, r *Relation) (bool, error) {
	if r == nil {
		return true, nil
	}
	for _, b := range r.p {
		empty, err := basicrel.IsEmpty(ctx, b)
		if err != nil {
			return false, err
		}
		if !empty {
			return false, nil
		}
	}

	return true, nil
}

// FastIsEmpty reports R.n == 0 without invoking any solver (spec.md §4.6
// "fast_is_empty(R)").
func FastIsEmpty(r *Relation) bool { return r == nil || r.Size() == 0 }

// IsUniverse reports whether r holds exactly one unconstrained basic
// relation (no equalities, inequalities, or divs) — a structural test,
// not a full semantic complement-is-empty test (spec.md §4.6 leaves
// is_universe's algorithm implicit; see DESIGN.md).
func IsUniverse(r *Relation) bool {
	if r == nil || len(r.p) != 1 {
		return false
	}
	b := r.p[0]

	return b.NEq() == 0 && b.NIneq() == 0 && b.NDiv() == 0
}

// FastIsUniverse is IsUniverse: both are the same cheap structural check
// (a single basic relation with no constraints and no divs).
func FastIsUniverse(r *Relation) bool { return IsUniverse(r) }

// IsSubset reports whether every point of r1 is a point of r2, computed
// as is_empty(r1 \ r2) per basic relation of r1 (spec.md §4.6
// "is_subset", left to a subset-engine collaborator; this grounds that
// collaborator in basicrel.Complement rather than structural normal-form
// comparison, since r1 and r2 can denote equal point sets while holding
// differently-shaped basic-relation partitions — see DESIGN.md).
func IsSubset(r1, r2 *Relation) (bool, error) {
	if r1 == nil || r2 == nil {
		return false, ErrNilRelation
	}
	for _, bi := range r1.p {
		empty, err := basicrel.IsEmpty(nil, bi)
		if err != nil {
			return false, err
		}
		if empty {
			continue
		}
		covered, err := basicSubsetOfUnion(bi, r2.p)
		if err != nil {
			return false, err
		}
		if !covered {
			return false, nil
		}
	}

	return true, nil
}

// basicSubsetOfUnion reports whether every point of bi belongs to some
// basic relation in others, tested by repeatedly intersecting bi's
// residual with each other basic relation's complement: whatever
// survives every pass lies outside all of others, so bi is covered iff
// nothing survives.
func basicSubsetOfUnion(bi *basicrel.BasicRelation, others []*basicrel.BasicRelation) (bool, error) {
	residual := []*basicrel.BasicRelation{bi.Dup()}
	for _, bj := range others {
		comp, err := basicrel.Complement(bj)
		if err != nil {
			return false, err
		}
		next := make([]*basicrel.BasicRelation, 0, len(residual)*len(comp))
		for _, r := range residual {
			for _, c := range comp {
				piece, err := basicrel.Intersect(r.Dup(), c.Dup())
				if err != nil {
					return false, err
				}
				empty, err := basicrel.IsEmpty(nil, piece)
				if err != nil {
					return false, err
				}
				if !empty {
					next = append(next, piece)
				}
			}
		}
		residual = next
		if len(residual) == 0 {
			return true, nil
		}
	}

	return len(residual) == 0, nil
}

// IsStrictSubset reports is_subset(X, Y) ∧ ¬is_subset(Y, X) (spec.md
// §4.6 "is_strict_subset").
func IsStrictSubset(r1, r2 *Relation) (bool, error) {
	xy, err := IsSubset(r1, r2)
	if err != nil || !xy {
		return false, err
	}
	yx, err := IsSubset(r2, r1)
	if err != nil {
		return false, err
	}

	return !yx, nil
}

// IsEqual reports is_subset(X, Y) ∧ is_subset(Y, X) (spec.md §4.6
// "is_equal").
func IsEqual(r1, r2 *Relation) (bool, error) {
	xy, err := IsSubset(r1, r2)
	if err != nil || !xy {
		return false, err
	}

	return IsSubset(r2, r1)
}

// FastIsEqual normalizes both operands, compares size, then pairwise
// fast-compares the normalized basic relations (spec.md §4.6
// "fast_is_equal(R1, R2)").
func FastIsEqual(r1, r2 *Relation) (bool, error) {
	n1, err := Normalize(r1)
	if err != nil {
		return false, err
	}
	n2, err := Normalize(r2)
	if err != nil {
		return false, err
	}

	return sameNormalForm(n1, n2), nil
}

// sameNormalForm compares two already-normalized relations pairwise in
// order; valid only when both inputs are normalized (sorted, deduped).
func sameNormalForm(a, b *Relation) bool {
	if len(a.p) != len(b.p) {
		return false
	}
	for i := range a.p {
		if compareBasic(a.p[i], b.p[i]) != 0 {
			return false
		}
	}

	return true
}

// IsSingleValued reports whether r maps every domain point to at most
// one image, tested as r ∘ r⁻¹ ⊆ identity (spec.md §4.6
// "is_single_valued").
func IsSingleValued(r *Relation) (bool, error) {
	rev, err := Reverse(r)
	if err != nil {
		return false, err
	}
	composed, err := ApplyRange(r, rev)
	if err != nil {
		return false, err
	}
	domSp, err := space.Alloc(r.Space().NParam(), r.Space().NIn(), r.Space().NIn())
	if err != nil {
		return false, err
	}
	id, err := Identity(domSp)
	if err != nil {
		return false, err
	}

	return IsSubset(composed, id)
}

// IsBijective reports whether r and its reverse are both single-valued
// (spec.md §4.6 "is_bijective").
func IsBijective(r *Relation) (bool, error) {
	sv, err := IsSingleValued(r)
	if err != nil || !sv {
		return false, err
	}
	rev, err := Reverse(r)
	if err != nil {
		return false, err
	}

	return IsSingleValued(rev)
}

// IsTranslation reports whether deltas(r) is a singleton set (spec.md
// §4.6 "is_translation").
func IsTranslation(r *Relation) (bool, error) {
	d, err := Deltas(r)
	if err != nil {
		return false, err
	}
	if d.Size() != 1 {
		return false, nil
	}

	return basicrel.IsBox(d.p[0]) && d.p[0].NEq() == d.p[0].Space().NOut(), nil
}

// IsBox reports whether every basic relation of r is an axis-aligned box
// (spec.md §4.6 "is_box"); r itself is a box only when it holds exactly
// one such basic relation.
func IsBox(r *Relation) bool {
	if r == nil || len(r.p) != 1 {
		return false
	}

	return basicrel.IsBox(r.p[0])
}

// Hash mixes the hashes of every normalized basic relation into a single
// order-independent digest (spec.md §4.6 "hash").
func Hash(r *Relation) (uint64, error) {
	n, err := Normalize(r)
	if err != nil {
		return 0, err
	}
	var h uint64
	for _, b := range n.p {
		bh, err := basicrel.Hash(b)
		if err != nil {
			return 0, err
		}
		h ^= bh + 0x9e3779b97f4a7c15 + (h << 6) + (h >> 2)
	}

	return h, nil
}
