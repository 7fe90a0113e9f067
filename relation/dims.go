// SPDX-License-Identifier: MIT
//
// File: dims.go
// Role: the dimension-layout family of spec.md §4.5 ("Remove / Project-out
// / Move-dims / Insert / Add... distribute per basic relation; update the
// relation-level space").
package relation

import (
	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/space"
)

// InsertDims splices n fresh dimensions into component c at pos across
// every basic relation of r (spec.md §4.5 "Insert").
func InsertDims(r *Relation, c space.Component, pos, n int) (*Relation, error) {
	sp2, err := r.Space().Insert(c, pos, n)
	if err != nil {
		return nil, err
	}

	return perBasicUnary(r, sp2, func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		return basicrel.InsertDims(b, c, pos, n)
	})
}

// Add is InsertDims's spec name for appending n dims at the end of
// component c.
func Add(r *Relation, c space.Component, n int) (*Relation, error) {
	return InsertDims(r, c, r.Space().Size(c), n)
}

// MoveDims relocates n dimensions from (srcComp, srcPos) to (dstComp,
// dstPos) across every basic relation of r (spec.md §4.5 "Move-dims").
func MoveDims(r *Relation, srcComp space.Component, srcPos int, dstComp space.Component, dstPos, n int) (*Relation, error) {
	sp2, err := r.Space().Move(srcComp, srcPos, dstComp, dstPos, n)
	if err != nil {
		return nil, err
	}

	return perBasicUnary(r, sp2, func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		return basicrel.MoveDims(b, srcComp, srcPos, dstComp, dstPos, n)
	})
}

// RemoveDims drops n dimensions of component c starting at pos from every
// basic relation by Fourier-Motzkin elimination (spec.md §4.5
// "remove_dims"); rational selects the flag basicrel.RemoveDims stamps on
// each result.
func RemoveDims(r *Relation, c space.Component, pos, n int, rational bool) (*Relation, error) {
	sp2, err := r.Space().Drop(c, pos, n)
	if err != nil {
		return nil, err
	}

	return perBasicUnary(r, sp2, func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		return basicrel.RemoveDims(b, c, pos, n, rational)
	})
}

// Remove is RemoveDims with the integer (non-rational) flag, the common
// case used when dropping a dimension that is not known to be a pure
// rational relaxation.
func Remove(r *Relation, c space.Component, pos, n int) (*Relation, error) {
	return RemoveDims(r, c, pos, n, false)
}

// ProjectOut existentially quantifies n dimensions of component c
// starting at pos across every basic relation, reclassifying them as
// unknown divs rather than eliminating them (spec.md §4.5 "project_out";
// see basicrel.ProjectOut).
func ProjectOut(r *Relation, c space.Component, pos, n int) (*Relation, error) {
	sp2, err := r.Space().Drop(c, pos, n)
	if err != nil {
		return nil, err
	}

	return perBasicUnary(r, sp2, func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		return basicrel.ProjectOut(b, c, pos, n)
	})
}

// Eliminate discards every constraint touching n dimensions of component
// c starting at pos while keeping them in the space, unlike ProjectOut
// which drops them from the space entirely: implemented as ProjectOut
// followed by re-inserting n fresh unconstrained dims at the same slot.
func Eliminate(r *Relation, c space.Component, pos, n int) (*Relation, error) {
	projected, err := ProjectOut(r, c, pos, n)
	if err != nil {
		return nil, err
	}

	return InsertDims(projected, c, pos, n)
}

// RemoveDivs drops n divs starting at pos from every basic relation,
// moving them to the tail via SwapDiv first when pos is not already at
// the tail (spec.md §4.5 "remove_divs").
func RemoveDivs(r *Relation, pos, n int) (*Relation, error) {
	return perBasicUnary(r, r.Space(), func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		out := basicrel.Cow(b)
		for k := 0; k < n; k++ {
			tail := out.NDiv() - 1 - k
			if err := out.SwapDiv(pos+k, tail); err != nil {
				return nil, err
			}
		}
		if err := out.FreeDiv(out.NDiv() - n); err != nil {
			return nil, err
		}

		return out, nil
	})
}

// RemoveEmptyParts walks r from the tail, dropping any basic relation
// flagged EMPTY; clears NORMALIZED if doing so changes the order
// (spec.md §4.5 "Remove-empty-parts").
func RemoveEmptyParts(r *Relation) (*Relation, error) {
	if r == nil {
		return nil, ErrNilRelation
	}
	kept := make([]*basicrel.BasicRelation, 0, len(r.p))
	changed := false
	for i := len(r.p) - 1; i >= 0; i-- {
		if r.p[i].IsEmptyFlagged() {
			changed = true
			continue
		}
		kept = append(kept, r.p[i])
	}
	// kept was built tail-to-head; reverse it back to original order.
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	out := &Relation{sp: r.sp.Copy(), p: kept, flags: r.flags}
	if changed {
		out.flags.clear(FlagNormalized)
	}

	return out, nil
}
