// SPDX-License-Identifier: MIT
//
// File: normalize.go
// Role: Normalize — per-basic normalization, canonical total sort, and
// adjacent-duplicate removal (spec.md §4.5 "Normalize").
package relation

import (
	"sort"

	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/ivec"
)

// Normalize per-basic-normalizes every basic relation of r, total-sorts
// them with a comparator that tie-breaks on space counts, the EMPTY flag,
// n_eq, n_ineq, n_div, then the eq, ineq, and div rows lexicographically,
// and finally removes adjacent duplicates. Sets NORMALIZED.
func Normalize(r *Relation) (*Relation, error) {
	if r == nil {
		return nil, ErrNilRelation
	}
	norm := make([]*basicrel.BasicRelation, len(r.p))
	for i, b := range r.p {
		nb, err := basicrel.Normalize(b.Dup())
		if err != nil {
			return nil, err
		}
		norm[i] = nb
	}
	sort.Slice(norm, func(i, j int) bool { return compareBasic(norm[i], norm[j]) < 0 })

	kept := norm[:0:0]
	for i, b := range norm {
		if i > 0 && compareBasic(norm[i-1], b) == 0 {
			continue
		}
		kept = append(kept, b)
	}

	out := &Relation{sp: r.sp.Copy(), p: kept, flags: r.flags}
	out.flags.set(FlagNormalized)

	return out, nil
}

// compareBasic implements the total order Normalize sorts by.
func compareBasic(a, b *basicrel.BasicRelation) int {
	if c := cmpInt(a.Space().NParam(), b.Space().NParam()); c != 0 {
		return c
	}
	if c := cmpInt(a.Space().NIn(), b.Space().NIn()); c != 0 {
		return c
	}
	if c := cmpInt(a.Space().NOut(), b.Space().NOut()); c != 0 {
		return c
	}
	if c := cmpBool(a.IsEmptyFlagged(), b.IsEmptyFlagged()); c != 0 {
		return c
	}
	if c := cmpInt(a.NEq(), b.NEq()); c != 0 {
		return c
	}
	if c := cmpInt(a.NIneq(), b.NIneq()); c != 0 {
		return c
	}
	if c := cmpInt(a.NDiv(), b.NDiv()); c != 0 {
		return c
	}
	for i := 0; i < a.NEq(); i++ {
		if c := ivec.Compare(a.Eq(i), b.Eq(i)); c != 0 {
			return c
		}
	}
	for i := 0; i < a.NIneq(); i++ {
		if c := ivec.Compare(a.Ineq(i), b.Ineq(i)); c != 0 {
			return c
		}
	}
	for i := 0; i < a.NDiv(); i++ {
		if c := ivec.Compare(a.Div(i), b.Div(i)); c != 0 {
			return c
		}
	}

	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}
