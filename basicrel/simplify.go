// SPDX-License-Identifier: MIT
//
// File: simplify.go
// Role: cheap structural simplification shared by every algebra operation:
// Gaussian-reduce the equality set via gauss.Reduce, detect contradictions
// and collapse to Empty, drop the cached sample when constraints changed.
// A Gaussian-clean equality set can still be rationally infeasible once
// its inequalities are taken into account (e.g. {x>=0, x<=5} and {x>=6}
// combined, spec.md:235's canonical intersection-empties example), so
// Simplify also probes the full constraint system with the tab simplex
// before returning, matching isl_map.c's isl_basic_map_is_empty detecting
// infeasibility as a side effect of simplification rather than leaving it
// to a later explicit query. Not a full redundancy/implicit-equality pass
// (that is NO_REDUNDANT / NO_IMPLICIT territory, left to the sample/tab
// collaborators on demand) and not the integer-exact sample search
// (IsEmpty/FindSample's job, run lazily on demand).
package basicrel

import (
	"github.com/katalvlaran/relspace/gauss"
	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/tab"
)

// Simplify Gaussian-reduces b's equalities in place (on an already-cow'd
// b), probes the resulting system for rational infeasibility, and
// collapses b to Empty if either check proves it contradictory.
func Simplify(b *BasicRelation) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	if b.flags.has(FlagEmpty) {
		return b, nil
	}
	eqs := make([]ivec.Row, b.nEq)
	for i := 0; i < b.nEq; i++ {
		eqs[i] = b.Eq(i)
	}
	res := gauss.Reduce(eqs)
	if res.Contradictory {
		return SetToEmpty(b)
	}
	if len(res.Rows) < b.nEq {
		if err := b.FreeEquality(0); err != nil {
			return nil, err
		}
		for _, r := range res.Rows {
			idx, err := b.AllocEquality()
			if err != nil {
				return nil, err
			}
			copy(b.Eq(idx), r)
		}
	}
	b.sample = nil

	tabEqs, tabIneqs := b.tabRows()
	if tab.QuickInfeasible(b.Width()-1, tabEqs) {
		return SetToEmpty(b)
	}
	feasible, err := tab.Feasible(b.Width()-1, tabEqs, tabIneqs)
	if err != nil {
		return nil, err
	}
	if !feasible {
		return SetToEmpty(b)
	}

	return b, nil
}

// Finalize marks b shared-immutable (spec.md §4.3 "FINAL"). Used by
// constructors that return a value the caller is expected to Copy before
// any further mutation.
func Finalize(b *BasicRelation) *BasicRelation {
	if b != nil {
		b.flags.set(FlagFinal)
	}

	return b
}
