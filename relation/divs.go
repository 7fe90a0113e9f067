// SPDX-License-Identifier: MIT
//
// File: divs.go
// Role: ComputeDivs and AlignDivs at the relation level (spec.md §4.5).
package relation

import "github.com/katalvlaran/relspace/basicrel"

// AlignDivs aligns every basic relation of r to src's div layout
// (spec.md §4.5 "align_divs"), delegating to basicrel.AlignDivs per
// basic relation. When r holds several basic relations they are each
// aligned independently against the same src template rather than
// mutually cross-aligned; see DESIGN.md.
func AlignDivs(r *Relation, src *basicrel.BasicRelation) (*Relation, error) {
	return perBasicUnary(r, r.Space(), func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		return basicrel.AlignDivs(b, src.Dup())
	})
}

// ComputeDivs ensures every div of every basic relation in r has a known
// (non-zero) denominator (spec.md §4.5 "Compute-divs"). If already true,
// r is returned unchanged. Otherwise each basic relation with unknown
// divs is re-ordered and re-normalized, the cheap redundant-div pass the
// spec calls for before the full parametric re-derivation; a basic
// relation whose divs remain unknown after that pass is left as-is (the
// parametric re-derivation, which recomputes a div by projecting the
// relation onto its parameter domain, is not attempted here — see
// DESIGN.md).
func ComputeDivs(r *Relation) (*Relation, error) {
	if r == nil {
		return nil, ErrNilRelation
	}
	allKnown := true
	r.ForeachBasic(func(_ int, b *basicrel.BasicRelation) bool {
		if !b.AllDivsKnown() {
			allKnown = false

			return false
		}

		return true
	})
	if allKnown {
		return r, nil
	}

	return perBasicUnary(r, r.Space(), func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		if b.AllDivsKnown() {
			return b, nil
		}
		out := basicrel.Cow(b)
		if err := out.OrderDivs(); err != nil {
			return nil, err
		}

		return basicrel.Normalize(out)
	})
}
