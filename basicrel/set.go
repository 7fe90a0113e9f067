// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: underlying_set / overlying_set (spec.md §4.4): relation <-> set
// reinterpretation. Since the In tuple always sits immediately before the
// Out tuple in row-column order, this is a pure space relabeling with no
// row data changed at all.
package basicrel

import (
	"github.com/katalvlaran/relspace/space"
)

// UnderlyingSet reinterprets relation b as a basic set over the
// concatenated (in, out) tuple, forgetting the domain/range split
// (spec.md §4.4 "underlying_set").
func UnderlyingSet(b *BasicRelation) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	sp2, err := space.Alloc(b.sp.NParam(), 0, b.sp.NIn()+b.sp.NOut())
	if err != nil {
		return nil, err
	}

	return relabelSpace(b, sp2)
}

// OverlyingSet reinterprets basic set s as a relation over shape (shape's
// NIn and NOut must sum to s.NOut()), the inverse of UnderlyingSet
// (spec.md §4.4 "overlying_set").
func OverlyingSet(s *BasicRelation, shape *space.Space) (*BasicRelation, error) {
	if s == nil || shape == nil {
		return nil, ErrNilRelation
	}
	if s.sp.NIn() != 0 {
		return nil, ErrSpaceMismatch
	}
	if s.sp.NOut() != shape.NIn()+shape.NOut() {
		return nil, ErrSpaceMismatch
	}
	sp2, err := space.Alloc(s.sp.NParam(), shape.NIn(), shape.NOut())
	if err != nil {
		return nil, err
	}

	return relabelSpace(s, sp2)
}

// Domain projects out b's output tuple and relabels the remaining input
// tuple as a basic set's output tuple, producing R's domain
// (spec.md §4.5 "domain").
func Domain(b *BasicRelation) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	projected, err := RemoveDims(b.Dup(), space.Out, 0, b.sp.NOut(), true)
	if err != nil {
		return nil, err
	}
	sp2, err := space.AllocSet(projected.sp.NParam(), projected.sp.NIn())
	if err != nil {
		return nil, err
	}

	return relabelSpace(projected, sp2)
}

// Range projects out b's input tuple, producing R's range as a basic set
// over the output tuple (spec.md §4.5 "range").
func Range(b *BasicRelation) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	projected, err := RemoveDims(b.Dup(), space.In, 0, b.sp.NIn(), true)
	if err != nil {
		return nil, err
	}
	sp2, err := space.AllocSet(projected.sp.NParam(), projected.sp.NOut())
	if err != nil {
		return nil, err
	}

	return relabelSpace(projected, sp2)
}

// relabelSpace copies b's rows verbatim into a BasicRelation over sp2,
// which must have the same total() and parameter count as b.sp.
func relabelSpace(b *BasicRelation, sp2 *space.Space) (*BasicRelation, error) {
	out, err := Alloc(sp2, b.extra, b.nEq, b.nIneq)
	if err != nil {
		return nil, err
	}
	out.nDiv = b.nDiv
	for i := 0; i < b.nIneq; i++ {
		idx, _ := out.AllocInequality()
		copy(out.Ineq(idx), b.Ineq(i).Clone())
	}
	for i := 0; i < b.nEq; i++ {
		idx, _ := out.AllocEquality()
		copy(out.Eq(idx), b.Eq(i).Clone())
	}
	for i := 0; i < b.nDiv; i++ {
		out.divs[i] = b.Div(i).Clone()
	}
	out.flags = b.flags
	if b.sample != nil {
		out.sample = b.sample.Clone()
	}

	return out, nil
}
