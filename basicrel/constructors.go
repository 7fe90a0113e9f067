// SPDX-License-Identifier: MIT
//
// File: constructors.go
// Role: basic-relation constructors named in spec.md §6's surface table:
// universe, empty, identity, positive_orthant, fix, lower_bound, and the
// lex-at family (spec.md §4.4).
package basicrel

import (
	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/space"
)

// Universe returns the basic relation with no constraints at all: every
// integer point of sp satisfies it.
func Universe(sp *space.Space) (*BasicRelation, error) {
	return Alloc(sp, 0, 0, 0)
}

// Empty returns the basic relation denoting no points: a single
// contradictory equality "1 = 0" (spec.md §4.3 "Invariant (EMPTY)").
func Empty(sp *space.Space) (*BasicRelation, error) {
	b, err := Alloc(sp, 0, 1, 0)
	if err != nil {
		return nil, err
	}
	idx, err := b.AllocEquality()
	if err != nil {
		return nil, err
	}
	b.Eq(idx)[0].Set(bigOne)
	b.flags.set(FlagEmpty)
	b.flags.set(FlagFinal)

	return b, nil
}

// SetToEmpty frees divs and inequalities, collapses equalities to a
// single "1 = 0" row, clears the sample, sets EMPTY, and finalizes b
// (spec.md §4.3 "Set-to-empty").
func SetToEmpty(b *BasicRelation) (*BasicRelation, error) {
	out := Cow(b)
	if out == nil {
		return nil, ErrNilRelation
	}
	_ = out.FreeDiv(0)
	_ = out.FreeInequality(0)
	_ = out.FreeEquality(0)
	if out.cSize < 1 {
		grown, err := ExtendConstraints(out, 1, 0)
		if err != nil {
			return nil, err
		}
		out = grown
	}
	idx, err := out.AllocEquality()
	if err != nil {
		return nil, err
	}
	for i := range out.Eq(idx) {
		out.Eq(idx)[i].SetInt64(0)
	}
	out.Eq(idx)[0].Set(bigOne)
	out.sample = nil
	out.flags.set(FlagEmpty)
	out.flags.set(FlagFinal)

	return out, nil
}

// Identity returns the basic relation {x -> x}: one equality per output
// coordinate tying it to the matching input coordinate. Requires
// sp.NIn() == sp.NOut().
func Identity(sp *space.Space) (*BasicRelation, error) {
	if sp.NIn() != sp.NOut() {
		return nil, ErrSpaceMismatch
	}
	n := sp.NOut()
	b, err := Alloc(sp, 0, n, 0)
	if err != nil {
		return nil, err
	}
	inOff, outOff := sp.Offset(space.In), sp.Offset(space.Out)
	for k := 0; k < n; k++ {
		idx, aerr := b.AllocEquality()
		if aerr != nil {
			return nil, aerr
		}
		row := b.Eq(idx)
		row[inOff+k].Set(bigOne)
		row[outOff+k].SetInt64(-1)
	}

	return b, nil
}

// PositiveOrthant returns the basic set {x | x_i >= 0 for every set
// coordinate}.
func PositiveOrthant(sp *space.Space) (*BasicRelation, error) {
	n := sp.NOut()
	b, err := Alloc(sp, 0, 0, n)
	if err != nil {
		return nil, err
	}
	outOff := sp.Offset(space.Out)
	for k := 0; k < n; k++ {
		idx, ierr := b.AllocInequality()
		if ierr != nil {
			return nil, ierr
		}
		b.Ineq(idx)[outOff+k].Set(bigOne)
	}

	return b, nil
}

// Fix appends equality x_{comp,pos} = v (spec.md §4.4 "Fix value").
func Fix(b *BasicRelation, c space.Component, pos int, v int64) (*BasicRelation, error) {
	out, err := ExtendConstraints(b, 1, 0)
	if err != nil {
		return nil, err
	}
	idx, err := out.AllocEquality()
	if err != nil {
		return nil, err
	}
	row := out.Eq(idx)
	row[out.sp.Offset(c)+pos].Set(bigOne)
	row[0].SetInt64(-v)

	return out, nil
}

// LowerBound appends inequality x_{comp,pos} - v >= 0 (spec.md §4.4
// "Lower bound").
func LowerBound(b *BasicRelation, c space.Component, pos int, v int64) (*BasicRelation, error) {
	out, err := ExtendConstraints(b, 0, 1)
	if err != nil {
		return nil, err
	}
	idx, err := out.AllocInequality()
	if err != nil {
		return nil, err
	}
	row := out.Ineq(idx)
	row[out.sp.Offset(c)+pos].Set(bigOne)
	row[0].SetInt64(-v)

	return out, nil
}

// lexAtRows returns the pos equalities in_k = out_k for k < pos, common
// to every lex-at constructor (spec.md §4.4 "Lex-at constructors").
func lexAtRows(sp *space.Space, pos int) []ivec.Row {
	inOff, outOff := sp.Offset(space.In), sp.Offset(space.Out)
	rows := make([]ivec.Row, pos)
	for k := 0; k < pos; k++ {
		row := ivec.NewRow(1 + sp.Total())
		row[inOff+k].Set(bigOne)
		row[outOff+k].SetInt64(-1)
		rows[k] = row
	}

	return rows
}

// lexAt builds the lex-at family: pos equalities plus one inequality at
// position pos. strict selects >= 1 vs >= 0 bias, ltOrGt selects whether
// the inequality is (in-out) or (out-in).
func lexAt(sp *space.Space, pos int, ltOrGt int, strict bool) (*BasicRelation, error) {
	rows := lexAtRows(sp, pos)
	b, err := Alloc(sp, 0, len(rows), 1)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		idx, eerr := b.AllocEquality()
		if eerr != nil {
			return nil, eerr
		}
		copy(b.Eq(idx), r)
	}
	inOff, outOff := sp.Offset(space.In), sp.Offset(space.Out)
	idx, err := b.AllocInequality()
	if err != nil {
		return nil, err
	}
	row := b.Ineq(idx)
	if ltOrGt < 0 {
		row[outOff+pos].Set(bigOne)
		row[inOff+pos].SetInt64(-1)
	} else {
		row[inOff+pos].Set(bigOne)
		row[outOff+pos].SetInt64(-1)
	}
	if strict {
		row[0].SetInt64(-1)
	}

	return b, nil
}

// LessAt returns {x -> y | x_k = y_k for k < pos, x_pos < y_pos}.
func LessAt(sp *space.Space, pos int) (*BasicRelation, error) { return lexAt(sp, pos, -1, true) }

// LessOrEqualAt returns {x -> y | x_k = y_k for k < pos, x_pos <= y_pos}.
func LessOrEqualAt(sp *space.Space, pos int) (*BasicRelation, error) {
	return lexAt(sp, pos, -1, false)
}

// MoreAt returns {x -> y | x_k = y_k for k < pos, x_pos > y_pos}.
func MoreAt(sp *space.Space, pos int) (*BasicRelation, error) { return lexAt(sp, pos, 1, true) }

// MoreOrEqualAt returns {x -> y | x_k = y_k for k < pos, x_pos >= y_pos}.
func MoreOrEqualAt(sp *space.Space, pos int) (*BasicRelation, error) {
	return lexAt(sp, pos, 1, false)
}
