// SPDX-License-Identifier: MIT
//
// File: perbasic.go
// Role: PerBasic, the per-basic-relation lex-opt step dispatched by
// relation's partial_lex_opt (spec.md §4.6).
package pip

import (
	"math/big"

	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/space"
)

var bigOne = big.NewInt(1)

// PerBasic restricts b to domain d and, coordinate by coordinate, pins
// each output dimension to the bound that makes it lex-extreme (maximal
// when max, else minimal), returning the resulting functional relation as
// lex and the subset of d with no image in b as empty.
func PerBasic(ctx *rctx.Context, b, d *basicrel.BasicRelation, max bool) (lex, empty *basicrel.BasicRelation, err error) {
	if b == nil || d == nil {
		return nil, nil, basicrel.ErrNilRelation
	}

	restricted, err := basicrel.IntersectWithDomain(b.Dup(), d.Dup())
	if err != nil {
		return nil, nil, err
	}

	isEmpty, err := basicrel.IsEmpty(ctx, restricted)
	if err != nil {
		return nil, nil, err
	}
	if isEmpty {
		emptyLex, err := basicrel.Empty(b.Space())
		if err != nil {
			return nil, nil, err
		}

		return emptyLex, d.Dup(), nil
	}

	nOut := b.Space().NOut()
	cur := restricted
	for k := 0; k < nOut; k++ {
		col := cur.Space().Offset(space.Out) + k
		if dimAlreadyPinned(cur, col) {
			continue
		}

		reduced := cur
		if k < nOut-1 {
			reduced, err = basicrel.RemoveDims(cur.Dup(), space.Out, k+1, nOut-1-k, true)
			if err != nil {
				return nil, nil, err
			}
		}

		boundRow, ok := findBoundRow(reduced, col, max)
		if !ok {
			// No single tight inequality pins this coordinate under the
			// simplified bound-extraction strategy (see package doc);
			// leave it unconstrained rather than mis-pin it.
			continue
		}

		pin := boundRow.Clone()
		if max {
			pin = pin.Negate()
		}
		fullPin := expandRow(pin, reduced.Space(), cur.Space(), k, nOut, cur.Extra())

		cur, err = basicrel.AddEq(cur, fullPin)
		if err != nil {
			return nil, nil, err
		}
		cur, err = basicrel.Simplify(cur)
		if err != nil {
			return nil, nil, err
		}
	}

	lex = basicrel.Finalize(cur)
	emptySet, err := basicrel.Empty(d.Space())
	if err != nil {
		return nil, nil, err
	}

	return lex, emptySet, nil
}

// dimAlreadyPinned reports whether b already carries an equality fixing
// column col (any equality with a unit coefficient on col, whatever its
// other coefficients), meaning no further bound
// needs to be added for it.
func dimAlreadyPinned(b *basicrel.BasicRelation, col int) bool {
	for i := 0; i < b.NEq(); i++ {
		if b.Eq(i)[col].CmpAbs(bigOne) == 0 {
			return true
		}
	}

	return false
}

// findBoundRow scans b's live inequalities for one with the coefficient
// this optimization direction needs at col: -1 when maximizing (the row
// reads col <= rest), +1 when minimizing (col >= rest).
func findBoundRow(b *basicrel.BasicRelation, col int, max bool) (ivec.Row, bool) {
	want := int64(1)
	if max {
		want = -1
	}
	for i := 0; i < b.NIneq(); i++ {
		row := b.Ineq(i)
		if row[col].Cmp(big.NewInt(want)) == 0 {
			return row, true
		}
	}

	return nil, false
}

// expandRow re-expresses a row captured in reducedSp's (narrower) column
// layout back into curSp's full width: the [const|param|in|out_0..k]
// prefix carries over unchanged, a zero gap stands in for the out
// dimensions RemoveDims eliminated, and the trailing div block (always
// extra wide in both spaces) carries over unchanged.
func expandRow(row ivec.Row, reducedSp, curSp *space.Space, k, nOut, extra int) ivec.Row {
	out := ivec.NewRow(1 + curSp.Total() + extra)
	prefixLen := reducedSp.Offset(space.Out) + (k + 1)
	copy(out[:prefixLen], row[:prefixLen])
	curOutEnd := curSp.Offset(space.Out) + nOut
	copy(out[curOutEnd:], row[prefixLen:])

	return out
}
