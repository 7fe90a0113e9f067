// SPDX-License-Identifier: MIT
//
// File: dims.go
// Role: dimension-layout operations of spec.md §4.4: insert/add dims, move
// dims, and project-out (RemoveDims by Fourier-Motzkin elimination;
// ProjectOut by keeping the eliminated dimensions as unknown divs).
package basicrel

import (
	"math/big"

	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/space"
)

// InsertDims splices n fresh (unconstrained) dimensions into component c at
// position pos, recomputing b's space and re-expressing every row through
// a dim-map (spec.md §4.4 "Insert/add dims").
func InsertDims(b *BasicRelation, c space.Component, pos, n int) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	if n == 0 {
		return b, nil
	}
	if n < 0 {
		return nil, ErrNegativeCount
	}
	sp2, err := b.sp.Insert(c, pos, n)
	if err != nil {
		return nil, err
	}
	out, err := Alloc(sp2, b.extra, b.nEq, b.nIneq)
	if err != nil {
		return nil, err
	}
	out.nDiv = b.nDiv

	base := b.sp.Offset(c) + pos
	dbase := out.sp.Offset(c) + pos
	m := space.NewDimMap(out.Width())
	m.SetConst(0)
	m.SetRange(1, 1, base-1)
	m.SetRange(dbase+n, base, b.sp.Total()-(base-1))
	m.SetZero(dbase, n)
	m.SetRange(1+out.sp.Total(), 1+b.sp.Total(), b.nDiv)

	for i := 0; i < b.nIneq; i++ {
		idx, _ := out.AllocInequality()
		copy(out.Ineq(idx), m.Apply(b.Ineq(i)))
	}
	for i := 0; i < b.nEq; i++ {
		idx, _ := out.AllocEquality()
		copy(out.Eq(idx), m.Apply(b.Eq(i)))
	}
	dm := space.NewDimMap(1 + out.Width())
	dm.SetRange(0, 0, 1)
	dm.SetConst(1)
	dm.SetRange(2, 2, base-1)
	dm.SetRange(1+dbase+n, 1+base, b.sp.Total()-(base-1))
	dm.SetZero(1+dbase, n)
	dm.SetRange(2+out.sp.Total(), 2+b.sp.Total(), b.nDiv)
	for i := 0; i < b.nDiv; i++ {
		out.divs[i] = dm.Apply(b.Div(i))
	}
	out.flags = b.flags
	out.flags.clearStructural()

	return out, nil
}

// MoveDims relocates n dimensions from (srcComp, srcPos) to (dstComp,
// dstPos), recomputing the space via space.Move and re-deriving every row
// through the composition of the implied column permutation
// (spec.md §4.4 "Move dims").
func MoveDims(b *BasicRelation, srcComp space.Component, srcPos int, dstComp space.Component, dstPos, n int) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	if n == 0 {
		return b, nil
	}
	sp2, err := b.sp.Move(srcComp, srcPos, dstComp, dstPos, n)
	if err != nil {
		return nil, err
	}
	out, err := Alloc(sp2, b.extra, b.nEq, b.nIneq)
	if err != nil {
		return nil, err
	}
	out.nDiv = b.nDiv

	perm := buildMovePermutation(b.sp, srcComp, srcPos, dstComp, dstPos, n)
	m := space.NewDimMap(out.Width())
	m.SetConst(0)
	for dst, src := range perm {
		m.SetRange(1+dst, 1+src, 1)
	}
	m.SetRange(1+out.sp.Total(), 1+b.sp.Total(), b.nDiv)

	for i := 0; i < b.nIneq; i++ {
		idx, _ := out.AllocInequality()
		copy(out.Ineq(idx), m.Apply(b.Ineq(i)))
	}
	for i := 0; i < b.nEq; i++ {
		idx, _ := out.AllocEquality()
		copy(out.Eq(idx), m.Apply(b.Eq(i)))
	}
	dm := space.NewDimMap(1 + out.Width())
	dm.SetRange(0, 0, 1)
	dm.SetConst(1)
	for dst, src := range perm {
		dm.SetRange(2+dst, 2+src, 1)
	}
	dm.SetRange(2+out.sp.Total(), 2+b.sp.Total(), b.nDiv)
	for i := 0; i < b.nDiv; i++ {
		out.divs[i] = dm.Apply(b.Div(i))
	}
	out.flags = b.flags
	out.flags.clearStructural()

	return out, nil
}

// buildMovePermutation returns, for each destination variable column
// (0-indexed within total(sp2), excluding the constant), the source
// variable column within total(sp) it is populated from. It mirrors
// space.Move's own two-step Drop-then-Insert arithmetic exactly so the
// column order matches sp2.
func buildMovePermutation(sp *space.Space, srcComp space.Component, srcPos int, dstComp space.Component, dstPos, n int) []int {
	total := sp.Total()
	srcBase := sp.Offset(srcComp) - 1 + srcPos
	moved := make([]int, n)
	for i := 0; i < n; i++ {
		moved[i] = srcBase + i
	}
	movedSet := make(map[int]bool, n)
	for _, c := range moved {
		movedSet[c] = true
	}
	rest := make([]int, 0, total-n)
	for c := 0; c < total; c++ {
		if !movedSet[c] {
			rest = append(rest, c)
		}
	}

	// Component sizes after the Drop half of space.Move, used to locate
	// dstComp's insertion point within rest (0-indexed, component order
	// Param < In < Out).
	sizes := [3]int{sp.NParam(), sp.NIn(), sp.NOut()}
	sizes[int(srcComp)] -= n
	droppedOffset := 0
	for c := 0; c < int(dstComp); c++ {
		droppedOffset += sizes[c]
	}

	adjPos := dstPos
	if dstComp == srcComp && srcPos < dstPos {
		adjPos = dstPos - n
	}
	dstBase := droppedOffset + adjPos

	out := make([]int, total)
	ri := 0
	for c := 0; c < total; c++ {
		if c >= dstBase && c < dstBase+n {
			out[c] = moved[c-dstBase]
			continue
		}
		out[c] = rest[ri]
		ri++
	}

	return out
}

// RemoveDims drops n dimensions of component c starting at pos by
// Fourier-Motzkin projecting them out one at a time (spec.md §4.4
// "Remove dims"/"project_out"). rational selects whether the elimination
// is treated as an exact rational projection (FlagRational set on the
// result) or an integer one; both reuse the same combination step — see
// projectOutColumn's doc comment for the integer-exactness caveat.
func RemoveDims(b *BasicRelation, c space.Component, pos, n int, rational bool) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	if n == 0 {
		return b, nil
	}
	if n < 0 {
		return nil, ErrNegativeCount
	}
	out := b.Dup()
	for k := 0; k < n; k++ {
		col := out.sp.Offset(c) + pos + k
		var err error
		out, err = projectOutColumn(out, col)
		if err != nil {
			return nil, err
		}
	}
	sp2, err := out.sp.Drop(c, pos, n)
	if err != nil {
		return nil, err
	}
	final, err := shrinkColumns(out, sp2, out.sp.Offset(c)+pos, n)
	if err != nil {
		return nil, err
	}
	if rational {
		final.flags.set(FlagRational)
	} else {
		final.flags.clear(FlagRational)
	}

	return Simplify(final)
}

// shrinkColumns drops the n now-all-zero columns starting at col (already
// eliminated by projectOutColumn) and rebinds out to the smaller space
// sp2.
func shrinkColumns(b *BasicRelation, sp2 *space.Space, col, n int) (*BasicRelation, error) {
	out, err := Alloc(sp2, b.extra, b.nEq, b.nIneq)
	if err != nil {
		return nil, err
	}
	out.nDiv = b.nDiv
	m := space.NewDimMap(out.Width())
	m.SetConst(0)
	m.SetRange(1, 1, col-1)
	m.SetRange(col, col+n, b.sp.Total()-(col-1)-n)
	m.SetRange(1+out.sp.Total(), 1+b.sp.Total(), b.nDiv)
	for i := 0; i < b.nIneq; i++ {
		idx, _ := out.AllocInequality()
		copy(out.Ineq(idx), m.Apply(b.Ineq(i)))
	}
	for i := 0; i < b.nEq; i++ {
		idx, _ := out.AllocEquality()
		copy(out.Eq(idx), m.Apply(b.Eq(i)))
	}
	dm := space.NewDimMap(1 + out.Width())
	dm.SetRange(0, 0, 1)
	dm.SetConst(1)
	dm.SetRange(2, 2, col-1)
	dm.SetRange(1+col, 1+col+n, b.sp.Total()-(col-1)-n)
	dm.SetRange(2+out.sp.Total(), 2+b.sp.Total(), b.nDiv)
	for i := 0; i < b.nDiv; i++ {
		out.divs[i] = dm.Apply(b.Div(i))
	}
	out.flags = b.flags

	return out, nil
}

// projectOutColumn eliminates variable column col from b in place,
// leaving the column all-zero (callers shrink the space away afterwards).
//
// If an equality constrains col, it is used for an exact substitution
// (valid for both the rational and the integer case: an equality loses no
// information). Otherwise every positive/negative-coefficient inequality
// pair is combined by the classical Fourier-Motzkin step
// c*posRow + a*negRow, which eliminates col exactly over the rationals.
// Over the integers this combination is still a necessary condition but,
// when neither |a| nor c is 1, it is not always the tightest one (the
// fully exact integer projection needs the additional "dark shadow" divs
// that spec.md §9 leaves as an open question; this function accepts the
// rational-sound-but-possibly-loose bound rather than implementing the
// full construction).
func projectOutColumn(b *BasicRelation, col int) (*BasicRelation, error) {
	for i := 0; i < b.nEq; i++ {
		if b.Eq(i)[col].Sign() != 0 {
			return projectViaEquality(b, col, i)
		}
	}

	var pos, neg []int
	for i := 0; i < b.nIneq; i++ {
		switch b.Ineq(i)[col].Sign() {
		case 1:
			pos = append(pos, i)
		case -1:
			neg = append(neg, i)
		}
	}
	if len(pos) == 0 || len(neg) == 0 {
		// col is already unconstrained (or one-sided, hence unbounded on
		// that side): the inequalities bounding it are dropped, and the
		// div rows just lose the column.
		for i := b.nIneq - 1; i >= 0; i-- {
			if b.Ineq(i)[col].Sign() != 0 {
				if err := b.DropInequality(i); err != nil {
					return nil, err
				}
			}
		}
		for i := 0; i < b.nDiv; i++ {
			b.Div(i)[1+col].SetInt64(0)
		}

		return b, nil
	}

	combined := make([]ivec.Row, 0, len(pos)*len(neg))
	for _, pi := range pos {
		for _, ni := range neg {
			pr, nr := b.Ineq(pi), b.Ineq(ni)
			a := new(big.Int).Set(pr[col])
			c := new(big.Int).Neg(nr[col])
			row := make(ivec.Row, len(pr))
			for k := range row {
				t1 := new(big.Int).Mul(c, pr[k])
				t2 := new(big.Int).Mul(a, nr[k])
				row[k] = t1.Add(t1, t2)
			}
			row[col].SetInt64(0)
			ivec.GCDNormalize(row)
			combined = append(combined, row)
		}
	}

	keep := make([]int, 0, b.nIneq)
	for i := 0; i < b.nIneq; i++ {
		if b.Ineq(i)[col].Sign() == 0 {
			keep = append(keep, i)
		}
	}
	want := len(keep) + len(combined)
	margin := want - b.nIneq
	if margin < 0 {
		margin = 0
	}
	out, err := ExtendConstraints(b, 0, margin)
	if err != nil {
		return nil, err
	}
	kept := make([]ivec.Row, len(keep))
	for i, idx := range keep {
		kept[i] = out.Ineq(idx).Clone()
	}
	if err := out.FreeInequality(0); err != nil {
		return nil, err
	}
	for _, r := range kept {
		idx, aerr := out.AllocInequality()
		if aerr != nil {
			return nil, aerr
		}
		copy(out.Ineq(idx), r)
	}
	for _, r := range combined {
		idx, aerr := out.AllocInequality()
		if aerr != nil {
			return nil, aerr
		}
		copy(out.Ineq(idx), r)
	}

	return out, nil
}

// projectViaEquality eliminates col using equality row eqIdx: every other
// row r with coefficient b at col is replaced by a*r - b*eq (a = coeff of
// col in eq), then the defining equality itself is dropped.
func projectViaEquality(b *BasicRelation, col, eqIdx int) (*BasicRelation, error) {
	eq := b.Eq(eqIdx).Clone()
	a := new(big.Int).Set(eq[col])
	for i := 0; i < b.nIneq; i++ {
		r := b.Ineq(i)
		bc := new(big.Int).Set(r[col])
		if bc.Sign() == 0 {
			continue
		}
		for k := range r {
			t1 := new(big.Int).Mul(a, r[k])
			t2 := new(big.Int).Mul(bc, eq[k])
			r[k] = t1.Sub(t1, t2)
		}
		ivec.GCDNormalize(r)
	}
	for i := 0; i < b.nEq; i++ {
		if i == eqIdx {
			continue
		}
		r := b.Eq(i)
		bc := new(big.Int).Set(r[col])
		if bc.Sign() == 0 {
			continue
		}
		for k := range r {
			t1 := new(big.Int).Mul(a, r[k])
			t2 := new(big.Int).Mul(bc, eq[k])
			r[k] = t1.Sub(t1, t2)
		}
		ivec.GCDNormalize(r)
	}
	if err := b.DropEquality(eqIdx); err != nil {
		return nil, err
	}

	return b, nil
}

// ProjectOut existentially quantifies n dimensions of component c starting
// at pos (spec.md §4.4 "Project-out", the integer case): rather than
// eliminating them by Fourier-Motzkin (RemoveDims, lossy over the
// integers unless every coefficient is unit), the columns are moved to
// the tail of the output tuple and reclassified as fresh divs with
// unknown (zero) denominator, keeping every constraint that touched them
// intact. Parameters are never projected (spec.md glossary "Parameter").
func ProjectOut(b *BasicRelation, c space.Component, pos, n int) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	if n == 0 {
		return b, nil
	}
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if c == space.Param {
		return nil, ErrIndexOutOfRange
	}

	moved, err := MoveDims(b, c, pos, space.Out, b.sp.NOut(), n)
	if err != nil {
		return nil, err
	}

	sp2, err := moved.sp.Drop(space.Out, moved.sp.NOut()-n, n)
	if err != nil {
		return nil, err
	}

	out, err := Alloc(sp2, moved.extra+n, moved.nEq, moved.nIneq)
	if err != nil {
		return nil, err
	}
	out.nDiv = moved.nDiv

	tailStart := moved.sp.Offset(space.Out) + sp2.NOut()
	m := space.NewDimMap(out.Width())
	m.SetConst(0)
	m.SetRange(1, 1, sp2.NParam())
	m.SetRange(out.sp.Offset(space.In), moved.sp.Offset(space.In), sp2.NIn())
	m.SetRange(out.sp.Offset(space.Out), moved.sp.Offset(space.Out), sp2.NOut())
	m.SetRange(1+sp2.Total(), 1+moved.sp.Total(), moved.nDiv)
	m.SetRange(1+sp2.Total()+moved.nDiv, tailStart, n)

	for i := 0; i < moved.nIneq; i++ {
		idx, _ := out.AllocInequality()
		copy(out.Ineq(idx), m.Apply(moved.Ineq(i)))
	}
	for i := 0; i < moved.nEq; i++ {
		idx, _ := out.AllocEquality()
		copy(out.Eq(idx), m.Apply(moved.Eq(i)))
	}
	for i := 0; i < moved.nDiv; i++ {
		dm := space.NewDimMap(1 + out.Width())
		dm.SetRange(0, 0, 1)
		dm.SetConst(1)
		dm.SetRange(2, 2, sp2.NParam())
		dm.SetRange(1+out.sp.Offset(space.In), 1+moved.sp.Offset(space.In), sp2.NIn())
		dm.SetRange(1+out.sp.Offset(space.Out), 1+moved.sp.Offset(space.Out), sp2.NOut())
		dm.SetRange(2+sp2.Total(), 2+moved.sp.Total(), moved.nDiv)
		out.divs[i] = dm.Apply(moved.Div(i))
	}
	for k := 0; k < n; k++ {
		if _, err := out.AllocDiv(); err != nil {
			return nil, err
		}
	}

	return Simplify(out)
}
