// SPDX-License-Identifier: MIT
//
// File: compose.go
// Role: AddConstraints, the shared primitive behind Intersect and every
// other operation that merges two basic relations' constraint rows
// (spec.md §4.3 "add_constraints", §4.4 "Intersect").
package basicrel

import (
	"github.com/katalvlaran/relspace/space"
)

// AddConstraints extends dst's capacity to also hold src's equalities,
// inequalities and divs, then appends src's rows with src's own div
// columns relocated to start right after dst's existing divs
// (spec.md §4.3 "add_constraints" at div offset n_div(dst)). dst and src
// must already share the same Space (callers widen beforehand, see
// Intersect). Consumes dst; does not consume src.
func AddConstraints(dst, src *BasicRelation) (*BasicRelation, error) {
	if dst == nil || src == nil {
		return nil, ErrNilRelation
	}
	if !space.Equal(dst.sp, src.sp) {
		return nil, ErrSpaceMismatch
	}
	out, err := ExtendSpace(dst, dst.sp, src.nDiv, src.nEq, src.nIneq)
	if err != nil {
		return nil, err
	}
	divOffset := out.nDiv

	m := space.NewDimMap(out.Width())
	m.SetConst(0)
	m.SetRange(1, 1, out.sp.Total())
	m.SetRange(1+out.sp.Total()+divOffset, 1+src.sp.Total(), src.nDiv)

	for i := 0; i < src.nIneq; i++ {
		idx, ierr := out.AllocInequality()
		if ierr != nil {
			return nil, ierr
		}
		copy(out.Ineq(idx), m.Apply(src.Ineq(i)))
	}
	for i := 0; i < src.nEq; i++ {
		idx, eerr := out.AllocEquality()
		if eerr != nil {
			return nil, eerr
		}
		copy(out.Eq(idx), m.Apply(src.Eq(i)))
	}
	dm := space.NewDimMap(1 + out.Width())
	dm.SetRange(0, 0, 1)
	dm.SetConst(1)
	dm.SetRange(2, 2, out.sp.Total())
	dm.SetRange(2+out.sp.Total()+divOffset, 2+src.sp.Total(), src.nDiv)
	for i := 0; i < src.nDiv; i++ {
		didx, derr := out.AllocDiv()
		if derr != nil {
			return nil, derr
		}
		copy(out.Div(didx), dm.Apply(src.Div(i)))
	}

	return out, nil
}

// widenToCommonSpace returns (b1, b2) re-expressed over a common Space
// when one operand has no input/output dimensions (a parameter-only side
// constraint), per spec.md §4.4 "Intersect ... When one side has no
// in/out dims it is widened onto the other". Otherwise requires equal
// spaces and returns the inputs unchanged.
func widenToCommonSpace(b1, b2 *BasicRelation) (*BasicRelation, *BasicRelation, error) {
	if b1.sp.NParam() != b2.sp.NParam() {
		return nil, nil, ErrParamMismatch
	}
	if space.Equal(b1.sp, b2.sp) {
		return b1, b2, nil
	}
	if b1.sp.NIn() == 0 && b1.sp.NOut() == 0 {
		w, err := widenParamOnly(b1, b2.sp)
		return w, b2, err
	}
	if b2.sp.NIn() == 0 && b2.sp.NOut() == 0 {
		w, err := widenParamOnly(b2, b1.sp)
		return b1, w, err
	}

	return nil, nil, ErrSpaceMismatch
}

// widenParamOnly re-expresses a parameter-only basic relation b over a
// wider target space, leaving the in/out columns unconstrained.
func widenParamOnly(b *BasicRelation, target *space.Space) (*BasicRelation, error) {
	out, err := Alloc(target, b.extra, b.nEq, b.nIneq)
	if err != nil {
		return nil, err
	}
	out.nDiv = b.nDiv
	m := space.NewDimMap(out.Width())
	m.SetConst(0)
	m.SetRange(1, 1, b.sp.NParam())
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
	dm.SetRange(2, 2, b.sp.NParam())
	dm.SetRange(2+out.sp.Total(), 2+b.sp.Total(), b.nDiv)
	for i := 0; i < b.nDiv; i++ {
		out.divs[i] = dm.Apply(b.Div(i))
	}

	return out, nil
}
