// SPDX-License-Identifier: MIT
//
// File: apply.go
// Role: the composition family of spec.md §4.4: ApplyRange, ApplyDomain,
// Product, Sum, Deltas. Each builds a joint space wide enough to hold
// every tuple involved, reembeds the operands into disjoint or aliased
// column windows of it, combines them with Intersect/AddConstraints, and
// projects away the columns that do not belong in the result.
package basicrel

import (
	"github.com/katalvlaran/relspace/space"
)

// ApplyRange returns the relational composition b2 ∘ b1: {a -> c | exists
// b. (a,b) in b1 and (b,c) in b2} (spec.md §4.4 "Apply range"). Requires
// b1's output arity to equal b2's input arity and matching parameter
// counts.
func ApplyRange(b1, b2 *BasicRelation) (*BasicRelation, error) {
	if b1 == nil || b2 == nil {
		return nil, ErrNilRelation
	}
	if b1.sp.NParam() != b2.sp.NParam() {
		return nil, ErrParamMismatch
	}
	if b1.sp.NOut() != b2.sp.NIn() {
		return nil, ErrSpaceMismatch
	}
	nparam, nA, nB, nC := b1.sp.NParam(), b1.sp.NIn(), b1.sp.NOut(), b2.sp.NOut()
	joint, err := space.Alloc(nparam, nA, nB+nC)
	if err != nil {
		return nil, err
	}

	w1, err := reembed(b1, joint, func(m *space.DimMap, base int) {
		m.SetRange(base+1, base+1, nparam)
		m.SetRange(base+joint.Offset(space.In), base+b1.sp.Offset(space.In), nA)
		m.SetRange(base+joint.Offset(space.Out), base+b1.sp.Offset(space.Out), nB)
	})
	if err != nil {
		return nil, err
	}
	w2, err := reembed(b2, joint, func(m *space.DimMap, base int) {
		m.SetRange(base+1, base+1, nparam)
		m.SetRange(base+joint.Offset(space.Out), base+b2.sp.Offset(space.In), nB)
		m.SetRange(base+joint.Offset(space.Out)+nB, base+b2.sp.Offset(space.Out), nC)
	})
	if err != nil {
		return nil, err
	}

	merged, err := Intersect(w1, w2)
	if err != nil {
		return nil, err
	}

	return RemoveDims(merged, space.Out, 0, nB, false)
}

// ApplyDomain returns {c -> b | exists a. (a,c) in b2 and (a,b) in b1}
// (spec.md §4.4 "Apply domain"), built as ApplyRange(Reverse(b2), b1)
// since Reverse(b2): c -> a composed with b1: a -> b is exactly that.
func ApplyDomain(b1, b2 *BasicRelation) (*BasicRelation, error) {
	if b1 == nil || b2 == nil {
		return nil, ErrNilRelation
	}
	rb2, err := Reverse(b2)
	if err != nil {
		return nil, err
	}

	return ApplyRange(rb2, b1)
}

// Product returns the Cartesian product b1 × b2: {(a1,a2) -> (b1,b2) |
// (a1,b1) in b1-relation and (a2,b2) in b2-relation} (spec.md §4.4
// "Product"). Requires matching parameter counts.
func Product(b1, b2 *BasicRelation) (*BasicRelation, error) {
	if b1 == nil || b2 == nil {
		return nil, ErrNilRelation
	}
	psp, err := space.Product(b1.sp, b2.sp)
	if err != nil {
		return nil, err
	}
	nparam := b1.sp.NParam()
	nA1, nB1 := b1.sp.NIn(), b1.sp.NOut()
	nA2, nB2 := b2.sp.NIn(), b2.sp.NOut()

	w1, err := reembed(b1, psp, func(m *space.DimMap, base int) {
		m.SetRange(base+1, base+1, nparam)
		m.SetRange(base+psp.Offset(space.In), base+b1.sp.Offset(space.In), nA1)
		m.SetRange(base+psp.Offset(space.Out), base+b1.sp.Offset(space.Out), nB1)
	})
	if err != nil {
		return nil, err
	}
	w2, err := reembed(b2, psp, func(m *space.DimMap, base int) {
		m.SetRange(base+1, base+1, nparam)
		m.SetRange(base+psp.Offset(space.In)+nA1, base+b2.sp.Offset(space.In), nA2)
		m.SetRange(base+psp.Offset(space.Out)+nB1, base+b2.sp.Offset(space.Out), nB2)
	})
	if err != nil {
		return nil, err
	}

	return Intersect(w1, w2)
}

// Sum returns {i -> o | o = o1+o2, i -> o1 in b1, i -> o2 in b2}
// (spec.md §4.4 "Sum"). Requires identical spaces. The o1/o2 columns are
// eliminated via an exact equality substitution (no precision loss),
// since each appears unit-coefficient in its defining sum equality.
func Sum(b1, b2 *BasicRelation) (*BasicRelation, error) {
	if b1 == nil || b2 == nil {
		return nil, ErrNilRelation
	}
	if !space.Equal(b1.sp, b2.sp) {
		return nil, ErrSpaceMismatch
	}
	nparam, nIn, nOut := b1.sp.NParam(), b1.sp.NIn(), b1.sp.NOut()
	joint, err := space.Alloc(nparam, nIn, 3*nOut)
	if err != nil {
		return nil, err
	}

	w1, err := reembed(b1, joint, func(m *space.DimMap, base int) {
		m.SetRange(base+1, base+1, nparam)
		m.SetRange(base+joint.Offset(space.In), base+b1.sp.Offset(space.In), nIn)
		m.SetRange(base+joint.Offset(space.Out), base+b1.sp.Offset(space.Out), nOut)
	})
	if err != nil {
		return nil, err
	}
	w2, err := reembed(b2, joint, func(m *space.DimMap, base int) {
		m.SetRange(base+1, base+1, nparam)
		m.SetRange(base+joint.Offset(space.In), base+b2.sp.Offset(space.In), nIn)
		m.SetRange(base+joint.Offset(space.Out)+nOut, base+b2.sp.Offset(space.Out), nOut)
	})
	if err != nil {
		return nil, err
	}

	merged, err := Intersect(w1, w2)
	if err != nil {
		return nil, err
	}

	sumBase := joint.Offset(space.Out) + 2*nOut
	out, err := ExtendConstraints(merged, nOut, 0)
	if err != nil {
		return nil, err
	}
	for k := 0; k < nOut; k++ {
		idx, eerr := out.AllocEquality()
		if eerr != nil {
			return nil, eerr
		}
		row := out.Eq(idx)
		row[sumBase+k].SetInt64(1)
		row[joint.Offset(space.Out)+k].SetInt64(-1)
		row[joint.Offset(space.Out)+nOut+k].SetInt64(-1)
	}

	return RemoveDims(out, space.Out, 0, 2*nOut, false)
}

// Deltas returns the basic set {y - x | (x,y) in b} (spec.md §4.4
// "Deltas"). Requires b.NIn() == b.NOut().
func Deltas(b *BasicRelation) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	if b.sp.NIn() != b.sp.NOut() {
		return nil, ErrSpaceMismatch
	}
	n := b.sp.NOut()
	nparam := b.sp.NParam()
	joint, err := space.Alloc(nparam, n, 2*n)
	if err != nil {
		return nil, err
	}

	w, err := reembed(b, joint, func(m *space.DimMap, base int) {
		m.SetRange(base+1, base+1, nparam)
		m.SetRange(base+joint.Offset(space.In), base+b.sp.Offset(space.In), n)
		m.SetRange(base+joint.Offset(space.Out), base+b.sp.Offset(space.Out), n)
	})
	if err != nil {
		return nil, err
	}

	deltaBase := joint.Offset(space.Out) + n
	out, err := ExtendConstraints(w, n, 0)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		idx, eerr := out.AllocEquality()
		if eerr != nil {
			return nil, eerr
		}
		row := out.Eq(idx)
		row[deltaBase+k].SetInt64(1)
		row[joint.Offset(space.Out)+k].SetInt64(-1)
		row[joint.Offset(space.In)+k].SetInt64(1)
	}

	out, err = RemoveDims(out, space.In, 0, n, false)
	if err != nil {
		return nil, err
	}

	return RemoveDims(out, space.Out, 0, n, false)
}
