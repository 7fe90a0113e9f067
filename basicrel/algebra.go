// SPDX-License-Identifier: MIT
//
// File: algebra.go
// Role: the semantic operations of spec.md §4.4: Intersect,
// IntersectDomain/Range, Contains, Reverse. Each consumes ownership of its
// BasicRelation arguments and returns a new owned value, or nil on error
// (spec.md §7 propagation policy).
package basicrel

import (
	"math/big"

	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/space"
)

// Intersect returns b1 ∩ b2 (spec.md §4.4 "Intersect"). Requires
// parameter compatibility; when one side has no in/out dims it is widened
// onto the other. If either operand carried a cached integer sample
// satisfying both, the sample is carried to the result.
func Intersect(b1, b2 *BasicRelation) (*BasicRelation, error) {
	if b1 == nil || b2 == nil {
		return nil, ErrNilRelation
	}
	w1, w2, err := widenToCommonSpace(b1, b2)
	if err != nil {
		return nil, err
	}
	out, err := AddConstraints(w1.Dup(), w2)
	if err != nil {
		return nil, err
	}

	out, err = Simplify(out)
	if err != nil {
		return nil, err
	}
	if !out.IsEmptyFlagged() {
		if s1 := b1.Sample(); s1 != nil && Contains(out, s1) {
			out.sample = s1.Clone()
		} else if s2 := b2.Sample(); s2 != nil && Contains(out, s2) {
			out.sample = s2.Clone()
		}
	}

	return Finalize(out), nil
}

// IntersectWithDomain intersects relation b with the preimage of set
// domain under b's input tuple (spec.md §4.4 "Intersect with
// domain/range"): domain's constraints are re-expressed over b's own
// space, its output coordinates landing on b's input columns, and added.
func IntersectWithDomain(b, domain *BasicRelation) (*BasicRelation, error) {
	if !space.CompatibleDomain(b.sp, domain.sp) {
		return nil, ErrSpaceMismatch
	}
	reExpr, err := Alloc(b.sp, domain.extra, domain.nEq, domain.nIneq)
	if err != nil {
		return nil, err
	}
	reExpr.nDiv = domain.nDiv
	m := space.NewDimMap(reExpr.Width())
	m.SetConst(0)
	m.SetRange(1, 1, domain.sp.NParam())
	m.SetRange(reExpr.sp.Offset(space.In), domain.sp.Offset(space.Out), domain.sp.NOut())
	m.SetRange(1+reExpr.sp.Total(), 1+domain.sp.Total(), domain.nDiv)
	for i := 0; i < domain.nIneq; i++ {
		idx, _ := reExpr.AllocInequality()
		copy(reExpr.Ineq(idx), m.Apply(domain.Ineq(i)))
	}
	for i := 0; i < domain.nEq; i++ {
		idx, _ := reExpr.AllocEquality()
		copy(reExpr.Eq(idx), m.Apply(domain.Eq(i)))
	}

	return Intersect(b, reExpr)
}

// IntersectWithRange intersects relation b with the preimage of set rng
// under b's output tuple.
func IntersectWithRange(b, rng *BasicRelation) (*BasicRelation, error) {
	widened, err := Alloc(b.sp, rng.extra, rng.nEq, rng.nIneq)
	if err != nil {
		return nil, err
	}
	widened.nDiv = rng.nDiv
	m := space.NewDimMap(widened.Width())
	m.SetConst(0)
	m.SetRange(1, 1, rng.sp.NParam())
	m.SetRange(widened.sp.Offset(space.Out), rng.sp.Offset(space.Out), rng.sp.NOut())
	m.SetRange(1+widened.sp.Total(), 1+rng.sp.Total(), rng.nDiv)
	for i := 0; i < rng.nIneq; i++ {
		idx, _ := widened.AllocInequality()
		copy(widened.Ineq(idx), m.Apply(rng.Ineq(i)))
	}
	for i := 0; i < rng.nEq; i++ {
		idx, _ := widened.AllocEquality()
		copy(widened.Eq(idx), m.Apply(rng.Eq(i)))
	}

	return Intersect(b, widened)
}

// Contains reports whether point x (length 1+total(sp), x[0] conventionally
// 1) satisfies every equality (= 0) and inequality (>= 0) of b
// (spec.md §4.6, §8 testable property). Divs are not evaluated against x;
// x is expected to already include the appropriate div values when
// b.NDiv() > 0.
func Contains(b *BasicRelation, x ivec.Row) bool {
	if b == nil {
		return false
	}
	for i := 0; i < b.nEq; i++ {
		if evalRow(b.Eq(i), x).Sign() != 0 {
			return false
		}
	}
	for i := 0; i < b.nIneq; i++ {
		if evalRow(b.Ineq(i), x).Sign() < 0 {
			return false
		}
	}

	return true
}

func evalRow(row, x ivec.Row) *big.Int {
	return ivec.Dot(row, x)
}

// Reverse converts b to its underlying basic set, swaps the input-tuple
// with the output-tuple region, and rewrites the space (spec.md §4.4
// "Reverse").
func Reverse(b *BasicRelation) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	rsp, err := b.sp.Reverse()
	if err != nil {
		return nil, err
	}
	out, err := Alloc(rsp, b.extra, b.nEq, b.nIneq)
	if err != nil {
		return nil, err
	}
	out.nDiv = b.nDiv
	m := space.NewDimMap(out.Width())
	m.SetConst(0)
	m.SetRange(1, 1, b.sp.NParam())
	m.SetRange(out.sp.Offset(space.In), b.sp.Offset(space.Out), b.sp.NOut())
	m.SetRange(out.sp.Offset(space.Out), b.sp.Offset(space.In), b.sp.NIn())
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
	dm.SetRange(1+out.sp.Offset(space.In), 1+b.sp.Offset(space.Out), b.sp.NOut())
	dm.SetRange(1+out.sp.Offset(space.Out), 1+b.sp.Offset(space.In), b.sp.NIn())
	dm.SetRange(2+out.sp.Total(), 2+b.sp.Total(), b.nDiv)
	for i := 0; i < b.nDiv; i++ {
		out.divs[i] = dm.Apply(b.Div(i))
	}
	out.flags = b.flags

	return out, nil
}
