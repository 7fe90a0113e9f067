// SPDX-License-Identifier: MIT
//
// File: predicates.go
// Role: the boolean query family of spec.md §4.6: fast (flag-only) and
// exact (tab-backed) emptiness, boundedness, fixedness and sign queries.
package basicrel

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/space"
	"github.com/katalvlaran/relspace/tab"
)

// IsEmpty reports whether b has no integer point, using the cached EMPTY
// flag when set, and a cached sample when it still satisfies every row of
// b (a stale one is discarded), and otherwise probing with the tab
// simplex over b's rational relaxation (spec.md §4.6 "is_empty"). A
// rational-infeasible
// system is certainly integer-empty. A rational-feasible system is not
// necessarily integer-feasible (e.g. the single equality "2x = 1"), so
// IsEmpty falls through to FindSample, the exact integer sample search,
// before answering — matching isl_map.c's isl_basic_map_is_empty, which
// falls through to isl_basic_set_sample_vec past a feasible rational
// relaxation. Either outcome is memoized on b: EMPTY is set on proven
// emptiness, the witness is cached on b.sample on success (spec.md:157
// "cache the returned sample on the basic relation; set EMPTY on
// failure").
func IsEmpty(ctx *rctx.Context, b *BasicRelation) (bool, error) {
	if b == nil {
		return true, nil
	}
	if b.flags.has(FlagEmpty) {
		return true, nil
	}
	if b.sample != nil {
		if Contains(b, b.sample) {
			return false, nil
		}
		b.sample = nil
	}
	eqs, ineqs := b.tabRows()
	if ctx.Backend() == rctx.BackendTableau && tab.QuickInfeasible(b.Width()-1, eqs) {
		b.flags.set(FlagEmpty)

		return true, nil
	}
	ok, err := tab.Feasible(b.Width()-1, eqs, ineqs)
	if err != nil {
		return false, err
	}
	if !ok {
		b.flags.set(FlagEmpty)

		return true, nil
	}

	point, found, err := FindSample(b)
	if err != nil {
		if errors.Is(err, ErrBoundsExceeded) {
			// Inconclusive: the rational relaxation is feasible but the
			// search box is too large to enumerate exhaustively. Treat
			// as non-empty rather than risk a false EMPTY.
			return false, nil
		}

		return false, err
	}
	if !found {
		b.flags.set(FlagEmpty)

		return true, nil
	}
	b.sample = point

	return false, nil
}

// FastIsEmpty reports the raw EMPTY flag without invoking any solver
// (spec.md §4.6 "fast_is_empty").
func FastIsEmpty(b *BasicRelation) bool { return b.IsEmptyFlagged() }

// tabRows converts b's live eq/ineq rows into the tab package's Row
// format (a thin type alias over ivec.Row's representation).
func (b *BasicRelation) tabRows() (eqs, ineqs []tab.Row) {
	eqs = make([]tab.Row, b.nEq)
	for i := 0; i < b.nEq; i++ {
		eqs[i] = tab.Row(b.Eq(i))
	}
	ineqs = make([]tab.Row, b.nIneq)
	for i := 0; i < b.nIneq; i++ {
		ineqs[i] = tab.Row(b.Ineq(i))
	}

	return eqs, ineqs
}

// DimIsBounded reports whether dimension pos of component c has a finite
// upper bound over b's rational relaxation (spec.md §4.6 "dim_is_bounded").
func DimIsBounded(b *BasicRelation, c space.Component, pos int) (bool, error) {
	if b == nil {
		return false, ErrNilRelation
	}
	col := b.sp.Offset(c) + pos
	n := b.Width() - 1
	obj := make([]*big.Int, n)
	for i := range obj {
		obj[i] = bigZero
	}
	obj[col-1] = bigOne
	eqs, ineqs := b.tabRows()
	_, err := tab.Maximize(n, obj, eqs, ineqs)
	if err == tab.ErrUnbounded {
		return false, nil
	}
	if err == tab.ErrInfeasible {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// DimIsFixed reports whether dimension pos of component c takes a single
// value over every point of b, returning that value when so
// (spec.md §4.6 "dim_is_fixed"). Detected structurally: an equality row
// with a unit coefficient on the column and zero elsewhere.
func DimIsFixed(b *BasicRelation, c space.Component, pos int) (bool, *big.Int) {
	if b == nil {
		return false, nil
	}
	col := b.sp.Offset(c) + pos
	for i := 0; i < b.nEq; i++ {
		row := b.Eq(i)
		if row[col].CmpAbs(bigOne) != 0 {
			continue
		}
		onlyThis := true
		for k := 1; k < len(row); k++ {
			if k == col {
				continue
			}
			if row[k].Sign() != 0 {
				onlyThis = false
				break
			}
		}
		if !onlyThis {
			continue
		}
		v := new(big.Int).Neg(row[0])
		if row[col].Sign() < 0 {
			v.Neg(v)
		}

		return true, v
	}

	return false, nil
}

// DimHasFixedLowerBound reports whether dimension pos of component c has
// a constant (parameter-free) lower bound, returning it when so
// (spec.md §4.6 "dim_has_fixed_lower_bound"). Detected structurally: an
// inequality row with a unit coefficient on the column and zero
// elsewhere except the constant term.
func DimHasFixedLowerBound(b *BasicRelation, c space.Component, pos int) (bool, *big.Int) {
	if b == nil {
		return false, nil
	}
	col := b.sp.Offset(c) + pos
	for i := 0; i < b.nIneq; i++ {
		row := b.Ineq(i)
		if row[col].Cmp(bigOne) != 0 {
			continue
		}
		onlyThis := true
		for k := 1; k < len(row); k++ {
			if k == col {
				continue
			}
			if row[k].Sign() != 0 {
				onlyThis = false
				break
			}
		}
		if !onlyThis {
			continue
		}

		return true, new(big.Int).Neg(row[0])
	}

	return false, nil
}

// Sign reports the sign of an affine quantity relative to zero.
type Sign int

const (
	// SignUnknown means both non-negative and non-positive values occur.
	SignUnknown Sign = iota
	// SignNonNegative means the quantity is always >= 0 over b.
	SignNonNegative
	// SignNonPositive means the quantity is always <= 0 over b.
	SignNonPositive
	// SignZero means the quantity is always exactly 0 over b.
	SignZero
)

// VarsGetSign reports the sign of dimension pos of component c over every
// point of b (spec.md §4.6 "vars_get_sign"), probed by maximizing first
// -x and then x over the rational relaxation.
func VarsGetSign(b *BasicRelation, c space.Component, pos int) (Sign, error) {
	if b == nil {
		return SignUnknown, ErrNilRelation
	}
	col := b.sp.Offset(c) + pos
	n := b.Width() - 1
	eqs, ineqs := b.tabRows()

	negObj := unitObjective(n, col-1, -1)
	maxNeg, err := tab.Maximize(n, negObj, eqs, ineqs)
	negIsNonPositive := err == nil && maxNeg.Sign() <= 0
	if err == tab.ErrUnbounded {
		negIsNonPositive = false
	}

	posObj := unitObjective(n, col-1, 1)
	maxPos, err2 := tab.Maximize(n, posObj, eqs, ineqs)
	posIsNonPositive := err2 == nil && maxPos.Sign() <= 0

	switch {
	case negIsNonPositive && maxNeg != nil && maxNeg.Sign() == 0 && posIsNonPositive && maxPos != nil && maxPos.Sign() == 0:
		return SignZero, nil
	case negIsNonPositive:
		return SignNonNegative, nil
	case posIsNonPositive:
		return SignNonPositive, nil
	default:
		return SignUnknown, nil
	}
}

func unitObjective(n, idx, sign int) []*big.Int {
	obj := make([]*big.Int, n)
	for i := range obj {
		obj[i] = bigZero
	}
	obj[idx] = big.NewInt(int64(sign))

	return obj
}

// IsBox reports whether b's constraints form an axis-aligned box: every
// inequality and equality touches at most one variable column
// (spec.md §4.6 "is_box").
func IsBox(b *BasicRelation) bool {
	if b == nil {
		return false
	}
	touches := func(row []*big.Int) bool {
		n := 0
		for k := 1; k < len(row); k++ {
			if row[k].Sign() != 0 {
				n++
				if n > 1 {
					return false
				}
			}
		}

		return true
	}
	for i := 0; i < b.nIneq; i++ {
		if !touches(b.Ineq(i)) {
			return false
		}
	}
	for i := 0; i < b.nEq; i++ {
		if !touches(b.Eq(i)) {
			return false
		}
	}

	return true
}
