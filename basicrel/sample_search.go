// SPDX-License-Identifier: MIT
//
// File: sample_search.go
// Role: FindSample, the bounded integer sample-point search collaborator
// IsEmpty falls through to once the rational relaxation is feasible
// (spec.md §4.6 "is_empty"/"sample"). Grounded on isl_map.c's
// isl_basic_set_sample_vec, standing in with a per-dimension
// bound-then-enumerate search rather than that recursive GCD-test sample
// algorithm; see DESIGN.md for why the simpler search was chosen. Lives
// in basicrel (not the sample package) so IsEmpty can call it without an
// import cycle: sample already depends on basicrel.
package basicrel

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/tab"
)

// ErrBoundsExceeded is returned by FindSample when b's rational relaxation
// is feasible but so loosely bounded (or unbounded in enough dimensions)
// that the box this package would need to enumerate exceeds
// sampleMaxCells. Narrowing b first (e.g. with a tighter caller-supplied
// bound) avoids this.
var ErrBoundsExceeded = errors.New("basicrel: sample search box exceeds bound")

// sampleWindow bounds the search radius substituted for any dimension
// whose rational relaxation is unbounded in one or both directions. A
// search whose box reaches ±sampleWindow in some dimension and holds no
// point reports ErrBoundsExceeded rather than not-found, so a relation
// that needs a wider witness in such a dimension is not reported empty.
const sampleWindow = 64

// sampleMaxCells caps the total box volume FindSample will enumerate,
// guarding against the combinatorial blowup of a high-dimensional or
// loosely bounded relation.
const sampleMaxCells = 1 << 20

// FindSample returns one integer point of b, without checking or setting
// the EMPTY flag itself (IsEmpty is the caller responsible for that).
// Reports found=false, nil error when the search box is empty or no
// assignment inside it satisfies b; reports ErrBoundsExceeded when b's
// box is too large to enumerate exhaustively, or when it reaches the
// sampleWindow substitute in some dimension and holds no point.
func FindSample(b *BasicRelation) (point ivec.Row, found bool, err error) {
	if b == nil {
		return nil, false, nil
	}
	if s := b.sample; s != nil {
		return s, true, nil
	}

	n := b.Width() - 1
	eqs, ineqs := b.tabRows()
	// Columns at or beyond liveCols are reserved div margin (spec.md
	// §4.3): unallocated, hence zero in every live row, so they are
	// pinned to 0 rather than bounded and enumerated like a genuine
	// free variable.
	liveCols := b.sp.Total() + b.nDiv

	lo := make([]int64, n)
	hi := make([]int64, n)
	volume := int64(1)
	windowed := false
	for j := 0; j < n; j++ {
		if j >= liveCols {
			lo[j], hi[j] = 0, 0
			continue
		}
		l, h, berr := sampleDimBounds(n, j, eqs, ineqs)
		if berr != nil {
			return nil, false, berr
		}
		lo[j], hi[j] = l, h
		if l == -sampleWindow || h == sampleWindow {
			windowed = true
		}
		width := h - l + 1
		if width <= 0 {
			if windowed {
				return nil, false, ErrBoundsExceeded
			}
			return nil, false, nil
		}
		if volume > 0 {
			volume *= width
		}
		if volume < 0 || volume > sampleMaxCells {
			volume = -1
		}
	}
	if volume < 0 {
		return nil, false, ErrBoundsExceeded
	}

	assignment := make([]int64, n)
	if !sampleEnumerate(b, assignment, lo, hi, 0) {
		if windowed {
			return nil, false, ErrBoundsExceeded
		}
		return nil, false, nil
	}

	row := ivec.NewRow(n + 1)
	row[0].SetInt64(1)
	for j := 0; j < n; j++ {
		row[j+1].SetInt64(assignment[j])
	}
	b.sample = row

	return row, true, nil
}

// sampleDimBounds returns an integer box bound [lo, hi] guaranteed to
// contain every integer point's j'th coordinate, derived by maximizing
// and minimizing x_j over the rational relaxation and rounding inward
// (floor for the upper bound, ceil for the lower). An unbounded
// direction falls back to sampleWindow; an infeasible relaxation (should
// not occur here, since FindSample is only reached once IsEmpty has
// already confirmed feasibility, but is handled defensively for any
// other caller) collapses the bound to an empty range.
func sampleDimBounds(n, j int, eqs, ineqs []tab.Row) (lo, hi int64, err error) {
	objMax := sampleUnitObjective(n, j, 1)
	maxR, errMax := tab.Maximize(n, objMax, eqs, ineqs)
	switch errMax {
	case nil:
		hi = sampleRatFloor(maxR)
	case tab.ErrUnbounded:
		hi = sampleWindow
	case tab.ErrInfeasible:
		return 0, -1, nil
	default:
		return 0, 0, errMax
	}

	objMin := sampleUnitObjective(n, j, -1)
	negMinR, errMin := tab.Maximize(n, objMin, eqs, ineqs)
	switch errMin {
	case nil:
		minR := new(big.Rat).Neg(negMinR)
		lo = sampleRatCeil(minR)
	case tab.ErrUnbounded:
		lo = -sampleWindow
	case tab.ErrInfeasible:
		return 0, -1, nil
	default:
		return 0, 0, errMin
	}

	return lo, hi, nil
}

func sampleUnitObjective(n, j, sign int) []*big.Int {
	obj := make([]*big.Int, n)
	for i := range obj {
		obj[i] = big.NewInt(0)
	}
	obj[j] = big.NewInt(int64(sign))

	return obj
}

// sampleRatFloor returns the greatest integer <= r.
func sampleRatFloor(r *big.Rat) int64 {
	num, den := r.Num(), r.Denom()
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 && num.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}

	return q.Int64()
}

// sampleRatCeil returns the least integer >= r.
func sampleRatCeil(r *big.Rat) int64 {
	num, den := r.Num(), r.Denom()
	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() != 0 && num.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}

	return q.Int64()
}

// sampleEnumerate depth-first assigns assignment[idx:] within [lo,hi] and
// reports whether some full assignment satisfies every row of b.
func sampleEnumerate(b *BasicRelation, assignment, lo, hi []int64, idx int) bool {
	if idx == len(assignment) {
		return sampleSatisfies(b, assignment)
	}
	for v := lo[idx]; v <= hi[idx]; v++ {
		assignment[idx] = v
		if sampleEnumerate(b, assignment, lo, hi, idx+1) {
			return true
		}
	}

	return false
}

// sampleSatisfies evaluates every live row of b against assignment exactly.
func sampleSatisfies(b *BasicRelation, assignment []int64) bool {
	eval := func(row ivec.Row) int {
		sum := new(big.Int).Set(row[0])
		for j, v := range assignment {
			if v == 0 {
				continue
			}
			term := new(big.Int).Mul(row[j+1], big.NewInt(v))
			sum.Add(sum, term)
		}

		return sum.Sign()
	}
	for i := 0; i < b.nEq; i++ {
		if eval(b.Eq(i)) != 0 {
			return false
		}
	}
	for i := 0; i < b.nIneq; i++ {
		if eval(b.Ineq(i)) < 0 {
			return false
		}
	}

	return true
}
