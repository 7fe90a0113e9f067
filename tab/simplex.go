// SPDX-License-Identifier: MIT
//
// File: simplex.go
// Role: the exact two-phase tableau simplex: Feasible (phase 1 only) and
// Maximize (phase 1 + phase 2), operating on big.Rat throughout.
package tab

import (
	"errors"
	"math/big"
)

// Errors returned by Maximize.
var (
	// ErrInfeasible indicates the constraint system admits no solution.
	ErrInfeasible = errors.New("tab: infeasible")
	// ErrUnbounded indicates the objective is unbounded over the feasible region.
	ErrUnbounded = errors.New("tab: unbounded")
)

// Row is one row of a BasicRelation-style constraint: Row[0] is the
// constant term, Row[1:] the coefficients, meaning Row[1:]·x + Row[0] = 0
// (equality) or >= 0 (inequality).
type Row []*big.Int

// Feasible reports whether the system {eqs = 0, ineqs >= 0} over n free
// (unrestricted-sign) rational variables has any solution.
func Feasible(n int, eqs, ineqs []Row) (bool, error) {
	std, _ := buildStandardForm(n, eqs, ineqs, nil)
	t := newPhase1Tableau(std)
	if err := t.run(); err != nil {
		return false, err
	}

	return t.phase1Objective().Sign() == 0, nil
}

// Maximize solves max c·x subject to {eqs = 0, ineqs >= 0} over n free
// variables, returning the optimal value. Returns ErrInfeasible or
// ErrUnbounded when no finite optimum exists.
func Maximize(n int, c []*big.Int, eqs, ineqs []Row) (*big.Rat, error) {
	std, cStd := buildStandardForm(n, eqs, ineqs, c)
	t := newPhase1Tableau(std)
	if err := t.run(); err != nil {
		return nil, err
	}
	if t.phase1Objective().Sign() != 0 {
		return nil, ErrInfeasible
	}
	t.enterPhase2(cStd)
	if err := t.run(); err != nil {
		return nil, err
	}
	if t.unbounded {
		return nil, ErrUnbounded
	}

	return t.objectiveValue(), nil
}

// stdForm is {A z = b, z >= 0} with m rows, ncols original (std-form)
// columns (before artificials are appended).
type stdForm struct {
	A      [][]*big.Rat
	b      []*big.Rat
	ncols  int
	slackOf []int // row -> slack column index, or -1
}

// buildStandardForm splits each of the n free variables into a
// non-negative pair (x = p - q), adds one slack per inequality, and
// returns the resulting equality-only system plus (if c != nil) the
// matching standard-form objective row.
func buildStandardForm(n int, eqs, ineqs []Row, c []*big.Int) (stdForm, []*big.Rat) {
	nSlack := len(ineqs)
	ncols := 2*n + nSlack
	rows := make([][]*big.Rat, 0, len(eqs)+len(ineqs))
	b := make([]*big.Rat, 0, len(eqs)+len(ineqs))
	slackOf := make([]int, 0, len(eqs)+len(ineqs))

	appendRow := func(r Row, slackCol int) {
		row := make([]*big.Rat, ncols)
		for i := range row {
			row[i] = new(big.Rat)
		}
		for i := 0; i < n; i++ {
			var coeff *big.Rat
			if i+1 < len(r) {
				coeff = new(big.Rat).SetInt(r[i+1])
			} else {
				coeff = new(big.Rat)
			}
			row[i].Set(coeff)
			row[n+i].Neg(coeff)
		}
		if slackCol >= 0 {
			row[slackCol].SetInt64(-1)
		}
		rhs := new(big.Rat)
		if len(r) > 0 {
			rhs.SetInt(r[0])
		}
		rhs.Neg(rhs)
		if rhs.Sign() < 0 {
			for i := range row {
				row[i].Neg(row[i])
			}
			rhs.Neg(rhs)
		}
		rows = append(rows, row)
		b = append(b, rhs)
		slackOf = append(slackOf, slackCol)
	}

	for _, r := range eqs {
		appendRow(r, -1)
	}
	for i, r := range ineqs {
		appendRow(r, 2*n+i)
	}

	var cStd []*big.Rat
	if c != nil {
		cStd = make([]*big.Rat, ncols)
		for i := range cStd {
			cStd[i] = new(big.Rat)
		}
		for i := 0; i < n; i++ {
			var coeff *big.Rat
			if i < len(c) {
				coeff = new(big.Rat).SetInt(c[i])
			} else {
				coeff = new(big.Rat)
			}
			cStd[i].Set(coeff)
			cStd[n+i].Neg(coeff)
		}
	}

	return stdForm{A: rows, b: b, ncols: ncols, slackOf: slackOf}, cStd
}
