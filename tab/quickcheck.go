// SPDX-License-Identifier: MIT
//
// File: quickcheck.go
// Role: a cheap float64 pre-filter for obviously-contradictory equality
// systems, run before paying for an exact two-phase solve.
package tab

import (
	"math/big"

	"gonum.org/v1/gonum/mat"
)

// QuickInfeasible reports a sound "definitely infeasible" verdict for the
// equality subsystem eqs (ineqs are not considered: this is a necessary,
// not sufficient, condition) by least-squares solving A x = -c in float64
// and checking the residual. A non-trivial residual proves no rational x
// satisfies the system; residual near zero is inconclusive (returns
// false, deferring to Feasible/Maximize for the exact answer).
func QuickInfeasible(n int, eqs []Row) bool {
	m := len(eqs)
	if m == 0 {
		return false
	}
	a := mat.NewDense(m, n, nil)
	bvec := mat.NewVecDense(m, nil)
	for i, r := range eqs {
		for j := 0; j < n; j++ {
			if j+1 < len(r) {
				f, _ := new(big.Float).SetInt(r[j+1]).Float64()
				a.Set(i, j, f)
			}
		}
		c := 0.0
		if len(r) > 0 {
			c, _ = new(big.Float).SetInt(r[0]).Float64()
		}
		bvec.SetVec(i, -c)
	}

	var x mat.Dense
	if err := x.Solve(a, bvec); err != nil {
		// Singular normal equations: a solve failure alone does not prove
		// infeasibility, so defer to the exact solver.
		return false
	}
	var residual mat.Dense
	residual.Mul(a, &x)
	const tol = 1e-6
	for i := 0; i < m; i++ {
		diff := residual.At(i, 0) - bvec.AtVec(i)
		if diff > tol || diff < -tol {
			return true
		}
	}

	return false
}
