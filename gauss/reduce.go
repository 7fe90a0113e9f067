package gauss

import (
	"math/big"

	"github.com/katalvlaran/relspace/ivec"
)

// Result is the outcome of reducing a set of homogeneous-in-the-constant
// equalities row·x = 0 (row[0] is the coefficient on the implicit "1"
// variable).
type Result struct {
	// Rows is the reduced, redundancy-free row set (order not significant).
	Rows []ivec.Row
	// Contradictory is true if some row reduced to [c, 0, 0, ..., 0] with
	// c != 0, i.e. the system is infeasible over the rationals.
	Contradictory bool
}

// Reduce row-reduces eqs in place over copies (eqs itself is left
// untouched) using fraction-free elimination starting at column 1 (column
// 0 is the constant term and is never a pivot column).
func Reduce(eqs []ivec.Row) Result {
	rows := make([]ivec.Row, len(eqs))
	for i, r := range eqs {
		rows[i] = r.Clone()
	}
	if len(rows) == 0 {
		return Result{Rows: rows}
	}
	width := len(rows[0])

	pivotRow := 0
	for col := 1; col < width && pivotRow < len(rows); col++ {
		sel := -1
		for r := pivotRow; r < len(rows); r++ {
			if rows[r][col].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel < 0 {
			continue
		}
		rows[pivotRow], rows[sel] = rows[sel], rows[pivotRow]
		pivot := rows[pivotRow]
		pivotVal := pivot[col]
		for r := 0; r < len(rows); r++ {
			if r == pivotRow {
				continue
			}
			factor := rows[r][col]
			if factor.Sign() == 0 {
				continue
			}
			combined := make(ivec.Row, width)
			for k := 0; k < width; k++ {
				a := new(big.Int).Mul(rows[r][k], pivotVal)
				b := new(big.Int).Mul(factor, pivot[k])
				combined[k] = a.Sub(a, b)
			}
			ivec.GCDNormalize(combined)
			rows[r] = combined
		}
		pivotRow++
	}

	out := make([]ivec.Row, 0, len(rows))
	contradictory := false
	for _, r := range rows {
		if r.IsZero() {
			continue
		}
		allVarsZero := true
		for k := 1; k < width; k++ {
			if r[k].Sign() != 0 {
				allVarsZero = false
				break
			}
		}
		if allVarsZero {
			contradictory = true
			continue
		}
		out = append(out, r)
	}

	return Result{Rows: out, Contradictory: contradictory}
}
