// SPDX-License-Identifier: MIT
//
// File: swapvars.go
// Role: swap_vars (spec.md §4.4): permute two ordinary variable columns
// (as opposed to SwapDiv's div-column permutation in alloc.go) and
// re-run Gaussian reduction afterwards, since swapping pivot columns can
// change which equality row is the natural pivot for a later column.
package basicrel

import (
	"github.com/katalvlaran/relspace/space"
)

// SwapVars exchanges dimension pos1 of component c1 with dimension pos2
// of component c2 across every eq, ineq and div row, then Gaussian-
// reduces the equality set again (spec.md §4.4 "swap_vars").
func SwapVars(b *BasicRelation, c1 space.Component, pos1 int, c2 space.Component, pos2 int) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	out := Cow(b)
	col1 := out.sp.Offset(c1) + pos1
	col2 := out.sp.Offset(c2) + pos2
	if col1 == col2 {
		return out, nil
	}
	for i := 0; i < out.nIneq; i++ {
		r := out.Ineq(i)
		r[col1], r[col2] = r[col2], r[col1]
	}
	for i := 0; i < out.nEq; i++ {
		r := out.Eq(i)
		r[col1], r[col2] = r[col2], r[col1]
	}
	for i := 0; i < out.nDiv; i++ {
		r := out.Div(i)
		r[1+col1], r[1+col2] = r[1+col2], r[1+col1]
	}
	out.flags.clearStructural()
	out.sample = nil

	return Simplify(out)
}
