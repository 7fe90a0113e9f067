// SPDX-License-Identifier: MIT
//
// File: embed.go
// Role: reembed, the shared primitive behind apply_range/apply_domain,
// product and sum (spec.md §4.4): copies a basic relation's constraints
// into a differently-shaped target space under a caller-supplied column
// routing, the same dim-map-driven copy shape as compose.go's
// widenParamOnly generalized to an arbitrary caller routing.
package basicrel

import (
	"github.com/katalvlaran/relspace/space"
)

// reembed allocates a BasicRelation over target with b's eq/ineq/div
// counts and copies every row through two dim-maps built by route: route
// is called once with base=0 for ordinary rows (column indices as
// returned by Space.Offset) and once with base=1 for div rows (which
// carry a leading denominator column, shifting every column by one).
func reembed(b *BasicRelation, target *space.Space, route func(m *space.DimMap, base int)) (*BasicRelation, error) {
	out, err := Alloc(target, b.extra, b.nEq, b.nIneq)
	if err != nil {
		return nil, err
	}
	out.nDiv = b.nDiv

	m := space.NewDimMap(out.Width())
	m.SetConst(0)
	route(m, 0)
	m.SetRange(1+out.sp.Total(), 1+b.sp.Total(), b.nDiv)
	for i := 0; i < b.nIneq; i++ {
		idx, ierr := out.AllocInequality()
		if ierr != nil {
			return nil, ierr
		}
		copy(out.Ineq(idx), m.Apply(b.Ineq(i)))
	}
	for i := 0; i < b.nEq; i++ {
		idx, eerr := out.AllocEquality()
		if eerr != nil {
			return nil, eerr
		}
		copy(out.Eq(idx), m.Apply(b.Eq(i)))
	}

	dm := space.NewDimMap(1 + out.Width())
	dm.SetRange(0, 0, 1)
	dm.SetConst(1)
	route(dm, 1)
	dm.SetRange(2+out.sp.Total(), 2+b.sp.Total(), b.nDiv)
	for i := 0; i < b.nDiv; i++ {
		out.divs[i] = dm.Apply(b.Div(i))
	}

	return out, nil
}
