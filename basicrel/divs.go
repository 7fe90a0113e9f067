// SPDX-License-Identifier: MIT
//
// File: divs.go
// Role: div definitions as numbered existentials (spec.md §4.4 "Div
// handling", §9 "Divs as numbered existentials"): the canonical
// inequality pair encoding x_pos = floor(f/d), topological div ordering,
// and div-set alignment across two basic relations.
package basicrel

import (
	"math/big"

	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/space"
)

// AddDivConstraintsVar emits the canonical pair of inequalities
// representing x_pos = floor(f/d) for div row divRow (divRow[0] = d,
// divRow[1:] = f in row-layout column position), appending them to b
// (spec.md §4.4 "Div handling").
func AddDivConstraintsVar(b *BasicRelation, pos int, divRow ivec.Row) (*BasicRelation, error) {
	out, err := ExtendConstraints(b, 0, 2)
	if err != nil {
		return nil, err
	}
	d := divRow[0]
	f := divRow[1:]

	i1, err := out.AllocInequality()
	if err != nil {
		return nil, err
	}
	r1 := out.Ineq(i1)
	copy(r1, f)
	r1[pos].Sub(r1[pos], d)

	i2, err := out.AllocInequality()
	if err != nil {
		return nil, err
	}
	r2 := out.Ineq(i2)
	for k, v := range f {
		r2[k].Neg(v)
	}
	r2[pos].Add(r2[pos], d)
	r2[0].Add(r2[0], new(big.Int).Sub(d, bigOne))

	return out, nil
}

// divDependsOn reports whether div row divs[i] has a non-zero coefficient
// on div column j (div i's definition references div j).
func (b *BasicRelation) divDependsOn(i, j int) bool {
	col := 1 + (1 + b.sp.Total() + j)

	return b.divs[i][col].Sign() != 0
}

// OrderDivs repeatedly moves each div that depends on a later div to a
// later position, so the list ends up topologically sorted
// (spec.md §4.4 "order_divs").
func (b *BasicRelation) OrderDivs() error {
	changed := true
	for changed {
		changed = false
		for i := 0; i < b.nDiv; i++ {
			for j := i + 1; j < b.nDiv; j++ {
				if b.divDependsOn(i, j) {
					if err := b.SwapDiv(i, j); err != nil {
						return err
					}
					changed = true
				}
			}
		}
	}

	return nil
}

// divEqual reports whether src's div row r (already expressed over dst's
// non-div columns, width 1+dst.sp.Total()+dst.nDiv prefix matching) is
// structurally identical to dst's div k: same denominator, same affine
// expression, including later div columns (spec.md §9 open question (c):
// the match must be exact on later-div columns too, preserved here).
func divEqual(a, b ivec.Row) bool {
	return ivec.Equal(a, b)
}

// AlignDivs orders src (on a private working copy so the caller's src is
// left untouched), enlarges dst by up to n_div(src) extra divs, and for
// each div in src either finds an identical div already in dst or appends
// a fresh one plus its defining constraints, then permutes dst's divs to
// match src's order (spec.md §4.4 "align_divs").
func AlignDivs(dst, src *BasicRelation) (*BasicRelation, error) {
	if dst == nil || src == nil {
		return nil, ErrNilRelation
	}
	work := src.Dup()
	if err := work.OrderDivs(); err != nil {
		return nil, err
	}

	out, err := ExtendSpace(dst, dst.sp, work.nDiv, 0, 0)
	if err != nil {
		return nil, err
	}

	matchFor := make([]int, work.nDiv)
	for i := 0; i < work.nDiv; i++ {
		// Re-express work's div i over out's column layout (same
		// params/in/out offsets since dst and src must share a space by
		// construction of every caller; divs beyond out.nDiv are not
		// expected to be referenced yet).
		candidate := work.Div(i)
		found := -1
		for k := 0; k < out.nDiv; k++ {
			if divEqual(out.Div(k), candidate) {
				found = k
				break
			}
		}
		if found < 0 {
			idx, derr := out.AllocDiv()
			if derr != nil {
				return nil, derr
			}
			copy(out.Div(idx), candidate)
			out, err = AddDivConstraintsVar(out, 1+out.sp.Total()+idx, out.Div(idx))
			if err != nil {
				return nil, err
			}
			found = idx
		}
		matchFor[i] = found
	}

	// Permute out's divs so that out's div (matchFor[i]) lands at position i.
	for i := 0; i < len(matchFor); i++ {
		target := matchFor[i]
		if target == i {
			continue
		}
		if err := out.SwapDiv(i, target); err != nil {
			return nil, err
		}
		for k := i + 1; k < len(matchFor); k++ {
			if matchFor[k] == i {
				matchFor[k] = target
			}
		}
	}

	return out, nil
}

// Neg flips the sign of every out-column coefficient in eqs, ineqs and div
// definitions (spec.md §4.4 "Neg").
func Neg(b *BasicRelation) (*BasicRelation, error) {
	out := Cow(b)
	if out == nil {
		return nil, ErrNilRelation
	}
	outOff := out.sp.Offset(space.Out)
	n := out.sp.NOut()
	for i := 0; i < out.nIneq; i++ {
		negRange(out.Ineq(i), outOff, n)
	}
	for i := 0; i < out.nEq; i++ {
		negRange(out.Eq(i), outOff, n)
	}
	for i := 0; i < out.nDiv; i++ {
		negRange(out.Div(i)[1:], outOff, n)
	}
	out.flags.clearStructural()

	return out, nil
}

func negRange(row ivec.Row, off, n int) {
	for k := off; k < off+n; k++ {
		row[k].Neg(row[k])
	}
}

// FloorDiv returns the basic relation obtained by replacing every output
// coordinate f_i of b with a fresh existential q_i = floor(f_i/d), via
// two inequalities per coordinate, then redirecting the out columns
// through the new divs (spec.md §4.4 "Floor-divide by integer d").
func FloorDiv(b *BasicRelation, d int64) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	if d <= 0 {
		return nil, ErrNegativeCount
	}
	n := b.sp.NOut()
	out, err := ExtendSpace(b, b.sp, n, 0, 0)
	if err != nil {
		return nil, err
	}
	outOff := out.sp.Offset(space.Out)
	dBig := big.NewInt(d)
	for i := 0; i < n; i++ {
		col := outOff + i
		f := ivec.NewRow(out.Width())
		f[col].Set(bigOne)
		divRow := ivec.NewRow(1 + out.Width())
		divRow[0].Set(dBig)
		copy(divRow[1:], f)

		didx, derr := out.AllocDiv()
		if derr != nil {
			return nil, derr
		}
		divCol := 1 + out.sp.Total() + didx
		copy(out.Div(didx), divRow)

		out, err = AddDivConstraintsVar(out, col, out.Div(didx))
		if err != nil {
			return nil, err
		}
		// Redirect: out column now equals the div (f_i was consumed by
		// the div's own definition above; the public coordinate i keeps
		// its column but is now constrained to equal q_i).
		eidx, eerr := out.AllocEquality()
		if eerr != nil {
			return nil, eerr
		}
		row := out.Eq(eidx)
		row[col].Set(bigOne)
		row[divCol].SetInt64(-1)
	}

	return Simplify(out)
}

