// SPDX-License-Identifier: MIT
//
// File: normalize.go
// Role: Normalize (redundancy removal + canonical inequality sort) and
// Hash (spec.md §4.4 "Normalize", §4.6 "hash"). Redundancy removal here
// is the cheap structural pass (GCD-primitive rows, exact-duplicate and
// scalar-dominated-row elimination); full solver-backed implied-equality
// detection is left to tab/sample on demand, per DESIGN.md.
package basicrel

import (
	"hash/fnv"
	"sort"

	"github.com/katalvlaran/relspace/ivec"
)

// Normalize GCD-normalizes every row, sorts inequalities into canonical
// (lexicographic) order, drops exact duplicates, and drops any
// inequality that is a non-negative multiple of another with an equal or
// weaker bound (spec.md §4.4 "Normalize").
func Normalize(b *BasicRelation) (*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	out := Cow(b)
	for i := 0; i < out.nIneq; i++ {
		ivec.GCDNormalize(out.Ineq(i))
	}
	for i := 0; i < out.nEq; i++ {
		ivec.GCDNormalize(out.Eq(i))
	}

	rows := make([]ivec.Row, out.nIneq)
	for i := range rows {
		rows[i] = out.Ineq(i)
	}
	sort.Slice(rows, func(i, j int) bool { return ivec.Compare(rows[i], rows[j]) < 0 })

	kept := make([]ivec.Row, 0, len(rows))
	for _, r := range rows {
		dominated := false
		for _, k := range kept {
			if sameDirection(r, k) && r[0].Cmp(k[0]) >= 0 {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, r)
		}
	}

	if err := out.FreeInequality(0); err != nil {
		return nil, err
	}
	for _, r := range kept {
		idx, err := out.AllocInequality()
		if err != nil {
			return nil, err
		}
		copy(out.Ineq(idx), r)
	}
	out.flags.set(FlagNormalized)
	out.flags.set(FlagNoRedundant)

	return out, nil
}

// sameDirection reports whether a and b have identical coefficients on
// every variable column (columns 1..), i.e. they bound the same affine
// quantity and differ only in the constant term.
func sameDirection(a, b ivec.Row) bool {
	if len(a) != len(b) {
		return false
	}
	for k := 1; k < len(a); k++ {
		if a[k].Cmp(b[k]) != 0 {
			return false
		}
	}

	return true
}

// Hash returns a deterministic hash of b's normalized constraint set
// (spec.md §4.6 "hash"); equal basic relations that have both been
// normalized hash equal.
func Hash(b *BasicRelation) (uint64, error) {
	if b == nil {
		return 0, nil
	}
	n, err := Normalize(b.Dup())
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	write := func(r ivec.Row) {
		for _, v := range r {
			_, _ = h.Write(v.Bytes())
			if v.Sign() < 0 {
				_, _ = h.Write([]byte{'-'})
			}
			_, _ = h.Write([]byte{0})
		}
		_, _ = h.Write([]byte{0xff})
	}
	for i := 0; i < n.nIneq; i++ {
		write(n.Ineq(i))
	}
	for i := 0; i < n.nEq; i++ {
		write(n.Eq(i))
	}

	return h.Sum64(), nil
}
