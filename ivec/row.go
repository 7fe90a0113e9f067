package ivec

import "math/big"

// Row is a dense vector of arbitrary-precision integers: one constraint
// row, one div definition row, or one sample point.
type Row []*big.Int

// NewRow returns a Row of length n initialized to zero.
func NewRow(n int) Row {
	r := make(Row, n)
	for i := range r {
		r[i] = new(big.Int)
	}

	return r
}

// Clone returns a deep copy of r.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = new(big.Int).Set(v)
	}

	return out
}

// IsZero reports whether every entry of r is zero.
func (r Row) IsZero() bool {
	for _, v := range r {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// Negate returns -r as a new Row.
func (r Row) Negate() Row {
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = new(big.Int).Neg(v)
	}

	return out
}

// Scale returns k*r as a new Row.
func (r Row) Scale(k *big.Int) Row {
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = new(big.Int).Mul(v, k)
	}

	return out
}

// Add returns a+b as a new Row. Panics if lengths differ (programmer
// error: callers always operate on same-width rows within one block).
func Add(a, b Row) Row {
	if len(a) != len(b) {
		panic("ivec: Add length mismatch")
	}
	out := make(Row, len(a))
	for i := range a {
		out[i] = new(big.Int).Add(a[i], b[i])
	}

	return out
}

// Dot returns the dot product of a and b over their common prefix length.
func Dot(a, b Row) *big.Int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		tmp.Mul(a[i], b[i])
		sum.Add(sum, tmp)
	}

	return sum
}

// Equal reports whether a and b are element-wise equal (padding the
// shorter with zeros).
func Equal(a, b Row) bool {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var av, bv *big.Int
		if i < len(a) {
			av = a[i]
		} else {
			av = big.NewInt(0)
		}
		if i < len(b) {
			bv = b[i]
		} else {
			bv = big.NewInt(0)
		}
		if av.Cmp(bv) != 0 {
			return false
		}
	}

	return true
}

// Compare performs a lexicographic comparison of a and b, returning -1, 0
// or 1. Used by basicrel's canonical inequality sort and relation's
// basic-relation total order (spec.md §4.4 "Normalize", §4.5 "Normalize").
func Compare(a, b Row) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := a[i].Cmp(b[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// GCDNormalize divides every entry of r by the gcd of its non-zero
// entries, in place, leaving r unchanged if it is all-zero or already
// primitive. Returns the gcd used.
func GCDNormalize(r Row) *big.Int {
	g := new(big.Int)
	for _, v := range r {
		if v.Sign() == 0 {
			continue
		}
		if g.Sign() == 0 {
			g.Abs(v)
		} else {
			g.GCD(nil, nil, g, new(big.Int).Abs(v))
		}
	}
	if g.Sign() == 0 || g.Cmp(big.NewInt(1)) == 0 {
		return g
	}
	for _, v := range r {
		v.Div(v, g)
	}

	return g
}
