// SPDX-License-Identifier: MIT
//
// File: complement.go
// Role: Complement, the single-basic-relation complement decomposition
// that grounds relation's is_subset collaborator (spec.md §4.6
// "is_subset(B1, B2) reduces to is_subset(R(B1), R(B2))... delegated to a
// subset-engine collaborator"). A conjunction of constraints negates to a
// disjunction of their individual negations (De Morgan), so Complement
// returns one basic relation per constraint of b, each carrying only that
// constraint's negation; their union is exactly the points b excludes.
package basicrel

import "github.com/katalvlaran/relspace/ivec"

// Complement returns a slice of basic relations whose union is the
// complement of b within b's own space: one piece per equality (each
// equality "c = 0" splits into "c >= 1" and "c <= -1", since an integer
// c != 0 is one or the other) and one piece per inequality ("c >= 0"
// negates to "c <= -1", the same strict-reverse trick InequalityNegate
// applies in place).
func Complement(b *BasicRelation) ([]*BasicRelation, error) {
	if b == nil {
		return nil, ErrNilRelation
	}
	out := make([]*BasicRelation, 0, 2*b.nEq+b.nIneq)
	for i := 0; i < b.nEq; i++ {
		row := b.Eq(i)

		geOne := row.Clone()
		geOne[0].Sub(geOne[0], bigOne)
		p1, err := complementPiece(b, geOne)
		if err != nil {
			return nil, err
		}
		out = append(out, p1)

		leNegOne := row.Negate()
		leNegOne[0].Sub(leNegOne[0], bigOne)
		p2, err := complementPiece(b, leNegOne)
		if err != nil {
			return nil, err
		}
		out = append(out, p2)
	}
	for i := 0; i < b.nIneq; i++ {
		row := b.Ineq(i).Negate()
		row[0].Sub(row[0], bigOne)
		p, err := complementPiece(b, row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// complementPiece builds a basic relation over b's space and divs holding
// the single inequality row.
func complementPiece(b *BasicRelation, row ivec.Row) (*BasicRelation, error) {
	p, err := Alloc(b.sp, b.nDiv, 0, 1)
	if err != nil {
		return nil, err
	}
	p.nDiv = b.nDiv
	for i := 0; i < b.nDiv; i++ {
		p.divs[i] = b.Div(i).Clone()
	}
	idx, err := p.AllocInequality()
	if err != nil {
		return nil, err
	}
	copy(p.Ineq(idx), row)

	return p, nil
}
