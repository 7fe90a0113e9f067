// SPDX-License-Identifier: MIT
//
// File: algebra.go
// Role: the relation-level algebra of spec.md §4.5 that distributes a
// basicrel operation across one or both operands' basic-relation lists.
package relation

import (
	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/space"
)

// perBasicUnary maps fn over every basic relation of r, discarding
// fast-empty results, and returns the resulting Relation over sp2.
func perBasicUnary(r *Relation, sp2 *space.Space, fn func(*basicrel.BasicRelation) (*basicrel.BasicRelation, error)) (*Relation, error) {
	if r == nil {
		return nil, ErrNilRelation
	}
	out, err := Alloc(sp2, len(r.p))
	if err != nil {
		return nil, err
	}
	for _, b := range r.p {
		nb, err := fn(b.Dup())
		if err != nil {
			return nil, err
		}
		if nb.IsEmptyFlagged() {
			continue
		}
		out.p = append(out.p, nb)
	}
	out.flags = r.flags &^ FlagNormalized

	return out, nil
}

// perBasicPair maps fn over every (b1 in r1) x (b2 in r2) pair, discarding
// fast-empty results (spec.md §4.5 "Apply-range/Apply-domain/Product/
// Sum/Neg/Floor-div... distribute across all (i,j) pairs").
func perBasicPair(r1, r2 *Relation, sp2 *space.Space, fn func(b1, b2 *basicrel.BasicRelation) (*basicrel.BasicRelation, error)) (*Relation, error) {
	if r1 == nil || r2 == nil {
		return nil, ErrNilRelation
	}
	out, err := Alloc(sp2, len(r1.p)*len(r2.p))
	if err != nil {
		return nil, err
	}
	for _, b1 := range r1.p {
		for _, b2 := range r2.p {
			nb, err := fn(b1.Dup(), b2.Dup())
			if err != nil {
				return nil, err
			}
			if nb.IsEmptyFlagged() {
				continue
			}
			out.p = append(out.p, nb)
		}
	}

	return out, nil
}

// joinSpace returns the Space of ApplyRange(r1, r2): r1's input arity
// with r2's output arity.
func joinSpace(r1, r2 *Relation) (*space.Space, error) { return space.Join(r1.sp, r2.sp) }

// ApplyRange composes r1: A -> M with r2: M -> C (spec.md §4.5
// "Apply-range").
func ApplyRange(r1, r2 *Relation) (*Relation, error) {
	sp2, err := joinSpace(r1, r2)
	if err != nil {
		return nil, err
	}

	return perBasicPair(r1, r2, sp2, basicrel.ApplyRange)
}

// ApplyDomain composes r1: A -> M with r2: A -> C, both sharing domain A,
// into a relation C -> M (spec.md §4.5 "Apply-domain").
func ApplyDomain(r1, r2 *Relation) (*Relation, error) {
	rsp, err := r2.sp.Reverse()
	if err != nil {
		return nil, err
	}
	sp2, err := space.Join(rsp, r1.sp)
	if err != nil {
		return nil, err
	}

	return perBasicPair(r1, r2, sp2, basicrel.ApplyDomain)
}

// Product builds the Cartesian product of r1 and r2 (spec.md §4.5
// "Product").
func Product(r1, r2 *Relation) (*Relation, error) {
	sp2, err := space.Product(r1.sp, r2.sp)
	if err != nil {
		return nil, err
	}

	return perBasicPair(r1, r2, sp2, basicrel.Product)
}

// Sum builds the coordinatewise sum of r1 and r2 over a matching space
// (spec.md §4.5 "Sum").
func Sum(r1, r2 *Relation) (*Relation, error) {
	if err := checkSpace(r1, r2); err != nil {
		return nil, err
	}

	return perBasicPair(r1, r2, r1.sp, basicrel.Sum)
}

// Neg flips the sign of every output coordinate of every basic relation
// in r (spec.md §4.5 "Neg").
func Neg(r *Relation) (*Relation, error) { return perBasicUnary(r, r.Space(), basicrel.Neg) }

// FloorDiv floor-divides every output coordinate of every basic relation
// in r by d (spec.md §4.5 "Floor-div").
func FloorDiv(r *Relation, d int64) (*Relation, error) {
	return perBasicUnary(r, r.Space(), func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		return basicrel.FloorDiv(b, d)
	})
}

// Reverse swaps input and output tuples of every basic relation in r
// (spec.md §4.5 "Reverse" via basicrel's algebra).
func Reverse(r *Relation) (*Relation, error) {
	sp2, err := r.sp.Reverse()
	if err != nil {
		return nil, err
	}

	return perBasicUnary(r, sp2, basicrel.Reverse)
}

// Domain projects every basic relation onto its input tuple, returning
// the union of domains as a basic-set Relation (spec.md §4.5 "Domain").
func Domain(r *Relation) (*Relation, error) {
	sp2, err := r.sp.Domain()
	if err != nil {
		return nil, err
	}

	return perBasicUnary(r, sp2, basicrel.Domain)
}

// Range projects every basic relation onto its output tuple (spec.md §4.5
// "Range").
func Range(r *Relation) (*Relation, error) {
	sp2, err := r.sp.Range()
	if err != nil {
		return nil, err
	}

	return perBasicUnary(r, sp2, basicrel.Range)
}

// Deltas builds range-minus-domain for every basic relation with equal
// input/output arity (spec.md §4.5 "Deltas").
func Deltas(r *Relation) (*Relation, error) {
	sp2, err := space.AllocSet(r.sp.NParam(), r.sp.NIn())
	if err != nil {
		return nil, err
	}

	return perBasicUnary(r, sp2, basicrel.Deltas)
}

// Fix appends equality x_pos = v to every basic relation in r (spec.md
// §4.5 "Fix").
func Fix(r *Relation, c space.Component, pos int, v int64) (*Relation, error) {
	return perBasicUnary(r, r.Space(), func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		return basicrel.Fix(b, c, pos, v)
	})
}

// FixSi is Fix under the spec's "_si" (single-int) naming; identical
// behavior to Fix over this engine's big.Int-backed rows.
func FixSi(r *Relation, c space.Component, pos int, v int64) (*Relation, error) {
	return Fix(r, c, pos, v)
}

// LowerBound appends inequality x_pos - v >= 0 to every basic relation in
// r (spec.md §4.5 "Lower bound").
func LowerBound(r *Relation, c space.Component, pos int, v int64) (*Relation, error) {
	return perBasicUnary(r, r.Space(), func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		return basicrel.LowerBound(b, c, pos, v)
	})
}

// Identity returns the singleton relation mapping every point to itself
// (spec.md §4.5 "Identity" via basicrel.Identity).
func Identity(sp *space.Space) (*Relation, error) {
	b, err := basicrel.Identity(sp)
	if err != nil {
		return nil, err
	}

	return FromBasic(b)
}

// IntersectWithDomain distributes basicrel.IntersectWithDomain across
// every basic relation of r (spec.md §4.5 "Intersect-domain").
func IntersectWithDomain(r *Relation, domain *basicrel.BasicRelation) (*Relation, error) {
	return perBasicUnary(r, r.Space(), func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		return basicrel.IntersectWithDomain(b, domain.Dup())
	})
}

// IntersectWithRange distributes basicrel.IntersectWithRange across every
// basic relation of r (spec.md §4.5 "Intersect-range").
func IntersectWithRange(r *Relation, rng *basicrel.BasicRelation) (*Relation, error) {
	return perBasicUnary(r, r.Space(), func(b *basicrel.BasicRelation) (*basicrel.BasicRelation, error) {
		return basicrel.IntersectWithRange(b, rng.Dup())
	})
}
