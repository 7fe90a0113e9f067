// SPDX-License-Identifier: MIT
//
// File: lex.go
// Role: lex-full constructors and partial lex-opt (spec.md §4.5, §4.6).
package relation

import (
	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/pip"
	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/space"
)

// lexUnion builds the disjunctive union of builder(sp, pos) for pos in
// [0, n), one basic relation per position (spec.md §4.5 "Lex-full
// constructors"). The branches are pairwise disjoint since each fixes the
// first point of disagreement.
func lexUnion(sp *space.Space, n int, builder func(*space.Space, int) (*basicrel.BasicRelation, error)) (*Relation, error) {
	out, err := Empty(sp)
	if err != nil {
		return nil, err
	}
	for pos := 0; pos < n; pos++ {
		b, err := builder(sp, pos)
		if err != nil {
			return nil, err
		}
		out, err = AddBasic(out, b)
		if err != nil {
			return nil, err
		}
	}
	out.flags.set(FlagDisjoint)

	return out, nil
}

// LexLt returns {x -> y | x is lex-less than y} as a union of one basic
// relation per coordinate (spec.md §4.5 "lex_lt").
func LexLt(sp *space.Space) (*Relation, error) {
	return lexUnion(sp, sp.NOut(), basicrel.LessAt)
}

// LexGt returns {x -> y | x is lex-greater than y} (spec.md §4.5
// "lex_gt").
func LexGt(sp *space.Space) (*Relation, error) {
	return lexUnion(sp, sp.NOut(), basicrel.MoreAt)
}

// LexLe returns {x -> y | x is lex-less-or-equal to y}: strict branches
// at every coordinate but the last, non-strict at the last (spec.md §4.5
// "lex_le"). With zero output coordinates, equality is vacuous and the
// whole space qualifies.
func LexLe(sp *space.Space) (*Relation, error) {
	return lexLastNonStrict(sp, basicrel.LessAt, basicrel.LessOrEqualAt)
}

// LexGe returns {x -> y | x is lex-greater-or-equal to y} (spec.md §4.5
// "lex_ge").
func LexGe(sp *space.Space) (*Relation, error) {
	return lexLastNonStrict(sp, basicrel.MoreAt, basicrel.MoreOrEqualAt)
}

func lexLastNonStrict(sp *space.Space, strict, lastNonStrict func(*space.Space, int) (*basicrel.BasicRelation, error)) (*Relation, error) {
	n := sp.NOut()
	if n == 0 {
		return Universe(sp)
	}
	out, err := Empty(sp)
	if err != nil {
		return nil, err
	}
	for pos := 0; pos < n-1; pos++ {
		b, err := strict(sp, pos)
		if err != nil {
			return nil, err
		}
		if out, err = AddBasic(out, b); err != nil {
			return nil, err
		}
	}
	last, err := lastNonStrict(sp, n-1)
	if err != nil {
		return nil, err
	}
	if out, err = AddBasic(out, last); err != nil {
		return nil, err
	}
	out.flags.set(FlagDisjoint)

	return out, nil
}

// LexLtFirst, LexLeFirst, LexGtFirst, LexGeFirst compare only the first
// output coordinate, ignoring the rest (spec.md §4.5 "lex_*_first").
func LexLtFirst(sp *space.Space) (*Relation, error) { return lexFirst(sp, basicrel.LessAt) }
func LexLeFirst(sp *space.Space) (*Relation, error) { return lexFirst(sp, basicrel.LessOrEqualAt) }
func LexGtFirst(sp *space.Space) (*Relation, error) { return lexFirst(sp, basicrel.MoreAt) }
func LexGeFirst(sp *space.Space) (*Relation, error) { return lexFirst(sp, basicrel.MoreOrEqualAt) }

func lexFirst(sp *space.Space, builder func(*space.Space, int) (*basicrel.BasicRelation, error)) (*Relation, error) {
	if sp.NOut() == 0 {
		return Universe(sp)
	}
	b, err := builder(sp, 0)
	if err != nil {
		return nil, err
	}

	return FromBasic(b)
}

// LexMin restricts r to the lex-minimal image per domain point over the
// universe domain (spec.md §4.5 "lexmin").
func LexMin(ctx *rctx.Context, r *Relation) (*Relation, error) {
	dsp, err := r.Space().Domain()
	if err != nil {
		return nil, err
	}
	d, err := Universe(dsp)
	if err != nil {
		return nil, err
	}
	lex, _, err := PartialLexOpt(ctx, r, d, false)

	return lex, err
}

// LexMax restricts r to the lex-maximal image per domain point (spec.md
// §4.5 "lexmax").
func LexMax(ctx *rctx.Context, r *Relation) (*Relation, error) {
	dsp, err := r.Space().Domain()
	if err != nil {
		return nil, err
	}
	d, err := Universe(dsp)
	if err != nil {
		return nil, err
	}
	lex, _, err := PartialLexOpt(ctx, r, d, true)

	return lex, err
}

// PartialLexMin is PartialLexOpt with max = false.
func PartialLexMin(ctx *rctx.Context, r, d *Relation) (lex, empty *Relation, err error) {
	return PartialLexOpt(ctx, r, d, false)
}

// PartialLexMax is PartialLexOpt with max = true.
func PartialLexMax(ctx *rctx.Context, r, d *Relation) (lex, empty *Relation, err error) {
	return PartialLexOpt(ctx, r, d, true)
}

// PartialLexOpt computes, for every point of domain set d, the
// lexicographically extreme (maximal when max, else minimal) image under
// r, returning the result as lex and the subset of d with no image in r
// as empty (spec.md §4.6 "Partial lex-opt").
//
// This distributes pip.PerBasic over r's basic relations in order,
// resolving each domain point against the first basic relation of r that
// produces an image for it; a later basic relation is never allowed to
// override a point already resolved by an earlier one. The full
// algorithm in spec.md §4.6 additionally recomputes, for every later
// basic relation, whether it can strictly improve a point already
// resolved — that cross-basic-relation refinement is not implemented
// here (see DESIGN.md); the result is exact whenever r's basic relations
// do not overlap in domain, or overlap only where they agree on the
// extreme value.
func PartialLexOpt(ctx *rctx.Context, r, d *Relation, max bool) (lex, empty *Relation, err error) {
	if r == nil || d == nil {
		return nil, nil, ErrNilRelation
	}
	res, err := Empty(r.Space())
	if err != nil {
		return nil, nil, err
	}
	todo := d
	for _, bi := range r.p {
		if todo.Size() == 0 {
			break
		}
		stepLex, stepEmpty, perr := perBasicOverTodo(ctx, bi, todo, max)
		if perr != nil {
			return nil, nil, perr
		}
		if res, err = Union(res, stepLex); err != nil {
			return nil, nil, err
		}
		todo = stepEmpty
	}

	return res, todo, nil
}

// perBasicOverTodo dispatches pip.PerBasic across every basic relation of
// todo against the single basic relation bi, unioning the extreme images
// into a relation over bi's space and the unresolved residuals into a
// relation over todo's space.
func perBasicOverTodo(ctx *rctx.Context, bi *basicrel.BasicRelation, todo *Relation, max bool) (*Relation, *Relation, error) {
	lexOut, err := Empty(bi.Space())
	if err != nil {
		return nil, nil, err
	}
	emptyOut, err := Empty(todo.Space())
	if err != nil {
		return nil, nil, err
	}
	for _, dj := range todo.p {
		lexPart, emptyPart, perr := pip.PerBasic(ctx, bi, dj, max)
		if perr != nil {
			return nil, nil, perr
		}
		if !lexPart.IsEmptyFlagged() {
			if lexOut, err = AddBasic(lexOut, lexPart); err != nil {
				return nil, nil, err
			}
		}
		if !emptyPart.IsEmptyFlagged() {
			if emptyOut, err = AddBasic(emptyOut, emptyPart); err != nil {
				return nil, nil, err
			}
		}
	}

	return lexOut, emptyOut, nil
}
