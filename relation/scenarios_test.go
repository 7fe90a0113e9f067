package relation_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/relation"
	"github.com/katalvlaran/relspace/space"
)

// ScenarioSuite covers the six concrete scenarios of spec.md §8 at the
// relation level.
type ScenarioSuite struct {
	suite.Suite
	ctx *rctx.Context
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

func (s *ScenarioSuite) SetupTest() {
	s.ctx = rctx.New()
}

// addIneq appends a fresh inequality row coeffs·x + constant >= 0.
func addIneq(t *testing.T, b *basicrel.BasicRelation, coeffs map[int]int64, constant int64) *basicrel.BasicRelation {
	t.Helper()
	out, err := basicrel.ExtendConstraints(b, 0, 1)
	require.NoError(t, err)
	idx, err := out.AllocInequality()
	require.NoError(t, err)
	row := out.Ineq(idx)
	for col, v := range coeffs {
		row[col].SetInt64(v)
	}
	row[0].SetInt64(constant)

	return out
}

// addEq appends a fresh equality row coeffs·x + constant = 0.
func addEq(t *testing.T, b *basicrel.BasicRelation, coeffs map[int]int64, constant int64) *basicrel.BasicRelation {
	t.Helper()
	out, err := basicrel.ExtendConstraints(b, 1, 0)
	require.NoError(t, err)
	idx, err := out.AllocEquality()
	require.NoError(t, err)
	row := out.Eq(idx)
	for col, v := range coeffs {
		row[col].SetInt64(v)
	}
	row[0].SetInt64(constant)

	return out
}

// TestIntersectionEmpties: B1 = {0 <= x <= 5}, B2 = {x >= 6}; their
// intersection is EMPTY.
func (s *ScenarioSuite) TestIntersectionEmpties() {
	t := s.T()
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)
	x := sp.Offset(space.Out) + 0

	b1, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b1 = addIneq(t, b1, map[int]int64{x: 1}, 0)  // x >= 0
	b1 = addIneq(t, b1, map[int]int64{x: -1}, 5) // -x + 5 >= 0, i.e. x <= 5

	b2, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b2 = addIneq(t, b2, map[int]int64{x: 1}, -6) // x - 6 >= 0, i.e. x >= 6

	inter, err := basicrel.Intersect(b1, b2)
	require.NoError(t, err)
	require.True(t, inter.IsEmptyFlagged())

	empty, err := basicrel.IsEmpty(s.ctx, inter)
	require.NoError(t, err)
	require.True(t, empty)
}

// TestApplyRangeSquare: R1 = {x -> y | y = x+1}, R2 = {y -> z | z = 2y};
// apply_range(R1, R2) = {x -> z | z = 2x+2}, and is single-valued.
func (s *ScenarioSuite) TestApplyRangeSquare() {
	t := s.T()
	sp, err := space.Alloc(0, 1, 1)
	require.NoError(t, err)
	in, out := sp.Offset(space.In), sp.Offset(space.Out)

	b1, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b1 = addEq(t, b1, map[int]int64{in: 1, out: -1}, 1) // x - y + 1 = 0 -> y = x+1

	b2, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b2 = addEq(t, b2, map[int]int64{in: 2, out: -1}, 0) // 2y - z = 0 -> z = 2y

	r1, err := relation.FromBasic(b1)
	require.NoError(t, err)
	r2, err := relation.FromBasic(b2)
	require.NoError(t, err)

	composed, err := relation.ApplyRange(r1, r2)
	require.NoError(t, err)
	require.Equal(t, 1, composed.Size())

	expectSp, err := space.Alloc(0, 1, 1)
	require.NoError(t, err)
	expect, err := basicrel.Universe(expectSp)
	require.NoError(t, err)
	cin, cout := expectSp.Offset(space.In), expectSp.Offset(space.Out)
	expect = addEq(t, expect, map[int]int64{cin: 2, cout: -1}, 2) // 2x - z + 2 = 0 -> z = 2x+2
	expectRel, err := relation.FromBasic(expect)
	require.NoError(t, err)

	eq, err := relation.IsEqual(composed, expectRel)
	require.NoError(t, err)
	require.True(t, eq)

	sv, err := relation.IsSingleValued(composed)
	require.NoError(t, err)
	require.True(t, sv)
}

// TestDeltasOfTranslation: R = {(i,j) -> (i+1, j-1)}; deltas(R) is the
// singleton {(1, -1)} and is_translation holds.
func (s *ScenarioSuite) TestDeltasOfTranslation() {
	t := s.T()
	sp, err := space.Alloc(0, 2, 2)
	require.NoError(t, err)
	in, out := sp.Offset(space.In), sp.Offset(space.Out)

	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b = addEq(t, b, map[int]int64{in + 0: 1, out + 0: -1}, 1)  // i - i' + 1 = 0 -> i' = i+1
	b = addEq(t, b, map[int]int64{in + 1: 1, out + 1: -1}, -1) // j - j' - 1 = 0 -> j' = j-1

	r, err := relation.FromBasic(b)
	require.NoError(t, err)

	d, err := relation.Deltas(r)
	require.NoError(t, err)
	require.Equal(t, 1, d.Size())
	require.True(t, basicrel.IsBox(d.Basic(0)))

	translation, err := relation.IsTranslation(r)
	require.NoError(t, err)
	require.True(t, translation)
}

// TestLexLtRoundTrip: over a 2-d set space, lex_lt relates (1,2) to (1,3)
// but not to (1,2).
func (s *ScenarioSuite) TestLexLtRoundTrip() {
	t := s.T()
	sp, err := space.Alloc(0, 2, 2)
	require.NoError(t, err)

	lt, err := relation.LexLt(sp)
	require.NoError(t, err)

	contains := func(point [4]int64) bool {
		for _, b := range pRelationBasics(lt) {
			if basicPointSatisfies(b, point[:]) {
				return true
			}
		}

		return false
	}
	require.True(t, contains([4]int64{1, 2, 1, 3}))
	require.False(t, contains([4]int64{1, 2, 1, 2}))
}

// TestProjectOutInteger: B = {(i,j) | 0 <= i < 10, j = 2i}; project_out(j)
// yields {i | 0 <= i < 10}, project_out(i) yields a j-only box with one
// introduced div.
func (s *ScenarioSuite) TestProjectOutInteger() {
	t := s.T()
	sp, err := space.AllocSet(0, 2)
	require.NoError(t, err)
	i, j := sp.Offset(space.Out)+0, sp.Offset(space.Out)+1

	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b = addIneq(t, b, map[int]int64{i: 1}, 0)  // i >= 0
	b = addIneq(t, b, map[int]int64{i: -1}, 9) // -i + 9 >= 0, i.e. i <= 9
	b = addEq(t, b, map[int]int64{i: 2, j: -1}, 0)

	projJ, err := basicrel.ProjectOut(b.Dup(), space.Out, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, projJ.Space().NOut())
	require.Equal(t, 1, projJ.NDiv())

	projI, err := basicrel.ProjectOut(b.Dup(), space.Out, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, projI.Space().NOut())
	require.Equal(t, 1, projI.NDiv())
}

// TestNormalizeAndHash: two basic sets differing only in inequality order
// hash equal and fast_is_equal after normalize.
func (s *ScenarioSuite) TestNormalizeAndHash() {
	t := s.T()
	sp, err := space.AllocSet(0, 2)
	require.NoError(t, err)
	x, y := sp.Offset(space.Out)+0, sp.Offset(space.Out)+1

	b1, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b1 = addIneq(t, b1, map[int]int64{x: 1}, 0)
	b1 = addIneq(t, b1, map[int]int64{y: 1}, 0)

	b2, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b2 = addIneq(t, b2, map[int]int64{y: 1}, 0)
	b2 = addIneq(t, b2, map[int]int64{x: 1}, 0)

	r1, err := relation.FromBasic(b1)
	require.NoError(t, err)
	r2, err := relation.FromBasic(b2)
	require.NoError(t, err)

	h1, err := relation.Hash(r1)
	require.NoError(t, err)
	h2, err := relation.Hash(r2)
	require.NoError(t, err)
	require.Equal(t, h1, h2)

	eq, err := relation.FastIsEqual(r1, r2)
	require.NoError(t, err)
	require.True(t, eq)
}

func pRelationBasics(r *relation.Relation) []*basicrel.BasicRelation {
	out := make([]*basicrel.BasicRelation, 0, r.Size())
	r.ForeachBasic(func(_ int, b *basicrel.BasicRelation) bool {
		out = append(out, b)

		return true
	})

	return out
}

// basicPointSatisfies checks point (ordered In then Out) against every
// eq/ineq row of b.
func basicPointSatisfies(b *basicrel.BasicRelation, point []int64) bool {
	if len(point) != b.Space().Total() {
		return false
	}
	for k := 0; k < b.NEq(); k++ {
		if rowDot(b.Eq(k), point) != 0 {
			return false
		}
	}
	for k := 0; k < b.NIneq(); k++ {
		if rowDot(b.Ineq(k), point) < 0 {
			return false
		}
	}

	return true
}

// rowDot evaluates a constraint row (constant at index 0, then one
// coefficient per dimension) at point.
func rowDot(row ivec.Row, point []int64) int64 {
	sum := new(big.Int).Set(row[0])
	for k, v := range point {
		term := new(big.Int).Mul(row[k+1], big.NewInt(v))
		sum.Add(sum, term)
	}

	return sum.Int64()
}
