package basicrel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/space"
)

func TestUniverseIsNotEmpty(t *testing.T) {
	ctx := rctx.New()
	sp, err := space.AllocSet(0, 2)
	require.NoError(t, err)

	u, err := basicrel.Universe(sp)
	require.NoError(t, err)
	require.False(t, u.IsEmptyFlagged())

	empty, err := basicrel.IsEmpty(ctx, u)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestEmptyIsFlaggedAndDetected(t *testing.T) {
	ctx := rctx.New()
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)

	e, err := basicrel.Empty(sp)
	require.NoError(t, err)
	require.True(t, e.IsEmptyFlagged())
	require.True(t, basicrel.FastIsEmpty(e))

	empty, err := basicrel.IsEmpty(ctx, e)
	require.NoError(t, err)
	require.True(t, empty)
}

func TestSetToEmptyCollapsesConstraints(t *testing.T) {
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)
	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b, err = basicrel.LowerBound(b, space.Out, 0, 3)
	require.NoError(t, err)

	out, err := basicrel.SetToEmpty(b)
	require.NoError(t, err)
	require.True(t, out.IsEmptyFlagged())
	require.Equal(t, 0, out.NIneq())
	require.Equal(t, 1, out.NEq())
}

// TestIdentityRequiresMatchingArity: Identity is only defined when NIn == NOut.
func TestIdentityRequiresMatchingArity(t *testing.T) {
	sp, err := space.Alloc(0, 2, 1)
	require.NoError(t, err)
	_, err = basicrel.Identity(sp)
	require.ErrorIs(t, err, basicrel.ErrSpaceMismatch)

	sp2, err := space.Alloc(0, 2, 2)
	require.NoError(t, err)
	id, err := basicrel.Identity(sp2)
	require.NoError(t, err)
	require.Equal(t, 2, id.NEq())
}

func TestPositiveOrthantBoundsEverySetCoordinate(t *testing.T) {
	sp, err := space.AllocSet(0, 3)
	require.NoError(t, err)
	p, err := basicrel.PositiveOrthant(sp)
	require.NoError(t, err)
	require.Equal(t, 3, p.NIneq())
	require.True(t, basicrel.IsBox(p))
}

// TestFixAndDimIsFixed: fixing a coordinate is visible to the structural
// dim_is_fixed probe without invoking any solver.
func TestFixAndDimIsFixed(t *testing.T) {
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)
	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b, err = basicrel.Fix(b, space.Out, 0, 7)
	require.NoError(t, err)

	fixed, v := basicrel.DimIsFixed(b, space.Out, 0)
	require.True(t, fixed)
	require.Equal(t, int64(7), v.Int64())
}

func TestLowerBoundGivesFixedLowerBound(t *testing.T) {
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)
	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b, err = basicrel.LowerBound(b, space.Out, 0, 4)
	require.NoError(t, err)

	has, v := basicrel.DimHasFixedLowerBound(b, space.Out, 0)
	require.True(t, has)
	require.Equal(t, int64(4), v.Int64())

	bounded, err := basicrel.DimIsBounded(b, space.Out, 0)
	require.NoError(t, err)
	require.False(t, bounded) // no upper bound supplied
}

// TestLessAtFamilyShapes checks lex_lt/lex_le at a given position carry the
// expected equality prefix and strictness.
func TestLessAtFamilyShapes(t *testing.T) {
	sp, err := space.Alloc(0, 2, 2)
	require.NoError(t, err)

	lt, err := basicrel.LessAt(sp, 1)
	require.NoError(t, err)
	require.Equal(t, 1, lt.NEq())
	require.Equal(t, 1, lt.NIneq())

	le, err := basicrel.LessOrEqualAt(sp, 1)
	require.NoError(t, err)
	require.Equal(t, 1, le.NEq())
	require.Equal(t, 1, le.NIneq())
}

// TestDomainAndRangeOfIdentity: domain and range of the identity relation
// over an unconstrained space is the universe set of matching arity.
func TestDomainAndRangeOfIdentity(t *testing.T) {
	sp, err := space.Alloc(0, 2, 2)
	require.NoError(t, err)
	id, err := basicrel.Identity(sp)
	require.NoError(t, err)

	dom, err := basicrel.Domain(id)
	require.NoError(t, err)
	require.Equal(t, 2, dom.Space().NOut())

	rng, err := basicrel.Range(id)
	require.NoError(t, err)
	require.Equal(t, 2, rng.Space().NOut())
}

// TestProjectOutIntroducesUnknownDiv: projecting out a dimension tied to a
// live one by a non-unit equality leaves an unresolved (unknown) div behind.
func TestProjectOutIntroducesUnknownDiv(t *testing.T) {
	sp, err := space.AllocSet(0, 2)
	require.NoError(t, err)
	i, j := sp.Offset(space.Out)+0, sp.Offset(space.Out)+1

	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b, err = basicrel.ExtendConstraints(b, 1, 0)
	require.NoError(t, err)
	idx, err := b.AllocEquality()
	require.NoError(t, err)
	row := b.Eq(idx)
	row[i].SetInt64(2)
	row[j].SetInt64(-1) // 2i - j = 0 -> j = 2i

	proj, err := basicrel.ProjectOut(b, space.Out, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, proj.Space().NOut())
	require.Equal(t, 1, proj.NDiv())
	require.False(t, proj.DivKnown(0))
}

// TestNormalizeDropsDominatedInequality: x >= 0 and x >= -5 normalize down
// to the single tightest bound.
func TestNormalizeDropsDominatedInequality(t *testing.T) {
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)
	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b, err = basicrel.LowerBound(b, space.Out, 0, 0)
	require.NoError(t, err)
	b, err = basicrel.LowerBound(b, space.Out, 0, -5)
	require.NoError(t, err)
	require.Equal(t, 2, b.NIneq())

	n, err := basicrel.Normalize(b)
	require.NoError(t, err)
	require.Equal(t, 1, n.NIneq())
}

// TestHashStableAcrossRowOrder: normalized hash agrees regardless of the
// order inequalities were appended in.
func TestHashStableAcrossRowOrder(t *testing.T) {
	sp, err := space.AllocSet(0, 2)
	require.NoError(t, err)

	b1, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b1, err = basicrel.LowerBound(b1, space.Out, 0, 0)
	require.NoError(t, err)
	b1, err = basicrel.LowerBound(b1, space.Out, 1, 0)
	require.NoError(t, err)

	b2, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b2, err = basicrel.LowerBound(b2, space.Out, 1, 0)
	require.NoError(t, err)
	b2, err = basicrel.LowerBound(b2, space.Out, 0, 0)
	require.NoError(t, err)

	h1, err := basicrel.Hash(b1)
	require.NoError(t, err)
	h2, err := basicrel.Hash(b2)
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

// TestDupIsIndependent: mutating a Dup'd relation does not affect the
// original's constraint count.
func TestDupIsIndependent(t *testing.T) {
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)
	b, err := basicrel.Universe(sp)
	require.NoError(t, err)

	dup := b.Dup()
	dup, err = basicrel.LowerBound(dup, space.Out, 0, 1)
	require.NoError(t, err)

	require.Equal(t, 0, b.NIneq())
	require.Equal(t, 1, dup.NIneq())
}

// TestIsEmptyCatchesIntegerInfeasibleButRationallyFeasible: "2x = 1" has
// a rational solution (x=1/2) but no integer one; IsEmpty must fall
// through past tab.Feasible's "ok" answer to the exact sample search.
func TestIsEmptyCatchesIntegerInfeasibleButRationallyFeasible(t *testing.T) {
	ctx := rctx.New()
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)
	x := sp.Offset(space.Out)

	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b, err = basicrel.ExtendConstraints(b, 1, 0)
	require.NoError(t, err)
	idx, err := b.AllocEquality()
	require.NoError(t, err)
	row := b.Eq(idx)
	row[x].SetInt64(2)
	row[0].SetInt64(-1)

	empty, err := basicrel.IsEmpty(ctx, b)
	require.NoError(t, err)
	require.True(t, empty)
	require.True(t, b.IsEmptyFlagged())
}

// TestIsEmptyCachesSampleOnFeasibleRelation: a feasible relation's IsEmpty
// call caches a witness sample rather than leaving it uncomputed.
func TestIsEmptyCachesSampleOnFeasibleRelation(t *testing.T) {
	ctx := rctx.New()
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)

	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b, err = basicrel.Fix(b, space.Out, 0, 7)
	require.NoError(t, err)

	require.Nil(t, b.Sample())
	empty, err := basicrel.IsEmpty(ctx, b)
	require.NoError(t, err)
	require.False(t, empty)
	require.NotNil(t, b.Sample())
	require.Equal(t, int64(7), b.Sample()[1].Int64())
}
