package pset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/pset"
	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/space"
)

func TestWrapRejectsNonZeroInput(t *testing.T) {
	sp, err := space.Alloc(0, 1, 1)
	require.NoError(t, err)
	_, err = pset.UniverseSet(sp)
	require.ErrorIs(t, err, pset.ErrNotASet)
}

func TestBasicSetIntersectNonEmpty(t *testing.T) {
	ctx := rctx.New()
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)

	b1, err := pset.UniverseSet(sp)
	require.NoError(t, err)
	b1, err = pset.LowerBound(b1, 0, 0) // x >= 0
	require.NoError(t, err)

	b2, err := pset.UniverseSet(sp)
	require.NoError(t, err)
	b2, err = pset.LowerBound(b2, 0, 6) // x >= 6
	require.NoError(t, err)

	inter, err := pset.Intersect(b1, b2)
	require.NoError(t, err)

	empty, err := pset.IsEmpty(ctx, inter)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestSetWrapAndIsEmpty(t *testing.T) {
	ctx := rctx.New()
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)

	b, err := pset.UniverseSet(sp)
	require.NoError(t, err)
	s, err := pset.FromBasicSet(b)
	require.NoError(t, err)

	empty, err := pset.IsEmpty(ctx, s)
	require.NoError(t, err)
	require.False(t, empty)

	self, err := pset.IsEqual(s, s)
	require.NoError(t, err)
	require.True(t, self)
}
