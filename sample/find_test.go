package sample_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/sample"
	"github.com/katalvlaran/relspace/space"
)

func TestFindBoxedSet(t *testing.T) {
	ctx := rctx.New()
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)

	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b, err = basicrel.LowerBound(b, space.Out, 0, 3) // x >= 3
	require.NoError(t, err)
	b, err = basicrel.Fix(b, space.Out, 0, 5) // x == 5, tightened on top
	require.NoError(t, err)

	point, ok, err := sample.Find(ctx, b)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(5), point[1].Int64())
}

func TestFindEmptyReportsNoPoint(t *testing.T) {
	ctx := rctx.New()
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)

	b, err := basicrel.Empty(sp)
	require.NoError(t, err)

	_, ok, err := sample.Find(ctx, b)
	require.NoError(t, err)
	require.False(t, ok)
}
