package pip_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/pip"
	"github.com/katalvlaran/relspace/rctx"
	"github.com/katalvlaran/relspace/space"
)

// TestPerBasicBoxedOutput pins a single output coordinate bounded in
// [0, 9] to its max/min over the universe domain.
func TestPerBasicBoxedOutput(t *testing.T) {
	ctx := rctx.New()
	sp, err := space.Alloc(0, 0, 1)
	require.NoError(t, err)
	y := sp.Offset(space.Out)

	b, err := basicrel.Universe(sp)
	require.NoError(t, err)
	b, err = basicrel.LowerBound(b, space.Out, 0, 0) // y >= 0
	require.NoError(t, err)
	b, err = basicrel.ExtendConstraints(b, 0, 1)
	require.NoError(t, err)
	idx, err := b.AllocInequality()
	require.NoError(t, err)
	row := b.Ineq(idx)
	row[y].SetInt64(-1)
	row[0].SetInt64(9) // -y + 9 >= 0, i.e. y <= 9

	dsp, err := space.AllocSet(0, 0)
	require.NoError(t, err)
	d, err := basicrel.Universe(dsp)
	require.NoError(t, err)

	lexMax, emptyMax, err := pip.PerBasic(ctx, b, d, true)
	require.NoError(t, err)
	require.False(t, lexMax.IsEmptyFlagged())
	require.True(t, emptyMax.IsEmptyFlagged())
	fixed, v := basicrel.DimIsFixed(lexMax, space.Out, 0)
	require.True(t, fixed)
	require.Equal(t, int64(9), v.Int64())

	lexMin, _, err := pip.PerBasic(ctx, b, d, false)
	require.NoError(t, err)
	fixedMin, vMin := basicrel.DimIsFixed(lexMin, space.Out, 0)
	require.True(t, fixedMin)
	require.Equal(t, int64(0), vMin.Int64())
}
