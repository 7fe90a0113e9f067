package space_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/space"
)

func TestAllocRejectsNegativeDimension(t *testing.T) {
	_, err := space.Alloc(-1, 0, 0)
	require.ErrorIs(t, err, space.ErrNegativeDimension)
}

func TestOffsetColumnLayout(t *testing.T) {
	sp, err := space.Alloc(2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 1, sp.Offset(space.Param))
	require.Equal(t, 3, sp.Offset(space.In))
	require.Equal(t, 6, sp.Offset(space.Out))
	require.Equal(t, 10, sp.Offset(space.Div))
	require.Equal(t, 9, sp.Total())
}

func TestAllocSetHasZeroInputArity(t *testing.T) {
	sp, err := space.AllocSet(1, 5)
	require.NoError(t, err)
	require.Equal(t, 0, sp.NIn())
	require.Equal(t, 5, sp.NOut())
}

func TestEqualIgnoresNames(t *testing.T) {
	a, err := space.Alloc(0, 1, 1)
	require.NoError(t, err)
	b, err := space.Alloc(0, 1, 1)
	require.NoError(t, err)
	b, err = b.SetName(space.In, 0, "i")
	require.NoError(t, err)
	require.True(t, space.Equal(a, b))

	c, err := space.Alloc(0, 2, 1)
	require.NoError(t, err)
	require.False(t, space.Equal(a, c))
}

func TestReverseSwapsInAndOut(t *testing.T) {
	sp, err := space.Alloc(1, 2, 3)
	require.NoError(t, err)
	rev, err := sp.Reverse()
	require.NoError(t, err)
	require.Equal(t, 3, rev.NIn())
	require.Equal(t, 2, rev.NOut())
	require.Equal(t, 1, rev.NParam())
}

func TestProductRequiresMatchingParams(t *testing.T) {
	a, err := space.Alloc(1, 1, 1)
	require.NoError(t, err)
	b, err := space.Alloc(2, 1, 1)
	require.NoError(t, err)
	_, err = space.Product(a, b)
	require.ErrorIs(t, err, space.ErrParamMismatch)

	c, err := space.Alloc(1, 2, 3)
	require.NoError(t, err)
	prod, err := space.Product(a, c)
	require.NoError(t, err)
	require.Equal(t, 3, prod.NIn())
	require.Equal(t, 4, prod.NOut())
}

func TestJoinRequiresOutInArityMatch(t *testing.T) {
	a, err := space.Alloc(0, 1, 2)
	require.NoError(t, err)
	b, err := space.Alloc(0, 3, 1)
	require.NoError(t, err)
	_, err = space.Join(a, b)
	require.ErrorIs(t, err, space.ErrComponentMismatch)

	bOk, err := space.Alloc(0, 2, 1)
	require.NoError(t, err)
	joined, err := space.Join(a, bOk)
	require.NoError(t, err)
	require.Equal(t, 1, joined.NIn())
	require.Equal(t, 1, joined.NOut())
}

func TestInsertAndDropRoundTrip(t *testing.T) {
	sp, err := space.AllocSet(0, 3)
	require.NoError(t, err)
	ins, err := sp.Insert(space.Out, 1, 2)
	require.NoError(t, err)
	require.Equal(t, 5, ins.NOut())

	dropped, err := ins.Drop(space.Out, 1, 2)
	require.NoError(t, err)
	require.True(t, space.Equal(sp, dropped))
}

func TestDropRejectsOutOfRange(t *testing.T) {
	sp, err := space.AllocSet(0, 2)
	require.NoError(t, err)
	_, err = sp.Drop(space.Out, 1, 5)
	require.ErrorIs(t, err, space.ErrIndexOutOfRange)
}

func TestMoveWithinSameComponent(t *testing.T) {
	sp, err := space.AllocSet(0, 4)
	require.NoError(t, err)
	moved, err := sp.Move(space.Out, 0, space.Out, 3, 1)
	require.NoError(t, err)
	require.Equal(t, 4, moved.NOut())
}

func TestCompatibleDomainAndRange(t *testing.T) {
	rel, err := space.Alloc(1, 2, 3)
	require.NoError(t, err)
	dom, err := space.AllocSet(1, 2)
	require.NoError(t, err)
	rng, err := space.AllocSet(1, 3)
	require.NoError(t, err)
	require.True(t, space.CompatibleDomain(rel, dom))
	require.True(t, space.CompatibleRange(rel, rng))
	require.False(t, space.CompatibleDomain(rel, rng))
}
