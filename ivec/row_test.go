package ivec_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/ivec"
)

func mkRow(vals ...int64) ivec.Row {
	r := make(ivec.Row, len(vals))
	for i, v := range vals {
		r[i] = big.NewInt(v)
	}

	return r
}

func TestNewRowIsZeroed(t *testing.T) {
	r := ivec.NewRow(3)
	require.Len(t, r, 3)
	require.True(t, r.IsZero())
}

func TestCloneIsIndependent(t *testing.T) {
	r := mkRow(1, 2, 3)
	c := r.Clone()
	c[0].SetInt64(9)
	require.Equal(t, int64(1), r[0].Int64())
	require.Equal(t, int64(9), c[0].Int64())
}

func TestNegateAndScale(t *testing.T) {
	r := mkRow(1, -2, 3)
	neg := r.Negate()
	require.Equal(t, mkRow(-1, 2, -3), neg)

	scaled := r.Scale(big.NewInt(2))
	require.Equal(t, mkRow(2, -4, 6), scaled)
}

func TestAddAndDot(t *testing.T) {
	a := mkRow(1, 2, 3)
	b := mkRow(4, 5, 6)
	require.Equal(t, mkRow(5, 7, 9), ivec.Add(a, b))
	require.Equal(t, big.NewInt(1*4+2*5+3*6), ivec.Dot(a, b))
}

func TestAddPanicsOnLengthMismatch(t *testing.T) {
	require.Panics(t, func() {
		ivec.Add(mkRow(1), mkRow(1, 2))
	})
}

func TestEqualPadsShorterWithZeros(t *testing.T) {
	require.True(t, ivec.Equal(mkRow(1, 2, 0), mkRow(1, 2)))
	require.False(t, ivec.Equal(mkRow(1, 2, 1), mkRow(1, 2)))
}

func TestCompareLexicographic(t *testing.T) {
	require.Equal(t, -1, ivec.Compare(mkRow(1, 2), mkRow(1, 3)))
	require.Equal(t, 1, ivec.Compare(mkRow(2, 0), mkRow(1, 99)))
	require.Equal(t, 0, ivec.Compare(mkRow(1, 2), mkRow(1, 2)))
}

func TestGCDNormalizeDividesByCommonFactor(t *testing.T) {
	r := mkRow(6, 9, 0, -3)
	g := ivec.GCDNormalize(r)
	require.Equal(t, big.NewInt(3), g)
	require.Equal(t, mkRow(2, 3, 0, -1), r)
}

func TestGCDNormalizeLeavesZeroRowAlone(t *testing.T) {
	r := mkRow(0, 0, 0)
	g := ivec.GCDNormalize(r)
	require.Equal(t, int64(0), g.Int64())
	require.True(t, r.IsZero())
}
