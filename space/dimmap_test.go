package space_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/space"
)

func row(vals ...int64) ivec.Row {
	r := make(ivec.Row, len(vals))
	for i, v := range vals {
		r[i] = big.NewInt(v)
	}

	return r
}

func TestDimMapSetRangeAndApply(t *testing.T) {
	m := space.NewDimMap(3)
	m.SetConst(0)
	m.SetRange(1, 2, 2)

	src := row(9, 1, 2, 3)
	out := m.Apply(src)
	require.Equal(t, row(9, 2, 3), out)
}

func TestDimMapSetZeroLeavesColumnUnset(t *testing.T) {
	m := space.NewDimMap(2)
	m.SetRange(0, 0, 2)
	m.SetZero(1, 1)

	out := m.Apply(row(5, 7))
	require.Equal(t, row(5, 0), out)
}

func TestDimMapApplyAll(t *testing.T) {
	m := space.NewDimMap(2)
	m.SetRange(0, 0, 2)
	rows := []ivec.Row{row(1, 2), row(3, 4)}
	out := m.ApplyAll(rows)
	require.Len(t, out, 2)
	require.Equal(t, row(1, 2), out[0])
	require.Equal(t, row(3, 4), out[1])
}
