package gauss_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/gauss"
	"github.com/katalvlaran/relspace/ivec"
)

func mkRow(vals ...int64) ivec.Row {
	r := make(ivec.Row, len(vals))
	for i, v := range vals {
		r[i] = big.NewInt(v)
	}

	return r
}

func TestReduceEmptyInput(t *testing.T) {
	res := gauss.Reduce(nil)
	require.Empty(t, res.Rows)
	require.False(t, res.Contradictory)
}

// TestReduceDropsDependentRow: 2x+2y=0 is a scalar multiple of x+y=0 and
// reduces away entirely.
func TestReduceDropsDependentRow(t *testing.T) {
	eqs := []ivec.Row{
		mkRow(0, 1, 1),
		mkRow(0, 2, 2),
	}
	res := gauss.Reduce(eqs)
	require.False(t, res.Contradictory)
	require.Len(t, res.Rows, 1)
}

// TestReduceDetectsContradiction: x = 1 and x = 2 reduce to a nonzero
// constant row, flagged contradictory.
func TestReduceDetectsContradiction(t *testing.T) {
	eqs := []ivec.Row{
		mkRow(-1, 1),
		mkRow(-2, 1),
	}
	res := gauss.Reduce(eqs)
	require.True(t, res.Contradictory)
}

func TestReduceLeavesInputUntouched(t *testing.T) {
	eqs := []ivec.Row{mkRow(0, 2, 4)}
	_ = gauss.Reduce(eqs)
	require.Equal(t, int64(2), eqs[0][1].Int64())
	require.Equal(t, int64(4), eqs[0][2].Int64())
}
