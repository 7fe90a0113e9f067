package tab_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/tab"
)

func row(vals ...int64) tab.Row {
	r := make(tab.Row, len(vals))
	for i, v := range vals {
		r[i] = big.NewInt(v)
	}

	return r
}

// TestFeasibleBoxedRegion: 0 <= x <= 5 is feasible.
func TestFeasibleBoxedRegion(t *testing.T) {
	ineqs := []tab.Row{
		row(0, 1),  // x >= 0
		row(5, -1), // -x + 5 >= 0
	}
	ok, err := tab.Feasible(1, nil, ineqs)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestFeasibleContradictoryEqualities: x = 1 and x = 2 cannot both hold.
func TestFeasibleContradictoryEqualities(t *testing.T) {
	eqs := []tab.Row{
		row(-1, 1), // x - 1 = 0
		row(-2, 1), // x - 2 = 0
	}
	ok, err := tab.Feasible(1, eqs, nil)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestMaximizeBoxedObjective: maximize x over 0 <= x <= 5 is 5.
func TestMaximizeBoxedObjective(t *testing.T) {
	ineqs := []tab.Row{
		row(0, 1),
		row(5, -1),
	}
	c := []*big.Int{big.NewInt(1)}
	v, err := tab.Maximize(1, c, nil, ineqs)
	require.NoError(t, err)
	require.Equal(t, big.NewRat(5, 1), v)
}

// TestMaximizeUnbounded: maximizing x with only a lower bound is unbounded.
func TestMaximizeUnbounded(t *testing.T) {
	ineqs := []tab.Row{
		row(0, 1), // x >= 0
	}
	c := []*big.Int{big.NewInt(1)}
	_, err := tab.Maximize(1, c, nil, ineqs)
	require.ErrorIs(t, err, tab.ErrUnbounded)
}

// TestMaximizeInfeasible: maximizing over a contradictory system fails.
func TestMaximizeInfeasible(t *testing.T) {
	eqs := []tab.Row{
		row(-1, 1),
		row(-2, 1),
	}
	c := []*big.Int{big.NewInt(1)}
	_, err := tab.Maximize(1, c, eqs, nil)
	require.ErrorIs(t, err, tab.ErrInfeasible)
}

// TestQuickInfeasibleCatchesContradiction: the float64 pre-filter proves
// infeasibility for an overdetermined contradictory equality system.
func TestQuickInfeasibleCatchesContradiction(t *testing.T) {
	eqs := []tab.Row{
		row(-1, 1),
		row(-2, 1),
	}
	require.True(t, tab.QuickInfeasible(1, eqs))
}

// TestQuickInfeasibleInconclusiveOnConsistentSystem: a solvable system must
// not be reported infeasible by the quick filter.
func TestQuickInfeasibleInconclusiveOnConsistentSystem(t *testing.T) {
	eqs := []tab.Row{
		row(-3, 1), // x = 3
	}
	require.False(t, tab.QuickInfeasible(1, eqs))
}
