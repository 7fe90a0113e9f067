// SPDX-License-Identifier: MIT
package relation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/relation"
	"github.com/katalvlaran/relspace/space"
)

// TestIsSubsetAcrossDifferentPartitions: r1 = {0 <= x <= 10} held as one
// basic relation, r2 = {0 <= x <= 5} ∪ {5 <= x <= 10} held as two. The two
// relations denote the same point set but partition it differently, so a
// structural normal-form comparison would wrongly call them unequal;
// IsSubset must still report each a subset of the other.
func TestIsSubsetAcrossDifferentPartitions(t *testing.T) {
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)
	x := sp.Offset(space.Out)

	whole, err := basicrel.Universe(sp)
	require.NoError(t, err)
	whole = addIneq(t, whole, map[int]int64{x: 1}, 0)   // x >= 0
	whole = addIneq(t, whole, map[int]int64{x: -1}, 10) // x <= 10
	r1, err := relation.FromBasic(whole)
	require.NoError(t, err)

	lo, err := basicrel.Universe(sp)
	require.NoError(t, err)
	lo = addIneq(t, lo, map[int]int64{x: 1}, 0)  // x >= 0
	lo = addIneq(t, lo, map[int]int64{x: -1}, 5) // x <= 5

	hi, err := basicrel.Universe(sp)
	require.NoError(t, err)
	hi = addIneq(t, hi, map[int]int64{x: 1}, -5)  // x >= 5
	hi = addIneq(t, hi, map[int]int64{x: -1}, 10) // x <= 10

	r2, err := relation.FromBasic(lo)
	require.NoError(t, err)
	r2, err = relation.AddBasic(r2, hi)
	require.NoError(t, err)

	sub12, err := relation.IsSubset(r1, r2)
	require.NoError(t, err)
	require.True(t, sub12)

	sub21, err := relation.IsSubset(r2, r1)
	require.NoError(t, err)
	require.True(t, sub21)

	eq, err := relation.IsEqual(r1, r2)
	require.NoError(t, err)
	require.True(t, eq)
}

// TestIsSubsetRejectsProperSuperset: r1 = {0 <= x <= 10}, r2 = {0 <= x <= 5};
// r2 is a proper subset of r1, not the reverse.
func TestIsSubsetRejectsProperSuperset(t *testing.T) {
	sp, err := space.AllocSet(0, 1)
	require.NoError(t, err)
	x := sp.Offset(space.Out)

	whole, err := basicrel.Universe(sp)
	require.NoError(t, err)
	whole = addIneq(t, whole, map[int]int64{x: 1}, 0)
	whole = addIneq(t, whole, map[int]int64{x: -1}, 10)
	r1, err := relation.FromBasic(whole)
	require.NoError(t, err)

	half, err := basicrel.Universe(sp)
	require.NoError(t, err)
	half = addIneq(t, half, map[int]int64{x: 1}, 0)
	half = addIneq(t, half, map[int]int64{x: -1}, 5)
	r2, err := relation.FromBasic(half)
	require.NoError(t, err)

	sub, err := relation.IsSubset(r2, r1)
	require.NoError(t, err)
	require.True(t, sub)

	strict, err := relation.IsStrictSubset(r2, r1)
	require.NoError(t, err)
	require.True(t, strict)

	reverseSub, err := relation.IsSubset(r1, r2)
	require.NoError(t, err)
	require.False(t, reverseSub)
}
