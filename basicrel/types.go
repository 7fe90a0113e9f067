package basicrel

import (
	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/space"
)

// Flags is the boolean flag set carried by a BasicRelation (spec.md §4.3).
type Flags uint16

const (
	// FlagEmpty holds iff the relation contains a contradictory equality.
	FlagEmpty Flags = 1 << iota
	// FlagRational marks the relation as a rational (not integer) relaxation.
	FlagRational
	// FlagFinal marks the relation as shared-immutable; mutation must cow first.
	FlagFinal
	// FlagNormalized marks redundancies removed and inequalities canonically sorted.
	FlagNormalized
	// FlagNoRedundant marks that redundancy elimination has already run.
	FlagNoRedundant
	// FlagNoImplicit marks that implicit equalities have already been detected.
	FlagNoImplicit
	// FlagAllEqualities marks every constraint as an equality (no inequalities).
	FlagAllEqualities
	// FlagNormalizedDivs marks the div list as topologically ordered and deduplicated.
	FlagNormalizedDivs
)

func (f Flags) has(bit Flags) bool  { return f&bit != 0 }
func (f *Flags) set(bit Flags)      { *f |= bit }
func (f *Flags) clear(bit Flags)    { *f &^= bit }
func (f *Flags) clearStructural() {
	f.clear(FlagNormalized)
	f.clear(FlagNoRedundant)
	f.clear(FlagNoImplicit)
	f.clear(FlagAllEqualities)
	f.clear(FlagNormalizedDivs)
}

// BasicRelation is a single convex integer polyhedron over sp's
// [const | params | in | out | divs] layout, plus an aligned div
// definition table (spec.md §4.3).
//
// Storage: rows holds cSize row slots; inequalities occupy rows[0:nIneq]
// growing from the low end, equalities occupy rows[cSize-nEq:cSize]
// growing from the high end, preserving nEq+nIneq <= cSize at all times
// (spec.md §8 invariant). divs holds extra row slots of width 1+w(); only
// divs[0:nDiv] are live, the remainder are zero-filled margin reserved for
// future AllocDiv calls.
type BasicRelation struct {
	sp    *space.Space
	extra int // reserved div capacity (columns and rows)
	nDiv  int

	cSize      int
	nEq, nIneq int
	rows       []ivec.Row

	divs []ivec.Row

	sample ivec.Row
	flags  Flags
	refs   int32
}

// Space returns the shared Space; callers must not mutate it.
func (b *BasicRelation) Space() *space.Space {
	if b == nil {
		return nil
	}

	return b.sp
}

// Width returns w(B) = 1 + total(S) + extra, the row width (spec.md §3).
func (b *BasicRelation) Width() int {
	if b == nil {
		return 0
	}

	return 1 + b.sp.Total() + b.extra
}

// NEq returns the current equality count.
func (b *BasicRelation) NEq() int {
	if b == nil {
		return 0
	}

	return b.nEq
}

// NIneq returns the current inequality count.
func (b *BasicRelation) NIneq() int {
	if b == nil {
		return 0
	}

	return b.nIneq
}

// NDiv returns the current (live) div count.
func (b *BasicRelation) NDiv() int {
	if b == nil {
		return 0
	}

	return b.nDiv
}

// Extra returns the reserved div capacity.
func (b *BasicRelation) Extra() int {
	if b == nil {
		return 0
	}

	return b.extra
}

// CSize returns the reserved eq+ineq row capacity.
func (b *BasicRelation) CSize() int {
	if b == nil {
		return 0
	}

	return b.cSize
}

// IsFinal reports whether b is marked shared-immutable.
func (b *BasicRelation) IsFinal() bool { return b != nil && b.flags.has(FlagFinal) }

// IsEmptyFlagged reports the raw EMPTY flag without running any solver
// (spec.md §4.6 "fast_is_empty").
func (b *BasicRelation) IsEmptyFlagged() bool { return b != nil && b.flags.has(FlagEmpty) }

// IsNormalized reports the raw NORMALIZED flag.
func (b *BasicRelation) IsNormalized() bool { return b != nil && b.flags.has(FlagNormalized) }

// Eq returns equality row i (0-indexed amongst equalities), live view
// (not a copy); callers must treat it as read-only unless they own a
// non-final, non-shared BasicRelation.
func (b *BasicRelation) Eq(i int) ivec.Row {
	return b.rows[b.cSize-b.nEq+i]
}

// Ineq returns inequality row i, live view.
func (b *BasicRelation) Ineq(i int) ivec.Row {
	return b.rows[i]
}

// Div returns div definition row i: index 0 is the denominator, 1..w the
// affine numerator expression in canonical column position.
func (b *BasicRelation) Div(i int) ivec.Row {
	return b.divs[i]
}

// DivDenominator returns the denominator of div i (0 means "unknown").
func (b *BasicRelation) DivDenominator(i int) int64 {
	return b.divs[i][0].Int64()
}

// DivKnown reports whether div i has a strictly positive denominator.
func (b *BasicRelation) DivKnown(i int) bool {
	return b.divs[i][0].Sign() > 0
}

// AllDivsKnown reports whether every live div has a non-zero denominator
// (spec.md §4.5 "Compute-divs").
func (b *BasicRelation) AllDivsKnown() bool {
	for i := 0; i < b.nDiv; i++ {
		if !b.DivKnown(i) {
			return false
		}
	}

	return true
}

// Sample returns the cached sample point, or nil if none is cached.
func (b *BasicRelation) Sample() ivec.Row {
	if b == nil {
		return nil
	}

	return b.sample
}
