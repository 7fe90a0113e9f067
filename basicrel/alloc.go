// SPDX-License-Identifier: MIT
//
// File: alloc.go
// Role: allocation and low-level row editing, spec.md §4.3. The dual-ended
// row arena grows ineq from the low end and eq from the high end; capacity
// is explicit (cSize, extra) and exhaustion is reported via ErrNoRoom /
// ErrNoDivRoom rather than silently reallocated, matching spec.md §7 error
// kind 3. Bulk growth (ExtendConstraints/ExtendSpace) is the only path
// that actually reallocates the backing slices.
package basicrel

import (
	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/space"
)

// Alloc reserves row capacity for nEq equalities and nIneq inequalities,
// and extra div columns/rows, over sp (spec.md §4.3 "alloc").
func Alloc(sp *space.Space, extra, nEq, nIneq int) (*BasicRelation, error) {
	if sp == nil {
		return nil, ErrNilRelation
	}
	if extra < 0 || nEq < 0 || nIneq < 0 {
		return nil, ErrNegativeCount
	}
	b := &BasicRelation{
		sp:    sp.Copy(),
		extra: extra,
		cSize: nEq + nIneq,
		refs:  1,
	}
	w := b.Width()
	b.rows = make([]ivec.Row, b.cSize)
	for i := range b.rows {
		b.rows[i] = ivec.NewRow(w)
	}
	b.divs = make([]ivec.Row, extra)
	for i := range b.divs {
		b.divs[i] = ivec.NewRow(1 + w)
	}

	return b, nil
}

// ExtendSpace returns a BasicRelation with at least the requested margins
// over the new space sp2, preserving constraints (re-expressed through an
// identity dim-map extended with zero columns for any new dimensions) and,
// when the space is unchanged, the cached sample (spec.md §4.3
// "extend_space"). Clones b if it is shared (ref>1).
func ExtendSpace(b *BasicRelation, sp2 *space.Space, extraMargin, dEq, dIneq int) (*BasicRelation, error) {
	if b == nil || sp2 == nil {
		return nil, ErrNilRelation
	}
	sameSpace := space.Equal(b.sp, sp2)
	out, err := Alloc(sp2, b.extra+extraMargin, b.nEq+dEq, b.nIneq+dIneq)
	if err != nil {
		return nil, err
	}
	out.flags = b.flags
	out.nDiv = b.nDiv

	// Build a dim-map from b's row layout onto out's row layout: constant
	// and params copy 1:1 (spaces share nparam), in/out copy up to the
	// shared size, divs copy 1:1 up to b.nDiv.
	m := space.NewDimMap(out.Width())
	m.SetConst(0)
	m.SetRange(1, 1, b.sp.NParam())
	m.SetRange(out.sp.Offset(space.In), b.sp.Offset(space.In), minInt(out.sp.NIn(), b.sp.NIn()))
	m.SetRange(out.sp.Offset(space.Out), b.sp.Offset(space.Out), minInt(out.sp.NOut(), b.sp.NOut()))
	m.SetRange(1+out.sp.Total(), 1+b.sp.Total(), b.nDiv)

	for i := 0; i < b.nIneq; i++ {
		out.rows[i] = m.Apply(b.Ineq(i))
	}
	out.nIneq = b.nIneq
	out.nEq = b.nEq
	eqBase := out.cSize - out.nEq
	for i := 0; i < b.nEq; i++ {
		out.rows[eqBase+i] = m.Apply(b.Eq(i))
	}

	for i := 0; i < b.nDiv; i++ {
		dm := space.NewDimMap(1 + out.Width())
		dm.SetRange(0, 0, 1)
		dm.SetConst(1)
		dm.SetRange(2, 2, b.sp.NParam())
		dm.SetRange(1+out.sp.Offset(space.In), 1+b.sp.Offset(space.In), minInt(out.sp.NIn(), b.sp.NIn()))
		dm.SetRange(1+out.sp.Offset(space.Out), 1+b.sp.Offset(space.Out), minInt(out.sp.NOut(), b.sp.NOut()))
		dm.SetRange(2+out.sp.Total(), 2+b.sp.Total(), b.nDiv)
		out.divs[i] = dm.Apply(b.Div(i))
	}

	if sameSpace && b.sample != nil {
		out.sample = b.sample.Clone()
	}

	return out, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// ExtendConstraints is the common case of ExtendSpace that keeps the
// current space and only grows row margins.
func ExtendConstraints(b *BasicRelation, dEq, dIneq int) (*BasicRelation, error) {
	return ExtendSpace(b, b.sp, 0, dEq, dIneq)
}

// hasRoomForIneq reports whether one more inequality fits in current
// capacity (spec.md §4.3 "alloc_inequality requires ineq+n_ineq < eq"),
// supplemented with the exact budget check from isl_map.c's room_for_con.
func (b *BasicRelation) hasRoomForIneq() bool {
	return b.nEq+b.nIneq < b.cSize
}

func (b *BasicRelation) hasRoomForEq() bool {
	return b.nEq+b.nIneq < b.cSize
}

// AllocInequality reserves one new (zero-filled, div-margin-zeroed)
// inequality row in b, which must already be cow'd by the caller, and
// returns its index. Fails with ErrNoRoom if capacity is exhausted.
func (b *BasicRelation) AllocInequality() (int, error) {
	if !b.hasRoomForIneq() {
		return -1, errorf("AllocInequality", ErrNoRoom)
	}
	idx := b.nIneq
	b.rows[idx] = ivec.NewRow(b.Width())
	b.nIneq++
	b.flags.clearStructural()

	return idx, nil
}

// AllocEquality reserves one new (zero-filled) equality row and returns
// its index, which is the old nEq: the existing equalities shift one slot
// toward the low end of the arena, keeping their indices, and the new row
// takes the highest slot. Fails with ErrNoRoom once the low (ineq) and
// high (eq) ends of the arena have met.
func (b *BasicRelation) AllocEquality() (int, error) {
	if !b.hasRoomForEq() {
		return -1, errorf("AllocEquality", ErrNoRoom)
	}
	eqIdx := b.nEq
	b.nEq++
	base := b.cSize - b.nEq
	copy(b.rows[base:b.cSize-1], b.rows[base+1:b.cSize])
	b.rows[b.cSize-1] = ivec.NewRow(b.Width())
	b.flags.clearStructural()

	return eqIdx, nil
}

// AllocDiv reserves one new div row, returning its index. Fails with
// ErrNoDivRoom if nDiv == extra.
func (b *BasicRelation) AllocDiv() (int, error) {
	if b.nDiv >= b.extra {
		return -1, errorf("AllocDiv", ErrNoDivRoom)
	}
	idx := b.nDiv
	b.divs[idx] = ivec.NewRow(1 + b.Width())
	b.nDiv++
	b.flags.clear(FlagNormalizedDivs)

	return idx, nil
}

// AddEq extends capacity by one and appends a full equality row
// (spec.md §4.3 "add_eq"). row must have length 1+total(sp); any div
// columns are zero-filled.
func AddEq(b *BasicRelation, row ivec.Row) (*BasicRelation, error) {
	out, err := ExtendConstraints(b, 1, 0)
	if err != nil {
		return nil, err
	}
	idx, err := out.AllocEquality()
	if err != nil {
		return nil, err
	}
	copy(out.Eq(idx), row)

	return out, nil
}

// AddIneq extends capacity by one and appends a full inequality row
// (spec.md §4.3 "add_ineq").
func AddIneq(b *BasicRelation, row ivec.Row) (*BasicRelation, error) {
	out, err := ExtendConstraints(b, 0, 1)
	if err != nil {
		return nil, err
	}
	idx, err := out.AllocInequality()
	if err != nil {
		return nil, err
	}
	copy(out.Ineq(idx), row)

	return out, nil
}

// DropEquality removes equality row pos by swapping it with the first
// equality slot, the one the region gives up when nEq shrinks, and
// decrementing nEq. Per spec.md §9 open question (b),
// this does NOT clear NORMALIZED (preserved asymmetry with
// DropInequality, audited and kept for source fidelity).
func (b *BasicRelation) DropEquality(pos int) error {
	if pos < 0 || pos >= b.nEq {
		return errorf("DropEquality", ErrIndexOutOfRange)
	}
	base := b.cSize - b.nEq
	b.rows[base+pos], b.rows[base] = b.rows[base], b.rows[base+pos]
	b.nEq--

	return nil
}

// DropInequality removes inequality row pos by swapping it with the last
// inequality slot and decrementing nIneq; clears NORMALIZED only when the
// removed row was not already last (order-sensitive, spec.md §4.3).
func (b *BasicRelation) DropInequality(pos int) error {
	if pos < 0 || pos >= b.nIneq {
		return errorf("DropInequality", ErrIndexOutOfRange)
	}
	last := b.nIneq - 1
	if pos != last {
		b.rows[pos], b.rows[last] = b.rows[last], b.rows[pos]
		b.flags.clear(FlagNormalized)
	}
	b.nIneq--

	return nil
}

// InequalityToEquality moves inequality row pos into the equality region:
// the row is dropped from the inequalities and re-added as the last
// equality, in the slot that dropping it frees (spec.md §4.3).
func (b *BasicRelation) InequalityToEquality(pos int) error {
	if pos < 0 || pos >= b.nIneq {
		return errorf("InequalityToEquality", ErrIndexOutOfRange)
	}
	row := b.rows[pos]
	if err := b.DropInequality(pos); err != nil {
		return err
	}
	idx, err := b.AllocEquality()
	if err != nil {
		// Capacity was consumed by DropInequality already freeing a slot,
		// so this can only fail if b had zero total capacity, impossible
		// since we just dropped a live row; surfaced defensively anyway.
		return err
	}
	copy(b.Eq(idx), row)

	return nil
}

// FreeEquality truncates the equality list to n rows, keeping the last n
// (those with indices nEq-n through nEq-1 before the call).
func (b *BasicRelation) FreeEquality(n int) error {
	if n < 0 || n > b.nEq {
		return errorf("FreeEquality", ErrIndexOutOfRange)
	}
	b.nEq = n

	return nil
}

// FreeInequality truncates the inequality list to n rows.
func (b *BasicRelation) FreeInequality(n int) error {
	if n < 0 || n > b.nIneq {
		return errorf("FreeInequality", ErrIndexOutOfRange)
	}
	b.nIneq = n

	return nil
}

// FreeDiv truncates the div list to n rows.
func (b *BasicRelation) FreeDiv(n int) error {
	if n < 0 || n > b.nDiv {
		return errorf("FreeDiv", ErrIndexOutOfRange)
	}
	b.nDiv = n

	return nil
}

// SwapDiv permutes div rows i and j, and simultaneously permutes the
// corresponding columns in every eq, ineq and div row (spec.md §4.3).
func (b *BasicRelation) SwapDiv(i, j int) error {
	if i < 0 || i >= b.nDiv || j < 0 || j >= b.nDiv {
		return errorf("SwapDiv", ErrIndexOutOfRange)
	}
	if i == j {
		return nil
	}
	colI := 1 + b.sp.Total() + i
	colJ := 1 + b.sp.Total() + j
	for r := 0; r < b.nIneq; r++ {
		b.rows[r][colI], b.rows[r][colJ] = b.rows[r][colJ], b.rows[r][colI]
	}
	for r := b.cSize - b.nEq; r < b.cSize; r++ {
		b.rows[r][colI], b.rows[r][colJ] = b.rows[r][colJ], b.rows[r][colI]
	}
	for r := 0; r < b.nDiv; r++ {
		b.divs[r][1+colI], b.divs[r][1+colJ] = b.divs[r][1+colJ], b.divs[r][1+colI]
	}
	b.divs[i], b.divs[j] = b.divs[j], b.divs[i]
	b.flags.clear(FlagNormalized)
	b.flags.clear(FlagNormalizedDivs)

	return nil
}

// InequalityNegate rewrites inequality row pos to -row-1, the strict-
// reverse trick over integers (spec.md §4.3).
func (b *BasicRelation) InequalityNegate(pos int) error {
	if pos < 0 || pos >= b.nIneq {
		return errorf("InequalityNegate", ErrIndexOutOfRange)
	}
	row := b.rows[pos]
	for i := range row {
		row[i].Neg(row[i])
	}
	row[0].Sub(row[0], bigOne)
	b.flags.clear(FlagNormalized)

	return nil
}
