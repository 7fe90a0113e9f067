// SPDX-License-Identifier: MIT
//
// File: cow.go
// Role: copy-on-write lifecycle (spec.md §3 "Lifecycle", §9 "Ownership
// and copy-on-write"), grounded on matrix/dense.go's Clone generalized to
// the dual-ended row arena, and core/methods_clone.go's refcount-carrying
// clone discipline.
package basicrel

import (
	"sync/atomic"

	"github.com/katalvlaran/relspace/ivec"
)

// Copy bumps the refcount and returns b; it does not clone. Safe on nil.
func (b *BasicRelation) Copy() *BasicRelation {
	if b == nil {
		return nil
	}
	atomic.AddInt32(&b.refs, 1)

	return b
}

// Free decrements the refcount; the caller must not use b afterwards.
// Safe on nil.
func (b *BasicRelation) Free() {
	if b == nil {
		return
	}
	if atomic.AddInt32(&b.refs, -1) <= 0 {
		b.sp.Free()
	}
}

// Dup always returns a fresh, independently-refcounted deep copy of b.
func (b *BasicRelation) Dup() *BasicRelation {
	if b == nil {
		return nil
	}
	out := &BasicRelation{
		sp:    b.sp.Copy(),
		extra: b.extra,
		nDiv:  b.nDiv,
		cSize: b.cSize,
		nEq:   b.nEq,
		nIneq: b.nIneq,
		flags: b.flags &^ FlagFinal,
		refs:  1,
	}
	out.rows = cloneRows(b.rows)
	out.divs = cloneRows(b.divs)
	if b.sample != nil {
		out.sample = b.sample.Clone()
	}

	return out
}

// Cow returns b if its refcount is 1 (exclusively owned); otherwise it
// drops one reference and returns a fresh Dup, clearing FlagFinal
// (spec.md §9 "cow").
func Cow(b *BasicRelation) *BasicRelation {
	if b == nil {
		return nil
	}
	if atomic.LoadInt32(&b.refs) == 1 {
		b.flags.clear(FlagFinal)

		return b
	}
	out := b.Dup()
	b.Free()

	return out
}

func cloneRows(rows []ivec.Row) []ivec.Row {
	out := make([]ivec.Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}

	return out
}
