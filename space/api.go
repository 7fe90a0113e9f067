// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Public constructors, refcount lifecycle, and structural operations
// on Space (alloc, copy, free, equal, match, reverse, domain, product,
// extend, drop, insert, move, names). Thin and pure: every failure is
// either an allocation-shaped nil or an explicit sentinel error.
package space

// Alloc allocates a fresh Space with the given parameter count, input
// arity and output arity. All three must be non-negative.
//
// Complexity: O(1).
func Alloc(nparam, nIn, nOut int) (*Space, error) {
	if nparam < 0 || nIn < 0 || nOut < 0 {
		return nil, ErrNegativeDimension
	}

	return &Space{nparam: nparam, nIn: nIn, nOut: nOut, refs: 1}, nil
}

// AllocSet allocates a Space for a set: nparam parameters, zero input
// arity, n output (= set) coordinates.
func AllocSet(nparam, n int) (*Space, error) {
	return Alloc(nparam, 0, n)
}

// Copy returns s with its refcount bumped; it does not clone. Safe on nil.
func (s *Space) Copy() *Space {
	if s == nil {
		return nil
	}

	return s.refInc()
}

// Free decrements the refcount; the caller must not use s afterwards.
// Safe on nil.
func (s *Space) Free() {
	if s == nil {
		return
	}
	s.refs--
}

// Dup returns a fresh, independently-refcounted deep copy of s, including
// its names slice. Used by callers that must mutate a space that might be
// shared (e.g. SetName below).
func (s *Space) Dup() *Space {
	if s == nil {
		return nil
	}
	out := &Space{nparam: s.nparam, nIn: s.nIn, nOut: s.nOut, refs: 1}
	if s.names != nil {
		out.names = append([]string(nil), s.names...)
	}

	return out
}

// Equal reports whether two spaces have identical shape (parameter count,
// input arity, output arity). Names are not compared: spec.md §4.1 treats
// set_name/get_name as accessors, not part of structural equality.
func Equal(a, b *Space) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.nparam == b.nparam && a.nIn == b.nIn && a.nOut == b.nOut
}

// Match reports whether component c of a has the same size as component
// other of b (spec.md §4.1 "match").
func Match(a *Space, c Component, b *Space, other Component) bool {
	return a.Size(c) == b.Size(other)
}

// CompatibleDomain holds iff a basic relation's input arity and parameter
// count agree with a basic set's output arity and parameter count
// (spec.md §4.1).
func CompatibleDomain(rel, set *Space) bool {
	return rel.NIn() == set.NOut() && rel.NParam() == set.NParam()
}

// CompatibleRange holds iff a basic relation's output arity and parameter
// count agree with a basic set's output arity and parameter count.
func CompatibleRange(rel, set *Space) bool {
	return rel.NOut() == set.NOut() && rel.NParam() == set.NParam()
}

// Reverse returns a new Space with the input and output tuples swapped.
func (s *Space) Reverse() (*Space, error) {
	if s == nil {
		return nil, ErrNilSpace
	}

	out, err := Alloc(s.nparam, s.nOut, s.nIn)
	if err != nil {
		return nil, err
	}
	out.names = reverseNames(s)

	return out, nil
}

// Domain returns the Space of this relation's domain: a set whose output
// arity equals this space's input arity (spec.md §4.1 "domain").
func (s *Space) Domain() (*Space, error) {
	if s == nil {
		return nil, ErrNilSpace
	}

	return AllocSet(s.nparam, s.nIn)
}

// Range returns the Space of this relation's range: a set whose output
// arity equals this space's output arity.
func (s *Space) Range() (*Space, error) {
	if s == nil {
		return nil, ErrNilSpace
	}

	return AllocSet(s.nparam, s.nOut)
}

// Product concatenates two spaces' In tuples and their Out tuples while
// requiring identical parameter counts, producing the Space of a Cartesian product
// (spec.md §4.1 "product").
func Product(a, b *Space) (*Space, error) {
	if a == nil || b == nil {
		return nil, ErrNilSpace
	}
	if a.nparam != b.nparam {
		return nil, ErrParamMismatch
	}

	return Alloc(a.nparam, a.nIn+b.nIn, a.nOut+b.nOut)
}

// Join returns the Space of the relational composition of a: X -> M with
// b: M -> Y, i.e. a space with a's input arity and b's output arity,
// requiring a's output arity equal b's input arity and matching params
// (spec.md §4.4 "apply-range"/"join").
func Join(a, b *Space) (*Space, error) {
	if a == nil || b == nil {
		return nil, ErrNilSpace
	}
	if a.nparam != b.nparam {
		return nil, ErrParamMismatch
	}
	if a.nOut != b.nIn {
		return nil, ErrComponentMismatch
	}

	return Alloc(a.nparam, a.nIn, b.nOut)
}

// Extend returns a new Space with delta added to component c's size
// (delta may be negative provided the result stays non-negative).
func (s *Space) Extend(c Component, delta int) (*Space, error) {
	if s == nil {
		return nil, ErrNilSpace
	}
	np, ni, no := s.nparam, s.nIn, s.nOut
	switch c {
	case Param:
		np += delta
	case In:
		ni += delta
	case Out:
		no += delta
	default:
		return nil, ErrUnknownComponent
	}

	return Alloc(np, ni, no)
}

// Insert returns a new Space with n extra dimensions inserted into
// component c starting at position pos (spec.md §4.4 "insert/add dims").
// Names, if present, get n blank entries spliced in at the same position.
func (s *Space) Insert(c Component, pos, n int) (*Space, error) {
	if s == nil {
		return nil, ErrNilSpace
	}
	if n == 0 {
		return s.Dup(), nil
	}
	if n < 0 {
		return nil, ErrNegativeDimension
	}
	if pos < 0 || pos > s.Size(c) {
		return nil, ErrIndexOutOfRange
	}

	out, err := s.Extend(c, n)
	if err != nil {
		return nil, err
	}
	out.names = insertNames(s, c, pos, n)

	return out, nil
}

// Drop returns a new Space with n dimensions removed from component c
// starting at position pos.
func (s *Space) Drop(c Component, pos, n int) (*Space, error) {
	if s == nil {
		return nil, ErrNilSpace
	}
	if n == 0 {
		return s.Dup(), nil
	}
	if n < 0 || pos < 0 || pos+n > s.Size(c) {
		return nil, ErrIndexOutOfRange
	}

	out, err := s.Extend(c, -n)
	if err != nil {
		return nil, err
	}
	out.names = dropNames(s, c, pos, n)

	return out, nil
}

// Move returns a new Space with n dimensions relocated from (srcComp,
// srcPos) to (dstComp, dstPos); used by basicrel.MoveDims to recompute
// the resulting space without touching constraint rows itself
// (spec.md §4.4 "Move dims").
func (s *Space) Move(srcComp Component, srcPos int, dstComp Component, dstPos, n int) (*Space, error) {
	if s == nil {
		return nil, ErrNilSpace
	}
	if n == 0 {
		return s.Dup(), nil
	}
	if srcComp == dstComp && srcPos == dstPos {
		return s.Dup(), nil
	}

	dropped, err := s.Drop(srcComp, srcPos, n)
	if err != nil {
		return nil, err
	}
	// Recompute dstPos relative to the already-shrunk component when
	// the move is within the same component and shifts leftward.
	adjPos := dstPos
	if srcComp == dstComp && srcPos < dstPos {
		adjPos = dstPos - n
	}

	return dropped.Insert(dstComp, adjPos, n)
}
