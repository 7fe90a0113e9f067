// SPDX-License-Identifier: MIT
//
// File: find.go
// Role: Find, the public entry point for the bounded integer sample-point
// search (spec.md §4.6 "sample"). The search itself lives in basicrel
// (basicrel.FindSample) so basicrel.IsEmpty can invoke it without this
// package importing basicrel importing this package back; Find is a thin
// wrapper preserving this package's historical API and error value.
package sample

import (
	"errors"

	"github.com/katalvlaran/relspace/basicrel"
	"github.com/katalvlaran/relspace/ivec"
	"github.com/katalvlaran/relspace/rctx"
)

// ErrBoundsExceeded is returned by Find when b's rational relaxation is
// feasible but so loosely bounded (or unbounded in enough dimensions)
// that the box the search would need to enumerate exceeds the search's
// cell budget. Narrowing b first (e.g. with a tighter caller-supplied
// bound) avoids this. Aliases basicrel.ErrBoundsExceeded, the error's
// true owner now that the search itself lives there.
var ErrBoundsExceeded = basicrel.ErrBoundsExceeded

// Find returns one integer point of b, caching it on b for reuse by
// later calls (spec.md §4.6 "sample"). Reports ok=false, nil error when
// b is empty; reports ErrBoundsExceeded when b is feasible but its
// search box is too large to enumerate exhaustively.
func Find(ctx *rctx.Context, b *basicrel.BasicRelation) (point ivec.Row, ok bool, err error) {
	if b == nil {
		return nil, false, nil
	}
	if s := b.Sample(); s != nil {
		return s, true, nil
	}

	// IsEmpty itself runs the same sample search as a fallback past a
	// feasible rational relaxation, caching the witness on b on success
	// and setting EMPTY on failure; the two outcomes below cover both
	// cases without duplicating that search.
	empty, err := basicrel.IsEmpty(ctx, b)
	if err != nil {
		return nil, false, err
	}
	if empty {
		return nil, false, nil
	}
	if s := b.Sample(); s != nil {
		return s, true, nil
	}

	// IsEmpty reported non-empty without a cached witness only via the
	// ErrBoundsExceeded path (a conservative "can't prove empty" answer).
	// Retry the search directly so a caller that actually wants the point
	// (rather than just the emptiness bit) gets a real answer or error.
	point, found, err := basicrel.FindSample(b)
	if err != nil {
		if errors.Is(err, basicrel.ErrBoundsExceeded) {
			return nil, false, ErrBoundsExceeded
		}

		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	return point, true, nil
}
