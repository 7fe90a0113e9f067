// SPDX-License-Identifier: MIT
//
// Package rctx provides the borrowed process context of the relspace
// engine (spec.md §9 "Global context"). It is taken by the emptiness,
// sampling and lexicographic-optimum operations (basicrel.IsEmpty,
// sample.Find, pip.PerBasic, and their relation/pset counterparts); the
// constructors take none. It carries a backend choice and an injectable
// assertion hook. The backend only decides whether basicrel.IsEmpty runs
// tab.QuickInfeasible first; pip.PerBasic behaves the same under either
// backend. No engine operation calls the hook: shape/compatibility
// mismatches (spec.md §7 error kind 2) come back as returned errors.
//
// Context holds no mutable global state: callers create one with New and
// pass it explicitly into the operations that take it. This mirrors the teacher's builderConfig/BuilderOption
// functional-options pattern (lvlath/builder/config.go), renamed to this
// package's domain.
package rctx

import "fmt"

// Backend selects whether basicrel.IsEmpty runs tab.QuickInfeasible, a
// float64 pre-filter, before the exact tab.Feasible check and the integer
// sample search. It has no other effect: pip.PerBasic and relation's
// partial-lex-opt run the same steps under either value.
type Backend int

const (
	// BackendClassical skips the QuickInfeasible pre-filter.
	BackendClassical Backend = iota
	// BackendTableau runs the QuickInfeasible pre-filter first.
	BackendTableau
)

// Context is the handle passed to the emptiness, sampling and lex-opt
// operations. The zero value is not usable; construct with New.
type Context struct {
	backend Backend
	warn    func(format string, args ...interface{})
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithBackend selects the backend (see Backend for what it changes).
func WithBackend(b Backend) Option {
	return func(c *Context) { c.backend = b }
}

// WithAssertionHook installs the callback that Warnf and Errorf invoke.
// No engine operation calls them; shape/compatibility mismatches (spec.md
// §7 error kind 2) are reported through returned errors. A nil hook is
// ignored; the default hook is a no-op.
func WithAssertionHook(hook func(format string, args ...interface{})) Option {
	return func(c *Context) {
		if hook != nil {
			c.warn = hook
		}
	}
}

// New returns a Context with defaults (BackendTableau, no-op assertion
// hook) and then applies opts in order; later options override earlier
// ones.
func New(opts ...Option) *Context {
	ctx := &Context{
		backend: BackendTableau,
		warn:    func(string, ...interface{}) {},
	}
	for _, opt := range opts {
		opt(ctx)
	}

	return ctx
}

// Backend reports the configured parametric backend.
func (c *Context) Backend() Backend {
	if c == nil {
		return BackendTableau
	}

	return c.backend
}

// Warnf invokes the assertion hook with a formatted message. Safe to call
// on a nil Context (becomes a no-op).
func (c *Context) Warnf(format string, args ...interface{}) {
	if c == nil || c.warn == nil {
		return
	}
	c.warn(format, args...)
}

// Errorf is a convenience that both reports via Warnf and builds an error
// value, for constructors that return (Value, error) rather than a bare
// null sentinel.
func (c *Context) Errorf(format string, args ...interface{}) error {
	c.Warnf(format, args...)
	return fmt.Errorf(format, args...)
}
