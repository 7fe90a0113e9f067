// SPDX-License-Identifier: MIT
//
// Package pip implements the per-basic-relation step of partial
// lexicographic optimization (spec.md §4.6 "Partial lex-opt"): given one
// basic relation and a domain set, find each domain point's
// lexicographically extreme image point.
//
// PerBasic pins each output coordinate in turn by eliminating later
// coordinates with basicrel's Fourier-Motzkin machinery and promoting the
// single tight bound it exposes to an equality, which is exact whenever
// that coordinate's optimum is determined by one inequality (the
// box-shaped and functional-graph relations the lex-at/identity/
// translation family of constructors produce). A full parametric
// (Feautrier-style) simplex for the general case, where several
// inequalities compete depending on the parameter values, is not
// attempted; see DESIGN.md.
package pip
