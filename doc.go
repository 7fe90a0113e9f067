// SPDX-License-Identifier: MIT
//
// Package relspace is the root of a Presburger-arithmetic relational-set
// engine: it represents, manipulates and compares finite unions of convex
// integer polyhedra ("relations") over a fixed space of parameters, input
// coordinates and output coordinates.
//
// The engine is layered, leaves first:
//
//	space/    - immutable shape descriptors and dimension-rewrite maps
//	basicrel/ - a single convex polyhedron: equalities, inequalities, divs
//	relation/ - a finite disjunction of basic relations over one space
//	pset/     - Set/BasicSet: relations and basic relations with no input tuple
//
// and leans on a handful of narrow collaborators that are intentionally
// out of the core's scope (see SPEC_FULL.md §4):
//
//	ivec/   - arbitrary-precision integer row vectors
//	gauss/  - Gaussian elimination / variable compression
//	tab/    - simplex tableau and rational LP maximization
//	sample/ - bounded integer sample-point search
//	pip/    - per-basic-relation lexicographic optimization
//	rctx/   - the borrowed process context (backend choice, assertion hook)
//
// Every public operation is value-functional: it consumes ownership of its
// inputs and returns a new value, internally realized by copy-on-write.
// There is no symbolic constraint parsing anywhere in this module, and the
// only floating point is tab.QuickInfeasible's float64 least-squares
// pre-filter, which can only report a system infeasible; every result is
// exact over the integers. See DESIGN.md for the grounding ledger and SPEC_FULL.md for the
// complete requirements this module implements.
package relspace
