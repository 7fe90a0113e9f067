// SPDX-License-Identifier: MIT
//
// Package tab implements the exact-rational simplex tableau collaborator
// spec.md §1 lists as out of core scope: emptiness testing and linear
// optimization over a basic relation's rational relaxation, used by the
// sample and pip packages and by basicrel's boundedness predicates.
//
// The two-phase tableau method (artificial variables for phase 1 feasibility,
// Bland's rule to avoid cycling) is the same pivot-and-ratio-test shape as
// other_examples' convex-lp-simplex.go reference, generalized from float64
// to math/big.Rat so every pivot is exact — spec.md §9 requires every
// operation to remain exact over integers/rationals, which a float64
// tableau cannot guarantee.
//
// QuickInfeasible complements the exact solver with a cheap float64
// pre-filter built on gonum.org/v1/gonum/mat, used to short-circuit
// obviously-contradictory equality systems before paying for an exact
// two-phase solve; it only ever returns a sound "yes, infeasible" or an
// inconclusive "false", never a false positive.
package tab
