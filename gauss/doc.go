// SPDX-License-Identifier: MIT
//
// Package gauss implements exact-integer Gaussian elimination over
// ivec.Row equality constraints, the "Gaussian elimination, variable
// compression, redundancy removal on a single basic relation" collaborator
// spec.md §1 lists as out of scope for the core.
//
// Reduce performs fraction-free (Bareiss-style) row elimination: each
// elimination step combines two rows with an exact integer linear
// combination, so no row ever needs a non-integer pivot division, and
// GCD-normalizes the result to keep coefficients small. This is the same
// pivot-then-eliminate-below loop shape as a classical dense LU
// factorization, generalized from float64 to *big.Int and from "solve" to
// "detect contradiction / drop redundant rows".
package gauss
