// SPDX-License-Identifier: MIT
//
// Package ivec provides arbitrary-precision integer row-vector primitives
// used as the scalar substrate of every constraint row in basicrel
// (spec.md §1 "Arbitrary-precision integer primitives and small
// integer-vector primitives", listed as an out-of-scope collaborator).
//
// Row is a thin []*big.Int wrapper with the handful of operations the core
// actually needs: dot product, negate, scale, gcd-normalize, and exact
// comparison. Nothing here parses or prints; relspace's core never touches
// floating point through this package.
package ivec
