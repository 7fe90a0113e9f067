// SPDX-License-Identifier: MIT
//
// Package sample implements the bounded integer sample-point search
// collaborator spec.md §1 lists as out of core scope: finding (and
// caching on the BasicRelation) one integer point of a basic relation,
// falling back to tab's rational relaxation to pre-check emptiness
// before paying for the integer search.
package sample
