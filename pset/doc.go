// SPDX-License-Identifier: MIT
//
// Package pset implements sets and basic sets as a thin shape-checking
// layer over relation and basicrel (spec.md §2 "Wrappers": "a set [is] a
// relation whose input-tuple arity is zero, and a basic set analogously;
// the set API reuses the relation implementation by restricting
// shapes"). No algebra is re-implemented here: every function validates
// that its operands carry zero input arity, then delegates.
package pset
