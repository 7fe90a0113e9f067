// SPDX-License-Identifier: MIT
//
// File: sample.go
// Role: the cached-sample accessor pair used by the sample package,
// kept in basicrel since the cache field itself is private
// (spec.md §4.3 "sample cache").
package basicrel

import "github.com/katalvlaran/relspace/ivec"

// SetSample installs x as b's cached sample point. Does not verify x
// satisfies b: callers (the sample package) are expected to have just
// confirmed that.
func SetSample(b *BasicRelation, x ivec.Row) {
	if b == nil {
		return
	}
	b.sample = x
}
