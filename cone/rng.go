// SPDX-License-Identifier: MIT
// Package cone: deterministic random streams.
//
// math/rand.Rand is not goroutine-safe; every RandomPoint call owns its stream.

package cone

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// seed == 0 selects defaultRNGSeed; any other seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
