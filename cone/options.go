// SPDX-License-Identifier: MIT
// Package cone: functional options for RandomPoint.
//
// Design:
//   - Deterministic behavior: the default seed is fixed, no time-based sources.
//   - WithX constructors panic on nonsensical values (programmer error).

package cone

import "math"

// Defaults for RandomPoint.
const (
	// DefaultSeed selects the fixed default stream (see rngFromSeed).
	DefaultSeed int64 = 0

	// DefaultMagnitude bounds every random coefficient: 0 <= k <= DefaultMagnitude.
	DefaultMagnitude int64 = 1000
)

// RandomOptions configures RandomPoint.
type RandomOptions struct {
	Seed      int64
	Magnitude int64
}

// RandomOption mutates RandomOptions.
type RandomOption func(*RandomOptions)

// DefaultRandomOptions returns the documented defaults.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{Seed: DefaultSeed, Magnitude: DefaultMagnitude}
}

// WithSeed fixes the random stream; 0 selects the default stream.
func WithSeed(seed int64) RandomOption {
	return func(o *RandomOptions) { o.Seed = seed }
}

// WithMagnitude bounds the coefficients. Panics if m < 0 or m == MaxInt64.
func WithMagnitude(m int64) RandomOption {
	if m < 0 || m == math.MaxInt64 {
		panic("cone: WithMagnitude(m < 0)")
	}

	return func(o *RandomOptions) { o.Magnitude = m }
}

func gatherRandomOptions(opts []RandomOption) RandomOptions {
	o := DefaultRandomOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
