// SPDX-License-Identifier: MIT
// Package cone: sentinel error set. Every fallible operation returns one of
// these wrapped with the operation tag; no operation panics on user input.

package cone

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates that column counts or ambient dimensions disagree.
	ErrDimensionMismatch = errors.New("cone: dimension mismatch")

	// ErrInvalidFlags indicates a representation-knowledge flag outside [0, 3].
	ErrInvalidFlags = errors.New("cone: flags must be in [0, 3]")

	// ErrInvalidDimension indicates a negative ambient dimension.
	ErrInvalidDimension = errors.New("cone: ambient dimension must be >= 0")

	// ErrInvalidConeShape indicates an unmet geometric precondition, e.g. a
	// semigroup generator requested from a cone that is not a ray modulo lineality.
	ErrInvalidConeShape = errors.New("cone: invalid cone shape")

	// ErrPointNotInCone indicates that a point argument lies outside the cone.
	ErrPointNotInCone = errors.New("cone: point not in cone")

	// ErrNilCone indicates a nil *Cone or *Polytope argument.
	ErrNilCone = errors.New("cone: nil cone")
)

func coneErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// must panics on errors that valid internal state cannot produce.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("cone: internal invariant violated: %v", err))
	}
}
