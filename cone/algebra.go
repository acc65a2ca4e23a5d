// SPDX-License-Identifier: MIT

package cone

import (
	"github.com/katalvlaran/polycone/zmatrix"
)

// Intersection returns a ∩ b, canonicalized. The constraint systems are
// stacked.
// Returns ErrDimensionMismatch if the ambient dimensions differ.
func Intersection(a, b *Cone) (*Cone, error) {
	if a == nil || b == nil {
		return nil, coneErrorf("Intersection", ErrNilCone)
	}
	if a.n != b.n {
		return nil, coneErrorf("Intersection", ErrDimensionMismatch)
	}
	a.ensureH()
	b.ensureH()
	ineq, err := zmatrix.Stack(a.h.ineq, b.h.ineq)
	must(err)
	eq, err := zmatrix.Stack(a.h.eq, b.h.eq)
	must(err)
	out := fromH(a.n, ineq, eq, false, false)
	out.Canonicalize()

	return out, nil
}

// ConvexHull returns the conic hull of a ∪ b: the rays of both as generators
// and the lineality generators of both as lineality. The result is not
// canonicalized.
// Returns ErrDimensionMismatch if the ambient dimensions differ.
func ConvexHull(a, b *Cone) (*Cone, error) {
	if a == nil || b == nil {
		return nil, coneErrorf("ConvexHull", ErrNilCone)
	}
	if a.n != b.n {
		return nil, coneErrorf("ConvexHull", ErrDimensionMismatch)
	}
	a.ensureV()
	b.ensureV()
	rays, err := zmatrix.Stack(a.v.rays, b.v.rays)
	must(err)
	lin, err := zmatrix.Stack(a.v.lin, b.v.lin)
	must(err)

	return fromV(a.n, rays, lin, false, false), nil
}
