// SPDX-License-Identifier: MIT
// Package cone: polytopes as lifted cones.
//
// A polytope (more generally a polyhedron) P ⊆ Rⁿ is stored as its
// homogenization, a cone in Rⁿ⁺¹ whose leading coordinate is the height.
// Every polytope operation is a cone operation on that lifted cone.

package cone

import (
	"github.com/katalvlaran/polycone/zmatrix"
)

// Polytope is a polyhedron represented by its lifted cone.
type Polytope struct {
	lifted *Cone
}

// PolytopeFromLifted wraps an already homogenized cone; the cone is copied.
func PolytopeFromLifted(lifted *Cone) (*Polytope, error) {
	if lifted == nil {
		return nil, coneErrorf("PolytopeFromLifted", ErrNilCone)
	}
	if lifted.n < 1 {
		return nil, coneErrorf("PolytopeFromLifted", ErrInvalidDimension)
	}

	return &Polytope{lifted: lifted.Clone()}, nil
}

// Cone returns the lifted cone (a view, not a copy).
func (p *Polytope) Cone() *Cone { return p.lifted }

// Clone returns an independent deep copy.
func (p *Polytope) Clone() *Polytope { return &Polytope{lifted: p.lifted.Clone()} }

// AmbientDimension returns the dimension of the unlifted space.
func (p *Polytope) AmbientDimension() int { return p.lifted.n - 1 }

// Dimension returns the dimension of the polyhedron.
func (p *Polytope) Dimension() int { return p.lifted.Dimension() - 1 }

// Codimension equals the codimension of the lifted cone.
func (p *Polytope) Codimension() int { return p.lifted.Codimension() }

// Canonicalize canonicalizes the lifted cone.
func (p *Polytope) Canonicalize() { p.lifted.Canonicalize() }

// Equal compares the lifted cones.
func (p *Polytope) Equal(o *Polytope) bool {
	if o == nil {
		return false
	}

	return p.lifted.Equal(o.lifted)
}

func (p *Polytope) String() string { return p.lifted.String() }

// LiftUpMatrix returns the (r+1)×(c+1) matrix with a 1 in the top-left
// corner and m in the lower-right block.
func LiftUpMatrix(m zmatrix.ZMatrix) zmatrix.ZMatrix {
	top := zmatrix.NewVector(m.Cols() + 1)
	must(top.SetInt64(0, 1))
	out := zmatrix.Empty(m.Cols() + 1)
	must(out.AppendRow(top))
	must(out.Append(m.PadLeft(1)))

	return out
}

// LiftUp returns the homogenization {(t, x) : t >= 0, x ∈ c} as a cone in
// dimension n+1. The inequalities gain the row t >= 0; the equations gain a
// zero leading coefficient, since a leading 1 would pin t to 0.
func LiftUp(c *Cone) *Cone {
	c.ensureH()

	return fromH(c.n+1, LiftUpMatrix(c.h.ineq), c.h.eq.PadLeft(1), false, false)
}

// ConeToPolytope views a cone as a polyhedron: its lifted cone.
func ConeToPolytope(c *Cone) (*Polytope, error) {
	if c == nil {
		return nil, coneErrorf("ConeToPolytope", ErrNilCone)
	}

	return &Polytope{lifted: LiftUp(c)}, nil
}

// IntersectConePolytope lifts c and intersects; the result is canonical.
func IntersectConePolytope(c *Cone, p *Polytope) (*Polytope, error) {
	if c == nil || p == nil {
		return nil, coneErrorf("IntersectConePolytope", ErrNilCone)
	}

	return intersectLifted("IntersectConePolytope", LiftUp(c), p.lifted)
}

// IntersectPolytopeCone lifts c and intersects; the result is canonical.
func IntersectPolytopeCone(p *Polytope, c *Cone) (*Polytope, error) {
	if c == nil || p == nil {
		return nil, coneErrorf("IntersectPolytopeCone", ErrNilCone)
	}

	return intersectLifted("IntersectPolytopeCone", p.lifted, LiftUp(c))
}

// IntersectPolytopes intersects two polyhedra; the result is canonical.
func IntersectPolytopes(p, q *Polytope) (*Polytope, error) {
	if p == nil || q == nil {
		return nil, coneErrorf("IntersectPolytopes", ErrNilCone)
	}

	return intersectLifted("IntersectPolytopes", p.lifted, q.lifted)
}

func intersectLifted(op string, a, b *Cone) (*Polytope, error) {
	if a.n != b.n {
		return nil, coneErrorf(op, ErrDimensionMismatch)
	}
	out, err := Intersection(a, b)
	if err != nil {
		return nil, coneErrorf(op, err)
	}

	return &Polytope{lifted: out}, nil
}

// HullConePolytope is the hull of a lifted cone and a polyhedron. The
// result keeps the lineality of the lifted cone and drops the lineality of
// the polyhedron.
func HullConePolytope(c *Cone, p *Polytope) (*Polytope, error) {
	if c == nil || p == nil {
		return nil, coneErrorf("HullConePolytope", ErrNilCone)
	}
	lc := LiftUp(c)
	if lc.n != p.lifted.n {
		return nil, coneErrorf("HullConePolytope", ErrDimensionMismatch)
	}

	return hullLifted(lc, p.lifted, lc.GeneratorsOfLinealitySpace()), nil
}

// HullPolytopeCone is the hull of a polyhedron and a lifted cone. Unlike
// HullConePolytope, no lineality is kept.
func HullPolytopeCone(p *Polytope, c *Cone) (*Polytope, error) {
	if c == nil || p == nil {
		return nil, coneErrorf("HullPolytopeCone", ErrNilCone)
	}
	lc := LiftUp(c)
	if lc.n != p.lifted.n {
		return nil, coneErrorf("HullPolytopeCone", ErrDimensionMismatch)
	}

	return hullLifted(p.lifted, lc, zmatrix.Empty(lc.n)), nil
}

// HullPolytopes is the hull of two polyhedra; no lineality is kept.
func HullPolytopes(p, q *Polytope) (*Polytope, error) {
	if p == nil || q == nil {
		return nil, coneErrorf("HullPolytopes", ErrNilCone)
	}
	if p.lifted.n != q.lifted.n {
		return nil, coneErrorf("HullPolytopes", ErrDimensionMismatch)
	}

	return hullLifted(p.lifted, q.lifted, zmatrix.Empty(p.lifted.n)), nil
}

// hullLifted stacks the extreme rays of a and b over the given lineality.
func hullLifted(a, b *Cone, lin zmatrix.ZMatrix) *Polytope {
	rays, err := zmatrix.Stack(a.ExtremeRays(), b.ExtremeRays())
	must(err)

	return &Polytope{lifted: fromV(a.n, rays, lin, false, false)}
}
