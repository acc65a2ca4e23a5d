// SPDX-License-Identifier: MIT

package cone

import (
	"math/big"

	"github.com/katalvlaran/polycone/zmatrix"
)

// AmbientDimension returns n.
func (c *Cone) AmbientDimension() int { return c.n }

// Dimension returns the dimension of the linear span of the cone.
func (c *Cone) Dimension() int {
	c.ensureImplied()

	return c.n - c.h.eq.Rank()
}

// Codimension returns AmbientDimension() - Dimension().
func (c *Cone) Codimension() int { return c.n - c.Dimension() }

// DimensionOfLinealitySpace returns the dimension of the largest linear
// subspace contained in the cone.
func (c *Cone) DimensionOfLinealitySpace() int {
	c.ensureH()
	all, err := zmatrix.Stack(c.h.ineq, c.h.eq)
	must(err)

	return c.n - all.Rank()
}

// IsOrigin reports whether the cone is {0}.
func (c *Cone) IsOrigin() bool { return c.Dimension() == 0 }

// IsFullSpace reports whether the cone is all of Rⁿ.
func (c *Cone) IsFullSpace() bool { return c.DimensionOfLinealitySpace() == c.n }

// IsSimplicial reports whether the cone is simplicial modulo its lineality
// space: codimension + facets + lineality dimension == n.
func (c *Cone) IsSimplicial() bool {
	c.ensureFacets()

	return c.Codimension()+c.h.ineq.Rows()+c.DimensionOfLinealitySpace() == c.n
}

// ContainsPositiveVector reports whether the cone meets the open positive
// orthant.
func (c *Cone) ContainsPositiveVector() bool {
	c.ensureH()
	id, err := zmatrix.Identity(c.n)
	must(err)
	ineq, err := zmatrix.Stack(c.h.ineq, id)
	must(err)
	meet := fromH(c.n, ineq, c.h.eq.Clone(), false, false)

	return meet.RelativeInteriorPoint().IsPositive()
}

// Multiplicity returns the attached multiplicity annotation (default 1).
func (c *Cone) Multiplicity() *big.Int { return new(big.Int).Set(c.multiplicity) }

// SetMultiplicity attaches a multiplicity; nil resets it to 1.
func (c *Cone) SetMultiplicity(m *big.Int) {
	if m == nil {
		c.multiplicity = big.NewInt(1)
		return
	}
	c.multiplicity = new(big.Int).Set(m)
}

// LinearForms returns the attached linear forms (default 0×n).
func (c *Cone) LinearForms() zmatrix.ZMatrix { return c.linearForms.Clone() }

// SetLinearForms attaches linear forms; their width must be n.
func (c *Cone) SetLinearForms(m zmatrix.ZMatrix) error {
	if m.Cols() != c.n {
		return coneErrorf("SetLinearForms", ErrDimensionMismatch)
	}
	c.linearForms = m.Clone()

	return nil
}

// Inequalities returns the current inequality rows.
func (c *Cone) Inequalities() zmatrix.ZMatrix {
	c.ensureH()

	return c.h.ineq.Clone()
}

// Equations returns the current equation rows.
func (c *Cone) Equations() zmatrix.ZMatrix {
	c.ensureH()

	return c.h.eq.Clone()
}

// Facets returns the facet normals.
func (c *Cone) Facets() zmatrix.ZMatrix {
	c.ensureFacets()

	return c.h.ineq.Clone()
}

// ImpliedEquations returns a basis of the implied equations.
func (c *Cone) ImpliedEquations() zmatrix.ZMatrix {
	c.ensureImplied()

	return c.h.eq.Clone()
}

// ExtremeRays returns one primitive generator per extreme ray, reduced
// modulo the lineality space.
func (c *Cone) ExtremeRays() zmatrix.ZMatrix {
	c.ensureV()

	return c.v.rays.Clone()
}

// GeneratorsOfLinealitySpace returns a basis of the lineality space.
func (c *Cone) GeneratorsOfLinealitySpace() zmatrix.ZMatrix {
	c.ensureV()

	return c.v.lin.Clone()
}

// GeneratorsOfSpan returns a lattice basis of the linear span's integer points.
func (c *Cone) GeneratorsOfSpan() zmatrix.ZMatrix {
	c.ensureImplied()

	return c.h.eq.Kernel()
}

// QuotientLatticeBasis returns integer vectors whose classes form a basis of
// (span ∩ Zⁿ) / (lineality ∩ Zⁿ).
func (c *Cone) QuotientLatticeBasis() zmatrix.ZMatrix {
	c.ensureImplied()
	q, _, err := zmatrix.SplitByForms(c.h.eq.Kernel(), c.h.ineq)
	must(err)

	return q
}

// RelativeInteriorPoint returns a primitive integer point in the relative
// interior: the normalized sum of the extreme rays.
func (c *Cone) RelativeInteriorPoint() zmatrix.ZVector {
	c.ensureV()

	return sumRows(c.v.rays).Normalized()
}

// UniquePoint returns the sum of the extreme rays. It depends only on the
// cone, so it identifies a cone among cones sharing a lineality space.
func (c *Cone) UniquePoint() zmatrix.ZVector {
	c.ensureV()

	return sumRows(c.v.rays)
}

// SemiGroupGeneratorOfRay returns the primitive lattice generator of a cone
// that is a single ray modulo its lineality space.
// Returns ErrInvalidConeShape unless Dimension() == DimensionOfLinealitySpace()+1.
func (c *Cone) SemiGroupGeneratorOfRay() (zmatrix.ZVector, error) {
	if c.Dimension() != c.DimensionOfLinealitySpace()+1 {
		return zmatrix.ZVector{}, coneErrorf("SemiGroupGeneratorOfRay", ErrInvalidConeShape)
	}
	g := c.QuotientLatticeBasis().Row(0)
	for i := 0; i < c.h.ineq.Rows(); i++ {
		if dotOf(g, c.h.ineq.Row(i)).Sign() < 0 {
			return g.Neg(), nil
		}
	}

	return g.Clone(), nil
}

// Dual returns { y : y·x >= 0 for all x in the cone }. Its generators are
// the current inequalities and ± the equations.
func (c *Cone) Dual() *Cone {
	c.ensureH()

	return fromV(c.n, c.h.ineq.Clone(), c.h.eq.Clone(), false, false)
}

// Negated returns -C. Both cached descriptions carry over.
func (c *Cone) Negated() *Cone {
	out := &Cone{n: c.n, multiplicity: big.NewInt(1), linearForms: zmatrix.Empty(c.n)}
	if c.h != nil {
		out.h = &hrep{
			ineq:         c.h.ineq.Neg(),
			eq:           c.h.eq.Clone(),
			impliedKnown: c.h.impliedKnown,
			facetsKnown:  c.h.facetsKnown,
		}
	}
	if c.v != nil {
		out.v = &vrep{
			rays:        c.v.rays.Neg(),
			lin:         c.v.lin.Clone(),
			linExact:    c.v.linExact,
			raysExtreme: c.v.raysExtreme,
		}
	}

	return out
}

// LinealitySpace returns the lineality space as a cone: every constraint
// becomes an equation.
func (c *Cone) LinealitySpace() *Cone {
	c.ensureH()
	eq, err := zmatrix.Stack(c.h.eq, c.h.ineq)
	must(err)

	return fromH(c.n, zmatrix.Empty(c.n), eq, false, false)
}

// Equal reports whether c and o are the same cone. Both are canonicalized,
// then their facets and implied equations are compared. The normal form
// sorts rows, so this is row-set equality.
func (c *Cone) Equal(o *Cone) bool {
	if o == nil || c.n != o.n {
		return false
	}
	c.Canonicalize()
	o.Canonicalize()

	return c.h.ineq.Equal(o.h.ineq) && c.h.eq.Equal(o.h.eq)
}
