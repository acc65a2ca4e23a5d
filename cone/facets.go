// SPDX-License-Identifier: MIT
// Package cone: facet enumeration.
//
// The i-th facet cone of C keeps every facet except the i-th as an
// inequality and turns the i-th facet into an equation next to the implied
// equations of C. A cone with no facets has no facet cones; a cone with a
// single facet is handled apart, its facet cone has no inequalities left.

package cone

import (
	"github.com/katalvlaran/polycone/zmatrix"
)

// PointSet is a set of integer points keyed by exact value.
type PointSet struct {
	m map[string]struct{}
}

// NewPointSet returns a set holding copies of points.
func NewPointSet(points ...zmatrix.ZVector) *PointSet {
	s := &PointSet{m: make(map[string]struct{}, len(points))}
	for _, p := range points {
		s.Add(p)
	}

	return s
}

// Add inserts p.
func (s *PointSet) Add(p zmatrix.ZVector) {
	if s.m == nil {
		s.m = make(map[string]struct{})
	}
	s.m[p.Key()] = struct{}{}
}

// Has reports whether p is in the set. A nil set is empty.
func (s *PointSet) Has(p zmatrix.ZVector) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[p.Key()]

	return ok
}

// Len returns the number of points.
func (s *PointSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.m)
}

// facetCone builds the i-th facet cone from facets and implied equations.
func facetCone(n int, facets, eq zmatrix.ZMatrix, i int) *Cone {
	var ineq zmatrix.ZMatrix
	switch facets.Rows() {
	case 1:
		ineq = zmatrix.Empty(n)
	default:
		var err error
		ineq, err = facets.WithoutRow(i)
		must(err)
	}
	eqs := eq.Clone()
	must(eqs.AppendRow(facets.Row(i)))

	return fromH(n, ineq, eqs, false, false)
}

// ListOfFacets returns one cone per facet of c, in facet order.
func ListOfFacets(c *Cone) ([]*Cone, error) {
	if c == nil {
		return nil, coneErrorf("ListOfFacets", ErrNilCone)
	}
	facets, eq := c.Facets(), c.ImpliedEquations()
	out := make([]*Cone, 0, facets.Rows())
	for i := 0; i < facets.Rows(); i++ {
		out = append(out, facetCone(c.n, facets, eq, i))
	}

	return out, nil
}

// InteriorPointsOfFacets returns a relative interior point of every facet of
// c, one per row, skipping points already in except.
func InteriorPointsOfFacets(c *Cone, except *PointSet) (zmatrix.ZMatrix, error) {
	if c == nil {
		return zmatrix.ZMatrix{}, coneErrorf("InteriorPointsOfFacets", ErrNilCone)
	}
	facets, eq := c.Facets(), c.ImpliedEquations()
	points := zmatrix.Empty(c.n)
	for i := 0; i < facets.Rows(); i++ {
		f := facetCone(c.n, facets, eq, i)
		f.Canonicalize()
		p := f.RelativeInteriorPoint()
		if except.Has(p) {
			continue
		}
		must(points.AppendRow(p))
	}

	return points, nil
}

// InteriorPointsAndNormalsOfFacets is InteriorPointsOfFacets that also
// returns the outer normal (the negated facet) of every kept facet. With
// onlyLowerHalfSpace a facet is kept only if its point has a negative
// first coordinate.
func InteriorPointsAndNormalsOfFacets(c *Cone, except *PointSet, onlyLowerHalfSpace bool) (points, normals zmatrix.ZMatrix, err error) {
	if c == nil {
		return zmatrix.ZMatrix{}, zmatrix.ZMatrix{}, coneErrorf("InteriorPointsAndNormalsOfFacets", ErrNilCone)
	}
	facets, eq := c.Facets(), c.ImpliedEquations()
	points, normals = zmatrix.Empty(c.n), zmatrix.Empty(c.n)
	for i := 0; i < facets.Rows(); i++ {
		p := facetCone(c.n, facets, eq, i).RelativeInteriorPoint()
		if onlyLowerHalfSpace && !lowerHalf(p) {
			continue
		}
		if except.Has(p) {
			continue
		}
		must(points.AppendRow(p))
		must(normals.AppendRow(facets.Row(i).Neg()))
	}

	return points, normals, nil
}

func lowerHalf(p zmatrix.ZVector) bool {
	if p.Len() == 0 {
		return false
	}
	x, err := p.At(0)
	must(err)

	return x.Sign() < 0
}

// FacetContaining returns the first facet whose hyperplane contains p. If no
// facet does, it returns the zero vector; that is not an error.
// Returns ErrDimensionMismatch if len(p) != n.
func FacetContaining(c *Cone, p zmatrix.ZVector) (zmatrix.ZVector, error) {
	if c == nil {
		return zmatrix.ZVector{}, coneErrorf("FacetContaining", ErrNilCone)
	}
	if err := c.checkLen("FacetContaining", p); err != nil {
		return zmatrix.ZVector{}, err
	}
	facets := c.Facets()
	for i := 0; i < facets.Rows(); i++ {
		if dotOf(facets.Row(i), p).Sign() == 0 {
			return facets.Row(i).Clone(), nil
		}
	}

	return zmatrix.NewVector(c.n), nil
}

// ListContainsCone reports whether some element of list equals c.
func ListContainsCone(list []*Cone, c *Cone) bool {
	for _, e := range list {
		if e != nil && e.Equal(c) {
			return true
		}
	}

	return false
}
