// SPDX-License-Identifier: MIT
// Package cone_test contains unit tests for derived queries.
package cone_test

import (
	"testing"

	"github.com/katalvlaran/polycone/cone"
	"github.com/katalvlaran/polycone/zmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQuadrant checks the nonnegative quadrant of the plane.
func TestQuadrant(t *testing.T) {
	q := quadrant()
	assert.Equal(t, 2, q.Dimension())
	assert.Equal(t, 0, q.Codimension())
	assert.False(t, q.IsFullSpace())
	assert.False(t, q.IsOrigin())
	assert.True(t, q.ContainsPositiveVector())
	assert.True(t, q.IsSimplicial())
	assert.Equal(t, 0, q.DimensionOfLinealitySpace())

	requireMatrix(t, mat(2, []int{0, 1}, []int{1, 0}), q.ExtremeRays())
	requireMatrix(t, zmatrix.Empty(2), q.GeneratorsOfLinealitySpace())
	assert.True(t, q.RelativeInteriorPoint().Equal(vec(1, 1)))
	assert.True(t, q.UniquePoint().Equal(vec(1, 1)))
}

// TestOppositeHalfPlanesCollapse checks four half-planes give the origin.
func TestOppositeHalfPlanesCollapse(t *testing.T) {
	c := cone.FromInequalities(mat(2, []int{1, 0}, []int{0, 1}, []int{-1, 0}, []int{0, -1}))
	c.Canonicalize()
	assert.Equal(t, 0, c.Dimension())
	assert.True(t, c.IsOrigin())
	requireMatrix(t, zmatrix.Empty(2), c.Facets())
	requireMatrix(t, mat(2, []int{1, 0}, []int{0, 1}), c.ImpliedEquations())

	o, err := cone.New(2)
	require.NoError(t, err)
	assert.True(t, c.Equal(o))
}

// TestHalfPlane has a one-dimensional lineality space.
func TestHalfPlane(t *testing.T) {
	h := halfPlane()
	assert.Equal(t, 2, h.Dimension())
	assert.Equal(t, 1, h.DimensionOfLinealitySpace())
	assert.False(t, h.IsFullSpace())
	assert.True(t, h.IsSimplicial())
	requireMatrix(t, mat(2, []int{1, 0}), h.ExtremeRays())
	requireMatrix(t, mat(2, []int{0, 1}), h.GeneratorsOfLinealitySpace())

	l := h.LinealitySpace()
	assert.Equal(t, 1, l.Dimension())
	assert.Equal(t, 1, l.DimensionOfLinealitySpace())

	full := cone.FromInequalities(zmatrix.Empty(2))
	assert.True(t, full.IsFullSpace())
	assert.True(t, full.ContainsPositiveVector())
}

// TestSquareConeNotSimplicial has four facets in dimension three.
func TestSquareConeNotSimplicial(t *testing.T) {
	s := squareCone()
	assert.Equal(t, 3, s.Dimension())
	assert.False(t, s.IsSimplicial())
	requireMatrix(t, mat(3, []int{-1, 0, 1}, []int{0, -1, 1}, []int{0, 1, 1}, []int{1, 0, 1}), s.Facets())
	assert.True(t, s.RelativeInteriorPoint().Equal(vec(0, 0, 1)))
	assert.True(t, s.UniquePoint().Equal(vec(0, 0, 4)))
}

// TestContainsPositiveVectorFalse uses a ray on an axis.
func TestContainsPositiveVectorFalse(t *testing.T) {
	assert.False(t, cone.FromRays(mat(2, []int{1, 0})).ContainsPositiveVector())
	assert.False(t, cone.FromInequalities(mat(2, []int{-1, 0})).ContainsPositiveVector())
}

// TestSpanAndQuotientLattice covers lattice queries on a ray and a half-plane.
func TestSpanAndQuotientLattice(t *testing.T) {
	r := cone.FromRays(mat(2, []int{2, 2}))
	assert.Equal(t, 1, r.Dimension())
	requireMatrix(t, mat(2, []int{1, -1}), r.ImpliedEquations())
	requireMatrix(t, mat(2, []int{1, 1}), r.GeneratorsOfSpan())
	requireMatrix(t, mat(2, []int{1, 1}), r.QuotientLatticeBasis())

	h := halfPlane()
	requireMatrix(t, mat(2, []int{1, 0}, []int{0, 1}), h.GeneratorsOfSpan())
	requireMatrix(t, mat(2, []int{1, 0}), h.QuotientLatticeBasis())
}

// TestSemiGroupGeneratorOfRay returns the primitive generator pointing into the cone.
func TestSemiGroupGeneratorOfRay(t *testing.T) {
	g, err := cone.FromRays(mat(2, []int{-2, -2})).SemiGroupGeneratorOfRay()
	require.NoError(t, err)
	assert.True(t, g.Equal(vec(-1, -1)), "got %v", g)

	g, err = halfPlane().SemiGroupGeneratorOfRay()
	require.NoError(t, err)
	assert.True(t, g.Equal(vec(1, 0)), "got %v", g)

	_, err = quadrant().SemiGroupGeneratorOfRay()
	require.ErrorIs(t, err, cone.ErrInvalidConeShape)
}

// TestNegated flips the cone through the origin.
func TestNegated(t *testing.T) {
	n := quadrant().Negated()
	ok, err := n.Contains(vec(-1, -2))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = n.Contains(vec(1, 0))
	require.NoError(t, err)
	assert.False(t, ok)

	s := squareCone()
	s.ExtremeRays()
	// cached generators are negated row by row
	requireMatrix(t, mat(3, []int{1, 1, -1}, []int{1, -1, -1}, []int{-1, 1, -1}, []int{-1, -1, -1}), s.Negated().ExtremeRays())
}
