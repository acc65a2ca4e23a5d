// SPDX-License-Identifier: MIT
// Package cone_test contains tests for lifted polytopes.
package cone_test

import (
	"testing"

	"github.com/katalvlaran/polycone/cone"
	"github.com/katalvlaran/polycone/zmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLiftUpMatrix prepends the homogenizing row and column.
func TestLiftUpMatrix(t *testing.T) {
	requireMatrix(t, mat(3, []int{1, 0, 0}, []int{0, 1, 2}), cone.LiftUpMatrix(mat(2, []int{1, 2})))
	requireMatrix(t, mat(3, []int{1, 0, 0}), cone.LiftUpMatrix(zmatrix.Empty(2)))
}

// TestConeToPolytopeDimensions: the lifted cone lives one dimension up.
func TestConeToPolytopeDimensions(t *testing.T) {
	for _, c := range []*cone.Cone{quadrant(), halfPlane(), squareCone()} {
		p, err := cone.ConeToPolytope(c)
		require.NoError(t, err)
		assert.Equal(t, c.AmbientDimension()+1, p.Cone().AmbientDimension())
		assert.Equal(t, c.AmbientDimension(), p.AmbientDimension())
		assert.Equal(t, c.Dimension(), p.Dimension())
		assert.Equal(t, c.Codimension(), p.Codimension())
	}

	_, err := cone.ConeToPolytope(nil)
	require.ErrorIs(t, err, cone.ErrNilCone)
}

// TestLiftUpKeepsEquations lifts equations with a zero height coefficient.
func TestLiftUpKeepsEquations(t *testing.T) {
	c, err := cone.FromInequalitiesEquations(mat(2, []int{1, 0}), mat(2, []int{0, 1}))
	require.NoError(t, err)
	l := cone.LiftUp(c)
	requireMatrix(t, mat(3, []int{0, 0, 1}), l.Equations())
	requireMatrix(t, mat(3, []int{1, 0, 0}, []int{0, 1, 0}), l.Inequalities())
	assert.Equal(t, 2, l.Dimension())
}

// TestPolytopeIntersections covers all three operand kinds.
func TestPolytopeIntersections(t *testing.T) {
	p, err := cone.ConeToPolytope(quadrant())
	require.NoError(t, err)

	a, err := cone.IntersectConePolytope(quadrant(), p)
	require.NoError(t, err)
	assert.True(t, a.Equal(p))

	b, err := cone.IntersectPolytopeCone(p, halfPlane())
	require.NoError(t, err)
	assert.True(t, b.Equal(p))

	c, err := cone.IntersectPolytopes(p, p.Clone())
	require.NoError(t, err)
	assert.Equal(t, cone.Canonical, c.Cone().Representation())
	assert.True(t, c.Equal(p))

	big, err := cone.ConeToPolytope(squareCone())
	require.NoError(t, err)
	_, err = cone.IntersectConePolytope(quadrant(), big)
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
	_, err = cone.IntersectPolytopes(p, big)
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
	_, err = cone.IntersectPolytopeCone(nil, quadrant())
	require.ErrorIs(t, err, cone.ErrNilCone)
}

// TestPolytopeHullLinealityAsymmetry: cone ⊕ polytope keeps the lifted
// cone's lineality, polytope ⊕ cone and polytope ⊕ polytope drop it.
func TestPolytopeHullLinealityAsymmetry(t *testing.T) {
	p, err := cone.ConeToPolytope(quadrant())
	require.NoError(t, err)

	cp, err := cone.HullConePolytope(halfPlane(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, cp.Cone().DimensionOfLinealitySpace())

	pc, err := cone.HullPolytopeCone(p, halfPlane())
	require.NoError(t, err)
	assert.Equal(t, 0, pc.Cone().DimensionOfLinealitySpace())

	hp, err := cone.ConeToPolytope(halfPlane())
	require.NoError(t, err)
	pp, err := cone.HullPolytopes(hp, p)
	require.NoError(t, err)
	assert.Equal(t, 0, pp.Cone().DimensionOfLinealitySpace())

	same, err := cone.HullPolytopes(p, p.Clone())
	require.NoError(t, err)
	assert.True(t, same.Equal(p))

	big, err := cone.ConeToPolytope(squareCone())
	require.NoError(t, err)
	_, err = cone.HullConePolytope(quadrant(), big)
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
	_, err = cone.HullPolytopeCone(big, quadrant())
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
	_, err = cone.HullPolytopes(big, p)
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
}

// TestPolytopeFromLifted validates its argument.
func TestPolytopeFromLifted(t *testing.T) {
	_, err := cone.PolytopeFromLifted(nil)
	require.ErrorIs(t, err, cone.ErrNilCone)

	z, err := cone.New(0)
	require.NoError(t, err)
	_, err = cone.PolytopeFromLifted(z)
	require.ErrorIs(t, err, cone.ErrInvalidDimension)

	p, err := cone.PolytopeFromLifted(squareCone())
	require.NoError(t, err)
	assert.Equal(t, 2, p.AmbientDimension())
	assert.Equal(t, 2, p.Dimension())
}
