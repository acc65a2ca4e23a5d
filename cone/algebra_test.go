// SPDX-License-Identifier: MIT
// Package cone_test contains tests for the cone algebra and membership.
package cone_test

import (
	"testing"

	"github.com/katalvlaran/polycone/cone"
	"github.com/katalvlaran/polycone/zmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PropertySuite checks algebraic laws over a fixed family of cones.
type PropertySuite struct {
	suite.Suite
	family map[string]func() *cone.Cone
}

// SetupTest rebuilds the family so every test owns fresh cones.
func (s *PropertySuite) SetupTest() {
	s.family = map[string]func() *cone.Cone{
		"quadrant":   quadrant,
		"half-plane": halfPlane,
		"ray": func() *cone.Cone {
			return cone.FromRays(mat(2, []int{3, 1}))
		},
		"wedge": func() *cone.Cone {
			return cone.FromInequalities(mat(2, []int{1, -1}, []int{0, 1}))
		},
		"origin": func() *cone.Cone {
			c, _ := cone.New(2)
			return c
		},
	}
}

// TestCanonicalizeIdempotent: canonicalize twice changes nothing.
func (s *PropertySuite) TestCanonicalizeIdempotent() {
	for name, mk := range s.family {
		c := mk()
		c.Canonicalize()
		f, e := c.Facets(), c.ImpliedEquations()
		c.Canonicalize()
		s.True(f.Equal(c.Facets()), name)
		s.True(e.Equal(c.ImpliedEquations()), name)
	}
}

// TestIntersectionCommutes: A ∩ B == B ∩ A.
func (s *PropertySuite) TestIntersectionCommutes() {
	for na, ma := range s.family {
		for nb, mb := range s.family {
			ab, err := cone.Intersection(ma(), mb())
			s.Require().NoError(err)
			ba, err := cone.Intersection(mb(), ma())
			s.Require().NoError(err)
			s.True(ab.Equal(ba), "%s ∩ %s", na, nb)
		}
	}
}

// TestRebuildFromGenerators: rays and lineality describe the same cone.
func (s *PropertySuite) TestRebuildFromGenerators() {
	for name, mk := range s.family {
		c := mk()
		r, err := cone.FromRaysFlags(c.ExtremeRays(), c.GeneratorsOfLinealitySpace(), cone.FlagLinealityExact|cone.FlagRaysExtreme)
		s.Require().NoError(err)
		s.True(r.Equal(c), name)
	}
}

// TestIntersectionWithSelf: A ∩ A == A.
func (s *PropertySuite) TestIntersectionWithSelf() {
	for name, mk := range s.family {
		c, err := cone.Intersection(mk(), mk())
		s.Require().NoError(err)
		s.True(c.Equal(mk()), name)
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

// TestDualOfDual holds for full-dimensional pointed cones.
func TestDualOfDual(t *testing.T) {
	for _, c := range []*cone.Cone{quadrant(), squareCone(), cone.FromInequalities(mat(2, []int{1, -1}, []int{0, 1}))} {
		dd := c.Dual().Dual()
		require.True(t, dd.Equal(c), "dual of dual of\n%v", c)
	}

	d := quadrant().Dual()
	requireMatrix(t, mat(2, []int{0, 1}, []int{1, 0}), d.ExtremeRays())
}

// TestConvexHullOfAxes: the hull of the two axis rays is the quadrant.
func TestConvexHullOfAxes(t *testing.T) {
	a := cone.FromRays(mat(2, []int{1, 0}))
	b := cone.FromRays(mat(2, []int{0, 1}))
	h, err := cone.ConvexHull(a, b)
	require.NoError(t, err)
	assert.Equal(t, cone.VOnly, h.Representation()) // not canonicalized

	h.Canonicalize()
	assert.Equal(t, 2, h.ExtremeRays().Rows())
	assert.Equal(t, 2, h.Dimension())
	assert.True(t, h.Equal(quadrant()))

	_, err = cone.ConvexHull(a, squareCone())
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
	_, err = cone.ConvexHull(a, nil)
	require.ErrorIs(t, err, cone.ErrNilCone)
}

// TestConvexHullKeepsLineality stacks lineality generators.
func TestConvexHullKeepsLineality(t *testing.T) {
	h, err := cone.ConvexHull(halfPlane(), quadrant())
	require.NoError(t, err)
	assert.Equal(t, 1, h.DimensionOfLinealitySpace())
	assert.True(t, h.Equal(halfPlane()))
}

// TestIntersection computes a wedge.
func TestIntersection(t *testing.T) {
	w := cone.FromInequalities(mat(2, []int{1, -1}))
	c, err := cone.Intersection(quadrant(), w)
	require.NoError(t, err)
	assert.Equal(t, cone.Canonical, c.Representation())
	requireMatrix(t, mat(2, []int{1, 0}, []int{1, 1}), c.ExtremeRays())

	_, err = cone.Intersection(quadrant(), squareCone())
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
}

// TestContains covers point membership.
func TestContains(t *testing.T) {
	q := quadrant()
	cases := []struct {
		p                zmatrix.ZVector
		inside, interior bool
	}{
		{vec(1, 1), true, true},
		{vec(1, 0), true, false},
		{vec(0, 0), true, false},
		{vec(-1, 0), false, false},
	}
	for _, tc := range cases {
		in, err := q.Contains(tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.inside, in, "contains %v", tc.p)
		rel, err := q.ContainsRelatively(tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.interior, rel, "relative interior %v", tc.p)
	}

	_, err := q.Contains(vec(1, 0, 0))
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
	_, err = q.ContainsRelatively(vec(1))
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
}

// TestContainsRelativelyLowerDimensional drops inequalities that vanish on the cone.
func TestContainsRelativelyLowerDimensional(t *testing.T) {
	c, err := cone.FromInequalitiesEquations(mat(3, []int{1, 0, 0}, []int{0, 1, 0}, []int{0, 0, 1}), mat(3, []int{0, 0, 1}))
	require.NoError(t, err)
	rel, err := c.ContainsRelatively(vec(1, 1, 0))
	require.NoError(t, err)
	assert.True(t, rel)
}

// TestContainsCone covers cone inclusion, lineality included.
func TestContainsCone(t *testing.T) {
	q := quadrant()
	ok, err := q.ContainsCone(cone.FromRays(mat(2, []int{1, 1})))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q.ContainsCone(cone.FromRays(mat(2, []int{1, -1})))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = halfPlane().ContainsCone(q)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q.ContainsCone(halfPlane())
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = q.ContainsCone(squareCone())
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
}

// TestLink covers the origin, a boundary point and a point outside.
func TestLink(t *testing.T) {
	q := quadrant()
	l, err := q.Link(vec(0, 0))
	require.NoError(t, err)
	assert.True(t, l.Equal(quadrant()))

	q.SetMultiplicity(bigInt(7))
	require.NoError(t, q.SetLinearForms(mat(2, []int{1, 2})))
	l, err = q.Link(vec(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, l.DimensionOfLinealitySpace())
	assert.Equal(t, int64(7), l.Multiplicity().Int64())
	requireMatrix(t, mat(2, []int{1, 2}), l.LinearForms())
	assert.True(t, l.Equal(cone.FromInequalities(mat(2, []int{0, 1}))))

	_, err = q.Link(vec(-1, 0))
	require.ErrorIs(t, err, cone.ErrPointNotInCone)
	_, err = q.Link(vec(0))
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
}

// TestFaceContainingAndHasFace walks the faces of the quadrant.
func TestFaceContainingAndHasFace(t *testing.T) {
	q := quadrant()
	f, err := q.FaceContaining(vec(3, 0))
	require.NoError(t, err)
	assert.Equal(t, cone.Canonical, f.Representation())
	assert.True(t, f.Equal(cone.FromRays(mat(2, []int{1, 0}))))

	f, err = q.FaceContaining(vec(0, 0))
	require.NoError(t, err)
	assert.True(t, f.IsOrigin())

	ok, err := q.HasFace(cone.FromRays(mat(2, []int{1, 0})))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q.HasFace(quadrant())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = q.HasFace(cone.FromRays(mat(2, []int{1, 1})))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = q.HasFace(cone.FromRays(mat(2, []int{-1, 0})))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = q.HasFace(squareCone())
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
}

// TestFaceContainingRejectsOutsidePoints: a point outside has no face.
func TestFaceContainingRejectsOutsidePoints(t *testing.T) {
	q := quadrant()
	for _, v := range [][]int64{{-1, 1}, {1, -1}, {-2, -3}} {
		_, err := q.FaceContaining(vec(v...))
		require.ErrorIs(t, err, cone.ErrPointNotInCone)
	}

	_, err := q.FaceContaining(vec(1, 2, 3))
	require.ErrorIs(t, err, cone.ErrDimensionMismatch)
}
