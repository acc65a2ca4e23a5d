// SPDX-License-Identifier: MIT
// Package cone: representation transitions.
//
// Every query goes through one of the ensure* methods below. Each one moves
// the Cone to a variant that carries what the query needs and caches the
// result. Transitions only add knowledge:
//
//	VOnly  --ensureH-->        Both (facets + implied equations from generators)
//	HOnly  --ensureV-->        Both (exact rays + lineality)
//	HOnly  --ensureImplied-->  implied equations known
//	any    --ensureFacets-->   facets + implied equations known
//	any    --Canonicalize-->   Canonical
//
// The conversion engine is initialized on first use by every transition.

package cone

import (
	"github.com/katalvlaran/polycone/ddm"
	"github.com/katalvlaran/polycone/zmatrix"
)

// ensureH makes the constraint description available.
func (c *Cone) ensureH() {
	if c.h != nil {
		return
	}
	ddm.EnsureInitialized()
	facets, eq, err := ddm.Facets(c.v.rays, c.v.lin)
	must(err)
	c.h = &hrep{ineq: facets, eq: eq, impliedKnown: true, facetsKnown: true, normal: true}
	tracer().Debugf("cone: constraints computed: %d facets, %d equations", facets.Rows(), eq.Rows())
}

// ensureV makes exact rays and lineality available.
func (c *Cone) ensureV() {
	if c.v != nil && c.v.exact() {
		return
	}
	ddm.EnsureInitialized()
	c.ensureH()
	rays, lin, err := ddm.Rays(c.h.ineq, c.h.eq)
	must(err)
	c.v = &vrep{rays: rays, lin: lin, linExact: true, raysExtreme: true}
	tracer().Debugf("cone: generators computed: %d rays, %d lineality", rays.Rows(), lin.Rows())
}

// ensureImplied makes the equations span the implied equations. Inequalities
// that vanish on the whole cone are dropped, so every remaining inequality
// is strictly positive somewhere on the cone.
func (c *Cone) ensureImplied() {
	c.ensureH()
	if c.h.impliedKnown {
		return
	}
	c.ensureV()
	gens, err := zmatrix.Stack(c.v.rays, c.v.lin)
	must(err)
	eq := gens.Kernel().RowEchelon()

	ineq := zmatrix.Empty(c.n)
	for i := 0; i < c.h.ineq.Rows(); i++ {
		a := c.h.ineq.Row(i)
		if vanishesOn(a, c.v.rays) {
			continue
		}
		must(ineq.AppendRow(a))
	}
	c.h = &hrep{ineq: ineq, eq: eq, impliedKnown: true, facetsKnown: c.h.facetsKnown}
}

// ensureFacets makes the inequalities facets and the equations implied.
func (c *Cone) ensureFacets() {
	c.ensureH()
	if c.h.facetsKnown && c.h.impliedKnown {
		return
	}
	ddm.EnsureInitialized()
	c.ensureV()
	facets, eq, err := ddm.Facets(c.v.rays, c.v.lin)
	must(err)
	c.h = &hrep{ineq: facets, eq: eq, impliedKnown: true, facetsKnown: true, normal: true}
}

// Canonicalize moves the cone to the Canonical variant: facets and implied
// equations known, equations in echelon form, every facet primitive,
// reduced modulo the equations and sorted. It is idempotent.
func (c *Cone) Canonicalize() {
	c.ensureFacets()
	c.ensureV()
	if c.h.normal {
		return
	}
	eq := c.h.eq.RowEchelon()
	seen := make(map[string]struct{}, c.h.ineq.Rows())
	ineq := zmatrix.Empty(c.n)
	for i := 0; i < c.h.ineq.Rows(); i++ {
		r, err := zmatrix.ReduceModulo(c.h.ineq.Row(i), eq)
		must(err)
		if r.IsZero() {
			continue
		}
		if _, dup := seen[r.Key()]; dup {
			continue
		}
		seen[r.Key()] = struct{}{}
		must(ineq.AppendRow(r))
	}
	c.h = &hrep{ineq: ineq.SortedRows(), eq: eq, impliedKnown: true, facetsKnown: true, normal: true}
}

// vanishesOn reports whether a·r = 0 for every row r of m.
func vanishesOn(a zmatrix.ZVector, m zmatrix.ZMatrix) bool {
	for i := 0; i < m.Rows(); i++ {
		if dotOf(a, m.Row(i)).Sign() != 0 {
			return false
		}
	}

	return true
}
