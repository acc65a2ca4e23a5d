// SPDX-License-Identifier: MIT

package cone

import (
	"math/big"

	"github.com/katalvlaran/polycone/zmatrix"
)

// Representation names the variant a Cone currently holds.
type Representation int

const (
	// HOnly holds inequalities and equations only.
	HOnly Representation = iota
	// VOnly holds rays and lineality generators only.
	VOnly
	// Both holds both descriptions; constraints are not known to be minimal.
	Both
	// Canonical holds both descriptions; constraints are the facets and a
	// basis of the implied equations, in normal form.
	Canonical
)

func (r Representation) String() string {
	switch r {
	case HOnly:
		return "H-only"
	case VOnly:
		return "V-only"
	case Both:
		return "both"
	case Canonical:
		return "canonical"
	}

	return "unknown"
}

// Knowledge flags for the H-side constructors.
const (
	// FlagImpliedEquations asserts the equations span all implied equations.
	FlagImpliedEquations = 1 << 0
	// FlagFacets asserts every inequality is a facet.
	FlagFacets = 1 << 1
)

// Knowledge flags for the V-side constructors.
const (
	// FlagLinealityExact asserts the lineality rows span the lineality space.
	FlagLinealityExact = 1 << 0
	// FlagRaysExtreme asserts every ray row spans a distinct extreme ray.
	FlagRaysExtreme = 1 << 1
)

const maxFlags = 3

// hrep is the constraint description with its knowledge facts.
type hrep struct {
	ineq, eq     zmatrix.ZMatrix
	impliedKnown bool
	facetsKnown  bool
	// normal marks the normal form: echelon equations, inequalities reduced
	// modulo the equations, primitive and sorted.
	normal bool
}

// vrep is the generator description with its knowledge facts.
type vrep struct {
	rays, lin   zmatrix.ZMatrix
	linExact    bool
	raysExtreme bool
}

func (v *vrep) exact() bool { return v.linExact && v.raysExtreme }

// Cone is a polyhedral cone in a fixed ambient dimension.
// At least one of h and v is non-nil at all times.
type Cone struct {
	n            int
	h            *hrep
	v            *vrep
	multiplicity *big.Int
	linearForms  zmatrix.ZMatrix
}

// FromInequalities returns { x : ineq·x >= 0 }.
func FromInequalities(ineq zmatrix.ZMatrix) *Cone {
	return fromH(ineq.Cols(), ineq.Clone(), zmatrix.Empty(ineq.Cols()), false, false)
}

// FromInequalitiesEquations returns { x : ineq·x >= 0, eq·x = 0 }.
// Returns ErrDimensionMismatch if the column counts differ.
func FromInequalitiesEquations(ineq, eq zmatrix.ZMatrix) (*Cone, error) {
	return FromInequalitiesFlags(ineq, eq, 0)
}

// FromInequalitiesFlags is FromInequalitiesEquations with knowledge flags
// (FlagImpliedEquations, FlagFacets) that are trusted verbatim.
// Returns ErrInvalidFlags if flags is outside [0, 3].
func FromInequalitiesFlags(ineq, eq zmatrix.ZMatrix, flags int) (*Cone, error) {
	if flags < 0 || flags > maxFlags {
		return nil, coneErrorf("FromInequalities", ErrInvalidFlags)
	}
	if ineq.Cols() != eq.Cols() {
		return nil, coneErrorf("FromInequalities", ErrDimensionMismatch)
	}

	return fromH(ineq.Cols(), ineq.Clone(), eq.Clone(),
		flags&FlagImpliedEquations != 0, flags&FlagFacets != 0), nil
}

// FromRays returns the conic hull of the rows of rays.
func FromRays(rays zmatrix.ZMatrix) *Cone {
	return fromV(rays.Cols(), rays.Clone(), zmatrix.Empty(rays.Cols()), false, false)
}

// FromRaysLineality returns cone(rays) + span(lin).
// Returns ErrDimensionMismatch if the column counts differ.
func FromRaysLineality(rays, lin zmatrix.ZMatrix) (*Cone, error) {
	return FromRaysFlags(rays, lin, 0)
}

// FromRaysFlags is FromRaysLineality with knowledge flags
// (FlagLinealityExact, FlagRaysExtreme) that are trusted verbatim.
// Returns ErrInvalidFlags if flags is outside [0, 3].
func FromRaysFlags(rays, lin zmatrix.ZMatrix, flags int) (*Cone, error) {
	if flags < 0 || flags > maxFlags {
		return nil, coneErrorf("FromRays", ErrInvalidFlags)
	}
	if rays.Cols() != lin.Cols() {
		return nil, coneErrorf("FromRays", ErrDimensionMismatch)
	}

	return fromV(rays.Cols(), rays.Clone(), lin.Clone(),
		flags&FlagLinealityExact != 0, flags&FlagRaysExtreme != 0), nil
}

// New returns the cone {0} in dimension d. It is Canonical from the start.
func New(d int) (*Cone, error) {
	if d < 0 {
		return nil, coneErrorf("New", ErrInvalidDimension)
	}

	return origin(d), nil
}

// origin builds {0} in dimension d >= 0.
func origin(d int) *Cone {
	id, err := zmatrix.Identity(d)
	must(err)
	c := fromH(d, zmatrix.Empty(d), id, true, true)
	c.h.normal = true
	c.v = &vrep{rays: zmatrix.Empty(d), lin: zmatrix.Empty(d), linExact: true, raysExtreme: true}

	return c
}

func fromH(n int, ineq, eq zmatrix.ZMatrix, implied, facets bool) *Cone {
	return &Cone{
		n:            n,
		h:            &hrep{ineq: ineq, eq: eq, impliedKnown: implied, facetsKnown: facets},
		multiplicity: big.NewInt(1),
		linearForms:  zmatrix.Empty(n),
	}
}

func fromV(n int, rays, lin zmatrix.ZMatrix, linExact, raysExtreme bool) *Cone {
	return &Cone{
		n:            n,
		v:            &vrep{rays: rays, lin: lin, linExact: linExact, raysExtreme: raysExtreme},
		multiplicity: big.NewInt(1),
		linearForms:  zmatrix.Empty(n),
	}
}

// Clone returns an independent deep copy, caches included.
func (c *Cone) Clone() *Cone {
	out := &Cone{
		n:            c.n,
		multiplicity: new(big.Int).Set(c.multiplicity),
		linearForms:  c.linearForms.Clone(),
	}
	if c.h != nil {
		h := *c.h
		h.ineq, h.eq = c.h.ineq.Clone(), c.h.eq.Clone()
		out.h = &h
	}
	if c.v != nil {
		v := *c.v
		v.rays, v.lin = c.v.rays.Clone(), c.v.lin.Clone()
		out.v = &v
	}

	return out
}

// Representation reports the variant currently held.
func (c *Cone) Representation() Representation {
	switch {
	case c.h == nil:
		return VOnly
	case c.v == nil:
		return HOnly
	case c.v.exact() && c.h.facetsKnown && c.h.impliedKnown && c.h.normal:
		return Canonical
	default:
		return Both
	}
}

// AreFacetsKnown reports whether the inequalities are known to be facets.
func (c *Cone) AreFacetsKnown() bool { return c.h != nil && c.h.facetsKnown }

// AreImpliedEquationsKnown reports whether the equations are known to span
// the implied equations.
func (c *Cone) AreImpliedEquationsKnown() bool { return c.h != nil && c.h.impliedKnown }

// AreExtremeRaysKnown reports whether exact rays and lineality are cached.
func (c *Cone) AreExtremeRaysKnown() bool { return c.v != nil && c.v.exact() }
