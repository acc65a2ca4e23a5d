// SPDX-License-Identifier: MIT

package cone

import (
	"github.com/katalvlaran/polycone/zmatrix"
)

// Contains reports whether v lies in the cone.
// Returns ErrDimensionMismatch if len(v) != n.
func (c *Cone) Contains(v zmatrix.ZVector) (bool, error) {
	if err := c.checkLen("Contains", v); err != nil {
		return false, err
	}
	c.ensureH()

	return satisfies(c.h, v, false), nil
}

// ContainsRelatively reports whether v lies in the relative interior.
// Returns ErrDimensionMismatch if len(v) != n.
func (c *Cone) ContainsRelatively(v zmatrix.ZVector) (bool, error) {
	if err := c.checkLen("ContainsRelatively", v); err != nil {
		return false, err
	}
	c.ensureImplied()

	return satisfies(c.h, v, true), nil
}

// satisfies checks the equations and the inequalities, strictly if asked.
func satisfies(h *hrep, v zmatrix.ZVector, strict bool) bool {
	for i := 0; i < h.eq.Rows(); i++ {
		if dotOf(h.eq.Row(i), v).Sign() != 0 {
			return false
		}
	}
	for i := 0; i < h.ineq.Rows(); i++ {
		s := dotOf(h.ineq.Row(i), v).Sign()
		if s < 0 || (strict && s == 0) {
			return false
		}
	}

	return true
}

// ContainsCone reports whether o is a subset of c.
// Returns ErrDimensionMismatch if the ambient dimensions differ.
func (c *Cone) ContainsCone(o *Cone) (bool, error) {
	if o == nil {
		return false, coneErrorf("ContainsCone", ErrNilCone)
	}
	if o.n != c.n {
		return false, coneErrorf("ContainsCone", ErrDimensionMismatch)
	}
	c.ensureH()
	o.ensureV()
	for i := 0; i < o.v.rays.Rows(); i++ {
		if !satisfies(c.h, o.v.rays.Row(i), false) {
			return false, nil
		}
	}
	for i := 0; i < o.v.lin.Rows(); i++ {
		l := o.v.lin.Row(i)
		if !satisfies(c.h, l, false) || !satisfies(c.h, l.Neg(), false) {
			return false, nil
		}
	}

	return true, nil
}

// Link returns the cone of directions at w: the constraints tight at w,
// with the equations kept. Knowledge flags, linear forms and multiplicity
// carry over.
// Returns ErrPointNotInCone unless w lies in the cone.
func (c *Cone) Link(w zmatrix.ZVector) (*Cone, error) {
	ok, err := c.Contains(w)
	if err != nil {
		return nil, coneErrorf("Link", err)
	}
	if !ok {
		return nil, coneErrorf("Link", ErrPointNotInCone)
	}
	tight := zmatrix.Empty(c.n)
	for i := 0; i < c.h.ineq.Rows(); i++ {
		if dotOf(c.h.ineq.Row(i), w).Sign() == 0 {
			must(tight.AppendRow(c.h.ineq.Row(i)))
		}
	}
	out := fromH(c.n, tight, c.h.eq.Clone(), c.h.impliedKnown, c.h.facetsKnown)
	out.linearForms = c.linearForms.Clone()
	out.multiplicity.Set(c.multiplicity)

	return out, nil
}

// FaceContaining returns the smallest face containing v, canonicalized:
// inequalities tight at v become equations.
// Returns ErrDimensionMismatch if len(v) != n and ErrPointNotInCone if v
// lies outside c.
func (c *Cone) FaceContaining(v zmatrix.ZVector) (*Cone, error) {
	if err := c.checkLen("FaceContaining", v); err != nil {
		return nil, err
	}
	ok, err := c.Contains(v)
	if err != nil {
		return nil, coneErrorf("FaceContaining", err)
	}
	if !ok {
		return nil, coneErrorf("FaceContaining", ErrPointNotInCone)
	}
	ineq := zmatrix.Empty(c.n)
	eq := c.h.eq.Clone()
	for i := 0; i < c.h.ineq.Rows(); i++ {
		a := c.h.ineq.Row(i)
		if dotOf(a, v).Sign() == 0 {
			must(eq.AppendRow(a))
		} else {
			must(ineq.AppendRow(a))
		}
	}
	out := fromH(c.n, ineq, eq, false, false)
	out.Canonicalize()

	return out, nil
}

// HasFace reports whether f is a face of c: the relative interior point of f
// lies in c and the face of c containing it equals f.
// Returns ErrDimensionMismatch if the ambient dimensions differ.
func (c *Cone) HasFace(f *Cone) (bool, error) {
	if f == nil {
		return false, coneErrorf("HasFace", ErrNilCone)
	}
	if f.n != c.n {
		return false, coneErrorf("HasFace", ErrDimensionMismatch)
	}
	p := f.RelativeInteriorPoint()
	if ok, _ := c.Contains(p); !ok {
		return false, nil
	}
	face, err := c.FaceContaining(p)
	if err != nil {
		return false, coneErrorf("HasFace", err)
	}
	g := f.Clone()

	return face.Equal(g), nil
}
