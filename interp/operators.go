// SPDX-License-Identifier: MIT

package interp

import (
	"github.com/katalvlaran/polycone/cone"
)

// Operator names as registered. They cannot collide with identifiers.
const (
	opIntersect = "&"
	opHull      = "|"
	opEqual     = "=="
)

// registerOperators binds & (intersection), | (hull, canonicalized) and ==.
func registerOperators(r *Registry) {
	binary(r, opIntersect, cone.Intersection,
		cone.IntersectConePolytope, cone.IntersectPolytopeCone, cone.IntersectPolytopes)
	binary(r, opHull,
		func(a, b *cone.Cone) (*cone.Cone, error) {
			c, err := cone.ConvexHull(a, b)
			if err != nil {
				return nil, err
			}
			c.Canonicalize()

			return c, nil
		},
		canonicalized(cone.HullConePolytope),
		canonicalized(cone.HullPolytopeCone),
		canonicalized(cone.HullPolytopes))

	r.Register(opEqual, func(a []Value) (Value, error) {
		return Bool(asCone(a[0]).Equal(asCone(a[1]))), nil
	}, KindCone, KindCone)
	r.Register(opEqual, func(a []Value) (Value, error) {
		return Bool(asPolytope(a[0]).Equal(asPolytope(a[1]))), nil
	}, KindPolytope, KindPolytope)
	r.Register(opEqual, func(a []Value) (Value, error) {
		return Bool(a[0].(Int).X.Cmp(a[1].(Int).X) == 0), nil
	}, KindInt, KindInt)
	r.Register(opEqual, func(a []Value) (Value, error) {
		return Bool(a[0].(Bool) == a[1].(Bool)), nil
	}, KindBool, KindBool)
	r.Register(opEqual, func(a []Value) (Value, error) {
		return Bool(asVector(a[0]).Equal(asVector(a[1]))), nil
	}, KindVector, KindVector)
	r.Register(opEqual, func(a []Value) (Value, error) {
		return Bool(asMatrix(a[0]).Equal(asMatrix(a[1]))), nil
	}, KindMatrix, KindMatrix)
	r.Register(opEqual, func(a []Value) (Value, error) {
		return Bool(a[0].(String) == a[1].(String)), nil
	}, KindString, KindString)
}

// canonicalized canonicalizes the polytope a hull variant returns.
func canonicalized[A, B any](f func(A, B) (*cone.Polytope, error)) func(A, B) (*cone.Polytope, error) {
	return func(a A, b B) (*cone.Polytope, error) {
		p, err := f(a, b)
		if err != nil {
			return nil, err
		}
		p.Canonicalize()

		return p, nil
	}
}
