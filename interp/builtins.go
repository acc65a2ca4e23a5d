// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"

	"github.com/katalvlaran/polycone/codec"
	"github.com/katalvlaran/polycone/cone"
	"github.com/katalvlaran/polycone/zmatrix"
)

// Builtins returns a registry holding every cone command and the operators.
func Builtins() *Registry {
	r := NewRegistry()
	registerConstruction(r)
	registerQueries(r)
	registerMembership(r)
	registerAlgebra(r)
	registerFacets(r)
	registerCodec(r)
	registerOperators(r)

	return r
}

func asCone(v Value) *cone.Cone         { return v.(Cone).C }
func asPolytope(v Value) *cone.Polytope { return v.(Polytope).P }
func asMatrix(v Value) zmatrix.ZMatrix  { return v.(Matrix).M }
func asVector(v Value) zmatrix.ZVector  { return v.(Vector).V }

// asSmallInt returns an Int argument as an int.
func asSmallInt(v Value) (int, error) {
	x := v.(Int).X
	if !x.IsInt64() || x.Int64() > math.MaxInt32 || x.Int64() < math.MinInt32 {
		return 0, fmt.Errorf("%w: integer %s out of range", ErrTypeMismatch, x)
	}

	return int(x.Int64()), nil
}

func registerConstruction(r *Registry) {
	r.Register("coneViaInequalities", func(a []Value) (Value, error) {
		return Cone{C: cone.FromInequalities(asMatrix(a[0]))}, nil
	}, KindMatrix)
	r.Register("coneViaInequalities", func(a []Value) (Value, error) {
		c, err := cone.FromInequalitiesEquations(asMatrix(a[0]), asMatrix(a[1]))
		if err != nil {
			return nil, err
		}

		return Cone{C: c}, nil
	}, KindMatrix, KindMatrix)
	r.Register("coneViaInequalities", func(a []Value) (Value, error) {
		flags, err := asSmallInt(a[2])
		if err != nil {
			return nil, err
		}
		c, err := cone.FromInequalitiesFlags(asMatrix(a[0]), asMatrix(a[1]), flags)
		if err != nil {
			return nil, err
		}

		return Cone{C: c}, nil
	}, KindMatrix, KindMatrix, KindInt)

	r.Register("coneViaPoints", func(a []Value) (Value, error) {
		return Cone{C: cone.FromRays(asMatrix(a[0]))}, nil
	}, KindMatrix)
	r.Register("coneViaPoints", func(a []Value) (Value, error) {
		c, err := cone.FromRaysLineality(asMatrix(a[0]), asMatrix(a[1]))
		if err != nil {
			return nil, err
		}

		return Cone{C: c}, nil
	}, KindMatrix, KindMatrix)
	r.Register("coneViaPoints", func(a []Value) (Value, error) {
		flags, err := asSmallInt(a[2])
		if err != nil {
			return nil, err
		}
		c, err := cone.FromRaysFlags(asMatrix(a[0]), asMatrix(a[1]), flags)
		if err != nil {
			return nil, err
		}

		return Cone{C: c}, nil
	}, KindMatrix, KindMatrix, KindInt)

	r.Register("cone", func([]Value) (Value, error) {
		c, err := cone.New(0)
		if err != nil {
			return nil, err
		}

		return Cone{C: c}, nil
	})
	r.Register("cone", func(a []Value) (Value, error) {
		d, err := asSmallInt(a[0])
		if err != nil {
			return nil, err
		}
		c, err := cone.New(d)
		if err != nil {
			return nil, err
		}

		return Cone{C: c}, nil
	}, KindInt)

	r.Register("cone", func(a []Value) (Value, error) {
		return Cone{C: asCone(a[0]).Clone()}, nil
	}, KindCone)

	r.Register("zeros", func(a []Value) (Value, error) {
		rows, err := asSmallInt(a[0])
		if err != nil {
			return nil, err
		}
		cols, err := asSmallInt(a[1])
		if err != nil {
			return nil, err
		}
		m, err := zmatrix.New(rows, cols)
		if err != nil {
			return nil, err
		}

		return Matrix{M: m}, nil
	}, KindInt, KindInt)
}

func registerQueries(r *Registry) {
	ints := map[string]func(*cone.Cone) int{
		"ambientDimension":   (*cone.Cone).AmbientDimension,
		"dimension":          (*cone.Cone).Dimension,
		"codimension":        (*cone.Cone).Codimension,
		"linealityDimension": (*cone.Cone).DimensionOfLinealitySpace,
	}
	for name, q := range ints {
		r.Register(name, func(a []Value) (Value, error) {
			return IntOf(int64(q(asCone(a[0])))), nil
		}, KindCone)
	}
	polyInts := map[string]func(*cone.Polytope) int{
		"ambientDimension": (*cone.Polytope).AmbientDimension,
		"dimension":        (*cone.Polytope).Dimension,
		"codimension":      (*cone.Polytope).Codimension,
	}
	for name, q := range polyInts {
		r.Register(name, func(a []Value) (Value, error) {
			return IntOf(int64(q(asPolytope(a[0])))), nil
		}, KindPolytope)
	}

	bools := map[string]func(*cone.Cone) bool{
		"isOrigin":               (*cone.Cone).IsOrigin,
		"isFullSpace":            (*cone.Cone).IsFullSpace,
		"isSimplicial":           (*cone.Cone).IsSimplicial,
		"containsPositiveVector": (*cone.Cone).ContainsPositiveVector,
	}
	for name, q := range bools {
		r.Register(name, func(a []Value) (Value, error) {
			return Bool(q(asCone(a[0]))), nil
		}, KindCone)
	}

	matrices := map[string]func(*cone.Cone) zmatrix.ZMatrix{
		"inequalities":               (*cone.Cone).Inequalities,
		"equations":                  (*cone.Cone).Equations,
		"facets":                     (*cone.Cone).Facets,
		"span":                       (*cone.Cone).ImpliedEquations,
		"rays":                       (*cone.Cone).ExtremeRays,
		"generatorsOfLinealitySpace": (*cone.Cone).GeneratorsOfLinealitySpace,
		"generatorsOfSpan":           (*cone.Cone).GeneratorsOfSpan,
		"quotientLatticeBasis":       (*cone.Cone).QuotientLatticeBasis,
		"getLinearForms":             (*cone.Cone).LinearForms,
	}
	for name, q := range matrices {
		r.Register(name, func(a []Value) (Value, error) {
			return Matrix{M: q(asCone(a[0]))}, nil
		}, KindCone)
		// A polytope answers for its lifted cone.
		r.Register(name, func(a []Value) (Value, error) {
			return Matrix{M: q(asPolytope(a[0]).Cone())}, nil
		}, KindPolytope)
	}

	vectors := map[string]func(*cone.Cone) zmatrix.ZVector{
		"relativeInteriorPoint": (*cone.Cone).RelativeInteriorPoint,
		"uniquePoint":           (*cone.Cone).UniquePoint,
	}
	for name, q := range vectors {
		r.Register(name, func(a []Value) (Value, error) {
			return Vector{V: q(asCone(a[0]))}, nil
		}, KindCone)
	}

	cones := map[string]func(*cone.Cone) *cone.Cone{
		"dualCone":       (*cone.Cone).Dual,
		"negatedCone":    (*cone.Cone).Negated,
		"linealitySpace": (*cone.Cone).LinealitySpace,
	}
	for name, q := range cones {
		r.Register(name, func(a []Value) (Value, error) {
			return Cone{C: q(asCone(a[0]))}, nil
		}, KindCone)
	}

	r.Register("semigroupGenerator", func(a []Value) (Value, error) {
		g, err := asCone(a[0]).SemiGroupGeneratorOfRay()
		if err != nil {
			return nil, err
		}

		return Vector{V: g}, nil
	}, KindCone)

	r.Register("canonicalizeCone", func(a []Value) (Value, error) {
		c := asCone(a[0]).Clone()
		c.Canonicalize()

		return Cone{C: c}, nil
	}, KindCone)
	r.Register("canonicalizeCone", func(a []Value) (Value, error) {
		p := asPolytope(a[0]).Clone()
		p.Canonicalize()

		return Polytope{P: p}, nil
	}, KindPolytope)

	r.Register("getMultiplicity", func(a []Value) (Value, error) {
		return Int{X: asCone(a[0]).Multiplicity()}, nil
	}, KindCone)
	r.Register("setMultiplicity", func(a []Value) (Value, error) {
		asCone(a[0]).SetMultiplicity(new(big.Int).Set(a[1].(Int).X))

		return None{}, nil
	}, KindCone, KindInt)
	r.Register("setLinearForms", func(a []Value) (Value, error) {
		if err := asCone(a[0]).SetLinearForms(asMatrix(a[1])); err != nil {
			return nil, err
		}

		return None{}, nil
	}, KindCone, KindMatrix)
}

func registerMembership(r *Registry) {
	r.Register("containsInSupport", func(a []Value) (Value, error) {
		ok, err := asCone(a[0]).ContainsCone(asCone(a[1]))

		return Bool(ok), err
	}, KindCone, KindCone)
	r.Register("containsInSupport", func(a []Value) (Value, error) {
		ok, err := asCone(a[0]).Contains(asVector(a[1]))

		return Bool(ok), err
	}, KindCone, KindVector)
	r.Register("containsRelatively", func(a []Value) (Value, error) {
		ok, err := asCone(a[0]).ContainsRelatively(asVector(a[1]))

		return Bool(ok), err
	}, KindCone, KindVector)
	r.Register("containsAsFace", func(a []Value) (Value, error) {
		ok, err := asCone(a[0]).HasFace(asCone(a[1]))

		return Bool(ok), err
	}, KindCone, KindCone)
	r.Register("coneLink", func(a []Value) (Value, error) {
		c, err := asCone(a[0]).Link(asVector(a[1]))
		if err != nil {
			return nil, err
		}

		return Cone{C: c}, nil
	}, KindCone, KindVector)
	r.Register("faceContaining", func(a []Value) (Value, error) {
		c, err := asCone(a[0]).FaceContaining(asVector(a[1]))
		if err != nil {
			return nil, err
		}

		return Cone{C: c}, nil
	}, KindCone, KindVector)
}

// binary registers the four cone/polytope combinations of one operation.
func binary(r *Registry, name string,
	cc func(a, b *cone.Cone) (*cone.Cone, error),
	cp func(*cone.Cone, *cone.Polytope) (*cone.Polytope, error),
	pc func(*cone.Polytope, *cone.Cone) (*cone.Polytope, error),
	pp func(a, b *cone.Polytope) (*cone.Polytope, error),
) {
	r.Register(name, func(a []Value) (Value, error) {
		c, err := cc(asCone(a[0]), asCone(a[1]))
		if err != nil {
			return nil, err
		}

		return Cone{C: c}, nil
	}, KindCone, KindCone)
	r.Register(name, func(a []Value) (Value, error) {
		p, err := cp(asCone(a[0]), asPolytope(a[1]))
		if err != nil {
			return nil, err
		}

		return Polytope{P: p}, nil
	}, KindCone, KindPolytope)
	r.Register(name, func(a []Value) (Value, error) {
		p, err := pc(asPolytope(a[0]), asCone(a[1]))
		if err != nil {
			return nil, err
		}

		return Polytope{P: p}, nil
	}, KindPolytope, KindCone)
	r.Register(name, func(a []Value) (Value, error) {
		p, err := pp(asPolytope(a[0]), asPolytope(a[1]))
		if err != nil {
			return nil, err
		}

		return Polytope{P: p}, nil
	}, KindPolytope, KindPolytope)
}

func registerAlgebra(r *Registry) {
	binary(r, "convexIntersection", cone.Intersection,
		cone.IntersectConePolytope, cone.IntersectPolytopeCone, cone.IntersectPolytopes)
	binary(r, "convexHull", cone.ConvexHull,
		cone.HullConePolytope, cone.HullPolytopeCone, cone.HullPolytopes)

	r.Register("coneToPolytope", func(a []Value) (Value, error) {
		p, err := cone.ConeToPolytope(asCone(a[0]))
		if err != nil {
			return nil, err
		}

		return Polytope{P: p}, nil
	}, KindCone)
}

func registerFacets(r *Registry) {
	r.Register("listOfFacets", func(a []Value) (Value, error) {
		fs, err := cone.ListOfFacets(asCone(a[0]))
		if err != nil {
			return nil, err
		}
		out := make(List, len(fs))
		for i, f := range fs {
			out[i] = Cone{C: f}
		}

		return out, nil
	}, KindCone)

	r.Register("facetContaining", func(a []Value) (Value, error) {
		f, err := cone.FacetContaining(asCone(a[0]), asVector(a[1]))
		if err != nil {
			return nil, err
		}

		return Vector{V: f}, nil
	}, KindCone, KindVector)

	r.Register("listContainsCone", func(a []Value) (Value, error) {
		list := a[0].(List)
		cs := make([]*cone.Cone, len(list))
		for i, e := range list {
			c, ok := e.(Cone)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %s, want cone", ErrWrongListElementType, i+1, e.Kind())
			}
			cs[i] = c.C
		}

		return Bool(cone.ListContainsCone(cs, asCone(a[1]))), nil
	}, KindList, KindCone)

	r.Register("interiorPointsOfFacets", func(a []Value) (Value, error) {
		pts, err := cone.InteriorPointsOfFacets(asCone(a[0]), nil)
		if err != nil {
			return nil, err
		}

		return Matrix{M: pts}, nil
	}, KindCone)
	r.Register("interiorPointsOfFacets", func(a []Value) (Value, error) {
		except := cone.NewPointSet()
		for i, e := range a[1].(List) {
			v, ok := coerce(e, KindVector)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %s, want vector", ErrWrongListElementType, i+1, e.Kind())
			}
			except.Add(asVector(v))
		}
		pts, err := cone.InteriorPointsOfFacets(asCone(a[0]), except)
		if err != nil {
			return nil, err
		}

		return Matrix{M: pts}, nil
	}, KindCone, KindList)

	// Unseeded calls draw their seeds from one stream per registry, so
	// repeated calls differ while a fresh interpreter replays the same run.
	stream := rand.New(rand.NewSource(1))
	r.Register("randomPoint", func(a []Value) (Value, error) {
		p, err := cone.RandomPoint(asCone(a[0]), cone.WithSeed(stream.Int63()))
		if err != nil {
			return nil, err
		}

		return Vector{V: p}, nil
	}, KindCone)
	r.Register("randomPoint", func(a []Value) (Value, error) {
		seed := a[1].(Int).X
		if !seed.IsInt64() {
			return nil, fmt.Errorf("%w: seed %s out of range", ErrTypeMismatch, seed)
		}
		p, err := cone.RandomPoint(asCone(a[0]), cone.WithSeed(seed.Int64()))
		if err != nil {
			return nil, err
		}

		return Vector{V: p}, nil
	}, KindCone, KindInt)
}

func registerCodec(r *Registry) {
	r.Register("serialize", func(a []Value) (Value, error) {
		data, err := codec.Marshal(asCone(a[0]))
		if err != nil {
			return nil, err
		}

		return String(data), nil
	}, KindCone)
	r.Register("deserialize", func(a []Value) (Value, error) {
		c, err := codec.Unmarshal([]byte(a[0].(String)))
		if err != nil {
			return nil, err
		}

		return Cone{C: c}, nil
	}, KindString)
}
