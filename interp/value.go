// SPDX-License-Identifier: MIT

package interp

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/polycone/cone"
	"github.com/katalvlaran/polycone/zmatrix"
)

// Kind is the dynamic type of a Value.
type Kind int

// Value kinds.
const (
	KindNone Kind = iota
	KindInt
	KindBool
	KindVector
	KindMatrix
	KindList
	KindCone
	KindPolytope
	KindString
)

var kindNames = [...]string{
	KindNone:     "none",
	KindInt:      "int",
	KindBool:     "bool",
	KindVector:   "vector",
	KindMatrix:   "matrix",
	KindList:     "list",
	KindCone:     "cone",
	KindPolytope: "polytope",
	KindString:   "string",
}

// String returns the kind's name as used in messages.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Value is a dynamically typed interpreter value.
type Value interface {
	Kind() Kind
	String() string
}

// None is the result of commands that produce no value.
type None struct{}

// Int is an arbitrary precision integer.
type Int struct{ X *big.Int }

// Bool is a truth value.
type Bool bool

// Vector is an integer vector.
type Vector struct{ V zmatrix.ZVector }

// Matrix is an integer matrix.
type Matrix struct{ M zmatrix.ZMatrix }

// List is a sequence of values.
type List []Value

// Cone wraps a cone.
type Cone struct{ C *cone.Cone }

// Polytope wraps a polytope.
type Polytope struct{ P *cone.Polytope }

// String is text, as produced by serialize.
type String string

func (None) Kind() Kind     { return KindNone }
func (Int) Kind() Kind      { return KindInt }
func (Bool) Kind() Kind     { return KindBool }
func (Vector) Kind() Kind   { return KindVector }
func (Matrix) Kind() Kind   { return KindMatrix }
func (List) Kind() Kind     { return KindList }
func (Cone) Kind() Kind     { return KindCone }
func (Polytope) Kind() Kind { return KindPolytope }
func (String) Kind() Kind   { return KindString }

func (None) String() string       { return "" }
func (i Int) String() string      { return i.X.String() }
func (v Vector) String() string   { return v.V.String() }
func (m Matrix) String() string   { return m.M.String() }
func (c Cone) String() string     { return c.C.String() }
func (p Polytope) String() string { return p.P.String() }
func (s String) String() string   { return string(s) }

func (b Bool) String() string {
	if b {
		return "1"
	}

	return "0"
}

func (l List) String() string {
	var b strings.Builder
	for i, v := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("]:\n")
		b.WriteString(v.String())
	}

	return b.String()
}

// IntOf returns x as an Int value.
func IntOf(x int64) Int { return Int{X: big.NewInt(x)} }

// Copy returns a deep copy of v. Cones and polytopes are cloned, so a copy
// never shares cached state with its source.
func Copy(v Value) Value {
	switch x := v.(type) {
	case Int:
		return Int{X: new(big.Int).Set(x.X)}
	case Vector:
		return Vector{V: x.V.Clone()}
	case Matrix:
		return Matrix{M: x.M.Clone()}
	case List:
		out := make(List, len(x))
		for i, e := range x {
			out[i] = Copy(e)
		}

		return out
	case Cone:
		return Cone{C: x.C.Clone()}
	case Polytope:
		return Polytope{P: x.P.Clone()}
	default:
		return v
	}
}

// coerce returns v as a value of kind want, or false. A vector becomes a
// one-row matrix and a one-row matrix becomes a vector.
func coerce(v Value, want Kind) (Value, bool) {
	if v.Kind() == want {
		return v, true
	}
	switch x := v.(type) {
	case Vector:
		if want == KindMatrix {
			m, err := zmatrix.FromVectors(x.V.Len(), x.V)
			if err != nil {
				return nil, false
			}

			return Matrix{M: m}, true
		}
	case Matrix:
		if want == KindVector && x.M.Rows() == 1 {
			return Vector{V: x.M.Row(0).Clone()}, true
		}
	}

	return nil, false
}
