// SPDX-License-Identifier: MIT
// Package zmatrix: ZVector, the exact integer vector.
//
// Purpose:
//   - Carry points, rays and constraint rows of a cone with exact entries.
//   - Provide the small set of vector kernels the conversion engine needs:
//     dot products, positive combinations and primitive normalization.
//
// Determinism:
//   - Compare/Key give a total, stable order used to sort rows into a
//     canonical form.

package zmatrix

import (
	"math/big"
	"strings"
)

// ZVector is a fixed-length vector of arbitrary-precision integers.
// The zero value is the empty vector of length 0.
type ZVector struct {
	entries []*big.Int
}

// NewVector returns the zero vector of length n. Negative n yields length 0.
func NewVector(n int) ZVector {
	if n < 0 {
		n = 0
	}
	v := ZVector{entries: make([]*big.Int, n)}
	for i := range v.entries {
		v.entries[i] = new(big.Int)
	}

	return v
}

// VectorOf builds a vector from machine integers.
func VectorOf(xs ...int64) ZVector {
	v := ZVector{entries: make([]*big.Int, len(xs))}
	for i, x := range xs {
		v.entries[i] = big.NewInt(x)
	}

	return v
}

// VectorFromBig builds a vector from big integers, copying each entry.
func VectorFromBig(xs []*big.Int) (ZVector, error) {
	v := ZVector{entries: make([]*big.Int, len(xs))}
	for i, x := range xs {
		if x == nil {
			return ZVector{}, zmatrixErrorf(opNew, ErrNilEntry)
		}
		v.entries[i] = new(big.Int).Set(x)
	}

	return v, nil
}

// Len returns the number of entries.
func (v ZVector) Len() int { return len(v.entries) }

// At returns a copy of entry i.
func (v ZVector) At(i int) (*big.Int, error) {
	if i < 0 || i >= len(v.entries) {
		return nil, zmatrixErrorf(opAt, ErrOutOfRange)
	}

	return new(big.Int).Set(v.entries[i]), nil
}

// Set overwrites entry i with a copy of x.
func (v ZVector) Set(i int, x *big.Int) error {
	if i < 0 || i >= len(v.entries) {
		return zmatrixErrorf(opSet, ErrOutOfRange)
	}
	if x == nil {
		return zmatrixErrorf(opSet, ErrNilEntry)
	}
	v.entries[i].Set(x)

	return nil
}

// SetInt64 overwrites entry i with x.
func (v ZVector) SetInt64(i int, x int64) error {
	return v.Set(i, big.NewInt(x))
}

// Clone returns a deep copy.
func (v ZVector) Clone() ZVector {
	out := ZVector{entries: make([]*big.Int, len(v.entries))}
	for i, x := range v.entries {
		out.entries[i] = new(big.Int).Set(x)
	}

	return out
}

// Neg returns -v.
func (v ZVector) Neg() ZVector {
	out := ZVector{entries: make([]*big.Int, len(v.entries))}
	for i, x := range v.entries {
		out.entries[i] = new(big.Int).Neg(x)
	}

	return out
}

// Add returns v + w.
func (v ZVector) Add(w ZVector) (ZVector, error) {
	if len(v.entries) != len(w.entries) {
		return ZVector{}, zmatrixErrorf(opAdd, ErrDimensionMismatch)
	}
	out := ZVector{entries: make([]*big.Int, len(v.entries))}
	for i := range v.entries {
		out.entries[i] = new(big.Int).Add(v.entries[i], w.entries[i])
	}

	return out, nil
}

// Sub returns v - w.
func (v ZVector) Sub(w ZVector) (ZVector, error) {
	if len(v.entries) != len(w.entries) {
		return ZVector{}, zmatrixErrorf(opSub, ErrDimensionMismatch)
	}
	out := ZVector{entries: make([]*big.Int, len(v.entries))}
	for i := range v.entries {
		out.entries[i] = new(big.Int).Sub(v.entries[i], w.entries[i])
	}

	return out, nil
}

// Scale returns k·v.
func (v ZVector) Scale(k *big.Int) ZVector {
	out := ZVector{entries: make([]*big.Int, len(v.entries))}
	for i, x := range v.entries {
		out.entries[i] = new(big.Int).Mul(x, k)
	}

	return out
}

// Dot returns the inner product of v and w.
func (v ZVector) Dot(w ZVector) (*big.Int, error) {
	if len(v.entries) != len(w.entries) {
		return nil, zmatrixErrorf(opDot, ErrDimensionMismatch)
	}

	return dot(v.entries, w.entries), nil
}

// Combine returns a·v + b·w. Lengths must agree.
func (v ZVector) Combine(a *big.Int, w ZVector, b *big.Int) (ZVector, error) {
	if len(v.entries) != len(w.entries) {
		return ZVector{}, zmatrixErrorf(opAdd, ErrDimensionMismatch)
	}

	return combine(a, v, b, w), nil
}

// Sign returns the sign of the first nonzero entry, or 0 for the zero vector.
func (v ZVector) Sign() int {
	for _, x := range v.entries {
		if s := x.Sign(); s != 0 {
			return s
		}
	}

	return 0
}

// IsZero reports whether every entry is zero.
func (v ZVector) IsZero() bool { return v.Sign() == 0 }

// IsPositive reports whether every entry is strictly positive.
// The empty vector is positive.
func (v ZVector) IsPositive() bool {
	for _, x := range v.entries {
		if x.Sign() <= 0 {
			return false
		}
	}

	return true
}

// IsNonNegative reports whether every entry is >= 0.
func (v ZVector) IsNonNegative() bool {
	for _, x := range v.entries {
		if x.Sign() < 0 {
			return false
		}
	}

	return true
}

// Equal reports entrywise equality (lengths included).
func (v ZVector) Equal(w ZVector) bool {
	return v.Compare(w) == 0
}

// Compare orders vectors by length, then lexicographically by entries.
func (v ZVector) Compare(w ZVector) int {
	if len(v.entries) != len(w.entries) {
		if len(v.entries) < len(w.entries) {
			return -1
		}

		return 1
	}
	for i := range v.entries {
		if c := v.entries[i].Cmp(w.entries[i]); c != 0 {
			return c
		}
	}

	return 0
}

// Gcd returns the non-negative gcd of all entries (0 for the zero vector).
func (v ZVector) Gcd() *big.Int {
	g := new(big.Int)
	for _, x := range v.entries {
		if x.Sign() == 0 {
			continue
		}
		if g.Sign() == 0 {
			g.Abs(x)
			continue
		}
		g.GCD(nil, nil, g, new(big.Int).Abs(x))
		if g.Cmp(bigOne) == 0 {
			break
		}
	}

	return g
}

// Normalized returns the primitive vector v/gcd(v). The direction is kept,
// so the result is a positive multiple of v. The zero vector maps to itself.
func (v ZVector) Normalized() ZVector {
	g := v.Gcd()
	if g.Sign() == 0 || g.Cmp(bigOne) == 0 {
		return v.Clone()
	}
	out := ZVector{entries: make([]*big.Int, len(v.entries))}
	for i, x := range v.entries {
		out.entries[i] = new(big.Int).Quo(x, g)
	}

	return out
}

// Key returns a string usable as a map key; equal vectors give equal keys.
func (v ZVector) Key() string {
	var b strings.Builder
	for i, x := range v.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(x.Text(16))
	}

	return b.String()
}

// Int64s returns the entries as machine integers; ok is false on overflow.
func (v ZVector) Int64s() (out []int64, ok bool) {
	out = make([]int64, len(v.entries))
	for i, x := range v.entries {
		if !x.IsInt64() {
			return nil, false
		}
		out[i] = x.Int64()
	}

	return out, true
}

// String renders v as "(x0,x1,...)".
func (v ZVector) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range v.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(x.String())
	}
	b.WriteByte(')')

	return b.String()
}

var bigOne = big.NewInt(1)

// dot is the unchecked inner product of equal-length entry slices.
func dot(a, b []*big.Int) *big.Int {
	sum := new(big.Int)
	t := new(big.Int)
	for i := range a {
		if a[i].Sign() == 0 || b[i].Sign() == 0 {
			continue
		}
		sum.Add(sum, t.Mul(a[i], b[i]))
	}

	return sum
}

// combine is the unchecked a·v + b·w.
func combine(a *big.Int, v ZVector, b *big.Int, w ZVector) ZVector {
	out := ZVector{entries: make([]*big.Int, len(v.entries))}
	t := new(big.Int)
	for i := range v.entries {
		x := new(big.Int).Mul(a, v.entries[i])
		out.entries[i] = x.Add(x, t.Mul(b, w.entries[i]))
	}

	return out
}
