// SPDX-License-Identifier: MIT
// Package zmatrix: exact elimination kernels.
//
// Purpose:
//   - Rank and RowEchelon work over the rationals (big.Rat) and return
//     primitive integer rows. RowEchelon is canonical for the row space:
//     two matrices span the same rational subspace iff their RowEchelon
//     forms are Equal.
//   - Kernel and SplitByForms use only unimodular integer row operations
//     (Hermite reduction), so they return lattice bases, not just
//     rational bases.
//
// Determinism:
//   - Pivot choice is fixed (first column left to right; smallest absolute
//     value, first index on ties), so outputs are reproducible.

package zmatrix

import "math/big"

// Rank returns the rank of m over the rationals.
// Complexity: O(r·c·min(r,c)) big.Rat operations.
func (m ZMatrix) Rank() int {
	rat := toRat(m)

	return rrefRat(rat, m.cols)
}

// RowEchelon returns the reduced row echelon form of m with every row scaled
// to a primitive integer vector. Zero rows are dropped, pivots are positive,
// and every pivot column is zero outside its pivot row.
//
// Implementation:
//   - Stage 1: Gauss-Jordan elimination over big.Rat with unit pivots.
//   - Stage 2: multiply each row by the lcm of its denominators and divide by
//     the gcd of the resulting numerators.
//
// Complexity: O(r·c·min(r,c)) rational operations.
func (m ZMatrix) RowEchelon() ZMatrix {
	rat := toRat(m)
	rank := rrefRat(rat, m.cols)
	out := ZMatrix{cols: m.cols, rows: make([]ZVector, 0, rank)}
	for i := 0; i < rank; i++ {
		out.rows = append(out.rows, primitiveFromRat(rat[i]))
	}

	return out
}

// HermiteNormalForm returns the nonzero rows of the row-style Hermite normal
// form of m: an integer basis of the lattice spanned by the rows of m, with
// positive pivots and entries above each pivot reduced into [0, pivot).
func (m ZMatrix) HermiteNormalForm() ZMatrix {
	work := m.Clone()
	rank := hermiteRows(work.rows, m.cols)
	work.rows = work.rows[:rank]

	return work
}

// Kernel returns a basis of the saturated lattice {x ∈ Zⁿ : m·x = 0} in
// Hermite normal form. The result has Cols() == m.Cols() and
// m.Cols() - m.Rank() rows. The kernel of a 0×n matrix is the n×n identity.
//
// Implementation:
//   - Stage 1: build [mᵀ | I] and Hermite-reduce on the first m.Rows() columns.
//   - Stage 2: rows whose left block vanished carry a lattice basis of the
//     kernel in their right block (the transform is unimodular).
//   - Stage 3: Hermite-reduce that basis so the output is unique.
func (m ZMatrix) Kernel() ZMatrix {
	n, k := m.cols, len(m.rows)
	work := make([]ZVector, n)
	for i := 0; i < n; i++ {
		v := NewVector(k + n)
		for j := 0; j < k; j++ {
			v.entries[j].Set(m.rows[j].entries[i])
		}
		v.entries[k+i].SetInt64(1)
		work[i] = v
	}
	rank := hermiteRows(work, k)
	basis := make([]ZVector, 0, n-rank)
	for _, r := range work[rank:] {
		basis = append(basis, ZVector{entries: r.entries[k:]})
	}
	hermiteRows(basis, n)

	return ZMatrix{cols: n, rows: basis}
}

// ReduceModulo reduces v modulo the row space of echelon, which must be in
// RowEchelon form, and returns the primitive result. The result is zero at
// every pivot column of echelon and is a positive multiple of v plus an
// element of the row space, so v and v+w (w in the row space) reduce to the
// same vector.
func ReduceModulo(v ZVector, echelon ZMatrix) (ZVector, error) {
	if v.Len() != echelon.cols {
		return ZVector{}, zmatrixErrorf(opReduce, ErrDimensionMismatch)
	}
	out := v.Clone()
	for _, b := range echelon.rows {
		p := leadingIndex(b)
		if p < 0 || out.entries[p].Sign() == 0 {
			continue
		}
		if b.entries[p].Sign() < 0 {
			b = b.Neg()
		}
		out = combine(b.entries[p], out, new(big.Int).Neg(out.entries[p]), b)
	}

	return out.Normalized(), nil
}

// SplitByForms splits the lattice spanned by the rows of basis along the
// linear forms given as rows of forms. It returns:
//
//   - quotient: lattice vectors whose images under forms are a basis of the
//     image lattice; their classes form a basis of basis/kernel.
//   - kernel: a lattice basis of the vectors in the span of basis on which
//     every form vanishes.
//
// basis rows must be linearly independent. Widths must agree.
func SplitByForms(basis, forms ZMatrix) (quotient, kernel ZMatrix, err error) {
	if basis.cols != forms.cols {
		return ZMatrix{}, ZMatrix{}, zmatrixErrorf(opSplit, ErrDimensionMismatch)
	}
	k, n := len(forms.rows), basis.cols
	work := make([]ZVector, len(basis.rows))
	for i, b := range basis.rows {
		v := NewVector(k + n)
		for j, f := range forms.rows {
			v.entries[j] = dot(f.entries, b.entries)
		}
		for j, x := range b.entries {
			v.entries[k+j].Set(x)
		}
		work[i] = v
	}
	rank := hermiteRows(work, k)
	quotient = ZMatrix{cols: n, rows: make([]ZVector, 0, rank)}
	kernel = ZMatrix{cols: n, rows: make([]ZVector, 0, len(work)-rank)}
	for i, r := range work {
		right := ZVector{entries: r.entries[k:]}
		if i < rank {
			quotient.rows = append(quotient.rows, right)
		} else {
			kernel.rows = append(kernel.rows, right)
		}
	}

	return quotient, kernel, nil
}

// leadingIndex returns the index of the first nonzero entry, or -1.
func leadingIndex(v ZVector) int {
	for i, x := range v.entries {
		if x.Sign() != 0 {
			return i
		}
	}

	return -1
}

// hermiteRows brings rows into Hermite normal form using unimodular row
// operations, choosing pivots only among the first width columns. Rows are
// replaced, never mutated in place. It returns the number of pivot rows;
// rows from that index on are zero in the first width columns.
func hermiteRows(rows []ZVector, width int) int {
	r := 0
	for c := 0; c < width && r < len(rows); c++ {
		pivoted := false
		for {
			p := -1
			for i := r; i < len(rows); i++ {
				x := rows[i].entries[c]
				if x.Sign() == 0 {
					continue
				}
				if p < 0 || x.CmpAbs(rows[p].entries[c]) < 0 {
					p = i
				}
			}
			if p < 0 {
				break
			}
			rows[r], rows[p] = rows[p], rows[r]
			if rows[r].entries[c].Sign() < 0 {
				rows[r] = rows[r].Neg()
			}
			pivot := rows[r].entries[c]
			clean := true
			for i := r + 1; i < len(rows); i++ {
				x := rows[i].entries[c]
				if x.Sign() == 0 {
					continue
				}
				q := new(big.Int).Div(x, pivot) // Euclidean: remainder in [0, pivot)
				rows[i] = combine(bigOne, rows[i], q.Neg(q), rows[r])
				if rows[i].entries[c].Sign() != 0 {
					clean = false
				}
			}
			if clean {
				pivoted = true
				break
			}
		}
		if !pivoted {
			continue
		}
		pivot := rows[r].entries[c]
		for i := 0; i < r; i++ {
			q := new(big.Int).Div(rows[i].entries[c], pivot)
			if q.Sign() != 0 {
				rows[i] = combine(bigOne, rows[i], q.Neg(q), rows[r])
			}
		}
		r++
	}

	return r
}

// toRat copies m into a rational work table.
func toRat(m ZMatrix) [][]*big.Rat {
	out := make([][]*big.Rat, len(m.rows))
	for i, r := range m.rows {
		out[i] = make([]*big.Rat, m.cols)
		for j, x := range r.entries {
			out[i][j] = new(big.Rat).SetInt(x)
		}
	}

	return out
}

// rrefRat runs Gauss-Jordan elimination in place and returns the rank.
// Rows [0, rank) hold the reduced form with unit pivots.
func rrefRat(a [][]*big.Rat, cols int) int {
	r := 0
	t := new(big.Rat)
	for c := 0; c < cols && r < len(a); c++ {
		p := -1
		for i := r; i < len(a); i++ {
			if a[i][c].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		a[r], a[p] = a[p], a[r]
		inv := new(big.Rat).Inv(a[r][c])
		for j := c; j < cols; j++ {
			a[r][j].Mul(a[r][j], inv)
		}
		for i := range a {
			if i == r || a[i][c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(a[i][c])
			for j := c; j < cols; j++ {
				a[i][j].Sub(a[i][j], t.Mul(f, a[r][j]))
			}
		}
		r++
	}

	return r
}

// primitiveFromRat clears denominators of a rational row and normalizes it.
func primitiveFromRat(row []*big.Rat) ZVector {
	l := big.NewInt(1)
	g := new(big.Int)
	for _, x := range row {
		d := x.Denom()
		g.GCD(nil, nil, l, d)
		l.Mul(l, new(big.Int).Quo(d, g))
	}
	v := ZVector{entries: make([]*big.Int, len(row))}
	for i, x := range row {
		n := new(big.Int).Mul(x.Num(), l)
		v.entries[i] = n.Quo(n, x.Denom())
	}

	return v.Normalized()
}
