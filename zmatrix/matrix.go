// SPDX-License-Identifier: MIT
// Package zmatrix: ZMatrix, the exact row-major integer matrix.
//
// Design:
//   - Rows are stored as ZVector values; every row has exactly Cols() entries.
//   - A matrix may have zero rows and still carry a width. The 0×n matrix is
//     the empty constraint system of an n-dimensional cone.
//   - Constructors validate shapes and return sentinels; they never panic.
//
// AI-Hints:
//   - Use Stack to combine constraint systems on top of each other; it copies.
//   - Use Row(i) for a read-mostly view; Clone before mutating shared rows.

package zmatrix

import (
	"math/big"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// ZMatrix is a rows×cols matrix of arbitrary-precision integers.
// The zero value is the 0×0 matrix.
type ZMatrix struct {
	cols int
	rows []ZVector
}

// New returns the rows×cols zero matrix.
// Returns ErrInvalidDimensions if rows < 0 or cols < 0.
func New(rows, cols int) (ZMatrix, error) {
	if rows < 0 || cols < 0 {
		return ZMatrix{}, zmatrixErrorf(opNew, ErrInvalidDimensions)
	}

	return zeros(rows, cols), nil
}

// Empty returns the 0×cols matrix (cols < 0 is clamped to 0).
func Empty(cols int) ZMatrix {
	if cols < 0 {
		cols = 0
	}

	return ZMatrix{cols: cols}
}

// Identity returns the n×n identity matrix.
func Identity(n int) (ZMatrix, error) {
	if n < 0 {
		return ZMatrix{}, zmatrixErrorf(opNew, ErrInvalidDimensions)
	}
	m := zeros(n, n)
	for i := 0; i < n; i++ {
		m.rows[i].entries[i].SetInt64(1)
	}

	return m, nil
}

// FromRows builds a matrix of the given width from machine-integer rows.
// Every row must have exactly cols entries (ErrDimensionMismatch otherwise).
// The explicit width keeps 0-row matrices meaningful.
func FromRows[T constraints.Integer](cols int, rows [][]T) (ZMatrix, error) {
	if cols < 0 {
		return ZMatrix{}, zmatrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	m := ZMatrix{cols: cols, rows: make([]ZVector, 0, len(rows))}
	for _, r := range rows {
		if len(r) != cols {
			return ZMatrix{}, zmatrixErrorf(opFromRows, ErrDimensionMismatch)
		}
		v := ZVector{entries: make([]*big.Int, cols)}
		for j, x := range r {
			v.entries[j] = intToBig(x)
		}
		m.rows = append(m.rows, v)
	}

	return m, nil
}

// MustFromRows is FromRows for literal tables in tests and examples.
// It panics on a malformed table.
func MustFromRows[T constraints.Integer](cols int, rows [][]T) ZMatrix {
	m, err := FromRows(cols, rows)
	if err != nil {
		panic(err)
	}

	return m
}

// FromVectors builds a matrix of the given width whose rows are copies of vs.
func FromVectors(cols int, vs ...ZVector) (ZMatrix, error) {
	if cols < 0 {
		return ZMatrix{}, zmatrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	m := ZMatrix{cols: cols, rows: make([]ZVector, 0, len(vs))}
	for _, v := range vs {
		if v.Len() != cols {
			return ZMatrix{}, zmatrixErrorf(opFromRows, ErrDimensionMismatch)
		}
		m.rows = append(m.rows, v.Clone())
	}

	return m, nil
}

// Rows returns the number of rows.
func (m ZMatrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns (the width).
func (m ZMatrix) Cols() int { return m.cols }

// Row returns a view of row i; writes through the view change m.
// It panics if i is out of range, like slice indexing.
func (m ZMatrix) Row(i int) ZVector { return m.rows[i] }

// At returns a copy of entry (i, j).
func (m ZMatrix) At(i, j int) (*big.Int, error) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return nil, zmatrixErrorf(opAt, ErrOutOfRange)
	}

	return new(big.Int).Set(m.rows[i].entries[j]), nil
}

// Set overwrites entry (i, j) with a copy of x.
func (m ZMatrix) Set(i, j int, x *big.Int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return zmatrixErrorf(opSet, ErrOutOfRange)
	}
	if x == nil {
		return zmatrixErrorf(opSet, ErrNilEntry)
	}
	m.rows[i].entries[j].Set(x)

	return nil
}

// AppendRow appends a copy of v as a new last row.
func (m *ZMatrix) AppendRow(v ZVector) error {
	if v.Len() != m.cols {
		return zmatrixErrorf(opAppend, ErrDimensionMismatch)
	}
	m.rows = append(m.rows, v.Clone())

	return nil
}

// Append appends copies of all rows of o.
func (m *ZMatrix) Append(o ZMatrix) error {
	if o.cols != m.cols {
		return zmatrixErrorf(opAppend, ErrDimensionMismatch)
	}
	for _, r := range o.rows {
		m.rows = append(m.rows, r.Clone())
	}

	return nil
}

// Stack returns a new matrix with the rows of top followed by the rows of
// bottom. Widths must agree.
func Stack(top, bottom ZMatrix) (ZMatrix, error) {
	if top.cols != bottom.cols {
		return ZMatrix{}, zmatrixErrorf(opStack, ErrDimensionMismatch)
	}
	out := top.Clone()
	for _, r := range bottom.rows {
		out.rows = append(out.rows, r.Clone())
	}

	return out, nil
}

// Submatrix returns a copy of rows [from, to).
func (m ZMatrix) Submatrix(from, to int) (ZMatrix, error) {
	if from < 0 || to > len(m.rows) || from > to {
		return ZMatrix{}, zmatrixErrorf(opSubmatrix, ErrOutOfRange)
	}
	out := ZMatrix{cols: m.cols, rows: make([]ZVector, 0, to-from)}
	for _, r := range m.rows[from:to] {
		out.rows = append(out.rows, r.Clone())
	}

	return out, nil
}

// WithoutRow returns a copy of m with row i removed.
func (m ZMatrix) WithoutRow(i int) (ZMatrix, error) {
	if i < 0 || i >= len(m.rows) {
		return ZMatrix{}, zmatrixErrorf(opSubmatrix, ErrOutOfRange)
	}
	out := ZMatrix{cols: m.cols, rows: make([]ZVector, 0, len(m.rows)-1)}
	for k, r := range m.rows {
		if k != i {
			out.rows = append(out.rows, r.Clone())
		}
	}

	return out, nil
}

// Transposed returns mᵀ. The transpose of a 0×n matrix is n×0.
func (m ZMatrix) Transposed() ZMatrix {
	out := zeros(m.cols, len(m.rows))
	for i, r := range m.rows {
		for j, x := range r.entries {
			out.rows[j].entries[i].Set(x)
		}
	}

	return out
}

// Neg returns -m.
func (m ZMatrix) Neg() ZMatrix {
	out := ZMatrix{cols: m.cols, rows: make([]ZVector, len(m.rows))}
	for i, r := range m.rows {
		out.rows[i] = r.Neg()
	}

	return out
}

// Clone returns a deep copy.
func (m ZMatrix) Clone() ZMatrix {
	out := ZMatrix{cols: m.cols, rows: make([]ZVector, len(m.rows))}
	for i, r := range m.rows {
		out.rows[i] = r.Clone()
	}

	return out
}

// Equal reports equal shape and entries, row order included.
func (m ZMatrix) Equal(o ZMatrix) bool {
	if m.cols != o.cols || len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// SortedRows returns a copy of m whose rows are in ascending Compare order.
func (m ZMatrix) SortedRows() ZMatrix {
	out := m.Clone()
	sort.SliceStable(out.rows, func(a, b int) bool {
		return out.rows[a].Compare(out.rows[b]) < 0
	})

	return out
}

// MulVec returns m·v.
func (m ZMatrix) MulVec(v ZVector) (ZVector, error) {
	if v.Len() != m.cols {
		return ZVector{}, zmatrixErrorf(opDot, ErrDimensionMismatch)
	}
	out := ZVector{entries: make([]*big.Int, len(m.rows))}
	for i, r := range m.rows {
		out.entries[i] = dot(r.entries, v.entries)
	}

	return out, nil
}

// PadLeft returns a copy of m with k zero columns prepended.
func (m ZMatrix) PadLeft(k int) ZMatrix {
	if k < 0 {
		k = 0
	}
	out := ZMatrix{cols: m.cols + k, rows: make([]ZVector, len(m.rows))}
	for i, r := range m.rows {
		v := NewVector(m.cols + k)
		for j, x := range r.entries {
			v.entries[j+k].Set(x)
		}
		out.rows[i] = v
	}

	return out
}

// Int64s returns the entries as machine integers; ok is false on overflow.
func (m ZMatrix) Int64s() (out [][]int64, ok bool) {
	out = make([][]int64, len(m.rows))
	for i, r := range m.rows {
		if out[i], ok = r.Int64s(); !ok {
			return nil, false
		}
	}

	return out, true
}

// String renders one row per line, entries separated by commas.
func (m ZMatrix) String() string {
	var b strings.Builder
	for i, r := range m.rows {
		for j, x := range r.entries {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(x.String())
		}
		if i+1 < len(m.rows) {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// zeros allocates a rows×cols zero matrix without validation.
func zeros(rows, cols int) ZMatrix {
	m := ZMatrix{cols: cols, rows: make([]ZVector, rows)}
	for i := range m.rows {
		m.rows[i] = NewVector(cols)
	}

	return m
}

// intToBig converts any machine integer without wrapping large unsigned values.
func intToBig[T constraints.Integer](x T) *big.Int {
	if x < 0 {
		return big.NewInt(int64(x))
	}

	return new(big.Int).SetUint64(uint64(x))
}
