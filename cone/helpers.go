// SPDX-License-Identifier: MIT

package cone

import (
	"math/big"

	"github.com/katalvlaran/polycone/zmatrix"
)

// dotOf is Dot for operands of the cone's own width.
func dotOf(a, b zmatrix.ZVector) *big.Int {
	d, err := a.Dot(b)
	must(err)

	return d
}

// sumRows returns the sum of the rows of m as a vector of width m.Cols().
func sumRows(m zmatrix.ZMatrix) zmatrix.ZVector {
	s := zmatrix.NewVector(m.Cols())
	for i := 0; i < m.Rows(); i++ {
		var err error
		s, err = s.Add(m.Row(i))
		must(err)
	}

	return s
}

// checkLen validates a point argument against the ambient dimension.
func (c *Cone) checkLen(op string, v zmatrix.ZVector) error {
	if v.Len() != c.n {
		return coneErrorf(op, ErrDimensionMismatch)
	}

	return nil
}
