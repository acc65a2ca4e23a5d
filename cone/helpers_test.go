// SPDX-License-Identifier: MIT
// Package cone_test contains shared fixtures.
package cone_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/polycone/cone"
	"github.com/katalvlaran/polycone/zmatrix"
	"github.com/stretchr/testify/require"
)

// mat builds a literal matrix of the given width.
func mat(cols int, rows ...[]int) zmatrix.ZMatrix {
	return zmatrix.MustFromRows(cols, rows)
}

func vec(xs ...int64) zmatrix.ZVector { return zmatrix.VectorOf(xs...) }

// quadrant is { x >= 0, y >= 0 }.
func quadrant() *cone.Cone {
	return cone.FromInequalities(mat(2, []int{1, 0}, []int{0, 1}))
}

// halfPlane is { x >= 0 }, with the y-axis as lineality.
func halfPlane() *cone.Cone {
	return cone.FromInequalities(mat(2, []int{1, 0}))
}

// squareCone is the cone over the square [-1,1]² at height 1.
func squareCone() *cone.Cone {
	return cone.FromRays(mat(3, []int{1, 1, 1}, []int{1, -1, 1}, []int{-1, 1, 1}, []int{-1, -1, 1}))
}

// requireMatrix compares matrices and prints the actual value on failure.
func requireMatrix(t *testing.T, want, got zmatrix.ZMatrix) {
	t.Helper()
	require.True(t, want.Equal(got), "want\n%v\ngot\n%v", want, got)
}

func bigInt(x int64) *big.Int { return big.NewInt(x) }
