// SPDX-License-Identifier: MIT
package cone_test

import (
	"fmt"

	"github.com/katalvlaran/polycone/cone"
	"github.com/katalvlaran/polycone/zmatrix"
)

// ExampleFromRays builds the positive quadrant from its rays and prints its
// canonical form.
func ExampleFromRays() {
	c := cone.FromRays(zmatrix.MustFromRows(2, [][]int{{1, 0}, {0, 1}}))
	c.Canonicalize()
	fmt.Println(c.Representation())
	fmt.Print(c)
	// Output:
	// canonical
	// AMBIENT_DIM
	// 2
	// FACETS
	// 0,1
	// 1,0
	// LINEAR_SPAN
	// RAYS
	// 0,1
	// 1,0
	// LINEALITY_SPACE
}

// ExampleIntersection intersects the upper half-plane with the right one.
func ExampleIntersection() {
	upper := cone.FromInequalities(zmatrix.MustFromRows(2, [][]int{{0, 1}}))
	right := cone.FromInequalities(zmatrix.MustFromRows(2, [][]int{{1, 0}}))
	q, err := cone.Intersection(upper, right)
	if err != nil {
		panic(err)
	}
	fmt.Println(q.Dimension(), q.DimensionOfLinealitySpace(), q.Facets().Rows())
	// Output:
	// 2 0 2
}
