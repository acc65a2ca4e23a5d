// SPDX-License-Identifier: MIT
package codec_test

import (
	"fmt"

	"github.com/katalvlaran/polycone/codec"
	"github.com/katalvlaran/polycone/cone"
	"github.com/katalvlaran/polycone/zmatrix"
)

func ExampleMarshal() {
	c := cone.FromRays(zmatrix.MustFromRows(2, [][]int{{1, 0}, {1, 1}}))
	c.Canonicalize()
	data, err := codec.Marshal(c)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", data)

	back, err := codec.Unmarshal(data)
	if err != nil {
		panic(err)
	}
	fmt.Println(back.Equal(c))
	// Output:
	// "cone 3 2 2 0 1 1 -1 0 2 "
	// true
}
