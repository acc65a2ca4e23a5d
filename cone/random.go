// SPDX-License-Identifier: MIT

package cone

import (
	"math/big"

	"github.com/katalvlaran/polycone/zmatrix"
)

// RandomPoint returns Σ kᵢ rᵢ + Σ mⱼ lⱼ over the extreme rays and the
// lineality generators with coefficients drawn from [0, magnitude]. The
// point lies in the cone; it is not a uniform sample.
func RandomPoint(c *Cone, opts ...RandomOption) (zmatrix.ZVector, error) {
	if c == nil {
		return zmatrix.ZVector{}, coneErrorf("RandomPoint", ErrNilCone)
	}
	o := gatherRandomOptions(opts)
	rng := rngFromSeed(o.Seed)

	p := zmatrix.NewVector(c.n)
	for _, gens := range []zmatrix.ZMatrix{c.ExtremeRays(), c.GeneratorsOfLinealitySpace()} {
		for i := 0; i < gens.Rows(); i++ {
			k := big.NewInt(rng.Int63n(o.Magnitude + 1))
			var err error
			p, err = p.Add(gens.Row(i).Scale(k))
			must(err)
		}
	}

	return p, nil
}
