// SPDX-License-Identifier: MIT

// Package polycone is an exact toolkit for rational polyhedral cones.
//
// A cone is kept in an H-representation (inequalities and equations), a
// V-representation (rays and lineality generators) or both; every
// conversion is exact integer arithmetic through a double description
// engine.
//
// Subpackages:
//
//	zmatrix/    - big integer vectors and matrices, echelon forms, kernels
//	ddm/        - double description engine: H to V and back
//	cone/       - the Cone type, queries, intersection and hull, polytopes,
//	              facet enumeration, random points
//	codec/      - the "cone" text record
//	interp/     - a small typed command language over the above
//	cmd/conesh/ - shell for interp
//
// Quick example:
//
//	q := cone.FromInequalities(zmatrix.MustFromRows(2, [][]int{{1, 0}, {0, 1}}))
//	q.Dimension()          // 2
//	q.ExtremeRays()        // 0,1 / 1,0
//	data, _ := codec.Marshal(q)
//
// Representations are computed on demand and cached; Canonicalize moves a
// cone to its normal form, which Equal and the codec rely on.
package polycone
