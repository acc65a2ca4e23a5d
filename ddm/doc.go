// SPDX-License-Identifier: MIT

// Package ddm converts between the two descriptions of a polyhedral cone
// with the double description method, in exact integer arithmetic.
//
// A cone C ⊆ Rⁿ is either given by constraints
//
//	C = { x : A·x >= 0, E·x = 0 }
//
// or by generators
//
//	C = cone(R) + span(L).
//
// Rays(A, E) returns (R, L) with R the extreme rays and L a basis of the
// lineality space. Facets(R, L) is the same routine run on the dual cone and
// returns the facet normals and a basis of the implied equations.
//
// Outputs are canonical: the lineality (or equation) basis is in RowEchelon
// form, every ray (or facet) is primitive, reduced modulo that basis, and
// rows are sorted. Two calls describing the same cone return Equal matrices.
//
// The package keeps one process-wide default engine. EnsureInitialized must
// run before the package-level Rays and Facets; it is idempotent and safe for
// concurrent use. Engines are stateless between calls.
package ddm
