// SPDX-License-Identifier: MIT

// Package cone implements convex polyhedral cones over the integer lattice.
//
// A Cone in ambient dimension n is described by constraints (H-representation)
//
//	{ x ∈ Rⁿ : a·x >= 0 for every inequality row a, e·x = 0 for every equation row e }
//
// or by generators (V-representation)
//
//	{ Σ λᵢ rᵢ + Σ μⱼ lⱼ : λᵢ >= 0 }
//
// with rays rᵢ and lineality generators lⱼ. A Cone is built from exactly one
// description; the other one is computed with package ddm on first demand and
// cached. Representation reports which variant a Cone currently holds:
//
//	HOnly      constraints only
//	VOnly      generators only
//	Both       both known, constraints not minimal
//	Canonical  both known, constraints are facets and implied equations in normal form
//
// Queries move a Cone to a more complete variant; they never move it back.
// Canonicalize is the normal form used by Equal and by persistence.
//
// Polytopes are Cones one dimension up: LiftUp prepends a homogenizing
// coordinate and Polytope reports the ambient dimension of the unlifted space.
//
// A Cone has a single owner. Queries mutate caches, so a Cone must not be
// shared between goroutines; use Clone for an independent copy.
//
// Errors are package sentinels wrapped with the failing operation, match them
// with errors.Is.
package cone
