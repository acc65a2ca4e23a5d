// SPDX-License-Identifier: MIT

// Package zmatrix provides exact integer vectors and matrices for polyhedral
// computations.
//
// Every entry is an arbitrary-precision *big.Int, so no operation in this
// package ever rounds or overflows. The package offers:
//
//   - ZVector: a fixed-length integer vector with dot products, scaling,
//     primitive normalization (division by the gcd of the entries) and a
//     stable lexicographic order.
//   - ZMatrix: a row-major integer matrix whose row count may be zero while
//     the column count (the ambient width) is still meaningful. The 0×n
//     matrix is the empty system of constraints in dimension n.
//   - Exact linear algebra: Rank, RowEchelon (a canonical primitive integer
//     basis of the row space), Kernel (a saturated lattice basis of the
//     integer null space in Hermite normal form), ReduceModulo and
//     SplitByForms (the lattice split used for quotient lattices).
//
// Value semantics: constructors and transformations return fresh storage.
// Row(i) is the only accessor that returns a view into the matrix.
//
// Errors are package sentinels (see errors.go) wrapped with an operation tag;
// match them with errors.Is.
package zmatrix
