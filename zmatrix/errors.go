// SPDX-License-Identifier: MIT
// Package zmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the zmatrix
// package. Exported functions return these sentinels (optionally wrapped with
// an operation tag) and tests check them via errors.Is. No exported function
// panics on user-triggered error conditions.

package zmatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	// Zero rows or zero columns are legal: 0×n matrices are the empty system.
	ErrInvalidDimensions = errors.New("zmatrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row, column or entry index is outside valid bounds.
	ErrOutOfRange = errors.New("zmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand widths or lengths,
	// e.g. a dot product of vectors of different lengths.
	ErrDimensionMismatch = errors.New("zmatrix: dimension mismatch")

	// ErrNilEntry indicates that a nil *big.Int was passed where an integer is required.
	ErrNilEntry = errors.New("zmatrix: nil entry")
)

// Operation tags used for error wrapping.
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opAt        = "At"
	opSet       = "Set"
	opAppend    = "Append"
	opStack     = "Stack"
	opSubmatrix = "Submatrix"
	opDot       = "Dot"
	opAdd       = "Add"
	opSub       = "Sub"
	opReduce    = "ReduceModulo"
	opSplit     = "SplitByForms"
)

// zmatrixErrorf wraps an underlying sentinel with the given operation tag.
func zmatrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
