// SPDX-License-Identifier: MIT
// Package interp: sentinel error set.

package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch indicates that no overload accepts the argument kinds.
	ErrTypeMismatch = errors.New("interp: type mismatch")

	// ErrWrongListElementType indicates a list argument holding an element
	// of an unexpected kind.
	ErrWrongListElementType = errors.New("interp: wrong list element type")

	// ErrUnknownCommand indicates a call to an unregistered name.
	ErrUnknownCommand = errors.New("interp: unknown command")

	// ErrUndefined indicates a reference to an unset variable.
	ErrUndefined = errors.New("interp: undefined variable")

	// ErrSyntax indicates input the reader cannot parse.
	ErrSyntax = errors.New("interp: syntax error")
)

func interpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
