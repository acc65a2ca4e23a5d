// SPDX-License-Identifier: MIT

package ddm

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates that the two input matrices have different widths.
	ErrDimensionMismatch = errors.New("ddm: dimension mismatch")

	// ErrNotInitialized indicates a package-level call before EnsureInitialized.
	ErrNotInitialized = errors.New("ddm: engine not initialized")
)

func ddmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
