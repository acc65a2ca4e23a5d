// SPDX-License-Identifier: MIT
// Package codec: sentinel error set.

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord indicates a truncated record, an entry that is not
	// a base-16 integer, or a size that is not a decimal in [0, MaxSize].
	ErrMalformedRecord = errors.New("codec: malformed record")

	// ErrUnexpectedTag indicates that a record does not start with "cone".
	ErrUnexpectedTag = errors.New("codec: unexpected record tag")
)

func codecErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
