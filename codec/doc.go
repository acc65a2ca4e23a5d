// SPDX-License-Identifier: MIT

// Package codec persists cones as self-delimiting text records.
//
// A record is a sequence of whitespace-separated tokens:
//
//	cone <flags> <rows> <cols> <ineq entries...> <rows> <cols> <eq entries...>
//
// where flags = impliedEquationsKnown + 2*facetsKnown. Flags and sizes are
// written in decimal, matrix entries in base 16, each followed by a single
// space. Decoding trusts the flags verbatim; nothing derived is recomputed.
//
// The token stream is abstracted by TokenWriter and TokenReader so the record
// can travel over any transport that frames tokens; NewEncoder and NewDecoder
// wrap an io.Writer or io.Reader with bufio.
package codec
