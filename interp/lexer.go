// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// The lexer follows the state function approach of text/template: each
// state scans a little input and returns the next state.

type tokenClass int

const (
	tokEOF tokenClass = iota
	tokIdent
	tokInt
	tokString
	tokPunct
)

type token struct {
	class tokenClass
	text  string
	pos   int // byte offset of the first byte
}

func (t token) String() string {
	if t.class == tokEOF {
		return "end of input"
	}

	return strconv.Quote(t.text)
}

type lexer struct {
	input  string
	start  int
	pos    int
	width  int
	tokens []token
	err    error
}

type stateFn func(*lexer) stateFn

const eof = -1

// lex splits input into tokens, ending with a tokEOF token.
func lex(input string) ([]token, error) {
	l := &lexer{input: input}
	for state := lexSpace; state != nil; {
		state = state(l)
	}

	return l.tokens, l.err
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0

		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w

	return r
}

func (l *lexer) backup() { l.pos -= l.width }

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()

	return r
}

func (l *lexer) emit(c tokenClass) {
	l.tokens = append(l.tokens, token{class: c, text: l.input[l.start:l.pos], pos: l.start})
	l.start = l.pos
}

func (l *lexer) ignore() { l.start = l.pos }

func (l *lexer) errorf(format string, args ...any) stateFn {
	l.err = fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), l.start)

	return nil
}

func lexSpace(l *lexer) stateFn {
	for {
		switch r := l.next(); {
		case r == eof:
			l.ignore()
			l.emit(tokEOF)

			return nil
		case unicode.IsSpace(r):
			l.ignore()
		case r == '/' && l.peek() == '/':
			l.pos = len(l.input)
			l.ignore()
		case r == '_' || unicode.IsLetter(r):
			return lexIdent
		case unicode.IsDigit(r):
			return lexInt
		case r == '"':
			return lexString
		case r == '=':
			if l.peek() == '=' {
				l.next()
			}
			l.emit(tokPunct)
		case strings.ContainsRune("()[]{},;&|-", r):
			l.emit(tokPunct)
		default:
			return l.errorf("unexpected character %q", r)
		}
	}
}

func lexIdent(l *lexer) stateFn {
	for {
		r := l.next()
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			l.backup()

			break
		}
	}
	l.emit(tokIdent)

	return lexSpace
}

func lexInt(l *lexer) stateFn {
	for unicode.IsDigit(l.peek()) {
		l.next()
	}
	if r := l.peek(); r == '_' || unicode.IsLetter(r) {
		l.next()

		return l.errorf("bad number %q", l.input[l.start:l.pos])
	}
	l.emit(tokInt)

	return lexSpace
}

func lexString(l *lexer) stateFn {
	for {
		switch l.next() {
		case '\\':
			if l.next() == eof {
				return l.errorf("unterminated string")
			}
		case eof, '\n':
			return l.errorf("unterminated string")
		case '"':
			l.emit(tokString)

			return lexSpace
		}
	}
}
