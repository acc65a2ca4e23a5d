// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"io"
)

// TokenWriter emits one token at a time. The writer owns the separators.
type TokenWriter interface {
	WriteToken(tok string) error
	Flush() error
}

// TokenReader yields one token at a time and io.EOF once exhausted.
type TokenReader interface {
	ReadToken() (string, error)
}

// StreamWriter writes each token followed by one space.
type StreamWriter struct {
	w *bufio.Writer
}

// NewStreamWriter buffers w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: bufio.NewWriter(w)}
}

// WriteToken writes tok and a trailing space.
func (s *StreamWriter) WriteToken(tok string) error {
	if _, err := s.w.WriteString(tok); err != nil {
		return err
	}

	return s.w.WriteByte(' ')
}

// Flush flushes the underlying buffer.
func (s *StreamWriter) Flush() error { return s.w.Flush() }

// StreamReader splits its input on white space.
type StreamReader struct {
	sc *bufio.Scanner
}

// NewStreamReader scans r word by word.
func NewStreamReader(r io.Reader) *StreamReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &StreamReader{sc: sc}
}

// ReadToken returns the next word, or io.EOF at the end of the input.
func (s *StreamReader) ReadToken() (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}
