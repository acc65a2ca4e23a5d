// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"

	"github.com/katalvlaran/polycone/cone"
	"github.com/katalvlaran/polycone/zmatrix"
)

// Tag opens every cone record.
const Tag = "cone"

// MaxSize bounds the flags and matrix sizes a record may declare.
const MaxSize = math.MaxInt32

// maxZeroWidthRows bounds the rows of a width-0 matrix, which carry no
// tokens of their own.
const maxZeroWidthRows = 1 << 16

// Encoder writes cone records to a token stream.
type Encoder struct {
	tw TokenWriter
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{tw: NewStreamWriter(w)}
}

// NewTokenEncoder returns an Encoder writing to an existing token stream.
func NewTokenEncoder(tw TokenWriter) *Encoder {
	return &Encoder{tw: tw}
}

// Encode writes one record for c and flushes. The matrices are taken as
// they are; call Canonicalize first to persist the normal form.
func (e *Encoder) Encode(c *cone.Cone) error {
	if c == nil {
		return codecErrorf("Encode", cone.ErrNilCone)
	}
	// Reading the matrices may complete the H side and with it the flags.
	ineq, eq := c.Inequalities(), c.Equations()
	flags := 0
	if c.AreImpliedEquationsKnown() {
		flags |= cone.FlagImpliedEquations
	}
	if c.AreFacetsKnown() {
		flags |= cone.FlagFacets
	}

	if err := e.tw.WriteToken(Tag); err != nil {
		return codecErrorf("Encode", err)
	}
	if err := e.writeSize(flags); err != nil {
		return codecErrorf("Encode", err)
	}
	for _, m := range []zmatrix.ZMatrix{ineq, eq} {
		if err := e.writeMatrix(m); err != nil {
			return codecErrorf("Encode", err)
		}
	}
	if err := e.tw.Flush(); err != nil {
		return codecErrorf("Encode", err)
	}

	return nil
}

// writeInt writes a matrix entry in base 16.
func (e *Encoder) writeInt(x *big.Int) error {
	return e.tw.WriteToken(x.Text(16))
}

// writeSize writes flags and matrix sizes in decimal.
func (e *Encoder) writeSize(n int) error {
	return e.tw.WriteToken(strconv.Itoa(n))
}

func (e *Encoder) writeMatrix(m zmatrix.ZMatrix) error {
	if err := e.writeSize(m.Rows()); err != nil {
		return err
	}
	if err := e.writeSize(m.Cols()); err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		row := m.Row(i)
		for j := 0; j < row.Len(); j++ {
			x, err := row.At(j)
			if err != nil {
				return err
			}
			if err = e.writeInt(x); err != nil {
				return err
			}
		}
	}

	return nil
}

// Decoder reads cone records from a token stream.
type Decoder struct {
	tr TokenReader
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{tr: NewStreamReader(r)}
}

// NewTokenDecoder returns a Decoder reading from an existing token stream.
func NewTokenDecoder(tr TokenReader) *Decoder {
	return &Decoder{tr: tr}
}

// Decode reads one record. It returns io.EOF, unwrapped, when the stream
// ends before a record starts.
// Returns ErrUnexpectedTag if the first token is not Tag and
// ErrMalformedRecord if the record is cut short or not parseable.
func (d *Decoder) Decode() (*cone.Cone, error) {
	tok, err := d.tr.ReadToken()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, codecErrorf("Decode", err)
	}
	if tok != Tag {
		return nil, codecErrorf("Decode", fmt.Errorf("%w: %q", ErrUnexpectedTag, tok))
	}

	return d.DecodeBody()
}

// DecodeBody reads a record whose tag the transport already consumed.
func (d *Decoder) DecodeBody() (*cone.Cone, error) {
	flags, err := d.readSize()
	if err != nil {
		return nil, codecErrorf("Decode", err)
	}
	ineq, err := d.readMatrix()
	if err != nil {
		return nil, codecErrorf("Decode", err)
	}
	eq, err := d.readMatrix()
	if err != nil {
		return nil, codecErrorf("Decode", err)
	}
	c, err := cone.FromInequalitiesFlags(ineq, eq, flags)
	if err != nil {
		return nil, codecErrorf("Decode", err)
	}

	return c, nil
}

func (d *Decoder) readToken() (string, error) {
	tok, err := d.tr.ReadToken()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %w", ErrMalformedRecord, io.ErrUnexpectedEOF)
	}

	return tok, err
}

// readInt reads a base-16 matrix entry.
func (d *Decoder) readInt() (*big.Int, error) {
	tok, err := d.readToken()
	if err != nil {
		return nil, err
	}
	x, ok := new(big.Int).SetString(tok, 16)
	if !ok {
		return nil, fmt.Errorf("%w: bad integer %q", ErrMalformedRecord, tok)
	}

	return x, nil
}

// readSize reads a decimal flag or matrix size in [0, MaxSize].
func (d *Decoder) readSize() (int, error) {
	tok, err := d.readToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 || n > MaxSize {
		return 0, fmt.Errorf("%w: bad size %q", ErrMalformedRecord, tok)
	}

	return n, nil
}

// readMatrix grows the matrix one token at a time, so memory stays
// proportional to the input actually read, whatever the sizes claim.
func (d *Decoder) readMatrix() (zmatrix.ZMatrix, error) {
	rows, err := d.readSize()
	if err != nil {
		return zmatrix.ZMatrix{}, err
	}
	cols, err := d.readSize()
	if err != nil {
		return zmatrix.ZMatrix{}, err
	}
	if cols == 0 && rows > maxZeroWidthRows {
		return zmatrix.ZMatrix{}, fmt.Errorf("%w: %d rows of width 0", ErrMalformedRecord, rows)
	}
	m := zmatrix.Empty(cols)
	var entries []*big.Int
	for i := 0; i < rows; i++ {
		entries = entries[:0]
		for j := 0; j < cols; j++ {
			x, err := d.readInt()
			if err != nil {
				return zmatrix.ZMatrix{}, err
			}
			entries = append(entries, x)
		}
		row, err := zmatrix.VectorFromBig(entries)
		if err != nil {
			return zmatrix.ZMatrix{}, err
		}
		if err = m.AppendRow(row); err != nil {
			return zmatrix.ZMatrix{}, err
		}
	}

	return m, nil
}

// Marshal returns the record for c.
func Marshal(c *cone.Cone) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes exactly one record from data.
// Returns ErrMalformedRecord if data is empty or has trailing tokens.
func Unmarshal(data []byte) (*cone.Cone, error) {
	d := NewDecoder(bytes.NewReader(data))
	c, err := d.Decode()
	if errors.Is(err, io.EOF) {
		return nil, codecErrorf("Unmarshal", fmt.Errorf("%w: %w", ErrMalformedRecord, io.ErrUnexpectedEOF))
	}
	if err != nil {
		return nil, err
	}
	if tok, err := d.tr.ReadToken(); err == nil {
		return nil, codecErrorf("Unmarshal", fmt.Errorf("%w: trailing token %q", ErrMalformedRecord, tok))
	}

	return c, nil
}
