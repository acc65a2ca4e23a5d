// SPDX-License-Identifier: MIT
package codec_test

import (
	"bytes"
	"io"
	"runtime"
	"testing"

	"github.com/katalvlaran/polycone/codec"
	"github.com/katalvlaran/polycone/cone"
	"github.com/katalvlaran/polycone/zmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mat(cols int, rows ...[]int) zmatrix.ZMatrix {
	return zmatrix.MustFromRows(cols, rows)
}

// tokens is an in-memory transport.
type tokens struct {
	out []string
	in  []string
}

func (t *tokens) WriteToken(tok string) error { t.out = append(t.out, tok); return nil }
func (t *tokens) Flush() error                 { return nil }
func (t *tokens) ReadToken() (string, error) {
	if len(t.in) == 0 {
		return "", io.EOF
	}
	tok := t.in[0]
	t.in = t.in[1:]

	return tok, nil
}

// TestMarshalWireForm pins the exact record layout.
func TestMarshalWireForm(t *testing.T) {
	q := cone.FromInequalities(mat(2, []int{1, 0}, []int{0, 1}))
	q.Canonicalize()
	data, err := codec.Marshal(q)
	require.NoError(t, err)
	assert.Equal(t, "cone 3 2 2 0 1 1 0 0 2 ", string(data))

	raw, err := cone.FromInequalitiesEquations(mat(2, []int{255, -16}), mat(2, []int{1, 1}))
	require.NoError(t, err)
	data, err = codec.Marshal(raw)
	require.NoError(t, err)
	assert.Equal(t, "cone 0 1 2 ff -10 1 2 1 1 ", string(data))
}

// TestMarshalDecimalSizes: sizes and flags are decimal, entries base 16,
// which only tells apart from ten columns on.
func TestMarshalDecimalSizes(t *testing.T) {
	data, err := codec.Marshal(cone.FromInequalities(zmatrix.Empty(12)))
	require.NoError(t, err)
	assert.Equal(t, "cone 0 0 12 0 12 ", string(data))

	row := make([]int, 10)
	row[0], row[1] = 255, -16
	data, err = codec.Marshal(cone.FromInequalities(mat(10, row)))
	require.NoError(t, err)
	assert.Equal(t, "cone 0 1 10 ff -10 0 0 0 0 0 0 0 0 0 10 ", string(data))

	c, err := codec.Unmarshal([]byte("cone 0 0 12 0 12 "))
	require.NoError(t, err)
	assert.Equal(t, 12, c.AmbientDimension())
	assert.Equal(t, 0, c.Inequalities().Rows())
}

// TestDecodeHugeSizesStayCheap: declared sizes never allocate ahead of
// the entries actually present.
func TestDecodeHugeSizesStayCheap(t *testing.T) {
	for _, in := range []string{
		"cone 0 1 2147483647 0 1",
		"cone 0 2147483647 2147483647 1 2 3",
		"cone 0 2147483647 0 0 0",
	} {
		var before, after runtime.MemStats
		runtime.GC()
		runtime.ReadMemStats(&before)
		_, err := codec.Unmarshal([]byte(in))
		runtime.ReadMemStats(&after)
		require.ErrorIs(t, err, codec.ErrMalformedRecord, in)
		assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20), in)
	}
}

// TestRoundTrip: decoding restores the matrices and the flags.
func TestRoundTrip(t *testing.T) {
	withEq, err := cone.FromInequalitiesEquations(mat(3, []int{1, 0, 0}), mat(3, []int{0, 0, 1}))
	require.NoError(t, err)
	cases := map[string]*cone.Cone{
		"quadrant":  cone.FromInequalities(mat(2, []int{1, 0}, []int{0, 1})),
		"redundant": cone.FromInequalities(mat(2, []int{1, 0}, []int{0, 1}, []int{1, 1})),
		"origin":    cone.FromInequalities(mat(2, []int{1, 0}, []int{0, 1}, []int{-1, 0}, []int{0, -1})),
		"rays":      cone.FromRays(mat(3, []int{1, 1, 1}, []int{1, -1, 1}, []int{-1, 1, 1}, []int{-1, -1, 1})),
		"equation":  withEq,
		"space":     cone.FromInequalities(zmatrix.Empty(4)),
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			for _, canonical := range []bool{false, true} {
				src := c.Clone()
				if canonical {
					src.Canonicalize()
				}
				data, err := codec.Marshal(src)
				require.NoError(t, err)
				got, err := codec.Unmarshal(data)
				require.NoError(t, err)

				assert.True(t, src.Inequalities().Equal(got.Inequalities()))
				assert.True(t, src.Equations().Equal(got.Equations()))
				assert.Equal(t, src.AreFacetsKnown(), got.AreFacetsKnown())
				assert.Equal(t, src.AreImpliedEquationsKnown(), got.AreImpliedEquationsKnown())
				assert.True(t, src.Equal(got))
			}
		})
	}
}

// TestDecodeTrustsFlags: a redundant system marked as facets stays as is.
func TestDecodeTrustsFlags(t *testing.T) {
	c, err := codec.Unmarshal([]byte("cone 3 3 2 1 0 0 1 1 1 0 2"))
	require.NoError(t, err)
	assert.True(t, c.AreFacetsKnown())
	assert.Equal(t, 3, c.Facets().Rows())
	assert.True(t, c.AreImpliedEquationsKnown())
	assert.Equal(t, cone.HOnly, c.Representation())
}

// TestStreamOfRecords decodes back to back records, then io.EOF.
func TestStreamOfRecords(t *testing.T) {
	var buf bytes.Buffer
	enc := codec.NewEncoder(&buf)
	require.NoError(t, enc.Encode(cone.FromInequalities(mat(1, []int{1}))))
	require.NoError(t, enc.Encode(cone.FromInequalities(mat(2, []int{0, 1}))))

	dec := codec.NewDecoder(&buf)
	a, err := dec.Decode()
	require.NoError(t, err)
	assert.Equal(t, 1, a.AmbientDimension())
	b, err := dec.Decode()
	require.NoError(t, err)
	assert.Equal(t, 2, b.AmbientDimension())
	_, err = dec.Decode()
	assert.Equal(t, io.EOF, err)
}

// TestTokenTransport drives the codec through a caller supplied stream.
func TestTokenTransport(t *testing.T) {
	tr := &tokens{}
	require.NoError(t, codec.NewTokenEncoder(tr).Encode(cone.FromInequalities(mat(2, []int{1, -1}))))
	assert.Equal(t, []string{"cone", "0", "1", "2", "1", "-1", "0", "2"}, tr.out)

	tr.in = tr.out[1:]
	c, err := codec.NewTokenDecoder(tr).DecodeBody()
	require.NoError(t, err)
	assert.True(t, mat(2, []int{1, -1}).Equal(c.Inequalities()))
}

// TestDecodeErrors covers every rejection path.
func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", codec.ErrMalformedRecord},
		{"tag", "fan 0 0 0 0 0", codec.ErrUnexpectedTag},
		{"truncated", "cone 0 1 2 1", codec.ErrMalformedRecord},
		{"not hex", "cone 0 1 2 1 zz 0 2", codec.ErrMalformedRecord},
		{"negative size", "cone 0 -1 2 0 2", codec.ErrMalformedRecord},
		{"hex size", "cone 0 0 a 0 a", codec.ErrMalformedRecord},
		{"size overflow", "cone 0 1 7fffffff 0 1", codec.ErrMalformedRecord},
		{"size too large", "cone 0 0 2147483648 0 2147483648", codec.ErrMalformedRecord},
		{"flags", "cone 4 0 2 0 2", cone.ErrInvalidFlags},
		{"widths", "cone 0 0 2 0 3", cone.ErrDimensionMismatch},
		{"trailing", "cone 0 0 2 0 2 cone", codec.ErrMalformedRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.Unmarshal([]byte(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := codec.Marshal(nil)
	require.ErrorIs(t, err, cone.ErrNilCone)
}
