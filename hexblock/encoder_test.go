package hexblock

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anupcshan/bin2dataset/checksum"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		width int
		want  string
	}{
		{
			name:  "four bytes",
			data:  []byte{0x01, 0x02, 0x03, 0x04},
			width: 16,
			want:  "0x01,0x02,0x0E,0x7C",
		},
		{
			name:  "checksum only",
			data:  []byte{0x55, 0xAA},
			width: 16,
			want:  "0xFF,0xFF",
		},
		{
			name:  "uppercase zero-padded digits",
			data:  []byte{0xDE, 0xAD, 0xBE, 0x0f, 0x00},
			width: 16,
			want:  "0xDE,0xAD,0xBE,0x9F,0x3E",
		},
		{
			name:  "wrap every two tokens",
			data:  []byte{0x01, 0x02, 0x03, 0x04},
			width: 2,
			// 19 characters, newline after the 10th
			want: "0x01,0x02,\n0x0E,0x7C",
		},
		{
			name:  "wrap width one",
			data:  []byte{0x01, 0x02, 0x03, 0x04},
			width: 1,
			want:  "0x01,\n0x02,\n0x0E,\n0x7C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.data, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeChecksumRoundTrip(t *testing.T) {
	for n := 2; n < 70; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i*31 + n)
		}

		out, err := Encode(data, 16)
		require.NoError(t, err)

		tokens := strings.Split(strings.ReplaceAll(out, "\n", ""), ",")
		require.Len(t, tokens, n)

		hi, err := strconv.ParseUint(strings.TrimPrefix(tokens[n-2], "0x"), 16, 8)
		require.NoError(t, err)
		lo, err := strconv.ParseUint(strings.TrimPrefix(tokens[n-1], "0x"), 16, 8)
		require.NoError(t, err)

		assert.Equal(t, checksum.Compute(data[:n-2]), uint16(hi<<8|lo), "length %d", n)
	}
}

func TestEncodeLineLength(t *testing.T) {
	data := make([]byte, 100)
	for _, width := range []int{1, 3, 8, 16, 99, 100, 200} {
		out, err := Encode(data, width)
		require.NoError(t, err)

		lines := strings.Split(out, "\n")
		for i, line := range lines[:len(lines)-1] {
			assert.Len(t, line, width*TokenWidth, "width %d line %d", width, i)
		}
		assert.LessOrEqual(t, len(lines[len(lines)-1]), width*TokenWidth)
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "0x01,\n", Wrap("0x01,", 5))
	assert.Equal(t, "abc\ndef\n", Wrap("abcdef", 3))
	assert.Equal(t, "abcdef", Wrap("abcdef", 0))
	assert.Equal(t, "", Wrap("", 5))
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode([]byte{0x01}, 16)
	assert.Equal(t, checksum.ErrTooShort, errors.Cause(err))

	_, err = Encode([]byte{0x01, 0x02}, 0)
	assert.Equal(t, ErrInvalidWrapWidth, errors.Cause(err))
}

func TestEncoderWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf, 16).Encode([]byte{0x01, 0x02, 0x03, 0x04}))
	assert.Equal(t, "0x01,0x02,0x0E,0x7C", buf.String())
}
