// Package hexblock renders a binary block as comma-separated 0xHH tokens
// with the CRC-16 of the block stored in its last two tokens.
package hexblock

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/anupcshan/bin2dataset/checksum"
)

// TokenWidth is the width of one "0xHH," unit used for line wrapping.
const TokenWidth = 5

var ErrInvalidWrapWidth = errors.New("wrap width must be at least 1")

type Encoder struct {
	w         io.Writer
	wrapWidth int
}

func NewEncoder(w io.Writer, wrapWidth int) *Encoder {
	return &Encoder{
		w:         w,
		wrapWidth: wrapWidth,
	}
}

func (e *Encoder) Encode(data []byte) error {
	if e.wrapWidth < 1 {
		return errors.Wrapf(ErrInvalidWrapWidth, "got %d", e.wrapWidth)
	}

	tokens, err := Tokens(data)
	if err != nil {
		return err
	}

	_, err = io.WriteString(e.w, Wrap(strings.Join(tokens, ","), e.wrapWidth*TokenWidth))
	return err
}

// Tokens returns one token per byte of data, with the trailing two replaced
// by the high and low byte of the block checksum.
func Tokens(data []byte) ([]string, error) {
	sum, err := checksum.Block(data)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, len(data))
	for i, b := range data {
		tokens[i] = fmt.Sprintf("0x%02X", b)
	}

	crc := fmt.Sprintf("%04X", sum)
	n := len(tokens)
	tokens[n-2] = "0x" + crc[0:2]
	tokens[n-1] = "0x" + crc[2:4]

	return tokens, nil
}

// Wrap inserts a newline after every complete run of width characters.
// A newline is appended when len(text) is a multiple of width, and runs may
// split a token if tokens are not width-aligned.
func Wrap(text string, width int) string {
	if width < 1 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/width)
	for len(text) >= width {
		b.WriteString(text[:width])
		b.WriteByte('\n')
		text = text[width:]
	}
	b.WriteString(text)

	return b.String()
}

func Encode(data []byte, wrapWidth int) (string, error) {
	var b strings.Builder
	if err := NewEncoder(&b, wrapWidth).Encode(data); err != nil {
		return "", err
	}
	return b.String(), nil
}
