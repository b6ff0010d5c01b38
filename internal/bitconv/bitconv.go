// Package bitconv converts between text, bytes and MSB-first bit sequences.
package bitconv

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/bitstream-go"
)

// ErrPayloadEncoding reports a character that does not fit in one byte.
var ErrPayloadEncoding = errors.New("payload character cannot be encoded in 8 bits")

// PayloadEncodingError describes the first character of a text that is
// outside the 0-255 code point range.
type PayloadEncodingError struct {
	// Index is the character offset in the text, counted in runes.
	Index int
	Rune  rune
}

func (e *PayloadEncodingError) Error() string {
	return fmt.Sprintf("%v: %q (U+%04X) at index %d", ErrPayloadEncoding, e.Rune, e.Rune, e.Index)
}

func (e *PayloadEncodingError) Is(target error) bool {
	return target == ErrPayloadEncoding
}

// TextToBits expands every character of text to exactly 8 bits, most
// significant bit first. Characters above U+00FF, including the
// replacement character produced by invalid UTF-8, are rejected.
func TextToBits(text string) ([]bool, error) {
	b, err := textToBytes(text)
	if err != nil {
		return nil, err
	}
	return BytesToBools(b), nil
}

// BitsToText reads bits in 8-bit groups and maps each group to the code
// point of the same value. A trailing group shorter than 8 bits is dropped.
func BitsToText(bits []bool) string {
	n := len(bits) / 8 * 8
	return bytesToText(BoolsToBytes(bits[:n]))
}

// BytesToText maps every byte to the code point of the same value.
func BytesToText(b []byte) string {
	return bytesToText(b)
}

func textToBytes(text string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	index := 0
	for _, r := range text {
		if r < 0 || r > 0xFF {
			return nil, &PayloadEncodingError{Index: index, Rune: r}
		}
		out = append(out, byte(r))
		index++
	}
	return out, nil
}

func bytesToText(b []byte) string {
	runes := make([]rune, len(b))
	for i, v := range b {
		runes[i] = rune(v)
	}
	return string(runes)
}

func BytesToBools(b []byte) []bool {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range b {
		w.Write8(0, 8, v)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(len(b) * 8)

	bits := make([]bool, len(b)*8)
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}

// BoolsToBytes packs bits into bytes. A partial trailing group is padded
// with zero bits.
func BoolsToBytes(bits []bool) []byte {
	n := len(bits)
	paddedLen := n
	if n%8 != 0 {
		paddedLen += 8 - (n % 8)
	}

	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	for range paddedLen - n {
		w.WriteBool(false)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(paddedLen)

	out := make([]byte, paddedLen/8)
	for i := range out {
		out[i] = r.Read8R(8, i)
	}
	return out
}
