package bitconv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitConv(t *testing.T) {
	test := []struct {
		data []byte
		exp  []byte
	}{
		{data: []byte{0b10101010}, exp: []byte{0b10101010}},
		{data: []byte{0b11110000, 0b00001111}, exp: []byte{0b11110000, 0b00001111}},
		{data: []byte("Hello"), exp: []byte("Hello")},
		{data: []byte("こんにちは"), exp: []byte("こんにちは")},
		{data: []byte{0x00, 0xff, 0x80, 0x01}, exp: []byte{0x00, 0xff, 0x80, 0x01}},
		{data: []byte{}, exp: []byte{}},
	}
	for _, tt := range test {
		bits := BytesToBools(tt.data)
		assert.Len(t, bits, len(tt.data)*8)
		out := BoolsToBytes(bits)
		assert.Equal(t, tt.exp, out)
	}
}

func TestBoolsToBytesPadding(t *testing.T) {
	out := BoolsToBytes([]bool{true, false, true})
	assert.Equal(t, []byte{0b10100000}, out)
}

func TestTextToBits(t *testing.T) {
	t.Run("msb first", func(t *testing.T) {
		bits, err := TextToBits("A")
		require.NoError(t, err)
		assert.Equal(t, []bool{false, true, false, false, false, false, false, true}, bits)
	})

	t.Run("empty", func(t *testing.T) {
		bits, err := TextToBits("")
		require.NoError(t, err)
		assert.Empty(t, bits)
	})

	t.Run("latin1", func(t *testing.T) {
		bits, err := TextToBits("é")
		require.NoError(t, err)
		assert.Len(t, bits, 8)
		assert.Equal(t, []byte{0xe9}, BoolsToBytes(bits))
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := TextToBits("ab€c")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPayloadEncoding))

		var pe *PayloadEncodingError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 2, pe.Index)
		assert.Equal(t, '€', pe.Rune)
	})

	t.Run("invalid utf8", func(t *testing.T) {
		_, err := TextToBits("a\xffb")
		assert.ErrorIs(t, err, ErrPayloadEncoding)
	})
}

func TestBitsToText(t *testing.T) {
	test := []struct {
		name string
		text string
	}{
		{"ascii", "Hello, World"},
		{"marker", "###END###"},
		{"latin1", "Grüße ÿ"},
		{"control", "\x00\x01\n"},
		{"empty", ""},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			bits, err := TextToBits(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.text, BitsToText(bits))
		})
	}

	t.Run("trailing partial group dropped", func(t *testing.T) {
		bits, err := TextToBits("HI")
		require.NoError(t, err)
		assert.Equal(t, "H", BitsToText(bits[:15]))
		assert.Equal(t, "", BitsToText(bits[:7]))
	})
}
