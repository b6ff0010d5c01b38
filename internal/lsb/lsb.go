// Package lsb walks the channel samples of a pixel grid in row-major,
// R-G-B order and reads or writes their least significant bits.
package lsb

import (
	"fmt"

	"github.com/yyyoichi/lsbsteg/pixel"
)

// Capacity returns the number of bits a width x height grid can carry.
func Capacity(width, height int) int {
	return width * height * pixel.Channels
}

// Enable reports whether a mark of markLen bits fits in src.
func Enable(src *pixel.Grid, markLen int) error {
	if total := Capacity(src.Width, src.Height); total < markLen {
		return fmt.Errorf("capacity %d bits < mark length %d bits", total, markLen)
	}
	return nil
}

// Embed overwrites the least significant bit of the first len(mark)
// channel samples of dist. Upper bits and all later samples are left
// untouched. The caller must check Enable first.
func Embed(dist *pixel.Grid, mark []bool) {
	// Pix is already row-major with R, G, B per pixel, so the channel
	// cursor is the index into Pix.
	for at, bit := range mark {
		v := dist.Pix[at] & 0xFE
		if bit {
			v |= 1
		}
		dist.Pix[at] = v
	}
}

// Bits returns the least significant bit of every channel sample.
func Bits(src *pixel.Grid) []bool {
	bits := make([]bool, len(src.Pix))
	for i, v := range src.Pix {
		bits[i] = v&1 == 1
	}
	return bits
}
