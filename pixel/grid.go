// Package pixel holds the three-channel pixel grid that hiding and
// revealing operate on.
package pixel

import (
	"fmt"
	"image"
	"image/color"
)

// Channels is the number of samples per pixel, in order R, G, B.
const Channels = 3

// Pixel is one red, green and blue sample.
type Pixel struct {
	R, G, B uint8
}

// Channel returns the sample at index i, where 0 is red, 1 green and 2 blue.
func (p Pixel) Channel(i int) uint8 {
	switch i {
	case 0:
		return p.R
	case 1:
		return p.G
	case 2:
		return p.B
	}
	panic(fmt.Sprintf("pixel: channel index %d out of range", i))
}

// Grid is a width x height array of pixels stored row-major from the top
// left corner. Pix holds Channels bytes per pixel.
type Grid struct {
	Width, Height int
	Pix           []uint8
}

// NewGrid returns a black grid of the given size.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pixel: negative grid size %dx%d", width, height))
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// FromImage converts src to a grid. Every color model is converted to
// non-premultiplied 8-bit RGB and alpha is discarded. The grid origin is
// the top left corner of src.Bounds().
func FromImage(src image.Image) *Grid {
	b := src.Bounds()
	g := NewGrid(b.Dx(), b.Dy())

	if nrgba, ok := src.(*image.NRGBA); ok {
		idx := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := nrgba.Pix[nrgba.PixOffset(b.Min.X, y):]
			for x := range g.Width {
				copy(g.Pix[idx:idx+Channels], row[x*4:x*4+Channels])
				idx += Channels
			}
		}
		return g
	}

	idx := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			g.Pix[idx], g.Pix[idx+1], g.Pix[idx+2] = c.R, c.G, c.B
			idx += Channels
		}
	}
	return g
}

// Image returns an opaque copy of the grid.
func (g *Grid) Image() *image.NRGBA {
	dist := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i := range g.Len() {
		copy(dist.Pix[i*4:i*4+Channels], g.Pix[i*Channels:(i+1)*Channels])
		dist.Pix[i*4+3] = 0xff
	}
	return dist
}

// Len returns the number of pixels.
func (g *Grid) Len() int {
	return g.Width * g.Height
}

// Bounds returns the grid rectangle anchored at the origin.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

func (g *Grid) offset(x, y int) int {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		panic(fmt.Sprintf("pixel: (%d,%d) outside %dx%d grid", x, y, g.Width, g.Height))
	}
	return (y*g.Width + x) * Channels
}

// At returns the pixel at (x, y). It panics when the point is outside the grid.
func (g *Grid) At(x, y int) Pixel {
	i := g.offset(x, y)
	return Pixel{R: g.Pix[i], G: g.Pix[i+1], B: g.Pix[i+2]}
}

// Set replaces the pixel at (x, y). It panics when the point is outside the grid.
func (g *Grid) Set(x, y int, p Pixel) {
	i := g.offset(x, y)
	g.Pix[i], g.Pix[i+1], g.Pix[i+2] = p.R, p.G, p.B
}

// Copy returns a deep copy of the grid.
func (g *Grid) Copy() *Grid {
	c := *g
	c.Pix = make([]uint8, len(g.Pix))
	copy(c.Pix, g.Pix)
	return &c
}

// Each calls fn for every pixel in row-major order.
func (g *Grid) Each(fn func(x, y int, p Pixel)) {
	idx := 0
	for y := range g.Height {
		for x := range g.Width {
			fn(x, y, Pixel{R: g.Pix[idx], G: g.Pix[idx+1], B: g.Pix[idx+2]})
			idx += Channels
		}
	}
}
