package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridAccess(t *testing.T) {
	g := NewGrid(3, 2)
	assert.Equal(t, 6, g.Len())
	assert.Len(t, g.Pix, 18)

	g.Set(2, 1, Pixel{R: 1, G: 2, B: 3})
	assert.Equal(t, Pixel{R: 1, G: 2, B: 3}, g.At(2, 1))
	assert.Equal(t, []uint8{1, 2, 3}, g.Pix[15:18])

	for _, pt := range []image.Point{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		assert.Panics(t, func() { g.At(pt.X, pt.Y) }, "%v", pt)
		assert.Panics(t, func() { g.Set(pt.X, pt.Y, Pixel{}) }, "%v", pt)
	}
}

func TestPixelChannel(t *testing.T) {
	p := Pixel{R: 10, G: 20, B: 30}
	assert.Equal(t, uint8(10), p.Channel(0))
	assert.Equal(t, uint8(20), p.Channel(1))
	assert.Equal(t, uint8(30), p.Channel(2))
	assert.Panics(t, func() { p.Channel(3) })
}

func TestGridCopy(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, Pixel{R: 9})
	c := g.Copy()
	c.Set(0, 0, Pixel{R: 1})
	assert.Equal(t, uint8(9), g.At(0, 0).R)
	assert.Equal(t, uint8(1), c.At(0, 0).R)
}

func TestGridEachOrder(t *testing.T) {
	g := NewGrid(2, 2)
	var order []image.Point
	g.Each(func(x, y int, _ Pixel) {
		order = append(order, image.Pt(x, y))
	})
	assert.Equal(t, []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, order)
}

func TestFromImage(t *testing.T) {
	t.Run("nrgba drops alpha", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
		src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
		src.SetNRGBA(1, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
		g := FromImage(src)
		require.Equal(t, 2, g.Width)
		require.Equal(t, 1, g.Height)
		assert.Equal(t, Pixel{R: 200, G: 100, B: 50}, g.At(0, 0))
		assert.Equal(t, Pixel{R: 1, G: 2, B: 3}, g.At(1, 0))
	})

	t.Run("offset bounds", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(5, 5, 7, 6))
		src.Set(6, 5, color.RGBA{R: 7, G: 8, B: 9, A: 255})
		g := FromImage(src)
		assert.Equal(t, image.Rect(0, 0, 2, 1), g.Bounds())
		assert.Equal(t, Pixel{R: 7, G: 8, B: 9}, g.At(1, 0))
	})

	t.Run("gray", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 1, 1))
		src.SetGray(0, 0, color.Gray{Y: 77})
		g := FromImage(src)
		assert.Equal(t, Pixel{R: 77, G: 77, B: 77}, g.At(0, 0))
	})
}

func TestGridImage(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 1, Pixel{R: 11, G: 22, B: 33})
	img := g.Image()
	assert.Equal(t, color.NRGBA{R: 11, G: 22, B: 33, A: 255}, img.NRGBAAt(1, 1))
	assert.Equal(t, color.NRGBA{A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, g.Pix, FromImage(img).Pix)
}
