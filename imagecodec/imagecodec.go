// Package imagecodec reads image files into pixel grids and writes grids
// back out in lossless formats.
package imagecodec

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/yyyoichi/lsbsteg/pixel"
)

type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	WEBP Format = "webp"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrLossyFormat is returned when writing a format that would not keep
	// channel LSBs intact.
	ErrLossyFormat = errors.New("image format does not preserve pixel values")
)

// Lossless reports whether f keeps every RGB sample exactly.
func (f Format) Lossless() bool {
	switch f {
	case PNG, BMP, TIFF:
		return true
	}
	return false
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".gif":
		return GIF, nil
	case ".webp":
		return WEBP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Decode reads an image in any registered format and converts it to a
// grid. The returned string is the format name reported by image.Decode.
func Decode(r io.Reader) (*pixel.Grid, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return pixel.FromImage(img), name, nil
}

// Encode writes g to w as an opaque image in format f.
func Encode(w io.Writer, g *pixel.Grid, f Format) error {
	img := g.Image()
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case JPEG, GIF, WEBP:
		return fmt.Errorf("%w: %s", ErrLossyFormat, f)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f, err)
	}
	return nil
}

// Load opens and decodes the image at path.
func Load(path string) (*pixel.Grid, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	g, name, err := Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return g, name, nil
}

// Save encodes g in the format implied by the extension of path. The file
// is not created when the format is unsupported or lossy.
func Save(path string, g *pixel.Grid) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if !format.Lossless() {
		return fmt.Errorf("%w: %s", ErrLossyFormat, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close image: %w", cerr)
		}
	}()
	return Encode(f, g, format)
}
