package steg

import (
	"errors"
	"fmt"
	"image"

	"github.com/yyyoichi/lsbsteg/internal/bitconv"
	"github.com/yyyoichi/lsbsteg/internal/lsb"
	"github.com/yyyoichi/lsbsteg/pixel"
)

const (
	// Marker terminates every hidden payload. Changing it breaks
	// compatibility with images produced earlier, so it is tied to
	// MarkerVersion.
	Marker        = "###END###"
	MarkerVersion = 1
)

var (
	ErrCapacity        = errors.New("payload exceeds image capacity")
	ErrPayloadEncoding = bitconv.ErrPayloadEncoding
)

// PayloadEncodingError reports a message character above U+00FF.
type PayloadEncodingError = bitconv.PayloadEncodingError

// CapacityError reports a payload that needs more bits than the image has.
type CapacityError struct {
	Required  int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: required %d bits, available %d bits", ErrCapacity, e.Required, e.Available)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacity
}

// Capacity returns the number of payload bits a width x height image can hold.
func Capacity(width, height int) int {
	return lsb.Capacity(width, height)
}

// RequiredBits returns the number of bits message occupies once the
// marker is appended.
func RequiredBits(message string) (int, error) {
	bits, err := bitconv.TextToBits(message + Marker)
	if err != nil {
		return 0, err
	}
	return len(bits), nil
}

// Hide embeds message into grid with the default options.
// This is a convenience function that creates a Stego instance and calls its Hide method.
func Hide(grid *pixel.Grid, message string) (*pixel.Grid, error) {
	s, _ := New()
	return s.Hide(grid, message)
}

// Reveal extracts a hidden message from grid with the default options.
// This is a convenience function that creates a Stego instance and calls its Reveal method.
func Reveal(grid *pixel.Grid) (found bool, text string) {
	s, _ := New()
	return s.Reveal(grid)
}

type Stego struct {
	inPlace  bool
	strategy lsb.Strategy
}

// New initializes a Stego with the given options.
func New(opts ...Option) (*Stego, error) {
	s := new(Stego)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stego) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	return nil
}

// Hide embeds message into the channel LSBs of grid.
//
// Process:
//  1. Appends Marker to message and expands it to 8 bits per character.
//  2. Checks the bit count against the grid capacity.
//  3. Writes one bit per channel sample, R, G, B per pixel, rows top to bottom.
//
// Returns a *CapacityError if the grid is too small and a
// *PayloadEncodingError if message has a character above U+00FF. In both
// cases grid is left untouched. Unless WithInPlace is set, the returned
// grid is a copy.
func (s *Stego) Hide(grid *pixel.Grid, message string) (*pixel.Grid, error) {
	bits, err := bitconv.TextToBits(message + Marker)
	if err != nil {
		return nil, err
	}
	if err := lsb.Enable(grid, len(bits)); err != nil {
		return nil, &CapacityError{
			Required:  len(bits),
			Available: Capacity(grid.Width, grid.Height),
		}
	}
	dist := grid
	if !s.inPlace {
		dist = grid.Copy()
	}
	lsb.Embed(dist, bits)
	return dist, nil
}

// Reveal reads channel LSBs in the order Hide writes them and stops at
// the first Marker. found is false when no marker exists; text is then a
// best-effort decode of the whole grid and should not be trusted.
func (s *Stego) Reveal(grid *pixel.Grid) (found bool, text string) {
	r := s.Inspect(grid)
	return r.Found, r.Text
}

// Revealed is the detailed outcome of Inspect.
type Revealed struct {
	Found    bool
	Text     string
	BitsRead int
}

// Inspect is Reveal that also reports how many channel samples were read.
func (s *Stego) Inspect(grid *pixel.Grid) Revealed {
	r := lsb.Extract(grid, Marker, s.strategy)
	return Revealed{Found: r.Found, Text: r.Text, BitsRead: r.BitsRead}
}

// Embed hides message in src and returns an opaque RGB image. Alpha and
// other channels of src are dropped.
func (s *Stego) Embed(src image.Image, message string) (image.Image, error) {
	grid := pixel.FromImage(src)
	dist, err := s.Hide(grid, message)
	if err != nil {
		return nil, err
	}
	return dist.Image(), nil
}

// Extract reveals a message hidden in src.
func (s *Stego) Extract(src image.Image) (found bool, text string) {
	return s.Reveal(pixel.FromImage(src))
}
