package steg

import "github.com/yyyoichi/lsbsteg/internal/lsb"

type Option func(*Stego) error

// WithInPlace makes Hide write into the grid it is given instead of a copy.
// A failed Hide never modifies the grid.
func WithInPlace() Option {
	return func(s *Stego) error {
		s.inPlace = true
		return nil
	}
}

// WithFullRescan makes Reveal decode the whole bit prefix read so far each
// time it looks for the marker. The result is identical to the default
// incremental search, which only inspects the newest bytes, but the cost
// grows quadratically with the number of bits read.
func WithFullRescan() Option {
	return func(s *Stego) error {
		s.strategy = lsb.FullRescan
		return nil
	}
}
