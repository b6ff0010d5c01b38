package bench_test

import (
	"strings"
	"testing"

	steg "github.com/yyyoichi/lsbsteg"
	"github.com/yyyoichi/lsbsteg/pixel"
)

// BenchmarkHide_FHD embeds messages of growing length into an FHD grid
func BenchmarkHide_FHD(b *testing.B) {
	test := []struct {
		name    string
		message string
	}{
		{name: "empty", message: ""},
		{name: "1KiB", message: strings.Repeat("x", 1<<10)},
		{name: "64KiB", message: strings.Repeat("x", 64<<10)},
		{name: "512KiB", message: strings.Repeat("x", 512<<10)},
	}

	grid := createGrid(1920, 1080)

	for _, tt := range test {
		b.Run(tt.name, func(b *testing.B) {
			s, err := steg.New()
			if err != nil {
				b.Fatalf("Failed to create Stego instance (%s): %v", tt.name, err)
			}
			for b.Loop() {
				dist, err := s.Hide(grid, tt.message)
				if err != nil {
					b.Fatalf("Failed to hide message (%s): %v", tt.name, err)
				}
				_ = dist
			}
		})
	}
}

// BenchmarkReveal compares the marker search strategies on the same payload
func BenchmarkReveal(b *testing.B) {
	test := []struct {
		name string
		opts []steg.Option
	}{
		{name: "incremental", opts: nil},
		{name: "full_rescan", opts: []steg.Option{steg.WithFullRescan()}},
	}

	grid := createGrid(320, 240)
	hidden, err := steg.Hide(grid, strings.Repeat("payload ", 32))
	if err != nil {
		b.Fatalf("Failed to hide message: %v", err)
	}

	for _, tt := range test {
		b.Run(tt.name, func(b *testing.B) {
			s, err := steg.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Stego instance (%s): %v", tt.name, err)
			}
			for b.Loop() {
				if found, _ := s.Reveal(hidden); !found {
					b.Fatalf("Marker not found (%s)", tt.name)
				}
			}
		})
	}
}

// BenchmarkReveal_NoMarker walks a whole FHD grid that holds no message
func BenchmarkReveal_NoMarker(b *testing.B) {
	grid := createGrid(1920, 1080)
	for b.Loop() {
		_, _ = steg.Reveal(grid)
	}
}

// createGrid creates a widthxheight grid with gradient pattern
func createGrid(width, height int) *pixel.Grid {
	g := pixel.NewGrid(width, height)
	for y := range height {
		for x := range width {
			// Create gradient effect to simulate realistic image data
			g.Set(x, y, pixel.Pixel{
				R: uint8((x * 255) / width),
				G: uint8((y * 255) / height),
				B: uint8(((x + y) * 255) / (width + height)),
			})
		}
	}
	return g
}
