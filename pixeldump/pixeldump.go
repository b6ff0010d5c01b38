// Package pixeldump writes the RGB samples of a grid as text, one
// "R,G,B" line per pixel in row-major order, and compares two such dumps.
package pixeldump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/yyyoichi/lsbsteg/pixel"
)

var ErrMalformedLine = errors.New("malformed pixel line")

// ParseError reports a dump line that is not three comma separated 0-255 values.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %d %q: %v", ErrMalformedLine, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedLine, e.Err}
}

// Write dumps every pixel of g to w.
func Write(w io.Writer, g *pixel.Grid) error {
	bw := bufio.NewWriter(w)
	var err error
	g.Each(func(_, _ int, p pixel.Pixel) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(bw, "%d,%d,%d\n", p.R, p.G, p.B)
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile dumps g to the file at path.
func WriteFile(path string, g *pixel.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dump: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return Write(f, g)
}

// Head returns the first n lines of a dump.
func Head(r io.Reader, n int) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for len(lines) < n && sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	return lines, sc.Err()
}

// Verdict classifies how much of an image changed.
type Verdict int

const (
	NoneChanged Verdict = iota
	SomeChanged
	AllChanged
)

func (v Verdict) String() string {
	switch v {
	case NoneChanged:
		return "all pixels match; nothing was embedded or the change is undetectable"
	case SomeChanged:
		return "some pixels changed; this may be the result of steganography"
	case AllChanged:
		return "every pixel changed; this is unexpected"
	}
	return "unknown"
}

// Report is the result of Compare.
type Report struct {
	// Total is the number of pixel lines compared, which is the length of
	// the shorter dump.
	Total   int
	Changed int
	// LengthMismatch is set when one dump has more lines than the other.
	LengthMismatch bool
	// MeanAbsDelta and MaxAbsDelta are taken over every channel sample compared.
	MeanAbsDelta float64
	MaxAbsDelta  float64
	// PSNR is the peak signal-to-noise ratio in dB, +Inf for identical dumps.
	PSNR float64
}

func (r *Report) Unchanged() int {
	return r.Total - r.Changed
}

// Percent returns the share of changed pixels in percent.
func (r *Report) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Changed) / float64(r.Total) * 100
}

func (r *Report) Verdict() Verdict {
	switch {
	case r.Changed == 0:
		return NoneChanged
	case r.Changed < r.Total:
		return SomeChanged
	}
	return AllChanged
}

// Compare reads two dumps line by line and counts the pixels that differ.
func Compare(original, modified io.Reader) (*Report, error) {
	var (
		report  Report
		deltas  []float64
		squares []float64
		a       = bufio.NewScanner(original)
		b       = bufio.NewScanner(modified)
	)
	for {
		okA, okB := a.Scan(), b.Scan()
		if !okA || !okB {
			report.LengthMismatch = okA != okB
			break
		}
		report.Total++
		pa, err := parseLine(report.Total, a.Text())
		if err != nil {
			return nil, err
		}
		pb, err := parseLine(report.Total, b.Text())
		if err != nil {
			return nil, err
		}
		if pa != pb {
			report.Changed++
		}
		for i := range pixel.Channels {
			d := math.Abs(float64(pa.Channel(i)) - float64(pb.Channel(i)))
			deltas = append(deltas, d)
			squares = append(squares, d*d)
		}
	}
	if err := a.Err(); err != nil {
		return nil, fmt.Errorf("failed to read original dump: %w", err)
	}
	if err := b.Err(); err != nil {
		return nil, fmt.Errorf("failed to read modified dump: %w", err)
	}

	report.PSNR = math.Inf(1)
	if len(deltas) > 0 {
		report.MeanAbsDelta = stat.Mean(deltas, nil)
		report.MaxAbsDelta = floats.Max(deltas)
		if mse := stat.Mean(squares, nil); mse > 0 {
			report.PSNR = 10 * math.Log10(255*255/mse)
		}
	}
	return &report, nil
}

// CompareFiles runs Compare on the dumps stored at two paths.
func CompareFiles(originalPath, modifiedPath string) (*Report, error) {
	a, err := os.Open(originalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open original dump: %w", err)
	}
	defer a.Close()
	b, err := os.Open(modifiedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open modified dump: %w", err)
	}
	defer b.Close()
	return Compare(a, b)
}

func parseLine(n int, line string) (pixel.Pixel, error) {
	text := strings.TrimSpace(line)
	parts := strings.Split(text, ",")
	if len(parts) != pixel.Channels {
		return pixel.Pixel{}, &ParseError{Line: n, Text: text, Err: fmt.Errorf("want %d values, got %d", pixel.Channels, len(parts))}
	}
	var v [pixel.Channels]uint8
	for i, s := range parts {
		u, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
		if err != nil {
			return pixel.Pixel{}, &ParseError{Line: n, Text: text, Err: err}
		}
		v[i] = uint8(u)
	}
	return pixel.Pixel{R: v[0], G: v[1], B: v[2]}, nil
}
