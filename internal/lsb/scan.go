package lsb

import (
	"bytes"
	"strings"

	"github.com/yyyoichi/lsbsteg/internal/bitconv"
	"github.com/yyyoichi/lsbsteg/pixel"
)

// Strategy selects how Extract looks for the termination marker.
type Strategy int

const (
	// Incremental decodes each completed byte once and checks whether the
	// decoded text now ends with the marker.
	Incremental Strategy = iota
	// FullRescan decodes the whole prefix after every channel and searches
	// it for the marker.
	FullRescan
)

func (s Strategy) String() string {
	switch s {
	case Incremental:
		return "incremental"
	case FullRescan:
		return "full-rescan"
	}
	return "unknown"
}

// Result is the outcome of Extract.
type Result struct {
	Found bool
	// Text precedes the first marker when Found, otherwise it is the
	// best-effort decode of every bit read.
	Text string
	// BitsRead counts the channel samples visited before the walk stopped.
	BitsRead int
}

// Extract reads channel LSBs in embedding order until the decoded text
// contains marker or the grid is exhausted.
func Extract(src *pixel.Grid, marker string, strategy Strategy) Result {
	var s scanner
	switch strategy {
	case FullRescan:
		s = &rescanScanner{marker: marker}
	default:
		s = &incrementalScanner{marker: []byte(marker)}
	}

	for at, v := range src.Pix {
		if text, ok := s.push(v&1 == 1); ok {
			return Result{Found: true, Text: text, BitsRead: at + 1}
		}
	}
	return Result{Text: s.rest(), BitsRead: len(src.Pix)}
}

type scanner interface {
	// push appends one bit and reports the text before the marker once
	// the marker has been seen.
	push(bit bool) (string, bool)
	// rest decodes every complete byte pushed so far.
	rest() string
}

type rescanScanner struct {
	marker string
	bits   []bool
}

func (s *rescanScanner) push(bit bool) (string, bool) {
	s.bits = append(s.bits, bit)
	if len(s.bits) < len(s.marker)*8 {
		return "", false
	}
	text := bitconv.BitsToText(s.bits)
	if i := strings.Index(text, s.marker); i >= 0 {
		return text[:i], true
	}
	return "", false
}

func (s *rescanScanner) rest() string {
	return bitconv.BitsToText(s.bits)
}

// incrementalScanner only inspects the newest byte plus the len(marker)-1
// bytes before it, which is the only window a new occurrence can end in.
type incrementalScanner struct {
	marker  []byte
	decoded []byte
	cur     byte
	n       int
}

func (s *incrementalScanner) push(bit bool) (string, bool) {
	s.cur <<= 1
	if bit {
		s.cur |= 1
	}
	s.n++
	if s.n < 8 {
		return "", false
	}
	s.decoded = append(s.decoded, s.cur)
	s.cur, s.n = 0, 0

	if bytes.HasSuffix(s.decoded, s.marker) {
		return bitconv.BytesToText(s.decoded[:len(s.decoded)-len(s.marker)]), true
	}
	return "", false
}

func (s *incrementalScanner) rest() string {
	return bitconv.BytesToText(s.decoded)
}
