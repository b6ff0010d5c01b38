// Package ui renders result lines of the command line tool.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle   = lipgloss.NewStyle().Bold(true)
)

// Printer writes styled lines to an output stream.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer for w. mode is "auto", "always" or "never";
// auto enables styling when w is a terminal.
func NewPrinter(w io.Writer, mode string) *Printer {
	p := &Printer{w: w}
	switch mode {
	case "always":
		p.color = true
	case "never":
		p.color = false
	default:
		p.color = IsTerminal(w)
	}
	return p
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(successStyle, fmt.Sprintf(format, args...)))
}

func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(warnStyle, fmt.Sprintf(format, args...)))
}

// Field prints an aligned "label: value" line.
func (p *Printer) Field(label string, value any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(labelStyle, fmt.Sprintf("%-24s", label+":")), p.render(valueStyle, fmt.Sprint(value)))
}

func (p *Printer) Line(text string) {
	fmt.Fprintln(p.w, text)
}
