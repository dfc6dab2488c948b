package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/screener/internal/models"
)

// fdWriter is implemented by *os.File
type fdWriter interface {
	Fd() uintptr
}

// ColorEnabled reports whether w is a terminal that should receive ANSI
// colors. NO_COLOR disables color regardless of the terminal.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes cards and messages to a single writer.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a Printer. When colorOn is false no escape codes are
// written.
func NewPrinter(out io.Writer, colorOn bool) *Printer {
	return &Printer{out: out, color: colorOn}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Color reports whether the printer emits ANSI colors.
func (p *Printer) Color() bool {
	return p.color
}

func (p *Printer) style(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// paint writes s in style c. The reset code is part of the string, so it is
// written even when the global color.NoColor is set.
func (p *Printer) paint(c *color.Color, s string) {
	fmt.Fprint(p.out, c.Sprint(s))
}

// paintln writes s in style c followed by an uncolored newline.
func (p *Printer) paintln(c *color.Color, s string) {
	fmt.Fprintln(p.out, c.Sprint(s))
}

func (p *Printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.out, s)
}

// severityStyle maps a severity token to its terminal color.
func (p *Printer) severityStyle(s models.Severity) *color.Color {
	switch s {
	case models.SeveritySevere, models.SeverityHigh:
		return p.style(color.FgRed, color.Bold)
	case models.SeverityModerate:
		return p.style(color.FgYellow, color.Bold)
	case models.SeverityMild:
		return p.style(color.FgHiYellow, color.Bold)
	case models.SeverityLow:
		return p.style(color.FgGreen, color.Bold)
	default:
		return p.style(color.FgCyan, color.Bold)
	}
}
