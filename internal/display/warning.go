package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related ids or problems (optional)
	Suggestion string   // Action to take (optional)
}

// Warning writes w in yellow.
func (p *Printer) Warning(w Warning) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	for i, item := range w.Items {
		b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, item))
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	p.paint(p.style(color.FgYellow), b.String())
}

// Notice writes a single yellow line, e.g. the inline answer prompt.
func (p *Printer) Notice(msg string) {
	p.paintln(p.style(color.FgYellow), msg)
}

// Success writes a green check line.
func (p *Printer) Success(msg string) {
	p.paint(p.style(color.FgGreen), "✓ ")
	p.println(msg)
}
