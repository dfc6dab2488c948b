package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// ProgressBar renders how far a session has advanced, e.g.
//
//	Question [=====     ] 5/10 (50%)
type ProgressBar struct {
	current     int
	total       int
	width       int
	enableColor bool
	prefix      string
}

// NewProgressBar creates a progress bar of the given character width
func NewProgressBar(total, width int, enableColor bool) *ProgressBar {
	if width < 1 {
		width = 10
	}
	return &ProgressBar{
		total:       total,
		width:       width,
		enableColor: enableColor,
	}
}

// Update sets the current position, clamped to [0, total]
func (pb *ProgressBar) Update(current int) {
	switch {
	case current < 0:
		current = 0
	case current > pb.total:
		current = pb.total
	}
	pb.current = current
}

// Current returns the current position
func (pb *ProgressBar) Current() int {
	return pb.current
}

// Total returns the total
func (pb *ProgressBar) Total() int {
	return pb.total
}

// Percentage returns the progress percentage (0-100)
func (pb *ProgressBar) Percentage() int {
	if pb.total <= 0 {
		return 0
	}
	return pb.current * 100 / pb.total
}

// SetPrefix sets text written before the bar
func (pb *ProgressBar) SetPrefix(prefix string) {
	pb.prefix = prefix
}

// Render generates the bar string
func (pb *ProgressBar) Render() string {
	perc := pb.Percentage()
	filled := 0
	if pb.total > 0 {
		filled = pb.current * pb.width / pb.total
	}

	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", pb.width-filled) + "]"
	out := fmt.Sprintf("%s%s %d/%d (%d%%)", pb.prefix, bar, pb.current, pb.total, perc)

	if !pb.enableColor {
		return out
	}
	if perc == 100 {
		return color.New(color.FgGreen).Sprint(out)
	}
	return color.New(color.FgCyan).Sprint(out)
}
