package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harrison/screener/internal/catalog"
	"github.com/harrison/screener/internal/display"
	"github.com/harrison/screener/internal/models"
)

// menuGroup is one heading of the navigation menu.
type menuGroup struct {
	Title string
	IDs   []string
}

// navigation is the grouped menu shown by list and take. Every id must
// resolve in the built-in catalog.
var navigation = []menuGroup{
	{Title: "Mood", IDs: []string{"mdd_adult", "bipolar_screen"}},
	{Title: "Anxiety & Trauma", IDs: []string{"gad_adult", "ptsd_adult", "ocd_adult"}},
	{Title: "Attention & Other", IDs: []string{"adhd_adult"}},
	{Title: "Quick checks", IDs: []string{"depression", "anxiety", "stress", "sleep"}},
}

// otherTitle heads catalog instruments that no menu group names.
const otherTitle = "More screenings"

// navigationIDs lists every id the menu references, in menu order.
func navigationIDs() []string {
	var ids []string
	for _, g := range navigation {
		ids = append(ids, g.IDs...)
	}
	return ids
}

// buildMenu resolves the navigation menu against cat. order is the
// instrument id for each menu number (order[0] is entry 1). missing lists
// menu ids the catalog does not define; they are left out of the menu.
func buildMenu(cat *catalog.Catalog) (sections []display.MenuSection, order, missing []string) {
	listed := make(map[string]bool)

	for _, g := range navigation {
		section := display.MenuSection{Title: g.Title}
		for _, id := range g.IDs {
			in, err := cat.Get(id)
			if err != nil {
				missing = append(missing, id)
				continue
			}
			listed[id] = true
			section.Entries = append(section.Entries, in.Summary())
			order = append(order, id)
		}
		if len(section.Entries) > 0 {
			sections = append(sections, section)
		}
	}

	other := display.MenuSection{Title: otherTitle}
	for _, s := range cat.List() {
		if listed[s.ID] {
			continue
		}
		other.Entries = append(other.Entries, s)
		order = append(order, s.ID)
	}
	if len(other.Entries) > 0 {
		sections = append(sections, other)
	}

	return sections, order, missing
}

// MenuReader defines interface for reading user input (for testing)
type MenuReader interface {
	ReadString(delim byte) (string, error)
}

// DefaultMenuReader wraps bufio.Reader
type DefaultMenuReader struct {
	reader *bufio.Reader
}

// NewMenuReader reads lines from r.
func NewMenuReader(r io.Reader) *DefaultMenuReader {
	return &DefaultMenuReader{reader: bufio.NewReader(r)}
}

func (d *DefaultMenuReader) ReadString(delim byte) (string, error) {
	return d.reader.ReadString(delim)
}

// readLine returns the next trimmed, lower-cased line. ok is false once
// input is exhausted.
func readLine(reader MenuReader) (line string, ok bool, err error) {
	raw, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	if err == io.EOF && raw == "" {
		return "", false, nil
	}
	return strings.ToLower(strings.TrimSpace(raw)), true, nil
}

// chooseInstrument shows the menu and reads a selection. It returns "" when
// the user quits or input ends.
func chooseInstrument(p *display.Printer, cat *catalog.Catalog, reader MenuReader) (string, error) {
	sections, order, _ := buildMenu(cat)
	if len(order) == 0 {
		return "", models.NewValidationError("catalog", "no instruments available")
	}

	fmt.Fprintln(p.Writer())
	p.CatalogMenu(sections)

	for {
		fmt.Fprintf(p.Writer(), "\nSelect a screening (1-%d) or 'q' to quit: ", len(order))
		line, ok, err := readLine(reader)
		if err != nil {
			return "", err
		}
		if !ok || line == "q" {
			return "", nil
		}

		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 1 || n > len(order) {
			p.Notice(fmt.Sprintf("Please enter a number between 1 and %d.", len(order)))
			continue
		}
		return order[n-1], nil
	}
}
