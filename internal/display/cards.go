package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/screener/internal/logger"
	"github.com/harrison/screener/internal/models"
	"github.com/harrison/screener/internal/report"
)

// MenuSection is one heading of the catalog menu.
type MenuSection struct {
	Title   string
	Entries []models.Summary
}

// Hints is the key legend shown under every question.
const Hints = "Enter a number to answer, or: b = back, r = restart, q = quit"

// CatalogMenu lists sections with entries numbered continuously from 1.
func (p *Printer) CatalogMenu(sections []MenuSection) {
	heading := p.style(color.Bold, color.Underline)
	dim := p.style(color.FgHiBlack)

	n := 0
	for i, s := range sections {
		if i > 0 {
			p.println("")
		}
		p.paintln(heading, s.Title)
		for _, e := range s.Entries {
			n++
			icon := e.Icon
			if icon != "" {
				icon += " "
			}
			p.printf("  %2d. %s%s\n", n, icon, e.Title)
			p.paintln(dim, fmt.Sprintf("      %s · %s", e.ID, statsLine(e.Stats)))
		}
	}
}

func statsLine(s models.Stats) string {
	parts := []string{fmt.Sprintf("%d questions", s.Questions)}
	if s.Minutes > 0 {
		parts = append(parts, fmt.Sprintf("~%d min", s.Minutes))
	}
	if s.Rating != "" {
		parts = append(parts, s.Rating)
	}
	return strings.Join(parts, " · ")
}

// InstrumentDetail prints an instrument with every question and option value.
func (p *Printer) InstrumentDetail(in *models.Instrument) {
	title := in.Title
	if in.Icon != "" {
		title = in.Icon + " " + title
	}
	p.paintln(p.style(color.Bold), title)
	if in.Description != "" {
		p.println(in.Description)
	}
	p.paintln(p.style(color.FgHiBlack), in.ID+" · "+statsLine(in.Stats))

	for i, q := range in.Questions {
		p.println("")
		p.printf("%d. %s  [%s]\n", i+1, q.Prompt, q.ID)
		for _, o := range q.Options {
			mark := ""
			if o.Crisis {
				mark = " (crisis)"
			}
			p.printf("     %d = %s%s\n", o.Value, o.Label, mark)
		}
	}
}

// QuestionCard prints the progress bar, the prompt and numbered options.
// selected is the index of the chosen option, or -1.
func (p *Printer) QuestionCard(q *models.Question, pos, total, selected int) {
	bar := logger.NewProgressBar(total, 20, p.color)
	bar.SetPrefix("Question ")
	bar.Update(pos)

	p.println("")
	p.println(bar.Render())
	p.paintln(p.style(color.Bold), q.Prompt)
	for i, o := range q.Options {
		if i == selected {
			p.paintln(p.style(color.FgGreen), fmt.Sprintf("  > %d) %s", i+1, o.Label))
			continue
		}
		p.printf("    %d) %s\n", i+1, o.Label)
	}
	p.paintln(p.style(color.FgHiBlack), Hints)
}

// CrisisNotice interrupts a session with crisis resources.
func (p *Printer) CrisisNotice(c report.Contact) {
	alert := p.style(color.FgRed, color.Bold)

	p.println("")
	p.paintln(alert, "You are not alone. Support is available right now.")
	for _, line := range report.CrisisLinesText(c.Crisis) {
		p.paintln(alert, "  "+line)
	}
	if c.Practice.Phone != "" {
		name := c.Practice.Name
		if name == "" {
			name = "Our office"
		}
		p.printf("  %s: %s\n", name, c.Practice.Phone)
	}
	p.println("")
}

// ResultCard prints a scored result. When crisis is set the crisis
// resources are repeated beneath it.
func (p *Printer) ResultCard(title string, r models.Result, crisis bool, c report.Contact) {
	p.println("")
	p.paintln(p.style(color.Bold), title+": your results")
	p.paintln(p.severityStyle(r.Severity), r.Label)

	pct := 0
	if r.MaxScore > 0 {
		pct = r.Score * 100 / r.MaxScore
	}
	p.printf("Score: %d of %d (%d%%)\n", r.Score, r.MaxScore, pct)

	if len(r.Recommendations) > 0 {
		p.println("")
		p.paintln(p.style(color.Bold), "Recommendations")
		for i, rec := range r.Recommendations {
			p.printf("  %d. %s\n", i+1, rec)
		}
	}

	if crisis {
		p.CrisisNotice(c)
	}

	p.println("")
	p.paintln(p.style(color.FgHiBlack), report.Disclaimer)
}
