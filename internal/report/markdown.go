package report

import (
	"fmt"
	"strings"
)

// MarkdownRenderer renders a Document as GitHub-flavoured Markdown.
type MarkdownRenderer struct{}

// Extension returns "md"
func (MarkdownRenderer) Extension() string { return "md" }

// Render converts the Document to Markdown.
func (MarkdownRenderer) Render(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}
	return []byte(markdown(doc)), nil
}

func markdown(doc *Document) string {
	var sb strings.Builder

	// Header
	title := doc.Title
	if doc.Icon != "" {
		title = doc.Icon + " " + title
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", escapeMarkdown(title)))
	sb.WriteString(fmt.Sprintf("**Screening results** · %s\n\n", doc.Date.Format("January 2, 2006")))

	// Score
	sb.WriteString("## Result\n\n")
	sb.WriteString(fmt.Sprintf("- **Result**: %s\n", escapeMarkdown(doc.Score.Label)))
	sb.WriteString(fmt.Sprintf("- **Score**: %d of %d (%d%%)\n", doc.Score.Score, doc.Score.MaxScore, doc.Score.Percentage))
	sb.WriteString(fmt.Sprintf("- **Severity**: %s\n", doc.Score.Severity))
	sb.WriteString("\n")

	// Answers
	sb.WriteString("## Your Answers\n\n")
	sb.WriteString("| # | Question | Answer |\n")
	sb.WriteString("|---|----------|--------|\n")
	for _, row := range doc.Answers {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s |\n", row.Number, escapeCell(row.Prompt), escapeCell(row.Answer)))
	}
	sb.WriteString("\n")

	// Recommendations
	sb.WriteString("## Recommendations\n\n")
	for i, rec := range doc.Recommendations {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, escapeMarkdown(rec)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Important\n\n")
	sb.WriteString(fmt.Sprintf("> %s\n\n", doc.Disclaimer))

	sb.WriteString("## Contact\n\n")
	for _, line := range doc.ContactLines() {
		if line == "" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(escapeMarkdown(line) + "  \n")
	}

	return sb.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"<", "&lt;",
	">", "&gt;",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func escapeCell(s string) string {
	s = escapeMarkdown(s)
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
