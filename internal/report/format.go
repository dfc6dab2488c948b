package report

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/harrison/screener/internal/filelock"
)

// Format is an export file format
type Format string

const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatPDF, FormatMarkdown, FormatHTML, FormatJSON}

// ParseFormat accepts a format name or its common extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (valid: pdf, markdown, html, json)", s)
	}
}

// Renderer lays out a Document in one format.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
	Extension() string
}

// RendererFor returns the renderer for format.
func RendererFor(format Format) (Renderer, error) {
	switch format {
	case FormatPDF:
		return &PDFRenderer{}, nil
	case FormatMarkdown:
		return &MarkdownRenderer{}, nil
	case FormatHTML:
		return &HTMLRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{Pretty: true}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// Filename returns "<slug>-screening-<YYYY-MM-DD>.<ext>" for a title.
func Filename(title string, date time.Time, ext string) string {
	return fmt.Sprintf("%s-screening-%s.%s", Slug(title), date.Format("2006-01-02"), ext)
}

// Slug lower-cases s, keeps ASCII letters and digits, and collapses every
// other run of characters into a single '-'.
func Slug(s string) string {
	var sb strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pending = false
			sb.WriteRune(r)
			continue
		}
		pending = true
	}
	if sb.Len() == 0 {
		return "screening"
	}
	return sb.String()
}

// WriteFile renders doc and writes it into dir under its Filename. It
// returns the written path.
func WriteFile(ctx context.Context, dir string, doc *Document, r Renderer) (string, error) {
	data, err := r.Render(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render %s report: %w", r.Extension(), err)
	}

	path := filepath.Join(dir, Filename(doc.Title, doc.Date, r.Extension()))
	if err := filelock.WriteLocked(ctx, path, data); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
