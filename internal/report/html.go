package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLRenderer renders a standalone HTML page by converting the Markdown
// rendering with goldmark's GitHub-flavoured extensions.
type HTMLRenderer struct{}

// Extension returns "html"
func (HTMLRenderer) Extension() string { return "html" }

var htmlConverter = goldmark.New(goldmark.WithExtensions(extension.GFM))

const htmlStyle = `body{font-family:Helvetica,Arial,sans-serif;max-width:48rem;margin:2rem auto;color:#222;line-height:1.45}
table{border-collapse:collapse;width:100%}th,td{border:1px solid #ccc;padding:.4rem;text-align:left;vertical-align:top}
th{background:#f2f2f2}blockquote{margin:0;padding:.5rem 1rem;border-left:4px solid #999;background:#fafafa}
@media print{@page{size:A4;margin:18mm}}`

// Render converts the Document to an HTML page.
func (HTMLRenderer) Render(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}

	var body bytes.Buffer
	if err := htmlConverter.Convert([]byte(markdown(doc)), &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&out, "<title>%s screening results</title>\n", html.EscapeString(doc.Title))
	fmt.Fprintf(&out, "<style>%s</style>\n</head>\n<body>\n", htmlStyle)
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.Bytes(), nil
}
