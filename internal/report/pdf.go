package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/harrison/screener/internal/models"
)

// PDF page geometry in millimetres (A4 portrait)
const (
	pdfMargin       = 18.0
	pdfFooterHeight = 15.0
	pdfLineHeight   = 5.5
	pdfNumberWidth  = 10.0
	pdfAnswerWidth  = 50.0
)

// PDFRenderer lays the Document out as a multi-page A4 PDF. The instrument
// icon is not drawn because the core PDF fonts cannot encode emoji.
type PDFRenderer struct {
	Creator string // Producer shown in document properties
}

// Extension returns "pdf"
func (*PDFRenderer) Extension() string { return "pdf" }

// Render produces the PDF bytes.
func (pr *PDFRenderer) Render(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	creator := pr.Creator
	if creator == "" {
		creator = "screener"
	}
	pdf.SetTitle(doc.Title+" screening results", true)
	pdf.SetCreator(creator, true)
	pdf.SetCreationDate(doc.Date)
	pdf.SetModificationDate(doc.Date)

	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin+pdfFooterHeight)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfFooterHeight - 3)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: tr}
	w.header(doc)
	w.score(doc)
	w.answers(doc)
	w.recommendations(doc)
	w.disclaimer(doc)
	w.contact(doc)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to lay out PDF: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) contentWidth() float64 {
	pageW, _ := w.pdf.GetPageSize()
	left, _, right, _ := w.pdf.GetMargins()
	return pageW - left - right
}

func (w *pdfWriter) bottomLimit() float64 {
	_, pageH := w.pdf.GetPageSize()
	return pageH - pdfMargin - pdfFooterHeight
}

func (w *pdfWriter) section(title string) {
	w.pdf.Ln(4)
	w.pdf.SetFont("Helvetica", "B", 13)
	w.pdf.SetTextColor(30, 30, 30)
	w.pdf.CellFormat(0, 8, w.tr(title), "B", 1, "L", false, 0, "")
	w.pdf.Ln(2)
}

func (w *pdfWriter) body() {
	w.pdf.SetFont("Helvetica", "", 10)
	w.pdf.SetTextColor(40, 40, 40)
}

func (w *pdfWriter) header(doc *Document) {
	w.pdf.SetFont("Helvetica", "B", 18)
	w.pdf.SetTextColor(20, 20, 20)
	w.pdf.MultiCell(0, 9, w.tr(doc.Title), "", "L", false)
	w.pdf.SetFont("Helvetica", "", 10)
	w.pdf.SetTextColor(100, 100, 100)
	w.pdf.CellFormat(0, 6, w.tr("Screening results, "+doc.Date.Format("January 2, 2006")), "", 1, "L", false, 0, "")
}

func (w *pdfWriter) score(doc *Document) {
	w.section("Result")

	r, g, b := severityColor(doc.Score.Severity)
	w.pdf.SetFillColor(r, g, b)
	w.pdf.SetFont("Helvetica", "B", 12)
	w.pdf.SetTextColor(255, 255, 255)
	w.pdf.MultiCell(0, 8, w.tr(doc.Score.Label), "", "L", true)

	w.body()
	w.pdf.Ln(1)
	line := fmt.Sprintf("Score: %d of %d (%d%%)", doc.Score.Score, doc.Score.MaxScore, doc.Score.Percentage)
	w.pdf.CellFormat(0, pdfLineHeight, w.tr(line), "", 1, "L", false, 0, "")
}

// answers draws the question table. Rows never straddle a page; a row that
// does not fit starts a new page and the column header is repeated there.
func (w *pdfWriter) answers(doc *Document) {
	w.section("Your Answers")

	promptWidth := w.contentWidth() - pdfNumberWidth - pdfAnswerWidth
	widths := []float64{pdfNumberWidth, promptWidth, pdfAnswerWidth}

	w.tableHeader(widths)
	w.body()
	for _, row := range doc.Answers {
		cells := []string{fmt.Sprintf("%d", row.Number), w.tr(row.Prompt), w.tr(row.Answer)}

		lines := 1
		for i, text := range cells {
			if n := len(w.pdf.SplitLines([]byte(text), widths[i]-2)); n > lines {
				lines = n
			}
		}
		height := float64(lines)*pdfLineHeight + 2

		if w.pdf.GetY()+height > w.bottomLimit() {
			w.pdf.AddPage()
			w.tableHeader(widths)
			w.body()
		}
		if !row.Answered {
			w.pdf.SetTextColor(140, 140, 140)
		}
		w.tableRow(widths, cells, height)
		w.body()
	}
}

func (w *pdfWriter) tableHeader(widths []float64) {
	w.pdf.SetFont("Helvetica", "B", 10)
	w.pdf.SetFillColor(235, 235, 235)
	w.pdf.SetTextColor(30, 30, 30)
	for i, title := range []string{"#", "Question", "Answer"} {
		w.pdf.CellFormat(widths[i], 7, title, "1", 0, "L", true, 0, "")
	}
	w.pdf.Ln(-1)
}

func (w *pdfWriter) tableRow(widths []float64, cells []string, height float64) {
	left, _, _, _ := w.pdf.GetMargins()
	y := w.pdf.GetY()
	x := left
	for i, text := range cells {
		w.pdf.Rect(x, y, widths[i], height, "D")
		w.pdf.SetXY(x+1, y+1)
		w.pdf.MultiCell(widths[i]-2, pdfLineHeight, text, "", "L", false)
		x += widths[i]
	}
	w.pdf.SetXY(left, y+height)
}

func (w *pdfWriter) recommendations(doc *Document) {
	w.section("Recommendations")
	w.body()
	for i, rec := range doc.Recommendations {
		w.pdf.MultiCell(0, pdfLineHeight, w.tr(fmt.Sprintf("%d. %s", i+1, rec)), "", "L", false)
		w.pdf.Ln(1)
	}
}

func (w *pdfWriter) disclaimer(doc *Document) {
	w.section("Important")
	w.pdf.SetFont("Helvetica", "I", 9)
	w.pdf.SetTextColor(80, 80, 80)
	w.pdf.SetFillColor(245, 245, 245)
	w.pdf.MultiCell(0, 5, w.tr(doc.Disclaimer), "1", "L", true)
}

func (w *pdfWriter) contact(doc *Document) {
	w.section("Contact")
	lines := doc.ContactLines()
	crisisLines := 0
	if doc.CrisisFlagged {
		crisisLines = len(CrisisLinesText(doc.Contact.Crisis))
	}
	for i, line := range lines {
		if line == "" {
			w.pdf.Ln(2)
			continue
		}
		if i < crisisLines {
			w.pdf.SetFont("Helvetica", "B", 10)
			w.pdf.SetTextColor(170, 20, 20)
		} else {
			w.body()
		}
		w.pdf.MultiCell(0, pdfLineHeight, w.tr(strings.TrimSpace(line)), "", "L", false)
	}
}

func severityColor(s models.Severity) (int, int, int) {
	switch s {
	case models.SeveritySevere, models.SeverityHigh:
		return 176, 42, 42
	case models.SeverityModerate:
		return 196, 120, 20
	case models.SeverityMild:
		return 178, 150, 20
	case models.SeverityLow:
		return 46, 125, 50
	default:
		return 80, 110, 140
	}
}
