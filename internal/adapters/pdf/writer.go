// Package pdf renders recommendation reports into a paginated Letter document.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	margin     = 72.0 // 1in
	lineHeight = 14.0
	blockGap   = 12.0
)

type Writer struct {
	Title string
	Now   func() time.Time
}

func NewWriter() *Writer {
	return &Writer{Title: "Travel Recommendations", Now: time.Now}
}

// WriteReports renders reports and writes them to path, replacing any existing file.
func (w *Writer) WriteReports(reports []string, path string) error {
	doc := w.build(reports)
	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// Render returns the document bytes without touching the filesystem.
func (w *Writer) Render(reports []string) ([]byte, error) {
	doc := w.build(reports)
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *Writer) build(reports []string) *gofpdf.Fpdf {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.SetTitle(w.Title, true)
	doc.SetCreator("travel-planner", true)
	doc.AliasNbPages("")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFooterFunc(func() {
		doc.SetY(-margin / 2)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(150, 150, 150)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", doc.PageNo()), "", 0, "C", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	})

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 20, tr(w.Title), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(100, 100, 100)
	doc.CellFormat(0, 12, "Generated "+now().Format("02 Jan 2006, 15:04"), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(blockGap)

	for _, r := range reports {
		writeParagraph(doc, tr, r)
		doc.Ln(blockGap)
	}
	return doc
}

// writeParagraph prints one report. Lines shaped like "**Label**: value" get a bold label.
func writeParagraph(doc *gofpdf.Fpdf, tr func(string) string, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		label, rest, ok := splitLabel(line)
		if ok {
			doc.SetFont("Helvetica", "B", 10)
			doc.Write(lineHeight, tr(label+":"))
			doc.SetFont("Helvetica", "", 10)
			doc.Write(lineHeight, tr(rest))
		} else {
			doc.SetFont("Helvetica", "", 10)
			doc.Write(lineHeight, tr(line))
		}
		doc.Ln(lineHeight)
	}
}

func splitLabel(line string) (label, rest string, ok bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "**") {
		return "", "", false
	}
	end := strings.Index(s[2:], "**:")
	if end <= 0 {
		return "", "", false
	}
	return s[2 : 2+end], s[2+end+3:], true
}
