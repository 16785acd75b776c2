// Package render: PDF renderer.
// Lays the outline out as an indented list using gofpdf: the head title on
// top, then one line per node, indented by depth.
package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/opmlpipe/core"
)

const (
	pdfMargin      = 15.0
	pdfIndentStep  = 7.0
	pdfMaxIndented = 12
)

// PDFRenderer renders an outline as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts doc into PDF bytes.
func (r *PDFRenderer) Render(doc *core.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	// Core fonts are cp1252; translate from UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if title := doc.Title(); title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(title), "", "L", false)
		pdf.Ln(4)
	}
	if owner := headValue(doc, "ownerName"); owner != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr(owner), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	if doc.Body != nil {
		renderOutlineLines(pdf, tr, doc.Body.Children, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func headValue(doc *core.Document, key string) string {
	if doc.Head == nil {
		return ""
	}
	return doc.Head.Attrs.Value(key)
}

// renderOutlineLines writes nodes pre-order. Top-level entries are bold.
func renderOutlineLines(pdf *gofpdf.Fpdf, tr func(string) string, nodes []*core.Node, depth int) {
	indent := depth
	if indent > pdfMaxIndented {
		indent = pdfMaxIndented
	}
	left := pdfMargin + float64(indent)*pdfIndentStep

	for _, n := range nodes {
		if depth == 0 {
			pdf.SetFont("Helvetica", "B", 11)
		} else {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.SetLeftMargin(left)
		pdf.SetX(left)
		pdf.MultiCell(0, 5.5, tr("- "+n.Text()), "", "L", false)
		pdf.SetLeftMargin(pdfMargin)

		if len(n.Children) > 0 {
			renderOutlineLines(pdf, tr, n.Children, depth+1)
		}
	}
}
