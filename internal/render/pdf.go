package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	rowHeight = 10
	// A4 landscape is 210mm tall; break before a row would land inside
	// the bottom margin.
	breakY = 210 - 15 - rowHeight
)

func (s *Service) renderPDF(date, tracking string, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(250, rowHeight, "", "", 0, "", false, 0, "")
	pdf.CellFormat(25, rowHeight, "Invoice Date: "+date, "", 1, "R", false, 0, "")
	pdf.CellFormat(275, rowHeight, docTitle, "", 1, "C", false, 0, "")
	pdf.Ln(rowHeight)

	pdf.SetFont("Arial", "", 10)
	writeColumnHeader(pdf)

	for _, row := range rows {
		// Continuation pages repeat the column header so every page
		// reads as a complete table.
		if pdf.GetY() > breakY {
			pdf.AddPage()
			writeColumnHeader(pdf)
		}

		for i, cell := range row {
			pdf.CellFormat(colWidths[i], rowHeight, cell, "1", 0, "C", false, 0, "")
		}

		pdf.Ln(rowHeight)
	}

	pdf.Ln(rowHeight)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, rowHeight, fmt.Sprintf("Tracking #: %s   %s", tracking, s.footer.Carrier), "", 1, "", false, 0, "")
	pdf.Ln(5)

	for _, line := range s.footer.PaymentLines {
		pdf.CellFormat(0, rowHeight, line, "", 1, "", false, 0, "")
	}

	pdf.Ln(5)

	for _, line := range s.footer.BusinessLines {
		pdf.CellFormat(0, rowHeight, line, "", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func writeColumnHeader(pdf *gofpdf.Fpdf) {
	for i, col := range columns {
		pdf.CellFormat(colWidths[i], rowHeight, col, "1", 0, "C", false, 0, "")
	}

	pdf.Ln(rowHeight)
}
