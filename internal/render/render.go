// Package render turns the session's invoice into the two downloadable
// documents: a paginated A4-landscape PDF and an XLSX workbook. Both carry
// the identical display sequence — the invoice lines followed by one
// synthetic grand-total row — and never apply business rules of their own.
package render

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stripbuyer/invoicer/internal/invoice"
)

const (
	docTitle   = "Invoice"
	totalLabel = "Total Invoice"

	// Fixed export file names, matched by the download handlers.
	PDFFileName  = "invoice.pdf"
	XLSXFileName = "invoice.xlsx"
)

var (
	columns   = []string{"Brand", "NDC#", "Qty", "Expiration", "Condition", "Price", "Total"}
	colWidths = []float64{60, 40, 20, 35, 35, 25, 40} // mm, PDF table layout
)

// Footer is the fixed business/payment block printed under the table.
type Footer struct {
	Carrier       string
	PaymentLines  []string
	BusinessLines []string
}

// Document is a rendered snapshot. It is built fresh on every export and
// never fed back into the session.
type Document struct {
	PDF         []byte
	Spreadsheet []byte
}

type Service struct {
	footer Footer
}

func NewService(footer Footer) *Service {
	return &Service{footer: footer}
}

// Render recomputes the session's totals and produces both output formats.
// Recomputing here, rather than trusting a prior manual refresh, is what
// keeps an exported document from ever disagreeing with edited data. A
// *invoice.DataFormatError aborts the export with the session untouched.
func (s *Service) Render(sess *invoice.Session) (*Document, error) {
	grand, err := sess.RecomputeTotals()
	if err != nil {
		return nil, err
	}

	rows := displayRows(sess.Lines(), grand)
	date := sess.Date.Format(time.DateOnly)

	pdf, err := s.renderPDF(date, sess.Tracking, rows)
	if err != nil {
		return nil, err
	}

	sheet, err := s.renderXLSX(date, sess.Tracking, rows)
	if err != nil {
		return nil, err
	}

	return &Document{PDF: pdf, Spreadsheet: sheet}, nil
}

// displayRows builds the shared display sequence: one row of seven cells
// per line, plus the synthetic total row. Quantity and price cells print
// as entered; totals print with two decimals.
func displayRows(lines []invoice.Line, grand decimal.Decimal) [][]string {
	rows := make([][]string, 0, len(lines)+1)

	for _, l := range lines {
		rows = append(rows, []string{
			l.Brand, l.Ref, l.Qty, l.Expiration, l.Condition, l.Price, l.Total.StringFixed(2),
		})
	}

	rows = append(rows, []string{totalLabel, "", "", "", "", "", grand.StringFixed(2)})

	return rows
}
