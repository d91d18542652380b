package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/stripbuyer/invoicer/internal/invoice"
)

type lineResponse struct {
	Brand      string `json:"brand"`
	Ref        string `json:"ref"`
	Qty        string `json:"qty"`
	Expiration string `json:"expiration,omitempty"`
	Condition  string `json:"condition,omitempty"`
	Price      string `json:"price"`
	Total      string `json:"total"`
}

type invoiceResponse struct {
	ID             uuid.UUID      `json:"id"`
	Date           string         `json:"date"`
	TrackingNumber string         `json:"tracking_number,omitempty"`
	Lines          []lineResponse `json:"lines"`
}

func toLineResponse(l invoice.Line) lineResponse {
	return lineResponse{
		Brand:      l.Brand,
		Ref:        l.Ref,
		Qty:        l.Qty,
		Expiration: l.Expiration,
		Condition:  l.Condition,
		Price:      l.Price,
		Total:      l.Total.StringFixed(2),
	}
}

func toInvoiceResponse(sess *invoice.Session) invoiceResponse {
	lines := sess.Lines()

	resp := invoiceResponse{
		ID:             sess.ID,
		Date:           sess.Date.Format(time.DateOnly),
		TrackingNumber: sess.Tracking,
		Lines:          make([]lineResponse, len(lines)),
	}

	for i, l := range lines {
		resp.Lines[i] = toLineResponse(l)
	}

	return resp
}
