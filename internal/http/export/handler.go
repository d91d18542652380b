package export

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stripbuyer/invoicer/internal/invoice"
	"github.com/stripbuyer/invoicer/internal/render"
)

const xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	svc  *render.Service
	sess *invoice.Session
}

func NewHandler(svc *render.Service, sess *invoice.Session) *Handler {
	return &Handler{svc: svc, sess: sess}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/pdf", h.pdf)
	r.Get("/xlsx", h.xlsx)
}

func (h *Handler) pdf(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.render(w)
	if !ok {
		return
	}

	writeAttachment(w, render.PDFFileName, "application/pdf", doc.PDF)
}

func (h *Handler) xlsx(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.render(w)
	if !ok {
		return
	}

	writeAttachment(w, render.XLSXFileName, xlsxMediaType, doc.Spreadsheet)
}

func (h *Handler) render(w http.ResponseWriter) (*render.Document, bool) {
	doc, err := h.svc.Render(h.sess)
	if err != nil {
		var dfe *invoice.DataFormatError
		if errors.As(err, &dfe) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil, false
	}

	return doc, true
}

func writeAttachment(w http.ResponseWriter, filename, mediaType string, body []byte) {
	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))

	_, _ = w.Write(body)
}
