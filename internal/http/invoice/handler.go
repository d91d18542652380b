package invoice

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stripbuyer/invoicer/internal/catalog"
	"github.com/stripbuyer/invoicer/internal/invoice"
)

type Handler struct {
	catalog *catalog.Service
	sess    *invoice.Session
}

func NewHandler(catalogSvc *catalog.Service, sess *invoice.Session) *Handler {
	return &Handler{catalog: catalogSvc, sess: sess}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Patch("/", h.updateHeader)
	r.Post("/recompute", h.recompute)
	r.Post("/lines", h.addLine)
	r.Put("/lines", h.replaceAll)
	r.Delete("/lines/{index}", h.removeLine)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, toInvoiceResponse(h.sess))
}

type addLineRequest struct {
	Brand string `json:"brand"`
	Ref   string `json:"ref"`
	Qty   *int   `json:"qty,omitempty"`
}

func (h *Handler) addLine(w http.ResponseWriter, r *http.Request) {
	var req addLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, ok := h.catalog.Find(req.Brand, req.Ref)
	if !ok {
		http.Error(w, "catalog entry not found", http.StatusNotFound)
		return
	}

	qty := 1
	if req.Qty != nil {
		qty = *req.Qty
	}

	line, err := h.sess.AddLine(entry, qty)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toLineResponse(line)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type lineRequest struct {
	Brand      string `json:"brand"`
	Ref        string `json:"ref"`
	Qty        string `json:"qty"`
	Expiration string `json:"expiration"`
	Condition  string `json:"condition"`
	Price      string `json:"price"`
}

// replaceAll swaps in the full line sequence as edited in the UI grid.
// Cells are stored as-is; non-numeric quantities or prices surface on the
// next recompute or export, never here.
func (h *Handler) replaceAll(w http.ResponseWriter, r *http.Request) {
	var req []lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lines := make([]invoice.Line, len(req))
	for i, l := range req {
		lines[i] = invoice.Line{
			Brand:      l.Brand,
			Ref:        l.Ref,
			Qty:        l.Qty,
			Expiration: l.Expiration,
			Condition:  l.Condition,
			Price:      l.Price,
		}
	}

	h.sess.ReplaceAll(lines)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeLine(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "invalid line index", http.StatusBadRequest)
		return
	}

	if err := h.sess.RemoveLine(index); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type updateHeaderRequest struct {
	Date           *string `json:"date,omitempty"`
	TrackingNumber *string `json:"tracking_number,omitempty"`
}

func (h *Handler) updateHeader(w http.ResponseWriter, r *http.Request) {
	var req updateHeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Date != nil {
		date, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		h.sess.Date = date
	}

	if req.TrackingNumber != nil {
		h.sess.Tracking = *req.TrackingNumber
	}

	writeJSON(w, toInvoiceResponse(h.sess))
}

type recomputeResponse struct {
	GrandTotal string `json:"grand_total"`
}

func (h *Handler) recompute(w http.ResponseWriter, r *http.Request) {
	grand, err := h.sess.RecomputeTotals()
	if err != nil {
		var dfe *invoice.DataFormatError
		if errors.As(err, &dfe) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, recomputeResponse{GrandTotal: grand.StringFixed(2)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
