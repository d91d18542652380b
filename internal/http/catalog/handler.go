package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stripbuyer/invoicer/internal/catalog"
)

type Handler struct {
	svc *catalog.Service
}

func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.search)
}

type entryResponse struct {
	Brand string `json:"brand"`
	Ref   string `json:"ref"`
	Type  string `json:"type"`
	Price string `json:"price"`
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	entries := h.svc.Search(catalog.Query{
		Brand: r.URL.Query().Get("brand"),
		Ref:   r.URL.Query().Get("ref"),
		Type:  r.URL.Query().Get("type"),
	})

	resp := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, entryResponse{
			Brand: e.Brand,
			Ref:   e.Ref,
			Type:  e.Type,
			Price: e.Price.String(),
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
