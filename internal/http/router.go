package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/stripbuyer/invoicer/internal/http/catalog"
	"github.com/stripbuyer/invoicer/internal/http/export"
	"github.com/stripbuyer/invoicer/internal/http/invoice"
)

func New(
	catalogV1 *catalog.Handler,
	invoiceV1 *invoice.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", catalogV1.Routes)

		r.Route("/invoice", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			invoiceV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)
	})

	return router
}
