package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/stripbuyer/invoicer/internal/catalog"
	"github.com/stripbuyer/invoicer/internal/catalog/loader"
	"github.com/stripbuyer/invoicer/internal/config"
	invoicerHttp "github.com/stripbuyer/invoicer/internal/http"
	catalogHandler "github.com/stripbuyer/invoicer/internal/http/catalog"
	exportHandler "github.com/stripbuyer/invoicer/internal/http/export"
	invoiceHandler "github.com/stripbuyer/invoicer/internal/http/invoice"
	"github.com/stripbuyer/invoicer/internal/invoice"
	"github.com/stripbuyer/invoicer/internal/render"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	entries, err := loader.Load(cfg.Catalog.Path)
	if err != nil {
		slog.Error("failed to load catalog", "path", cfg.Catalog.Path, "error", err)
		os.Exit(1)
	}

	slog.Info("catalog loaded", "path", cfg.Catalog.Path, "entries", len(entries))

	var (
		catalogService = catalog.NewService(entries)
		session        = invoice.NewSession()
		renderService  = render.NewService(render.Footer{
			Carrier:      cfg.Shipping.Carrier,
			PaymentLines: []string{cfg.Payment.Instructions, "Zelle: " + cfg.Payment.Zelle},
			BusinessLines: []string{
				cfg.Business.Name,
				cfg.Business.Street,
				cfg.Business.CityLine,
			},
		})
	)

	var (
		catalogH = catalogHandler.NewHandler(catalogService)
		invoiceH = invoiceHandler.NewHandler(catalogService, session)
		exportH  = exportHandler.NewHandler(renderService, session)
	)

	router := invoicerHttp.New(catalogH, invoiceH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "session", session.ID)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
