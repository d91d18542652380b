package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/stripbuyer/invoicer/cmd/tui/internal/view"
	"github.com/stripbuyer/invoicer/internal/catalog"
	"github.com/stripbuyer/invoicer/internal/catalog/loader"
	"github.com/stripbuyer/invoicer/internal/config"
	"github.com/stripbuyer/invoicer/internal/invoice"
	"github.com/stripbuyer/invoicer/internal/render"
)

type model struct {
	catalogService *catalog.Service
	renderService  *render.Service
	session        *invoice.Session

	currentView View

	searchView  view.SearchModel
	invoiceView view.InvoiceModel
}

type View int

const (
	ViewMenu    View = 0
	ViewSearch  View = 1
	ViewInvoice View = 2
)

func initialModel() model {
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

	catalogSvc := catalog.NewService(entries)
	session := invoice.NewSession()
	renderSvc := render.NewService(render.Footer{
		Carrier:      cfg.Shipping.Carrier,
		PaymentLines: []string{cfg.Payment.Instructions, "Zelle: " + cfg.Payment.Zelle},
		BusinessLines: []string{
			cfg.Business.Name,
			cfg.Business.Street,
			cfg.Business.CityLine,
		},
	})

	return model{
		catalogService: catalogSvc,
		renderService:  renderSvc,
		session:        session,
		currentView:    ViewMenu,
		searchView:     view.NewSearchModel(catalogSvc, session),
		invoiceView:    view.NewInvoiceModel(session, renderSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewSearch
				return m, m.searchView.Init()
			case "2":
				m.currentView = ViewInvoice
				m.invoiceView = view.NewInvoiceModel(m.session, m.renderService)
				return m, m.invoiceView.Init()
			}

			return m, nil
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewSearch:
		var updated tea.Model
		updated, cmd = m.searchView.Update(msg)
		m.searchView = updated.(view.SearchModel)
	case ViewInvoice:
		var updated tea.Model
		updated, cmd = m.invoiceView.Update(msg)
		m.invoiceView = updated.(view.InvoiceModel)
	}

	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m model) View() string {
	switch m.currentView {
	case ViewSearch:
		return m.renderView(m.searchView)
	case ViewInvoice:
		return m.renderView(m.invoiceView)
	}

	return titleStyle.Render("Invoicer") + "\n\n" +
		"  1. Price Search\n" +
		"  2. Invoice\n\n" +
		helpStyle.Render("1-2: select | q: quit")
}

func (m model) renderView(v view.View) string {
	return fmt.Sprintf("%s\n\n%s\n%s",
		titleStyle.Render(v.Title()),
		v.View(),
		helpStyle.Render(v.ShortHelp()),
	)
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("tui failed", "error", err)
		os.Exit(1)
	}
}
