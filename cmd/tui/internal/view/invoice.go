package view

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/stripbuyer/invoicer/internal/invoice"
	"github.com/stripbuyer/invoicer/internal/render"
)

type invoiceState int

const (
	invoiceStateBrowse invoiceState = iota
	invoiceStateEdit
	invoiceStateMeta
)

// InvoiceModel is the invoice screen: the editable line table, the
// refresh-totals action, and the two save-to-file actions.
type InvoiceModel struct {
	sess      *invoice.Session
	renderSvc *render.Service

	state   invoiceState
	table   table.Model
	form    *huh.Form
	editIdx int
	status  string
}

func NewInvoiceModel(sess *invoice.Session, renderSvc *render.Service) InvoiceModel {
	columns := []table.Column{
		{Title: "Brand", Width: 24},
		{Title: "NDC#", Width: 14},
		{Title: "Qty", Width: 6},
		{Title: "Expiration", Width: 12},
		{Title: "Condition", Width: 12},
		{Title: "Price", Width: 10},
		{Title: "Total", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := InvoiceModel{
		sess:      sess,
		renderSvc: renderSvc,
		table:     t,
	}
	m.refreshTable()

	return m
}

func (m InvoiceModel) Title() string { return "Invoice" }

func (m InvoiceModel) ShortHelp() string {
	switch m.state {
	case invoiceStateEdit, invoiceStateMeta:
		return "Enter: save | Esc: cancel"
	}

	return "e: edit | d: delete | r: refresh totals | m: date/tracking | p: save PDF | x: save XLSX | Esc: back"
}

func (m InvoiceModel) Init() tea.Cmd {
	return nil
}

func (m *InvoiceModel) refreshTable() {
	lines := m.sess.Lines()

	rows := make([]table.Row, len(lines))
	for i, l := range lines {
		rows[i] = table.Row{l.Brand, l.Ref, l.Qty, l.Expiration, l.Condition, l.Price, l.Total.StringFixed(2)}
	}

	m.table.SetRows(rows)
}

func (m InvoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case invoiceStateBrowse:
		return m.updateBrowse(msg)
	case invoiceStateEdit, invoiceStateMeta:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m InvoiceModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)

		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back

	case "e":
		lines := m.sess.Lines()
		if len(lines) == 0 {
			return m, nil
		}

		m.editIdx = m.table.Cursor()
		m.form = buildEditForm(lines[m.editIdx])
		m.state = invoiceStateEdit

		return m, m.form.Init()

	case "d":
		if err := m.sess.RemoveLine(m.table.Cursor()); err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}

		m.refreshTable()
		m.status = "Line removed"

		return m, nil

	case "r":
		grand, err := m.sess.RecomputeTotals()
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}

		m.refreshTable()
		m.status = "Totals updated. Grand total: " + grand.StringFixed(2)

		return m, nil

	case "m":
		m.form = buildMetaForm(m.sess)
		m.state = invoiceStateMeta

		return m, m.form.Init()

	case "p":
		m.status = m.export(render.PDFFileName, func(d *render.Document) []byte { return d.PDF })
		return m, nil

	case "x":
		m.status = m.export(render.XLSXFileName, func(d *render.Document) []byte { return d.Spreadsheet })
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *InvoiceModel) export(filename string, pick func(*render.Document) []byte) string {
	doc, err := m.renderSvc.Render(m.sess)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	if err := os.WriteFile(filename, pick(doc), 0o644); err != nil {
		return fmt.Sprintf("Error writing %s: %v", filename, err)
	}

	m.refreshTable()

	return "Saved " + filename
}

func buildEditForm(l invoice.Line) *huh.Form {
	qty, exp, cond, price := l.Qty, l.Expiration, l.Condition, l.Price

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().Key("qty").Title("Qty").Value(&qty),
		huh.NewInput().Key("expiration").Title("Expiration").Value(&exp),
		huh.NewInput().Key("condition").Title("Condition").Value(&cond),
		huh.NewInput().Key("price").Title("Price").Value(&price),
	))
}

func buildMetaForm(sess *invoice.Session) *huh.Form {
	date, tracking := sess.Date.Format(time.DateOnly), sess.Tracking

	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("date").
			Title("Invoice Date").
			Value(&date).
			Validate(func(s string) error {
				if _, err := time.Parse(time.DateOnly, s); err != nil {
					return fmt.Errorf("expected YYYY-MM-DD")
				}

				return nil
			}),
		huh.NewInput().Key("tracking").Title("Tracking #").Value(&tracking),
	))
}

func (m InvoiceModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			m.form = nil
			m.state = invoiceStateBrowse

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		switch m.state {
		case invoiceStateEdit:
			lines := m.sess.Lines()
			if m.editIdx < len(lines) {
				lines[m.editIdx].Qty = m.form.GetString("qty")
				lines[m.editIdx].Expiration = m.form.GetString("expiration")
				lines[m.editIdx].Condition = m.form.GetString("condition")
				lines[m.editIdx].Price = m.form.GetString("price")
				m.sess.ReplaceAll(lines)
			}

			m.status = "Line updated. Press r to refresh totals"

		case invoiceStateMeta:
			date, _ := time.Parse(time.DateOnly, m.form.GetString("date"))
			m.sess.Date = date
			m.sess.Tracking = m.form.GetString("tracking")
			m.status = "Invoice details updated"
		}

		m.form = nil
		m.state = invoiceStateBrowse
		m.refreshTable()
	}

	return m, cmd
}

func (m InvoiceModel) View() string {
	if m.form != nil {
		return m.form.View() + "\n"
	}

	out := m.table.View() + "\n"

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	return out
}
