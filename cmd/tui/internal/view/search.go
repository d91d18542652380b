package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/stripbuyer/invoicer/internal/catalog"
	"github.com/stripbuyer/invoicer/internal/invoice"
)

type searchState int

const (
	searchStateQuery searchState = iota
	searchStateBrowse
	searchStateQty
)

// SearchModel is the price-search screen: three query inputs, a result
// table, and an add-to-invoice flow.
type SearchModel struct {
	catalog *catalog.Service
	sess    *invoice.Session

	state   searchState
	inputs  []textinput.Model
	focused int
	table   table.Model
	results []catalog.Entry
	form    *huh.Form
	status  string
}

func NewSearchModel(catalogSvc *catalog.Service, sess *invoice.Session) SearchModel {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		ti.Width = 30

		return ti
	}

	inputs := []textinput.Model{
		newInput("Brand"),
		newInput("Ref# (NDC)"),
		newInput("Type"),
	}
	inputs[0].Focus()

	columns := []table.Column{
		{Title: "Brand", Width: 30},
		{Title: "Ref# (NDC)", Width: 18},
		{Title: "Type", Width: 14},
		{Title: "Price", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
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

	return SearchModel{
		catalog: catalogSvc,
		sess:    sess,
		inputs:  inputs,
		table:   t,
	}
}

func (m SearchModel) Title() string { return "Price Search" }

func (m SearchModel) ShortHelp() string {
	switch m.state {
	case searchStateBrowse:
		return "Enter: add to invoice | /: edit search | Esc: back"
	case searchStateQty:
		return "Enter: confirm | Esc: cancel"
	}

	return "Tab: next field | Enter: search | Esc: back"
}

func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case searchStateQuery:
		return m.updateQuery(msg)
	case searchStateBrowse:
		return m.updateBrowse(msg)
	case searchStateQty:
		return m.updateQty(msg)
	}

	return m, nil
}

func (m SearchModel) updateQuery(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "tab", "down":
			return m.focusInput(m.focused + 1), nil
		case "shift+tab", "up":
			return m.focusInput(m.focused - 1), nil
		case "enter":
			return m.runSearch(), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

	return m, cmd
}

func (m SearchModel) focusInput(i int) SearchModel {
	m.inputs[m.focused].Blur()
	m.focused = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focused].Focus()

	return m
}

func (m SearchModel) runSearch() SearchModel {
	m.results = m.catalog.Search(catalog.Query{
		Brand: m.inputs[0].Value(),
		Ref:   m.inputs[1].Value(),
		Type:  m.inputs[2].Value(),
	})

	rows := make([]table.Row, len(m.results))
	for i, e := range m.results {
		rows[i] = table.Row{e.Brand, e.Ref, e.Type, e.Price.String()}
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)
	m.table.Focus()
	m.inputs[m.focused].Blur()
	m.state = searchStateBrowse
	m.status = fmt.Sprintf("Showing %d results", len(m.results))

	return m
}

func (m SearchModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "/":
			m.table.Blur()
			m.state = searchStateQuery
			m.inputs[m.focused].Focus()

			return m, textinput.Blink
		case "enter":
			if len(m.results) == 0 {
				return m, nil
			}

			m.form = buildQtyForm()
			m.state = searchStateQty

			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func buildQtyForm() *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("qty").
			Title("Quantity").
			Validate(func(s string) error {
				qty, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil || qty < 1 {
					return fmt.Errorf("enter a positive whole number")
				}

				return nil
			}),
	))
}

func (m SearchModel) updateQty(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			m.form = nil
			m.state = searchStateBrowse

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		qty, _ := strconv.Atoi(strings.TrimSpace(m.form.GetString("qty")))
		entry := m.results[m.table.Cursor()]

		if _, err := m.sess.AddLine(entry, qty); err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
		} else {
			m.status = fmt.Sprintf("Added %s x%d to invoice", entry.Brand, qty)
		}

		m.form = nil
		m.state = searchStateBrowse
	}

	return m, cmd
}

func (m SearchModel) View() string {
	var sb strings.Builder

	for _, in := range m.inputs {
		sb.WriteString(in.View())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	if m.state == searchStateQty && m.form != nil {
		sb.WriteString(m.form.View())
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.table.View())
		sb.WriteString("\n")
	}

	if m.status != "" {
		sb.WriteString("\n" + m.status + "\n")
	}

	return sb.String()
}
