package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/freightdesk/internal/invoicing"
)

var invoiceStatusFilters = []*invoicing.Status{
	new(invoicing.StatusDraft),
	nil,
	new(invoicing.StatusSent),
	new(invoicing.StatusPaid),
	new(invoicing.StatusVoid),
}

type InvoicesModel struct {
	CommonModel
	invoicingService *invoicing.Service
	tenantID         uuid.UUID

	table     table.Model
	invoices  []*invoicing.Invoice
	filterIdx int
	loading   bool
	err       error
}

func NewInvoicesModel(invSvc *invoicing.Service, tenantID uuid.UUID) InvoicesModel {
	columns := []table.Column{
		{Title: "Number", Width: 12},
		{Title: "Customer", Width: 24},
		{Title: "Date", Width: 12},
		{Title: "Due", Width: 12},
		{Title: "Total", Width: 14},
		{Title: "Status", Width: 8},
	}

	return InvoicesModel{
		invoicingService: invSvc,
		tenantID:         tenantID,
		table:            newTable(columns),
		loading:          true,
	}
}

func (m InvoicesModel) Title() string     { return "Invoices" }
func (m InvoicesModel) ShortHelp() string { return "Esc: back | s: status filter | r: refresh" }

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoicesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.invoices = msg.invoices
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(m.resize(msg))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.filterIdx = (m.filterIdx + 1) % len(invoiceStatusFilters)
			m.loading = true

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) filterLabel() string {
	if s := invoiceStatusFilters[m.filterIdx]; s != nil {
		return string(*s)
	}

	return "all"
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(m.filterLabel()))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
		lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	))
}

func (m *InvoicesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.invoices))
	for _, inv := range m.invoices {
		rows = append(rows, table.Row{
			inv.Number,
			inv.CustomerName,
			FormatDate(inv.InvoiceDate),
			FormatDate(inv.DueDate),
			FormatMoney(inv.TotalAmount),
			string(inv.Status),
		})
	}

	m.table.SetRows(rows)
}

type invoicesLoadedMsg struct {
	invoices []*invoicing.Invoice
	err      error
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	filter := invoicing.ListFilter{Status: invoiceStatusFilters[m.filterIdx]}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		invoices, err := m.invoicingService.List(ctx, m.tenantID, filter)

		return invoicesLoadedMsg{invoices: invoices, err: err}
	}
}
