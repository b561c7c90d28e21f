package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/freightdesk/internal/load"
)

// OpenAuditMsg asks the shell to open the audit screen for a load.
type OpenAuditMsg struct {
	Load *load.Load
}

type LoadsModel struct {
	CommonModel
	loadService *load.Service
	tenantID    uuid.UUID

	table   table.Model
	loads   []*load.Load
	loading bool
	err     error
}

func NewLoadsModel(loadSvc *load.Service, tenantID uuid.UUID) LoadsModel {
	columns := []table.Column{
		{Title: "Load", Width: 12},
		{Title: "Customer", Width: 24},
		{Title: "Lane", Width: 36},
		{Title: "Rate", Width: 12},
		{Title: "Billing", Width: 10},
	}

	return LoadsModel{
		loadService: loadSvc,
		tenantID:    tenantID,
		table:       newTable(columns),
		loading:     true,
	}
}

func (m LoadsModel) Title() string     { return "Loads Awaiting Invoice" }
func (m LoadsModel) ShortHelp() string { return "Esc: back | Enter: audit | r: refresh" }

func (m LoadsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LoadsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadsLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.loads = msg.loads
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
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.loads) {
				return m, nil
			}

			l := m.loads[idx]

			return m, func() tea.Msg { return OpenAuditMsg{Load: l} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m LoadsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading loads...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\n(Esc to back)", m.err))
	}

	if len(m.loads) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No delivered loads waiting for an invoice.\n\n(Esc to back)")
	}

	header := fmt.Sprintf("%s  %s", m.Title(), activeStyle(fmt.Sprintf("(%d)", len(m.loads))))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
		lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	))
}

func (m *LoadsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.loads))
	for _, l := range m.loads {
		customer := ""
		if l.Customer != nil {
			customer = l.Customer.Name
		}

		rows = append(rows, table.Row{
			l.LoadNumber,
			customer,
			lane(l),
			FormatMoney(l.Amount()),
			string(l.FinancialStatus),
		})
	}

	m.table.SetRows(rows)
}

func lane(l *load.Load) string {
	return fmt.Sprintf("%s, %s → %s, %s", l.Pickup.City, l.Pickup.State, l.Delivery.City, l.Delivery.State)
}

type loadsLoadedMsg struct {
	loads []*load.Load
	err   error
}

func (m LoadsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		loads, err := m.loadService.AwaitingInvoice(ctx, m.tenantID)

		return loadsLoadedMsg{loads: loads, err: err}
	}
}
