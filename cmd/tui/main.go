package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/freightdesk/cmd/tui/internal/view"
	auditStore "github.com/MrJamesThe3rd/freightdesk/internal/audit/store"
	"github.com/MrJamesThe3rd/freightdesk/internal/config"
	"github.com/MrJamesThe3rd/freightdesk/internal/database"
	"github.com/MrJamesThe3rd/freightdesk/internal/invoicing"
	invoicingStore "github.com/MrJamesThe3rd/freightdesk/internal/invoicing/store"
	"github.com/MrJamesThe3rd/freightdesk/internal/load"
	loadStore "github.com/MrJamesThe3rd/freightdesk/internal/load/store"
)

type model struct {
	loadService      *load.Service
	invoicingService *invoicing.Service
	tenantID         uuid.UUID

	currentView screen

	loadsView    view.LoadsModel
	auditView    view.AuditModel
	invoicesView view.InvoicesModel
}

type screen int

const (
	ViewMenu     screen = 0
	ViewLoads    screen = 1
	ViewAudit    screen = 2
	ViewInvoices screen = 3
)

func initialModel() (model, func()) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	tenantID, err := uuid.Parse(cfg.TenantID)
	if err != nil {
		slog.Error("TENANT_ID must be a uuid", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	loads := loadStore.New(db)
	invoices := invoicingStore.New(db)

	loadSvc := load.NewService(loads)
	invSvc := invoicing.NewService(invoices, invoices, loads, auditStore.New(db), invoicing.Config{
		PaymentTerms: cfg.Billing.PaymentTerms,
		DueDays:      cfg.Billing.DueDays,
		AuditTimeout: cfg.Audit.Timeout,
	})

	cleanup := func() {
		invSvc.Wait()
		db.Close()
	}

	return model{
		loadService:      loadSvc,
		invoicingService: invSvc,
		tenantID:         tenantID,
		currentView:      ViewMenu,
	}, cleanup
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewLoads
				m.loadsView = view.NewLoadsModel(m.loadService, m.tenantID)

				return m, m.loadsView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoicingService, m.tenantID)

				return m, m.invoicesView.Init()
			}
		}
	case view.OpenAuditMsg:
		m.currentView = ViewAudit
		m.auditView = view.NewAuditModel(m.invoicingService, m.tenantID, msg.Load)

		return m, m.auditView.Init()
	case view.BackMsg:
		if m.currentView == ViewAudit {
			m.currentView = ViewLoads
			m.loadsView = view.NewLoadsModel(m.loadService, m.tenantID)

			return m, m.loadsView.Init()
		}

		m.currentView = ViewMenu

		return m, nil
	}

	switch m.currentView {
	case ViewLoads:
		var newModel tea.Model
		newModel, cmd = m.loadsView.Update(msg)
		m.loadsView = newModel.(view.LoadsModel)
	case ViewAudit:
		var newModel tea.Model
		newModel, cmd = m.auditView.Update(msg)
		m.auditView = newModel.(view.AuditModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	}

	return m, cmd
}

// active returns the screen that owns the terminal, or nil on the menu.
func (m model) active() view.View {
	switch m.currentView {
	case ViewLoads:
		return m.loadsView
	case ViewAudit:
		return m.auditView
	case ViewInvoices:
		return m.invoicesView
	}

	return nil
}

func (m model) View() string {
	if v := m.active(); v != nil {
		return v.View()
	}

	return lipgloss.NewStyle().Padding(2).Render(
		"Freightdesk\n\n" +
			"1. Audit Loads Awaiting Invoice\n" +
			"2. Invoices\n\n" +
			"q. Quit",
	)
}

func main() {
	m, cleanup := initialModel()
	defer cleanup()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		cleanup()
		os.Exit(1)
	}
}
