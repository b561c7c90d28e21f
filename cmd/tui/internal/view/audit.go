package view

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/freightdesk/internal/invoicing"
	"github.com/MrJamesThe3rd/freightdesk/internal/load"
	"github.com/MrJamesThe3rd/freightdesk/internal/verification"
)

type auditState int

const (
	auditStateChecklist auditState = iota
	auditStateOverride
	auditStateSubmitting
	auditStateDone
)

// overrideInput is shared with the huh form, so it must outlive model copies.
type overrideInput struct {
	confirmed bool
	reason    string
}

type AuditModel struct {
	invoicingService *invoicing.Service
	tenantID         uuid.UUID

	load   *load.Load
	items  []verification.Item
	cursor int

	state    auditState
	form     *huh.Form
	override *overrideInput

	result *invoicing.Result
	err    error
	status string
}

func NewAuditModel(invSvc *invoicing.Service, tenantID uuid.UUID, l *load.Load) AuditModel {
	return AuditModel{
		invoicingService: invSvc,
		tenantID:         tenantID,
		load:             l,
		items:            verification.DefaultChecklist(),
		override:         &overrideInput{},
	}
}

func (m AuditModel) Title() string { return "Audit Load " + m.load.LoadNumber }
func (m AuditModel) ShortHelp() string {
	switch m.state {
	case auditStateOverride:
		return "Navigate form | Esc: cancel"
	case auditStateDone:
		return "Esc: back"
	}

	return "↑/↓: move | m: match | f: fail | space: clear | Enter: create invoice | Esc: back"
}

func (m AuditModel) Init() tea.Cmd {
	return nil
}

func (m AuditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if res, ok := msg.(sagaResultMsg); ok {
		m.state = auditStateDone
		m.result = res.result
		m.err = res.err

		return m, nil
	}

	switch m.state {
	case auditStateChecklist:
		return m.updateChecklist(msg)
	case auditStateOverride:
		return m.updateOverride(msg)
	case auditStateDone:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			return m, Back
		}
	}

	return m, nil
}

func (m AuditModel) updateChecklist(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "m":
		m.setStatus(verification.StatusMatch)
	case "f":
		m.setStatus(verification.StatusFail)
	case " ":
		m.setStatus(verification.StatusUnchecked)
	case "enter":
		m.status = ""

		if verification.Classify(m.items) == verification.StateAllMatch {
			return m.submit(verification.Override{})
		}

		return m.enterOverride()
	}

	return m, nil
}

func (m *AuditModel) setStatus(s verification.Status) {
	m.items[m.cursor].Status = s
}

func (m AuditModel) enterOverride() (tea.Model, tea.Cmd) {
	*m.override = overrideInput{}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Create the invoice with unverified items?").
				Description(stateLabel(verification.Classify(m.items))).
				Affirmative("Override").
				Negative("Cancel").
				Value(&m.override.confirmed),

			huh.NewText().
				Key("reason").
				Title("Override reason").
				Placeholder("Why is it safe to bill this load?").
				Value(&m.override.reason),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = auditStateOverride

	return m, m.form.Init()
}

func (m AuditModel) updateOverride(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = auditStateChecklist
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	o := verification.Override{Confirmed: m.override.confirmed, Reason: m.override.reason}

	if d := verification.Evaluate(m.items, o); !d.Proceed {
		m.state = auditStateChecklist
		m.form = nil
		m.status = d.Unmet.Error()

		return m, nil
	}

	return m.submit(o)
}

func (m AuditModel) submit(o verification.Override) (tea.Model, tea.Cmd) {
	m.state = auditStateSubmitting
	m.form = nil

	items := make([]verification.Item, len(m.items))
	copy(items, m.items)

	req := invoicing.Request{
		TenantID:  m.tenantID,
		Load:      m.load,
		Checklist: items,
		Override:  o,
		Notes:     m.load.BillingNotes,
	}

	svc := m.invoicingService

	return m, func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		res, err := svc.RunInvoiceSaga(ctx, req)

		return sagaResultMsg{result: res, err: err}
	}
}

type sagaResultMsg struct {
	result *invoicing.Result
	err    error
}

var (
	matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	groupStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

func stateLabel(s verification.State) string {
	switch s {
	case verification.StateAllMatch:
		return matchStyle.Render("All items match")
	case verification.StateHasFailures:
		return failStyle.Render("Some items failed")
	}

	return warnStyle.Render("Checklist incomplete")
}

func (m AuditModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", activeStyle(m.Title()))
	fmt.Fprintf(&b, "Lane: %s\nRate: %s\n", lane(m.load), FormatMoney(m.load.Amount()))

	if m.load.Customer != nil {
		fmt.Fprintf(&b, "Customer: %s\n", m.load.Customer.Name)
	}

	switch m.state {
	case auditStateSubmitting:
		b.WriteString("\nCreating invoice...")
		return lipgloss.NewStyle().Padding(1).Render(b.String())
	case auditStateDone:
		b.WriteString("\n" + m.resultView())
		b.WriteString("\n\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()))

		return lipgloss.NewStyle().Padding(1).Render(b.String())
	}

	var group verification.Group

	for i, it := range m.items {
		if it.Group != group {
			group = it.Group
			b.WriteString(groupStyle.Render(string(group)) + "\n")
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		fmt.Fprintf(&b, "%s%s %s\n", cursor, mark(it.Status), it.Label)
	}

	b.WriteString("\n" + stateLabel(verification.Classify(m.items)) + "\n")

	if m.status != "" {
		b.WriteString(failStyle.Render(m.status) + "\n")
	}

	content := b.String()

	if m.state == auditStateOverride && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(54).
			Render("Override Verification\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n" +
		lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()))
}

func mark(s verification.Status) string {
	switch s {
	case verification.StatusMatch:
		return matchStyle.Render("[✓]")
	case verification.StatusFail:
		return failStyle.Render("[✗]")
	}

	return "[ ]"
}

func (m AuditModel) resultView() string {
	if m.err == nil {
		msg := fmt.Sprintf("Invoice %s created (draft).", m.result.InvoiceNumber)
		if m.result.Overridden {
			msg += "\n" + warnStyle.Render("Verification was overridden.")
		}

		return matchStyle.Render(msg)
	}

	var sagaErr *invoicing.SagaError
	if !errors.As(m.err, &sagaErr) {
		return failStyle.Render("Invoice not created: " + m.err.Error())
	}

	rollback := "All changes were rolled back."
	if !sagaErr.RolledBack {
		rollback = "Rollback incomplete, check the invoice list before retrying."
	}

	return failStyle.Render(fmt.Sprintf("Failed at step %d (%s): %v\n%s",
		int(sagaErr.Step), sagaErr.Step, sagaErr.Cause, rollback))
}
