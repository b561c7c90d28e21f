package view

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/freightdesk/internal/invoicing"
	"github.com/MrJamesThe3rd/freightdesk/internal/load"
	"github.com/MrJamesThe3rd/freightdesk/internal/verification"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m AuditModel, keys ...string) (AuditModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd

	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))

		var ok bool
		m, ok = next.(AuditModel)
		require.True(t, ok)
	}

	return m, cmd
}

func newAudit() AuditModel {
	return NewAuditModel(nil, uuid.New(), &load.Load{LoadNumber: "L-1001"})
}

func TestAuditModel_Marks(t *testing.T) {
	m, _ := press(t, newAudit(), "m", "down", "f", "down", "m", " ")

	assert.Equal(t, verification.StatusMatch, m.items[0].Status)
	assert.Equal(t, verification.StatusFail, m.items[1].Status)
	assert.Equal(t, verification.StatusUnchecked, m.items[2].Status)
	assert.Equal(t, 2, m.cursor)
}

func TestAuditModel_EnterAllMatchSubmits(t *testing.T) {
	m := newAudit()
	for range m.items {
		m, _ = press(t, m, "m", "down")
	}

	m, cmd := press(t, m, "enter")

	assert.Equal(t, auditStateSubmitting, m.state)
	assert.NotNil(t, cmd)
}

func TestAuditModel_EnterWithGapsAsksForOverride(t *testing.T) {
	m, _ := press(t, newAudit(), "f", "enter")

	assert.Equal(t, auditStateOverride, m.state)
	assert.NotNil(t, m.form)
	assert.Contains(t, m.View(), "Override Verification")
}

func TestAuditModel_Result(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		next, _ := newAudit().Update(sagaResultMsg{result: &invoicing.Result{InvoiceNumber: "INV-000003", Overridden: true}})
		m := next.(AuditModel)

		assert.Equal(t, auditStateDone, m.state)
		assert.Contains(t, m.View(), "INV-000003")
		assert.Contains(t, m.View(), "overridden")
	})

	t.Run("saga failure", func(t *testing.T) {
		err := &invoicing.SagaError{
			Step:  invoicing.StepMutateLoad,
			Kind:  invoicing.ErrStateMutation,
			Cause: errors.New("lock timeout"),
		}

		next, _ := newAudit().Update(sagaResultMsg{err: err})
		view := next.(AuditModel).View()

		assert.Contains(t, view, "step 4")
		assert.Contains(t, view, "Rollback incomplete")
	})
}
