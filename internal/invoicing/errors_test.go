package invoicing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/freightdesk/internal/invoicing"
)

func TestSagaError(t *testing.T) {
	cause := errors.New("deadlock detected")

	t.Run("rolled back", func(t *testing.T) {
		err := &invoicing.SagaError{
			Step:       invoicing.StepCreateLink,
			Kind:       invoicing.ErrPersistence,
			Cause:      cause,
			RolledBack: true,
		}

		assert.EqualError(t, err,
			"invoice saga failed at step 3 (link invoice to load): invoice persistence failed: deadlock detected")
		assert.ErrorIs(t, err, invoicing.ErrPersistence)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, invoicing.ErrStateMutation)
	})

	t.Run("rollback incomplete", func(t *testing.T) {
		compensation := errors.New("delete invoice: connection refused")
		err := &invoicing.SagaError{
			Step:         invoicing.StepVerify,
			Kind:         invoicing.ErrVerificationMismatch,
			Cause:        cause,
			Compensation: compensation,
		}

		assert.EqualError(t, err,
			"invoice saga failed at step 5 (verify load state): load state not visible after update: "+
				"deadlock detected; rollback incomplete: delete invoice: connection refused")
		assert.ErrorIs(t, err, compensation)
	})
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV-000001", invoicing.FormatNumber(1))
	assert.Equal(t, "INV-123456", invoicing.FormatNumber(123456))
	assert.Equal(t, "INV-1234567", invoicing.FormatNumber(1234567))
}
