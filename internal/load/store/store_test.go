package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/freightdesk/internal/load"
	"github.com/MrJamesThe3rd/freightdesk/internal/load/store"
)

var loadColumns = []string{
	"id", "tenant_id", "load_number", "reference_number", "rate", "customer_id",
	"name", "email", "billing_email",
	"pickup_city", "pickup_state", "delivery_city", "delivery_state",
	"status", "financial_status", "billing_notes", "created_at", "updated_at",
}

func newMockStore(t *testing.T) (*store.Store, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return store.New(db), mock, db
}

func TestStore_GetLoad(t *testing.T) {
	tenantID := uuid.New()
	loadID := uuid.New()
	customerID := uuid.New()
	now := time.Now()

	t.Run("found with customer", func(t *testing.T) {
		s, mock, db := newMockStore(t)
		defer db.Close()

		rows := sqlmock.NewRows(loadColumns).AddRow(
			loadID.String(), tenantID.String(), "L-1001", "PO-77", "1850.50", customerID.String(),
			"Acme Foods", "ops@acme.test", "ap@acme.test",
			"Dallas", "TX", "Memphis", "TN",
			"delivered", "audited", nil, now, nil,
		)

		mock.ExpectQuery(`SELECT .* FROM loads l LEFT JOIN customers c ON l.customer_id = c.id WHERE l.id = \$1 AND l.tenant_id = \$2`).
			WithArgs(loadID, tenantID).
			WillReturnRows(rows)

		l, err := s.GetLoad(context.Background(), tenantID, loadID)
		require.NoError(t, err)

		assert.Equal(t, loadID, l.ID)
		assert.Equal(t, "L-1001", l.LoadNumber)
		assert.Equal(t, "PO-77", l.ReferenceNumber)
		assert.Equal(t, "1850.5", l.Amount().String())
		require.NotNil(t, l.Customer)
		assert.Equal(t, "Acme Foods", l.Customer.Name)
		assert.Equal(t, "ap@acme.test", l.Customer.InvoiceEmail())
		assert.Equal(t, load.Location{City: "Dallas", State: "TX"}, l.Pickup)
		assert.Equal(t, load.StatusDelivered, l.Status)
		assert.Equal(t, load.FinancialStatusAudited, l.FinancialStatus)
		assert.Empty(t, l.BillingNotes)
		assert.Nil(t, l.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without rate or customer", func(t *testing.T) {
		s, mock, db := newMockStore(t)
		defer db.Close()

		rows := sqlmock.NewRows(loadColumns).AddRow(
			loadID.String(), tenantID.String(), "L-1002", nil, nil, nil,
			nil, nil, nil,
			nil, nil, nil, nil,
			"delivered", "pending", "call before billing", now, now,
		)

		mock.ExpectQuery(`SELECT .* FROM loads l`).
			WithArgs(loadID, tenantID).
			WillReturnRows(rows)

		l, err := s.GetLoad(context.Background(), tenantID, loadID)
		require.NoError(t, err)

		assert.False(t, l.Rate.Valid)
		assert.True(t, l.Amount().IsZero())
		assert.Nil(t, l.CustomerID)
		assert.Nil(t, l.Customer)
		assert.Equal(t, "call before billing", l.BillingNotes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		s, mock, db := newMockStore(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT .* FROM loads l`).
			WithArgs(loadID, tenantID).
			WillReturnError(sql.ErrNoRows)

		l, err := s.GetLoad(context.Background(), tenantID, loadID)
		assert.Nil(t, l)
		assert.ErrorIs(t, err, load.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_ListLoads(t *testing.T) {
	tenantID := uuid.New()

	s, mock, db := newMockStore(t)
	defer db.Close()

	rows := sqlmock.NewRows(loadColumns).
		AddRow(uuid.NewString(), tenantID.String(), "L-1", nil, "100", nil, nil, nil, nil,
			nil, nil, nil, nil, "delivered", "pending", nil, time.Now(), nil).
		AddRow(uuid.NewString(), tenantID.String(), "L-2", nil, "200", nil, nil, nil, nil,
			nil, nil, nil, nil, "delivered", "audited", nil, time.Now(), nil)

	mock.ExpectQuery(`WHERE l.tenant_id = \$1 AND l.deleted_at IS NULL AND l.status = \$2 AND l.financial_status = \$3 ORDER BY l.created_at ASC`).
		WithArgs(tenantID, load.StatusDelivered, load.FinancialStatusAudited).
		WillReturnRows(rows)

	loads, err := s.ListLoads(context.Background(), tenantID, load.ListFilter{
		Status:          new(load.StatusDelivered),
		FinancialStatus: new(load.FinancialStatusAudited),
	})
	require.NoError(t, err)
	assert.Len(t, loads, 2)
	assert.Equal(t, "L-2", loads[1].LoadNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_MarkInvoiced(t *testing.T) {
	tenantID := uuid.New()
	loadID := uuid.New()

	type testCase struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		wantErr error
	}

	tests := []testCase{
		{
			name: "Success",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`UPDATE loads SET status = \$1, financial_status = \$2, billing_notes = \$3`).
					WithArgs(load.StatusClosed, load.FinancialStatusInvoiced, "[OVERRIDE] ok", loadID, tenantID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "NoRowsIsNotFound",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`UPDATE loads`).
					WithArgs(load.StatusClosed, load.FinancialStatusInvoiced, "[OVERRIDE] ok", loadID, tenantID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: load.ErrNotFound,
		},
		{
			name: "ExecError",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(`UPDATE loads`).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: errors.New("marking load invoiced: connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock, db := newMockStore(t)
			defer db.Close()

			tt.setup(mock)

			err := s.MarkInvoiced(context.Background(), tenantID, loadID, "[OVERRIDE] ok")

			switch {
			case tt.wantErr == nil:
				assert.NoError(t, err)
			case errors.Is(tt.wantErr, load.ErrNotFound):
				assert.ErrorIs(t, err, load.ErrNotFound)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_RestoreBilling(t *testing.T) {
	tenantID := uuid.New()
	loadID := uuid.New()
	prev := load.BillingState{
		Status:          load.StatusDelivered,
		FinancialStatus: load.FinancialStatusAudited,
		BillingNotes:    "call before billing",
	}

	s, mock, db := newMockStore(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE loads SET status = \$1, financial_status = \$2, billing_notes = \$3, updated_at = NOW\(\) WHERE id = \$4 AND tenant_id = \$5 AND deleted_at IS NULL AND financial_status = \$6 AND billing_notes = \$7`).
		WithArgs(load.StatusDelivered, load.FinancialStatusAudited, "call before billing",
			loadID, tenantID, load.FinancialStatusInvoiced, "[OVERRIDE] ok").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.RestoreBilling(context.Background(), tenantID, loadID, prev, "[OVERRIDE] ok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetFinancialStatus(t *testing.T) {
	tenantID := uuid.New()
	loadID := uuid.New()

	t.Run("returns status", func(t *testing.T) {
		s, mock, db := newMockStore(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT financial_status FROM loads WHERE id = \$1 AND tenant_id = \$2`).
			WithArgs(loadID, tenantID).
			WillReturnRows(sqlmock.NewRows([]string{"financial_status"}).AddRow("invoiced"))

		status, err := s.GetFinancialStatus(context.Background(), tenantID, loadID)
		require.NoError(t, err)
		assert.Equal(t, load.FinancialStatusInvoiced, status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing load", func(t *testing.T) {
		s, mock, db := newMockStore(t)
		defer db.Close()

		mock.ExpectQuery(`SELECT financial_status FROM loads`).
			WithArgs(loadID, tenantID).
			WillReturnError(sql.ErrNoRows)

		_, err := s.GetFinancialStatus(context.Background(), tenantID, loadID)
		assert.ErrorIs(t, err, load.ErrNotFound)
	})
}
