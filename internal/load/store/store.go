package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/freightdesk/internal/load"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectLoadColumns = `
	l.id, l.tenant_id, l.load_number, l.reference_number, l.rate, l.customer_id,
	c.name, c.email, c.billing_email,
	l.pickup_city, l.pickup_state, l.delivery_city, l.delivery_state,
	l.status, l.financial_status, l.billing_notes, l.created_at, l.updated_at
`

// scanLoad expects the column order of selectLoadColumns.
func scanLoad(s scanner) (*load.Load, error) {
	var l load.Load

	var statusStr, financialStr string

	var customerID *uuid.UUID

	var (
		refNumber, billingNotes                    sql.NullString
		custName, custEmail, custBillingEmail      sql.NullString
		pickupCity, pickupState, delCity, delState sql.NullString
	)

	if err := s.Scan(
		&l.ID, &l.TenantID, &l.LoadNumber, &refNumber, &l.Rate, &customerID,
		&custName, &custEmail, &custBillingEmail,
		&pickupCity, &pickupState, &delCity, &delState,
		&statusStr, &financialStr, &billingNotes, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.ReferenceNumber = refNumber.String
	l.BillingNotes = billingNotes.String
	l.Status = load.Status(statusStr)
	l.FinancialStatus = load.FinancialStatus(financialStr)
	l.Pickup = load.Location{City: pickupCity.String, State: pickupState.String}
	l.Delivery = load.Location{City: delCity.String, State: delState.String}
	l.CustomerID = customerID

	if customerID != nil {
		l.Customer = &load.Customer{
			ID:           *customerID,
			Name:         custName.String,
			Email:        custEmail.String,
			BillingEmail: custBillingEmail.String,
		}
	}

	return &l, nil
}

func (s *Store) GetLoad(ctx context.Context, tenantID, id uuid.UUID) (*load.Load, error) {
	query := `SELECT ` + selectLoadColumns + `
		FROM loads l
		LEFT JOIN customers c ON l.customer_id = c.id
		WHERE l.id = $1 AND l.tenant_id = $2 AND l.deleted_at IS NULL`

	l, err := scanLoad(s.db.QueryRowContext(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, load.ErrNotFound
		}

		return nil, fmt.Errorf("getting load: %w", err)
	}

	return l, nil
}

func (s *Store) ListLoads(ctx context.Context, tenantID uuid.UUID, filter load.ListFilter) ([]*load.Load, error) {
	query := `SELECT ` + selectLoadColumns + `
		FROM loads l
		LEFT JOIN customers c ON l.customer_id = c.id
		WHERE l.tenant_id = $1 AND l.deleted_at IS NULL`

	args := []any{tenantID}
	argIdx := 2

	if filter.Status != nil {
		query += fmt.Sprintf(" AND l.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.FinancialStatus != nil {
		query += fmt.Sprintf(" AND l.financial_status = $%d", argIdx)

		args = append(args, *filter.FinancialStatus)
	}

	query += " ORDER BY l.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing loads: %w", err)
	}
	defer rows.Close()

	var loads []*load.Load

	for rows.Next() {
		l, err := scanLoad(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning load: %w", err)
		}

		loads = append(loads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating load rows: %w", err)
	}

	return loads, nil
}

// MarkInvoiced closes the load and flags it invoiced. A load that no longer matches
// (id, tenant) yields load.ErrNotFound.
func (s *Store) MarkInvoiced(ctx context.Context, tenantID, id uuid.UUID, billingNotes string) error {
	query := `
		UPDATE loads
		SET status = $1, financial_status = $2, billing_notes = $3, updated_at = NOW()
		WHERE id = $4 AND tenant_id = $5 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query,
		load.StatusClosed,
		load.FinancialStatusInvoiced,
		billingNotes,
		id,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("marking load invoiced: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return load.ErrNotFound
	}

	return nil
}

// RestoreBilling puts back prev only while the load still carries the invoiced write made
// with expectNotes. A load that never took that write is left alone.
func (s *Store) RestoreBilling(ctx context.Context, tenantID, id uuid.UUID, prev load.BillingState, expectNotes string) error {
	query := `
		UPDATE loads
		SET status = $1, financial_status = $2, billing_notes = $3, updated_at = NOW()
		WHERE id = $4 AND tenant_id = $5 AND deleted_at IS NULL
			AND financial_status = $6 AND billing_notes = $7
	`

	_, err := s.db.ExecContext(ctx, query,
		prev.Status,
		prev.FinancialStatus,
		prev.BillingNotes,
		id,
		tenantID,
		load.FinancialStatusInvoiced,
		expectNotes,
	)
	if err != nil {
		return fmt.Errorf("restoring load billing state: %w", err)
	}

	return nil
}

func (s *Store) GetFinancialStatus(ctx context.Context, tenantID, id uuid.UUID) (load.FinancialStatus, error) {
	query := `
		SELECT financial_status
		FROM loads
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	var status string

	err := s.db.QueryRowContext(ctx, query, id, tenantID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", load.ErrNotFound
		}

		return "", fmt.Errorf("getting financial status: %w", err)
	}

	return load.FinancialStatus(status), nil
}
