package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/freightdesk/internal/invoicing"
)

const (
	uniqueViolation = "23505"

	// activeLinkIndex keeps a load on at most one live invoice.
	activeLinkIndex = "invoice_load_links_active_load_idx"
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

const selectInvoiceColumns = `
	id, tenant_id, invoice_number, customer_id, customer_name, customer_email,
	invoice_date, due_date, payment_terms, status,
	subtotal, tax, total_amount, amount_paid, balance_due,
	notes, created_at, updated_at
`

// scanInvoice expects the column order of selectInvoiceColumns.
func scanInvoice(s scanner) (*invoicing.Invoice, error) {
	var inv invoicing.Invoice

	var status string

	var customerName, customerEmail, paymentTerms, notes sql.NullString

	if err := s.Scan(
		&inv.ID, &inv.TenantID, &inv.Number, &inv.CustomerID, &customerName, &customerEmail,
		&inv.InvoiceDate, &inv.DueDate, &paymentTerms, &status,
		&inv.Subtotal, &inv.Tax, &inv.TotalAmount, &inv.AmountPaid, &inv.BalanceDue,
		&notes, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		return nil, err
	}

	inv.CustomerName = customerName.String
	inv.CustomerEmail = customerEmail.String
	inv.PaymentTerms = paymentTerms.String
	inv.Notes = notes.String
	inv.Status = invoicing.Status(status)

	return &inv, nil
}

// AllocateInvoiceNumber bumps the tenant's counter in a single statement, so two callers
// never see the same value. Values are not returned on rollback of the caller's work.
func (s *Store) AllocateInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	query := `
		INSERT INTO invoice_sequences (tenant_id, last_value, updated_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (tenant_id)
		DO UPDATE SET last_value = invoice_sequences.last_value + 1, updated_at = NOW()
		RETURNING last_value
	`

	var seq int64
	if err := s.db.QueryRowContext(ctx, query, tenantID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("allocating invoice number: %w", err)
	}

	return seq, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoicing.Invoice) error {
	query := `
		INSERT INTO invoices (
			tenant_id, invoice_number, customer_id, customer_name, customer_email,
			invoice_date, due_date, payment_terms, status,
			subtotal, tax, total_amount, amount_paid, balance_due, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.TenantID,
		inv.Number,
		inv.CustomerID,
		inv.CustomerName,
		inv.CustomerEmail,
		inv.InvoiceDate,
		inv.DueDate,
		inv.PaymentTerms,
		inv.Status,
		inv.Subtotal,
		inv.Tax,
		inv.TotalAmount,
		inv.AmountPaid,
		inv.BalanceDue,
		inv.Notes,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

// DeleteInvoice hard-deletes a draft created by a failed saga. Missing rows are not an error.
func (s *Store) DeleteInvoice(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM invoices WHERE id = $1 AND tenant_id = $2`

	if _, err := s.db.ExecContext(ctx, query, id, tenantID); err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}

// CreateLink reports invoicing.ErrLoadAlreadyInvoiced when the load already has a live link.
func (s *Store) CreateLink(ctx context.Context, link *invoicing.Link) error {
	query := `
		INSERT INTO invoice_load_links (tenant_id, invoice_id, load_id, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		link.TenantID,
		link.InvoiceID,
		link.LoadID,
		link.Amount,
		link.Description,
	).Scan(&link.ID, &link.CreatedAt)
	if err != nil {
		if isActiveLinkConflict(err) {
			return fmt.Errorf("linking load %s: %w", link.LoadID, invoicing.ErrLoadAlreadyInvoiced)
		}

		return fmt.Errorf("creating invoice link: %w", err)
	}

	return nil
}

func isActiveLinkConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == uniqueViolation && pgErr.ConstraintName == activeLinkIndex
}

func (s *Store) DeleteLink(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM invoice_load_links WHERE id = $1 AND tenant_id = $2`

	if _, err := s.db.ExecContext(ctx, query, id, tenantID); err != nil {
		return fmt.Errorf("deleting invoice link: %w", err)
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, tenantID, id uuid.UUID) (*invoicing.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoicing.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, tenantID uuid.UUID, filter invoicing.ListFilter) ([]*invoicing.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE tenant_id = $1 AND deleted_at IS NULL`

	args := []any{tenantID}

	if filter.Status != nil {
		query += " AND status = $2"

		args = append(args, *filter.Status)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoicing.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invoices, nil
}
