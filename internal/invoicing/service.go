package invoicing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/freightdesk/internal/audit"
	"github.com/MrJamesThe3rd/freightdesk/internal/load"
	"github.com/MrJamesThe3rd/freightdesk/internal/verification"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoicing

// SequenceAllocator hands out per-tenant invoice numbers. Every call consumes a number.
type SequenceAllocator interface {
	AllocateInvoiceNumber(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, tenantID, id uuid.UUID) error
	CreateLink(ctx context.Context, link *Link) error
	DeleteLink(ctx context.Context, tenantID, id uuid.UUID) error

	GetInvoice(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Invoice, error)
}

// LoadStore is the part of the load subsystem the saga writes to and reads back from.
type LoadStore interface {
	MarkInvoiced(ctx context.Context, tenantID, loadID uuid.UUID, billingNotes string) error
	RestoreBilling(ctx context.Context, tenantID, loadID uuid.UUID, prev load.BillingState, expectNotes string) error
	GetFinancialStatus(ctx context.Context, tenantID, loadID uuid.UUID) (load.FinancialStatus, error)
}

type AuditLogger interface {
	Append(ctx context.Context, e *audit.Entry) error
}

type Config struct {
	PaymentTerms string
	DueDays      int
	AuditTimeout time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

type Service struct {
	sequences SequenceAllocator
	repo      Repository
	loads     LoadStore
	verifier  *Verifier
	audit     AuditLogger
	cfg       Config

	auditWG sync.WaitGroup
}

func NewService(sequences SequenceAllocator, repo Repository, loads LoadStore, auditLog AuditLogger, cfg Config) *Service {
	if cfg.PaymentTerms == "" {
		cfg.PaymentTerms = "Net 30"
	}

	if cfg.DueDays <= 0 {
		cfg.DueDays = 30
	}

	if cfg.AuditTimeout <= 0 {
		cfg.AuditTimeout = 10 * time.Second
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		sequences: sequences,
		repo:      repo,
		loads:     loads,
		verifier:  NewVerifier(loads),
		audit:     auditLog,
		cfg:       cfg,
	}
}

type ListFilter struct {
	Status *Status
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, tenantID, filter)
}

// Request carries everything the saga needs: the audited load snapshot,
// the checklist as the operator left it and the optional override.
type Request struct {
	TenantID  uuid.UUID
	Load      *load.Load
	Checklist []verification.Item
	Override  verification.Override
	// Notes are free-text billing notes entered alongside the audit.
	Notes string
}

type Result struct {
	InvoiceID         uuid.UUID
	InvoiceNumber     string
	VerificationState verification.State
	Overridden        bool
}

// undo is a compensating action for a committed step.
type undo struct {
	name string
	fn   func(ctx context.Context) error
}

// RunInvoiceSaga converts an audited load into a draft invoice.
//
// Steps run strictly in order: allocate number, create invoice, link it to the load,
// mark the load invoiced, read the load back. A failure after the invoice exists undoes
// what this attempt wrote, newest first, and returns a *SagaError naming the step.
// Once allocation starts the saga ignores cancellation of ctx.
func (s *Service) RunInvoiceSaga(ctx context.Context, req Request) (*Result, error) {
	if req.Load == nil || req.TenantID == uuid.Nil {
		return nil, fmt.Errorf("%w: tenant and load are required", ErrInvalidRequest)
	}

	if req.Load.TenantID != uuid.Nil && req.Load.TenantID != req.TenantID {
		return nil, fmt.Errorf("%w: load belongs to another tenant", ErrInvalidRequest)
	}

	decision := verification.Evaluate(req.Checklist, req.Override)
	if !decision.Proceed {
		return nil, fmt.Errorf("%w: %w", ErrGateClosed, decision.Unmet)
	}

	if req.Load.FinancialStatus == load.FinancialStatusInvoiced {
		return nil, ErrLoadAlreadyInvoiced
	}

	notes := verification.FinalNotes(req.Notes, decision.State, req.Override.Reason)

	ctx = context.WithoutCancel(ctx)

	var undos []undo

	seq, err := s.sequences.AllocateInvoiceNumber(ctx, req.TenantID)
	if err != nil {
		return nil, s.abort(ctx, req, StepAllocate, ErrAllocation, err, undos)
	}

	inv := s.newInvoice(req, FormatNumber(seq), notes)
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, s.abort(ctx, req, StepCreateInvoice, ErrPersistence, err, undos)
	}

	undos = append(undos, undo{name: "delete invoice", fn: func(ctx context.Context) error {
		return s.repo.DeleteInvoice(ctx, req.TenantID, inv.ID)
	}})

	link := &Link{
		TenantID:    req.TenantID,
		InvoiceID:   inv.ID,
		LoadID:      req.Load.ID,
		Amount:      req.Load.Amount(),
		Description: LinkDescription(req.Load),
	}
	if err := s.repo.CreateLink(ctx, link); err != nil {
		return nil, s.abort(ctx, req, StepCreateLink, ErrPersistence, err, undos)
	}

	undos = append(undos, undo{name: "delete invoice link", fn: func(ctx context.Context) error {
		return s.repo.DeleteLink(ctx, req.TenantID, link.ID)
	}})

	// A failed or unconfirmed write may still have landed, so the restore is queued first.
	// It only applies while the load carries this attempt's notes.
	prev := req.Load.BillingState()
	undos = append(undos, undo{name: "restore load", fn: func(ctx context.Context) error {
		return s.loads.RestoreBilling(ctx, req.TenantID, req.Load.ID, prev, notes)
	}})

	if err := s.loads.MarkInvoiced(ctx, req.TenantID, req.Load.ID, notes); err != nil {
		return nil, s.abort(ctx, req, StepMutateLoad, ErrStateMutation, err, undos)
	}

	if err := s.verifier.Verify(ctx, req.TenantID, req.Load.ID); err != nil {
		return nil, s.abort(ctx, req, StepVerify, ErrVerificationMismatch, err, undos)
	}

	res := &Result{
		InvoiceID:         inv.ID,
		InvoiceNumber:     inv.Number,
		VerificationState: decision.State,
		Overridden:        decision.Overridden,
	}

	s.recordAudit(ctx, req, res, notes)

	return res, nil
}

func (s *Service) newInvoice(req Request, number, notes string) *Invoice {
	amount := req.Load.Amount()

	now := s.cfg.Now().UTC()
	invoiceDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	inv := &Invoice{
		TenantID:     req.TenantID,
		Number:       number,
		CustomerID:   req.Load.CustomerID,
		InvoiceDate:  invoiceDate,
		DueDate:      invoiceDate.AddDate(0, 0, s.cfg.DueDays),
		PaymentTerms: s.cfg.PaymentTerms,
		Status:       StatusDraft,
		Subtotal:     amount,
		Tax:          decimal.Zero,
		TotalAmount:  amount,
		AmountPaid:   decimal.Zero,
		BalanceDue:   amount,
		Notes:        notes,
	}

	if c := req.Load.Customer; c != nil {
		inv.CustomerName = c.Name
		inv.CustomerEmail = c.InvoiceEmail()
	}

	return inv
}

// abort runs the compensations newest first and builds the step-labelled error.
// Every compensation is attempted even if an earlier one fails.
func (s *Service) abort(ctx context.Context, req Request, step Step, kind, cause error, undos []undo) *SagaError {
	var failed []error

	for i := len(undos) - 1; i >= 0; i-- {
		if err := undos[i].fn(ctx); err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", undos[i].name, err))
		}
	}

	sagaErr := &SagaError{
		Step:         step,
		Kind:         kind,
		Cause:        cause,
		RolledBack:   len(failed) == 0,
		Compensation: errors.Join(failed...),
	}

	if !sagaErr.RolledBack {
		slog.Error("invoice saga left partial writes",
			"tenant_id", req.TenantID, "load_id", req.Load.ID, "step", int(step), "error", sagaErr)
	}

	return sagaErr
}

type auditPayload struct {
	InvoiceID         uuid.UUID            `json:"invoice_id"`
	InvoiceNumber     string               `json:"invoice_number"`
	Status            load.Status          `json:"status"`
	FinancialStatus   load.FinancialStatus `json:"financial_status"`
	VerificationState verification.State   `json:"verification_state"`
	OverrideReason    string               `json:"override_reason,omitempty"`
}

// recordAudit appends the audit entry in the background. A failed append is logged and
// otherwise ignored: the invoice is already durable and verified.
func (s *Service) recordAudit(ctx context.Context, req Request, res *Result, notes string) {
	action := audit.ActionCreateInvoice
	payload := auditPayload{
		InvoiceID:         res.InvoiceID,
		InvoiceNumber:     res.InvoiceNumber,
		Status:            load.StatusClosed,
		FinancialStatus:   load.FinancialStatusInvoiced,
		VerificationState: res.VerificationState,
	}

	if res.Overridden {
		action = audit.ActionCreateInvoiceOverride
		payload.OverrideReason = strings.TrimSpace(req.Override.Reason)
	}

	newValue, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("audit entry dropped", "load_id", req.Load.ID, "error", fmt.Errorf("%w: %w", ErrAuditLog, err))
		return
	}

	if notes == "" {
		notes = "Invoice " + res.InvoiceNumber + " created from audit"
	}

	entry := &audit.Entry{
		TenantID:   req.TenantID,
		EntityType: audit.EntityLoad,
		EntityID:   req.Load.ID,
		Action:     action,
		NewValue:   newValue,
		Notes:      notes,
	}

	s.auditWG.Go(func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.AuditTimeout)
		defer cancel()

		if err := s.audit.Append(ctx, entry); err != nil {
			slog.Warn("audit append failed",
				"tenant_id", req.TenantID,
				"load_id", req.Load.ID,
				"invoice_id", res.InvoiceID,
				"error", fmt.Errorf("%w: %w", ErrAuditLog, err),
			)
		}
	})
}

// Wait blocks until background audit appends have finished.
func (s *Service) Wait() {
	s.auditWG.Wait()
}
