package invoicing

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/freightdesk/internal/http/middleware"
	"github.com/MrJamesThe3rd/freightdesk/internal/http/respond"
	httpverification "github.com/MrJamesThe3rd/freightdesk/internal/http/verification"
	"github.com/MrJamesThe3rd/freightdesk/internal/invoicing"
	"github.com/MrJamesThe3rd/freightdesk/internal/load"
	"github.com/MrJamesThe3rd/freightdesk/internal/verification"
)

type Handler struct {
	invoices *invoicing.Service
	loads    *load.Service
}

func NewHandler(invoices *invoicing.Service, loads *load.Service) *Handler {
	return &Handler{invoices: invoices, loads: loads}
}

// Routes mounts the invoice reads.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

// LoadRoutes mounts the actions taken on a load, under /loads.
func (h *Handler) LoadRoutes(r chi.Router) {
	r.Post("/{id}/invoice", h.createFromLoad)
}

type createRequest struct {
	httpverification.AuditInput
	// Notes replaces the load's billing notes when set.
	Notes *string `json:"notes"`
}

type createResponse struct {
	InvoiceID         uuid.UUID          `json:"invoice_id"`
	InvoiceNumber     string             `json:"invoice_number"`
	VerificationState verification.State `json:"verification_state"`
	Overridden        bool               `json:"overridden"`
}

type sagaErrorResponse struct {
	Error      string `json:"error"`
	Step       int    `json:"step"`
	RolledBack bool   `json:"rolled_back"`
}

func (h *Handler) createFromLoad(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.TenantFrom(r.Context())

	loadID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := req.Items()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	l, err := h.loads.Get(r.Context(), tenantID, loadID)
	if err != nil {
		if errors.Is(err, load.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "load not found")
			return
		}

		slog.Error("failed to get load", "load_id", loadID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	notes := l.BillingNotes
	if req.Notes != nil {
		notes = *req.Notes
	}

	res, err := h.invoices.RunInvoiceSaga(r.Context(), invoicing.Request{
		TenantID:  tenantID,
		Load:      l,
		Checklist: items,
		Override:  req.Override(),
		Notes:     notes,
	})
	if err != nil {
		writeSagaError(w, loadID, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createResponse{
		InvoiceID:         res.InvoiceID,
		InvoiceNumber:     res.InvoiceNumber,
		VerificationState: res.VerificationState,
		Overridden:        res.Overridden,
	})
}

// writeSagaError is the only place saga failures become HTTP statuses.
func writeSagaError(w http.ResponseWriter, loadID uuid.UUID, err error) {
	var sagaErr *invoicing.SagaError

	hasStep := errors.As(err, &sagaErr)

	body := sagaErrorResponse{Error: err.Error()}
	if hasStep {
		body.Step = int(sagaErr.Step)
		body.RolledBack = sagaErr.RolledBack
	}

	switch {
	case errors.Is(err, invoicing.ErrInvalidRequest):
		respond.JSON(w, http.StatusBadRequest, body)
	case errors.Is(err, invoicing.ErrGateClosed):
		respond.JSON(w, http.StatusUnprocessableEntity, body)
	case errors.Is(err, invoicing.ErrLoadAlreadyInvoiced):
		respond.JSON(w, http.StatusConflict, body)
	case hasStep && sagaErr.RolledBack:
		slog.Error("invoice saga failed", "load_id", loadID, "step", body.Step, "error", err)
		respond.JSON(w, http.StatusBadGateway, body)
	default:
		slog.Error("invoice saga failed", "load_id", loadID, "step", body.Step, "rolled_back", body.RolledBack, "error", err)
		respond.JSON(w, http.StatusInternalServerError, body)
	}
}

type invoiceResponse struct {
	ID            uuid.UUID        `json:"id"`
	Number        string           `json:"invoice_number"`
	CustomerID    *uuid.UUID       `json:"customer_id,omitempty"`
	CustomerName  string           `json:"customer_name,omitempty"`
	CustomerEmail string           `json:"customer_email,omitempty"`
	InvoiceDate   string           `json:"invoice_date"`
	DueDate       string           `json:"due_date"`
	PaymentTerms  string           `json:"payment_terms"`
	Status        invoicing.Status `json:"status"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Tax           decimal.Decimal  `json:"tax"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	AmountPaid    decimal.Decimal  `json:"amount_paid"`
	BalanceDue    decimal.Decimal  `json:"balance_due"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

func toResponse(inv *invoicing.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		InvoiceDate:   inv.InvoiceDate.Format(time.DateOnly),
		DueDate:       inv.DueDate.Format(time.DateOnly),
		PaymentTerms:  inv.PaymentTerms,
		Status:        inv.Status,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		TotalAmount:   inv.TotalAmount,
		AmountPaid:    inv.AmountPaid,
		BalanceDue:    inv.BalanceDue,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.TenantFrom(r.Context())

	filter := invoicing.ListFilter{}
	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(invoicing.Status(s))
	}

	invoices, err := h.invoices.List(r.Context(), tenantID, filter)
	if err != nil {
		slog.Error("failed to list invoices", "tenant_id", tenantID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	res := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = toResponse(inv)
	}

	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.TenantFrom(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	inv, err := h.invoices.Get(r.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, invoicing.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "invoice not found")
			return
		}

		slog.Error("failed to get invoice", "invoice_id", id, "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}
