package load

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/freightdesk/internal/http/middleware"
	"github.com/MrJamesThe3rd/freightdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/freightdesk/internal/load"
)

type Handler struct {
	svc *load.Service
}

func NewHandler(svc *load.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type customerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

type locationResponse struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type loadResponse struct {
	ID              uuid.UUID            `json:"id"`
	LoadNumber      string               `json:"load_number"`
	ReferenceNumber string               `json:"reference_number,omitempty"`
	Rate            decimal.NullDecimal  `json:"rate"`
	Customer        *customerResponse    `json:"customer,omitempty"`
	Pickup          locationResponse     `json:"pickup"`
	Delivery        locationResponse     `json:"delivery"`
	Status          load.Status          `json:"status"`
	FinancialStatus load.FinancialStatus `json:"financial_status"`
	BillingNotes    string               `json:"billing_notes,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       *time.Time           `json:"updated_at,omitempty"`
}

func toResponse(l *load.Load) loadResponse {
	res := loadResponse{
		ID:              l.ID,
		LoadNumber:      l.LoadNumber,
		ReferenceNumber: l.ReferenceNumber,
		Rate:            l.Rate,
		Pickup:          locationResponse(l.Pickup),
		Delivery:        locationResponse(l.Delivery),
		Status:          l.Status,
		FinancialStatus: l.FinancialStatus,
		BillingNotes:    l.BillingNotes,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}

	if c := l.Customer; c != nil {
		res.Customer = &customerResponse{ID: c.ID, Name: c.Name, Email: c.InvoiceEmail()}
	}

	return res
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.TenantFrom(r.Context())

	var (
		loads []*load.Load
		err   error
	)

	if r.URL.Query().Get("awaiting_invoice") == "true" {
		loads, err = h.svc.AwaitingInvoice(r.Context(), tenantID)
	} else {
		filter := load.ListFilter{}

		if s := r.URL.Query().Get("status"); s != "" {
			filter.Status = new(load.Status(s))
		}

		if s := r.URL.Query().Get("financial_status"); s != "" {
			filter.FinancialStatus = new(load.FinancialStatus(s))
		}

		loads, err = h.svc.List(r.Context(), tenantID, filter)
	}

	if err != nil {
		slog.Error("failed to list loads", "tenant_id", tenantID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	res := make([]loadResponse, len(loads))
	for i, l := range loads {
		res[i] = toResponse(l)
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

	l, err := h.svc.Get(r.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, load.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "load not found")
			return
		}

		slog.Error("failed to get load", "load_id", id, "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(l))
}
