package load

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("load not found")

// Status is the operational lifecycle state of a load.
type Status string

const (
	StatusBooked    Status = "booked"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusClosed    Status = "closed"
)

// FinancialStatus tracks where a load is in billing.
type FinancialStatus string

const (
	FinancialStatusPending  FinancialStatus = "pending"
	FinancialStatusAudited  FinancialStatus = "audited"
	FinancialStatusInvoiced FinancialStatus = "invoiced"
)

// Customer is the billing party of a load, loaded via JOIN.
type Customer struct {
	ID           uuid.UUID
	Name         string
	Email        string
	BillingEmail string
}

// InvoiceEmail prefers the billing address over the general one.
func (c *Customer) InvoiceEmail() string {
	if c == nil {
		return ""
	}

	if c.BillingEmail != "" {
		return c.BillingEmail
	}

	return c.Email
}

// Location is a city/state pair.
type Location struct {
	City  string
	State string
}

// Load is a single shipment moved for a customer.
type Load struct {
	ID              uuid.UUID
	TenantID        uuid.UUID
	LoadNumber      string
	ReferenceNumber string
	Rate            decimal.NullDecimal
	CustomerID      *uuid.UUID
	Customer        *Customer
	Pickup          Location
	Delivery        Location
	Status          Status
	FinancialStatus FinancialStatus
	BillingNotes    string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// BillingState is the subset of a load the invoice saga changes.
type BillingState struct {
	Status          Status
	FinancialStatus FinancialStatus
	BillingNotes    string
}

func (l *Load) BillingState() BillingState {
	return BillingState{
		Status:          l.Status,
		FinancialStatus: l.FinancialStatus,
		BillingNotes:    l.BillingNotes,
	}
}

// Amount is the billable rate, zero when no rate was recorded.
func (l *Load) Amount() decimal.Decimal {
	if !l.Rate.Valid {
		return decimal.Zero
	}

	return l.Rate.Decimal
}
