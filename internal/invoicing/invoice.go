package invoicing

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/freightdesk/internal/load"
)

var (
	ErrNotFound            = errors.New("invoice not found")
	ErrLoadAlreadyInvoiced = errors.New("load already has an invoice")
)

// Status is the lifecycle state of an invoice. This service only ever creates drafts.
type Status string

const (
	StatusDraft Status = "draft"
	StatusSent  Status = "sent"
	StatusPaid  Status = "paid"
	StatusVoid  Status = "void"
)

// Invoice is a billing document for a customer.
type Invoice struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	Number        string
	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerEmail string
	InvoiceDate   time.Time
	DueDate       time.Time
	PaymentTerms  string
	Status        Status
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	TotalAmount   decimal.Decimal
	AmountPaid    decimal.Decimal
	BalanceDue    decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Link binds one invoice to the load it bills.
type Link struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	InvoiceID   uuid.UUID
	LoadID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// FormatNumber renders an allocated sequence value as a printable invoice number.
func FormatNumber(seq int64) string {
	return fmt.Sprintf("INV-%06d", seq)
}

// LinkDescription is the human readable line shown for a load on its invoice.
func LinkDescription(l *load.Load) string {
	return fmt.Sprintf("Load %s: %s, %s → %s, %s",
		l.LoadNumber, l.Pickup.City, l.Pickup.State, l.Delivery.City, l.Delivery.State)
}
