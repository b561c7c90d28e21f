package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Action names what happened to the audited entity.
type Action string

const (
	ActionCreateInvoice         Action = "audit_create_invoice"
	ActionCreateInvoiceOverride Action = "audit_create_invoice_override"
)

// EntityType names the kind of record an entry describes.
type EntityType string

const EntityLoad EntityType = "load"

// Entry is an immutable audit trail record.
type Entry struct {
	ID         uuid.UUID
	TenantID   uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     Action
	NewValue   json.RawMessage
	Notes      string
	CreatedAt  time.Time
}
