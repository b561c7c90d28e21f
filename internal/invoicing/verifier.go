package invoicing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/freightdesk/internal/load"
)

// LoadReader reads back the billing state of a load.
type LoadReader interface {
	GetFinancialStatus(ctx context.Context, tenantID, loadID uuid.UUID) (load.FinancialStatus, error)
}

// Verifier re-reads a load after it was marked invoiced. The store does not promise
// read-your-writes, so a stale read and a silently dropped write look the same here
// and are both reported as ErrVerificationMismatch.
type Verifier struct {
	loads LoadReader
}

func NewVerifier(loads LoadReader) *Verifier {
	return &Verifier{loads: loads}
}

func (v *Verifier) Verify(ctx context.Context, tenantID, loadID uuid.UUID) error {
	status, err := v.loads.GetFinancialStatus(ctx, tenantID, loadID)
	if err != nil {
		return fmt.Errorf("%w: reading load: %w", ErrVerificationMismatch, err)
	}

	if status != load.FinancialStatusInvoiced {
		return fmt.Errorf("%w: financial status is %q", ErrVerificationMismatch, status)
	}

	return nil
}
