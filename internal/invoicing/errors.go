package invoicing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest       = errors.New("invalid invoice request")
	ErrGateClosed           = errors.New("verification gate closed")
	ErrAllocation           = errors.New("invoice number allocation failed")
	ErrPersistence          = errors.New("invoice persistence failed")
	ErrStateMutation        = errors.New("load state update failed")
	ErrVerificationMismatch = errors.New("load state not visible after update")
	ErrAuditLog             = errors.New("audit log append failed")
)

// Step identifies a saga step, numbered in execution order.
type Step int

const (
	StepAllocate Step = iota + 1
	StepCreateInvoice
	StepCreateLink
	StepMutateLoad
	StepVerify
)

func (s Step) String() string {
	switch s {
	case StepAllocate:
		return "allocate invoice number"
	case StepCreateInvoice:
		return "create invoice"
	case StepCreateLink:
		return "link invoice to load"
	case StepMutateLoad:
		return "mark load invoiced"
	case StepVerify:
		return "verify load state"
	}

	return fmt.Sprintf("step %d", int(s))
}

// SagaError reports which step failed and whether this attempt's writes were undone.
// errors.Is matches both the failure kind (ErrPersistence, ...) and the underlying cause.
type SagaError struct {
	Step  Step
	Kind  error
	Cause error
	// RolledBack is true when no row written by this attempt remains.
	RolledBack bool
	// Compensation holds the errors of compensating deletes that did not succeed.
	Compensation error
}

func (e *SagaError) Error() string {
	msg := fmt.Sprintf("invoice saga failed at step %d (%s): %v", int(e.Step), e.Step, e.Kind)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	if e.Compensation != nil {
		msg += "; rollback incomplete: " + e.Compensation.Error()
	}

	return msg
}

func (e *SagaError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}

	if e.Compensation != nil {
		errs = append(errs, e.Compensation)
	}

	return errs
}
