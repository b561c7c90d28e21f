package verification

import (
	"errors"
	"strings"
)

// OverrideMarker prefixes an override reason in stored notes.
const OverrideMarker = "[OVERRIDE]"

var (
	ErrOverrideNotConfirmed   = errors.New("override must be confirmed to proceed with unverified items")
	ErrOverrideReasonRequired = errors.New("override reason is required")
)

// Override is the operator's explicit decision to proceed despite verification.
type Override struct {
	Confirmed bool
	Reason    string
}

// Decision is the outcome of running a checklist through the gate.
type Decision struct {
	State State
	// Proceed reports whether the invoice saga may run.
	Proceed bool
	// Overridden is set when Proceed is true only because of the override.
	Overridden bool
	// Unmet names the missing precondition when Proceed is false.
	Unmet error
}

// CanProceed reports whether the gate opens for the given state and override.
func CanProceed(state State, overrideConfirmed bool, overrideReason string) bool {
	if state == StateAllMatch {
		return true
	}

	return overrideConfirmed && strings.TrimSpace(overrideReason) != ""
}

// Evaluate classifies items and decides whether the saga may run.
func Evaluate(items []Item, o Override) Decision {
	state := Classify(items)

	if state == StateAllMatch {
		return Decision{State: state, Proceed: true}
	}

	d := Decision{State: state}

	switch {
	case !o.Confirmed:
		d.Unmet = ErrOverrideNotConfirmed
	case strings.TrimSpace(o.Reason) == "":
		d.Unmet = ErrOverrideReasonRequired
	default:
		d.Proceed = true
		d.Overridden = true
	}

	return d
}

// FinalNotes builds the billing notes stored on the load and in the audit trail.
// Outside AllMatch the trimmed reason is appended after any existing notes, separated by a blank line.
func FinalNotes(existing string, state State, reason string) string {
	if state == StateAllMatch {
		return existing
	}

	note := OverrideMarker + " " + strings.TrimSpace(reason)
	if strings.TrimSpace(existing) == "" {
		return note
	}

	return existing + "\n\n" + note
}
