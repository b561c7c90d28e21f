package verification

import (
	"errors"
	"fmt"
)

var ErrUnknownItem = errors.New("unknown checklist item")

// Status is the outcome recorded for a single checklist item.
type Status string

const (
	StatusUnchecked Status = ""
	StatusMatch     Status = "match"
	StatusFail      Status = "fail"
)

// Group names the source document an item is checked against.
type Group string

const (
	GroupRateConfirmation Group = "Rate Confirmation"
	GroupBillOfLading     Group = "Bill of Lading"
)

// Item is one line of the audit checklist.
type Item struct {
	ID     string
	Label  string
	Group  Group
	Status Status
}

// State is the classification of a whole checklist.
type State string

const (
	StateIncomplete  State = "incomplete"
	StateHasFailures State = "has_failures"
	StateAllMatch    State = "all_match"
)

// DefaultChecklist returns the standard audit checklist with every item unchecked.
func DefaultChecklist() []Item {
	return []Item{
		{ID: "rc_load_number", Label: "Load number matches", Group: GroupRateConfirmation},
		{ID: "rc_rate", Label: "Rate matches", Group: GroupRateConfirmation},
		{ID: "rc_customer", Label: "Customer matches", Group: GroupRateConfirmation},
		{ID: "rc_pickup", Label: "Pickup location matches", Group: GroupRateConfirmation},
		{ID: "rc_delivery", Label: "Delivery location matches", Group: GroupRateConfirmation},
		{ID: "bol_signed", Label: "Signed by consignee", Group: GroupBillOfLading},
		{ID: "bol_pieces", Label: "Piece count matches", Group: GroupBillOfLading},
		{ID: "bol_weight", Label: "Weight matches", Group: GroupBillOfLading},
		{ID: "bol_delivery_date", Label: "Delivery date present", Group: GroupBillOfLading},
		{ID: "bol_exceptions", Label: "No exceptions noted", Group: GroupBillOfLading},
	}
}

// Apply returns a copy of items with the given statuses set by item id.
// Items not named in statuses keep their current status.
func Apply(items []Item, statuses map[string]Status) ([]Item, error) {
	out := make([]Item, len(items))
	copy(out, items)

	index := make(map[string]int, len(out))
	for i, it := range out {
		index[it.ID] = i
	}

	for id, status := range statuses {
		i, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownItem, id)
		}

		switch status {
		case StatusUnchecked, StatusMatch, StatusFail:
		default:
			return nil, fmt.Errorf("invalid status %q for item %q", status, id)
		}

		out[i].Status = status
	}

	return out, nil
}

// Classify derives the checklist state from its items.
// Unchecked items are looked for before failures, so a list holding both is Incomplete.
func Classify(items []Item) State {
	if len(items) == 0 {
		return StateIncomplete
	}

	for _, it := range items {
		if it.Status != StatusMatch && it.Status != StatusFail {
			return StateIncomplete
		}
	}

	for _, it := range items {
		if it.Status == StatusFail {
			return StateHasFailures
		}
	}

	return StateAllMatch
}
