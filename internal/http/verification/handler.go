package verification

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/freightdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/freightdesk/internal/verification"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/checklist", h.checklist)
	r.Post("/evaluate", h.evaluate)
}

type ItemResponse struct {
	ID     string              `json:"id"`
	Label  string              `json:"label"`
	Group  verification.Group  `json:"group"`
	Status verification.Status `json:"status"`
}

func ToItemResponses(items []verification.Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, it := range items {
		res[i] = ItemResponse{ID: it.ID, Label: it.Label, Group: it.Group, Status: it.Status}
	}

	return res
}

func (h *Handler) checklist(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, ToItemResponses(verification.DefaultChecklist()))
}

// AuditInput is the operator's audit as submitted by clients: statuses keyed by item id
// plus the override fields.
type AuditInput struct {
	Checklist         map[string]verification.Status `json:"checklist"`
	OverrideConfirmed bool                           `json:"override_confirmed"`
	OverrideReason    string                         `json:"override_reason"`
}

// Items applies the submitted statuses to the default checklist.
func (in AuditInput) Items() ([]verification.Item, error) {
	return verification.Apply(verification.DefaultChecklist(), in.Checklist)
}

func (in AuditInput) Override() verification.Override {
	return verification.Override{Confirmed: in.OverrideConfirmed, Reason: in.OverrideReason}
}

type evaluateResponse struct {
	State      verification.State `json:"state"`
	Proceed    bool               `json:"proceed"`
	Overridden bool               `json:"overridden"`
	Unmet      string             `json:"unmet,omitempty"`
	Items      []ItemResponse     `json:"items"`
}

func (h *Handler) evaluate(w http.ResponseWriter, r *http.Request) {
	var req AuditInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := req.Items()
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	d := verification.Evaluate(items, req.Override())

	res := evaluateResponse{
		State:      d.State,
		Proceed:    d.Proceed,
		Overridden: d.Overridden,
		Items:      ToItemResponses(items),
	}

	if d.Unmet != nil {
		res.Unmet = d.Unmet.Error()
	}

	respond.JSON(w, http.StatusOK, res)
}
