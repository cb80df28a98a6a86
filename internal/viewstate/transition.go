package viewstate

import (
	"fmt"

	"portfolio/internal/model"
)

// Op names a transition.
type Op string

const (
	OpNavigate       Op = "navigate"
	OpSelectItem     Op = "select"
	OpClearSelection Op = "clear"
	OpSetFilter      Op = "filter"
	OpSetSearch      Op = "search"
)

// Transition is a serializable request for one state change. Only the fields
// relevant to Op are read.
type Transition struct {
	Op       Op               `json:"op"`
	Page     model.Page       `json:"page,omitempty"`
	Category model.Category   `json:"category,omitempty"`
	ItemID   string           `json:"id,omitempty"`
	Mode     model.FilterMode `json:"mode,omitempty"`
	Text     string           `json:"text,omitempty"`
}

// Apply runs t against s.
func Apply(s model.ViewState, t Transition) (model.ViewState, error) {
	switch t.Op {
	case OpNavigate:
		return Navigate(s, t.Page)
	case OpSelectItem:
		return SelectItem(s, t.Category, t.ItemID)
	case OpClearSelection:
		return ClearSelection(s, t.Category)
	case OpSetFilter:
		return SetFilter(s, t.Category, t.Mode)
	case OpSetSearch:
		return SetSearch(s, t.Text)
	}
	return s, fmt.Errorf("%w: %q", ErrUnknownOp, t.Op)
}
