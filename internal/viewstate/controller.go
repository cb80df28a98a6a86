package viewstate

import "portfolio/internal/model"

// Controller owns a single ViewState and is the only thing that changes it.
// It is not safe for concurrent use; callers that share one across
// goroutines must serialize access.
type Controller struct {
	state model.ViewState
}

// NewController returns a controller in the initial state.
func NewController() *Controller {
	return &Controller{state: Initial()}
}

// State returns a copy of the current state.
func (c *Controller) State() model.ViewState {
	return c.state.Clone()
}

func (c *Controller) Navigate(page model.Page) error {
	return c.Apply(Transition{Op: OpNavigate, Page: page})
}

func (c *Controller) SelectItem(category model.Category, id string) error {
	return c.Apply(Transition{Op: OpSelectItem, Category: category, ItemID: id})
}

func (c *Controller) ClearSelection(category model.Category) error {
	return c.Apply(Transition{Op: OpClearSelection, Category: category})
}

func (c *Controller) SetFilter(category model.Category, mode model.FilterMode) error {
	return c.Apply(Transition{Op: OpSetFilter, Category: category, Mode: mode})
}

func (c *Controller) SetSearch(text string) error {
	return c.Apply(Transition{Op: OpSetSearch, Text: text})
}

// Apply computes the next state and swaps it in only on success.
func (c *Controller) Apply(t Transition) error {
	next, err := Apply(c.state, t)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}
