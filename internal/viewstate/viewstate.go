package viewstate

import (
	"errors"
	"fmt"

	"portfolio/internal/model"
)

var (
	ErrEmptyItemID = errors.New("item id is required")
	ErrUnknownOp   = errors.New("unknown transition")
)

// Initial returns the state a new visitor starts in: home page, every
// category on featured, nothing selected, empty search.
func Initial() model.ViewState {
	s := model.ViewState{
		Page:       model.PageHome,
		Filters:    make(map[model.Category]model.FilterMode, 4),
		Selections: make(map[model.Category]string, 4),
	}
	for _, c := range model.Categories() {
		s.Filters[c] = model.FilterFeatured
	}
	return s
}

// The transition functions below never modify their argument. On error the
// returned state is the unchanged input.

// Navigate switches to page and drops every detail selection.
func Navigate(s model.ViewState, page model.Page) (model.ViewState, error) {
	if !page.Valid() {
		return s, fmt.Errorf("%w: %q", model.ErrUnknownPage, page)
	}
	next := s.Clone()
	next.Page = page
	clear(next.Selections)
	return next, nil
}

// SelectItem shows id in detail for category and moves to the category's
// page. Other categories keep their selection.
func SelectItem(s model.ViewState, category model.Category, id string) (model.ViewState, error) {
	if !category.Valid() {
		return s, fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}
	if id == "" {
		return s, ErrEmptyItemID
	}
	next := s.Clone()
	next.Selections[category] = id
	if page := category.Page(); next.Page != page {
		next.Page = page
	}
	return next, nil
}

// ClearSelection returns category to its list view. The page is unchanged.
func ClearSelection(s model.ViewState, category model.Category) (model.ViewState, error) {
	if !category.Valid() {
		return s, fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}
	next := s.Clone()
	delete(next.Selections, category)
	return next, nil
}

// SetFilter changes the filter mode of one category.
func SetFilter(s model.ViewState, category model.Category, mode model.FilterMode) (model.ViewState, error) {
	if !category.Valid() {
		return s, fmt.Errorf("%w: %q", model.ErrUnknownCategory, category)
	}
	if !mode.Valid() {
		return s, fmt.Errorf("%w: %q", model.ErrUnknownFilterMode, mode)
	}
	next := s.Clone()
	next.Filters[category] = mode
	return next, nil
}

// SetSearch stores the blog search text verbatim.
func SetSearch(s model.ViewState, text string) (model.ViewState, error) {
	next := s.Clone()
	next.Search = text
	return next, nil
}
