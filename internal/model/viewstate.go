package model

// ViewState describes what a visitor currently sees. Selections holds the id
// of the detail item per category; a missing key means no selection.
type ViewState struct {
	Page       Page                    `json:"page"`
	Filters    map[Category]FilterMode `json:"filters"`
	Selections map[Category]string     `json:"selections"`
	Search     string                  `json:"search"`
}

// Clone returns a deep copy.
func (s ViewState) Clone() ViewState {
	out := ViewState{
		Page:       s.Page,
		Filters:    make(map[Category]FilterMode, len(s.Filters)),
		Selections: make(map[Category]string, len(s.Selections)),
		Search:     s.Search,
	}
	for k, v := range s.Filters {
		out.Filters[k] = v
	}
	for k, v := range s.Selections {
		out.Selections[k] = v
	}
	return out
}

// Filter returns the filter mode for c, featured when unset.
func (s ViewState) Filter(c Category) FilterMode {
	if m, ok := s.Filters[c]; ok {
		return m
	}
	return FilterFeatured
}

// Selection returns the selected item id for c.
func (s ViewState) Selection(c Category) (string, bool) {
	id, ok := s.Selections[c]
	return id, ok
}
