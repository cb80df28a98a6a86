// Package tui is a terminal browser over the portfolio content. It drives the
// same view-state controller and services as the HTTP API.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/contact"
	"portfolio/internal/model"
	"portfolio/internal/service"
	"portfolio/internal/viewstate"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputContact
)

var contactFields = []string{contact.FieldName, contact.FieldEmail, contact.FieldSubject, contact.FieldMessage}

// Model is the bubbletea model of the browser.
type Model struct {
	ctx     context.Context
	content service.ContentService
	contact service.ContactService
	ctrl    *viewstate.Controller
	profile *model.Profile

	items  []model.Listable
	cursor int

	mode    inputMode
	input   textinput.Model
	form    contact.Form
	field   int
	handoff string

	status string
	err    error
	copy   func(string) error
	styles styles
}

// New loads the profile and returns a model on the home page.
func New(ctx context.Context, content service.ContentService, contactSvc service.ContactService) (*Model, error) {
	profile, err := content.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	in := textinput.New()
	in.CharLimit = 500
	return &Model{
		ctx:     ctx,
		content: content,
		contact: contactSvc,
		ctrl:    viewstate.NewController(),
		profile: profile,
		input:   in,
		copy:    clipboard.WriteAll,
		styles:  newStyles(),
	}, nil
}

// State returns the current view state.
func (m *Model) State() model.ViewState { return m.ctrl.State() }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case inputSearch:
		return m, m.updateSearch(keyMsg)
	case inputContact:
		return m, m.updateContact(keyMsg)
	}
	return m, m.handleKey(keyMsg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	st := m.ctrl.State()
	cat, onCategory := st.Page.Category()
	_, selected := st.Selection(cat)

	switch key := msg.String(); key {
	case "q":
		return tea.Quit
	case "1", "2", "3", "4", "5", "6", "7":
		i, _ := strconv.Atoi(key)
		m.apply(m.ctrl.Navigate(model.Pages()[i-1].Page))
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		switch {
		case onCategory && !selected && len(m.items) > 0:
			m.apply(m.ctrl.SelectItem(cat, m.items[m.cursor].ItemID()))
		case st.Page == model.PageContact:
			m.startContact()
		}
	case "esc", "backspace":
		if onCategory && selected {
			m.apply(m.ctrl.ClearSelection(cat))
		}
	case "f", "r":
		if onCategory {
			mode := model.FilterFeatured
			if key == "r" {
				mode = model.FilterRecent
			}
			m.apply(m.ctrl.SetFilter(cat, mode))
			m.cursor = 0
		}
	case "/":
		if st.Page == model.PageBlog && !selected {
			m.mode = inputSearch
			m.input.Placeholder = "Search articles..."
			m.input.SetValue(st.Search)
			m.input.CursorEnd()
			return m.input.Focus()
		}
	case "y":
		if m.handoff != "" {
			if err := m.copy(m.handoff); err != nil {
				m.setErr(fmt.Errorf("copy to clipboard: %w", err))
			} else {
				m.setStatus("Mail link copied to clipboard")
			}
		}
	}
	m.refresh()
	return nil
}

// Search is applied on every keystroke so the list narrows while typing.
func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		m.mode = inputNone
		m.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.apply(m.ctrl.SetSearch(m.input.Value()))
	m.cursor = 0
	m.refresh()
	return cmd
}

func (m *Model) startContact() {
	m.mode = inputContact
	m.form = contact.Form{}
	m.field = 0
	m.handoff = ""
	m.loadField()
}

func (m *Model) loadField() {
	name := contactFields[m.field]
	m.input.Placeholder = name
	m.input.SetValue(fieldValue(m.form, name))
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) updateContact(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.mode = inputNone
		m.input.Blur()
		m.setStatus("Contact form discarded")
		return nil
	case "shift+tab":
		m.storeField()
		if m.field > 0 {
			m.field--
		}
		m.loadField()
		return nil
	case "tab", "enter":
		m.storeField()
		if m.field < len(contactFields)-1 {
			m.field++
			m.loadField()
			return nil
		}
		m.submitContact()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) storeField() {
	// Field names come from contactFields so the error is unreachable.
	m.form, _ = contact.UpdateField(m.form, contactFields[m.field], m.input.Value())
}

func (m *Model) submitContact() {
	h, err := m.contact.Compose(m.ctx, m.form)
	if err != nil {
		if errors.Is(err, contact.ErrMissingField) {
			for i, name := range contactFields {
				if strings.TrimSpace(fieldValue(m.form, name)) == "" {
					m.field = i
					break
				}
			}
			m.loadField()
		} else {
			m.mode = inputNone
			m.input.Blur()
		}
		m.setErr(err)
		return
	}
	m.mode = inputNone
	m.input.Blur()
	m.handoff = h.URI
	m.setStatus("Mail link ready. Press y to copy it.")
}

func (m *Model) apply(err error) {
	if err != nil {
		m.setErr(err)
		return
	}
	m.err = nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m *Model) setErr(err error) {
	m.status = ""
	m.err = err
}

// refresh reloads the visible items of the current category page.
func (m *Model) refresh() {
	st := m.ctrl.State()
	cat, ok := st.Page.Category()
	if !ok {
		m.items = nil
		m.cursor = 0
		return
	}
	search := ""
	if cat == model.CategoryBlog {
		search = st.Search
	}
	res, err := m.content.List(m.ctx, cat, st.Filter(cat), search)
	if err != nil {
		m.setErr(err)
		m.items = nil
		return
	}
	m.items = res.Items
	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
}

func fieldValue(f contact.Form, name string) string {
	switch name {
	case contact.FieldName:
		return f.Name
	case contact.FieldEmail:
		return f.Email
	case contact.FieldSubject:
		return f.Subject
	case contact.FieldMessage:
		return f.Message
	}
	return ""
}
