package service

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"portfolio/internal/content"
	"portfolio/internal/model"
	tracing "portfolio/internal/otel"
	"portfolio/internal/session"
	"portfolio/internal/viewstate"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionLimit    = errors.New("too many active sessions")
)

// Number of items each category section shows on the home page.
var homePreview = map[model.Category]int{
	model.CategoryProjects:   2,
	model.CategoryAnimations: 3,
	model.CategoryEdits:      3,
	model.CategoryBlog:       3,
}

// SessionState is a session id with a snapshot of its view state.
type SessionState struct {
	ID    string          `json:"id"`
	State model.ViewState `json:"state"`
}

// Section is one category listing on a page.
type Section struct {
	Category model.Category   `json:"category"`
	Mode     model.FilterMode `json:"mode"`
	Search   string           `json:"search,omitempty"`
	Items    []model.Listable `json:"items"`
	Total    int              `json:"total"`
}

// View is everything a client needs to draw the current page.
type View struct {
	State    model.ViewState `json:"state"`
	Page     model.Page      `json:"page"`
	Profile  *model.Profile  `json:"profile,omitempty"`
	Sections []Section       `json:"sections,omitempty"`
	Detail   model.Listable  `json:"detail,omitempty"`
}

// SessionService owns one view-state controller per visitor.
type SessionService interface {
	Create(ctx context.Context) (*SessionState, error)
	State(ctx context.Context, id string) (*SessionState, error)

	// Apply runs a transition. Selecting an id that is not in the content
	// store fails with ErrNotFound and leaves the state unchanged.
	Apply(ctx context.Context, id string, t viewstate.Transition) (*SessionState, error)

	// Render computes the view for the session's current state.
	Render(ctx context.Context, id string) (*View, error)
}

type sessionService struct {
	sessions *session.Registry
	content  ContentService
}

func NewSessionService(sessions *session.Registry, content ContentService) SessionService {
	return &sessionService{sessions: sessions, content: content}
}

func (s *sessionService) Create(ctx context.Context) (*SessionState, error) {
	sess, err := s.sessions.Create()
	if err != nil {
		if errors.Is(err, session.ErrLimitReached) {
			return nil, ErrSessionLimit
		}
		return nil, err
	}
	return &SessionState{ID: sess.ID, State: sess.State()}, nil
}

func (s *sessionService) State(ctx context.Context, id string) (*SessionState, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return &SessionState{ID: sess.ID, State: sess.State()}, nil
}

func (s *sessionService) Apply(ctx context.Context, id string, t viewstate.Transition) (*SessionState, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if t.Op == viewstate.OpSelectItem && t.Category.Valid() && t.ItemID != "" {
		ok, err := s.content.Exists(ctx, t.Category, t.ItemID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, t.Category, t.ItemID)
		}
	}
	st, err := sess.Do(func(c *viewstate.Controller) error {
		return c.Apply(t)
	})
	if err != nil {
		return nil, err
	}
	return &SessionState{ID: sess.ID, State: st}, nil
}

func (s *sessionService) Render(ctx context.Context, id string) (*View, error) {
	ctx, span := tracing.Tracer().Start(ctx, "session.Render")
	defer span.End()

	v, err := s.render(ctx, span, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return v, nil
}

func (s *sessionService) render(ctx context.Context, span trace.Span, id string) (*View, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	st := sess.State()
	v := &View{State: st, Page: st.Page}
	span.SetAttributes(attribute.String("page", string(st.Page)))

	switch st.Page {
	case model.PageHome:
		if v.Profile, err = s.content.Profile(ctx); err != nil {
			return nil, err
		}
		for _, c := range model.Categories() {
			sec, err := s.section(ctx, st, c)
			if err != nil {
				return nil, err
			}
			sec.Items = content.Preview(sec.Items, homePreview[c])
			v.Sections = append(v.Sections, *sec)
		}
	case model.PageAbout, model.PageContact:
		if v.Profile, err = s.content.Profile(ctx); err != nil {
			return nil, err
		}
	default:
		c, ok := st.Page.Category()
		if !ok {
			return v, nil
		}
		if itemID, selected := st.Selection(c); selected {
			v.Detail, err = s.content.Get(ctx, c, itemID)
			if err == nil {
				return v, nil
			}
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}
		}
		sec, err := s.section(ctx, st, c)
		if err != nil {
			return nil, err
		}
		v.Sections = []Section{*sec}
	}
	return v, nil
}

// section lists c under the session's filter. The search text only narrows
// the blog.
func (s *sessionService) section(ctx context.Context, st model.ViewState, c model.Category) (*Section, error) {
	search := ""
	if c == model.CategoryBlog {
		search = st.Search
	}
	res, err := s.content.List(ctx, c, st.Filter(c), search)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c, err)
	}
	return &Section{
		Category: c,
		Mode:     res.Mode,
		Search:   res.Search,
		Items:    res.Items,
		Total:    res.Total,
	}, nil
}

func (s *sessionService) get(id string) (*session.Session, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}
