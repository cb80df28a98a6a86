package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/logging"
	"portfolio/internal/model"
	"portfolio/internal/viewstate"
)

var (
	ErrNotFound     = errors.New("session not found")
	ErrLimitReached = errors.New("session limit reached")
)

// Session is one visitor's view-state controller. Calls on a Session are
// serialized.
type Session struct {
	ID string

	mu       sync.Mutex
	ctrl     *viewstate.Controller
	lastSeen time.Time
}

// State returns a copy of the current view state.
func (s *Session) State() model.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.State()
}

// Do runs fn with exclusive access to the controller and returns the state
// after fn, whether or not it failed.
func (s *Session) Do(fn func(c *viewstate.Controller) error) (model.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := fn(s.ctrl)
	return s.ctrl.State(), err
}

// Registry holds live sessions in memory and evicts those idle longer than ttl.
type Registry struct {
	mu    sync.Mutex
	items map[string]*Session
	ttl   time.Duration
	max   int
	now   func() time.Time
}

// NewRegistry creates a registry. A non-positive max means unbounded.
func NewRegistry(ttl time.Duration, max int) *Registry {
	return &Registry{
		items: make(map[string]*Session),
		ttl:   ttl,
		max:   max,
		now:   time.Now,
	}
}

// Create starts a session in the initial view state.
func (r *Registry) Create() (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.max > 0 && len(r.items) >= r.max {
		r.sweepLocked()
		if len(r.items) >= r.max {
			return nil, ErrLimitReached
		}
	}

	s := &Session{
		ID:       uuid.NewString(),
		ctrl:     viewstate.NewController(),
		lastSeen: r.now(),
	}
	r.items[s.ID] = s
	return s, nil
}

// Get returns a live session and marks it as used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	now := r.now()
	if r.expired(s, now) {
		delete(r.items, id)
		return nil, ErrNotFound
	}
	s.lastSeen = now
	return s, nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.items, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Sweep drops expired sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked()
}

func (r *Registry) sweepLocked() int {
	now := r.now()
	n := 0
	for id, s := range r.items {
		if r.expired(s, now) {
			delete(r.items, id)
			n++
		}
	}
	return n
}

func (r *Registry) expired(s *Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.lastSeen) > r.ttl
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.Sweep(); n > 0 {
				logging.Info("session", "sessions_evicted", map[string]any{
					"evicted": n,
					"live":    r.Len(),
				})
			}
		}
	}
}
