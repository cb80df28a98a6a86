package mocks

import (
	"context"

	"portfolio/internal/service"
	"portfolio/internal/viewstate"

	"github.com/stretchr/testify/mock"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context) (*service.SessionState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionState), args.Error(1)
}

func (m *MockSessionService) State(ctx context.Context, id string) (*service.SessionState, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionState), args.Error(1)
}

func (m *MockSessionService) Apply(ctx context.Context, id string, t viewstate.Transition) (*service.SessionState, error) {
	args := m.Called(ctx, id, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionState), args.Error(1)
}

func (m *MockSessionService) Render(ctx context.Context, id string) (*service.View, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.View), args.Error(1)
}
