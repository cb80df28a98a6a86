package mocks

import (
	"context"

	"portfolio/internal/model"
	"portfolio/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) List(ctx context.Context, category model.Category, mode model.FilterMode, search string) (*service.ListResult, error) {
	args := m.Called(ctx, category, mode, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, category model.Category, id string) (model.Listable, error) {
	args := m.Called(ctx, category, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Listable), args.Error(1)
}

func (m *MockContentService) Exists(ctx context.Context, category model.Category, id string) (bool, error) {
	args := m.Called(ctx, category, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentService) Profile(ctx context.Context) (*model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}
