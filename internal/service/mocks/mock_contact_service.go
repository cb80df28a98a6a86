package mocks

import (
	"context"

	"portfolio/internal/contact"
	"portfolio/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Compose(ctx context.Context, form contact.Form) (*service.Handoff, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Handoff), args.Error(1)
}
