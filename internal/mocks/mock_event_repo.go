package mocks

import (
	"context"

	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockEventRepo struct {
	mock.Mock
	domain.EventRepository
}

func (m *MockEventRepo) GetUpcoming(ctx context.Context, pagination domain.Pagination) ([]*domain.FundraisingEvent, *domain.Metadata, error) {
	args := m.Called(ctx, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*domain.FundraisingEvent), args.Get(1).(*domain.Metadata), args.Error(2)
}
