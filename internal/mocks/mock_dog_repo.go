package mocks

import (
	"context"

	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockDogRepo struct {
	mock.Mock
	domain.DogRepository
}

func (m *MockDogRepo) GetAll(ctx context.Context, filters domain.DogFilters) ([]*domain.Dog, *domain.Metadata, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]*domain.Dog), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockDogRepo) GetById(ctx context.Context, id int) (*domain.Dog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Dog), args.Error(1)
}
