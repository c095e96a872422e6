package mocks

import (
	"context"

	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockAdoptionRepo struct {
	mock.Mock
	domain.AdoptionApplicationRepository
}

func (m *MockAdoptionRepo) Create(ctx context.Context, application *domain.AdoptionApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockAdoptionRepo) GetById(ctx context.Context, id int) (*domain.AdoptionApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdoptionApplication), args.Error(1)
}
