package mocks

import (
	"context"

	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockDonorRepo struct {
	mock.Mock
	domain.DonorRepository
}

func (m *MockDonorRepo) Create(ctx context.Context, donor *domain.Donor) error {
	args := m.Called(ctx, donor)
	return args.Error(0)
}

func (m *MockDonorRepo) GetById(ctx context.Context, id int) (*domain.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *MockDonorRepo) GetByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func (m *MockDonorRepo) UpdateName(ctx context.Context, id int, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockDonorRepo) IncrementTotals(ctx context.Context, id int, amount decimal.Decimal) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}
