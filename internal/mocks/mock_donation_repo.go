package mocks

import (
	"context"

	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockDonationRepo struct {
	mock.Mock
	domain.DonationRepository
}

func (m *MockDonationRepo) Create(ctx context.Context, donation *domain.Donation) error {
	args := m.Called(ctx, donation)
	return args.Error(0)
}

func (m *MockDonationRepo) GetById(ctx context.Context, id int) (*domain.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepo) AttachCheckoutSession(ctx context.Context, id int, checkoutSessionID, stripeCustomerID string) error {
	args := m.Called(ctx, id, checkoutSessionID, stripeCustomerID)
	return args.Error(0)
}

func (m *MockDonationRepo) UpdateStatus(ctx context.Context, id int, status domain.DonationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDonationRepo) Complete(ctx context.Context, id int, subscriptionID *string) error {
	args := m.Called(ctx, id, subscriptionID)
	return args.Error(0)
}

func (m *MockDonationRepo) GetAllBySubscriptionId(ctx context.Context, subscriptionID string) ([]*domain.Donation, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Donation), args.Error(1)
}

func (m *MockDonationRepo) SumCompletedByDonorId(ctx context.Context, donorID int) (decimal.Decimal, int, error) {
	args := m.Called(ctx, donorID)
	return args.Get(0).(decimal.Decimal), args.Int(1), args.Error(2)
}
