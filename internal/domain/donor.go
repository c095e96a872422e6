package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Donor is keyed by email at the application level. TotalDonated and
// DonationCount are maintained solely by the webhook completion path, so they
// always equal the sum and count of completed donations.
type Donor struct {
	ID               int
	Name             string
	Email            string
	Phone            *string
	Notes            *string
	StripeCustomerID string
	TotalDonated     decimal.Decimal
	DonationCount    int
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

type DonorRepository interface {
	Create(ctx context.Context, donor *Donor) error
	GetById(ctx context.Context, id int) (*Donor, error)
	GetByEmail(ctx context.Context, email string) (*Donor, error)
	UpdateName(ctx context.Context, id int, name string) error
	IncrementTotals(ctx context.Context, id int, amount decimal.Decimal) error
}
