package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type DonationType string

const (
	DonationTypeOneTime DonationType = "onetime"
	DonationTypeMonthly DonationType = "monthly"
)

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"
	DonationStatusRefunded  DonationStatus = "refunded"
	DonationStatusCancelled DonationStatus = "cancelled"
)

// donationTransitions is the full set of legal status transitions. A donation
// is only ever moved between statuses by webhook events, never by the
// synchronous checkout path.
var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationStatusPending:   {DonationStatusCompleted, DonationStatusFailed},
	DonationStatusCompleted: {DonationStatusCancelled, DonationStatusRefunded},
	DonationStatusFailed:    {},
	DonationStatusRefunded:  {},
	DonationStatusCancelled: {},
}

func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	for _, allowed := range donationTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// MinDonationCents is the smallest charge Stripe accepts for USD.
const MinDonationCents int64 = 50

type Donation struct {
	ID                      int
	DonorID                 int
	DonorName               string
	DonorEmail              string
	Amount                  decimal.Decimal
	Type                    DonationType
	Status                  DonationStatus
	StripeCustomerID        string
	StripeCheckoutSessionID *string
	StripeSubscriptionID    *string
	CreatedAt               time.Time
	UpdatedAt               *time.Time
}

// TransitionTo moves the donation to the next status, rejecting anything not
// present in the transition table.
func (d *Donation) TransitionTo(next DonationStatus) error {
	if !d.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.Status, next)
	}

	d.Status = next

	return nil
}

// AmountCents returns the chargeable amount in integer cents, floored at the
// provider minimum. The stored Amount keeps the value the donor submitted.
func (d *Donation) AmountCents() int64 {
	cents := d.Amount.Mul(decimal.NewFromInt(100)).IntPart()
	if cents < MinDonationCents {
		return MinDonationCents
	}

	return cents
}

type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	GetById(ctx context.Context, id int) (*Donation, error)
	AttachCheckoutSession(ctx context.Context, id int, checkoutSessionID, stripeCustomerID string) error
	UpdateStatus(ctx context.Context, id int, status DonationStatus) error
	Complete(ctx context.Context, id int, subscriptionID *string) error
	GetAllBySubscriptionId(ctx context.Context, subscriptionID string) ([]*Donation, error)
	SumCompletedByDonorId(ctx context.Context, donorID int) (decimal.Decimal, int, error)
}
