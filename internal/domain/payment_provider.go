package domain

import (
	"context"

	"github.com/stripe/stripe-go/v82"
)

type PaymentProvider interface {
	FindOrCreateCustomer(ctx context.Context, email, name string) (*stripe.Customer, error)
	CreateCheckoutSession(ctx context.Context, donation *Donation) (*stripe.CheckoutSession, error)
}
