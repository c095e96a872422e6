package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/customer"
)

type StripePaymentProvider struct {
	successUrl string
	cancelUrl  string
}

func NewStripePaymentProvider(successUrl, cancelUrl string) *StripePaymentProvider {
	return &StripePaymentProvider{
		successUrl: successUrl,
		cancelUrl:  cancelUrl,
	}
}

// FindOrCreateCustomer reuses the Stripe customer registered under the given
// email, patching the display name if it changed, and creates one otherwise.
func (s *StripePaymentProvider) FindOrCreateCustomer(ctx context.Context, email, name string) (*stripe.Customer, error) {
	listParams := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	listParams.Context = ctx
	listParams.Limit = stripe.Int64(1)

	iter := customer.List(listParams)
	for iter.Next() {
		existing := iter.Customer()

		if existing.Name != name {
			updateParams := &stripe.CustomerParams{
				Name: stripe.String(name),
			}
			updateParams.Context = ctx

			return customer.Update(existing.ID, updateParams)
		}

		return existing, nil
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	createParams := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	createParams.Context = ctx

	return customer.New(createParams)
}

func (s *StripePaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	donation *domain.Donation) (*stripe.CheckoutSession, error) {

	params := s.buildSessionParams(donation)
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	return session.New(params)
}

// buildSessionParams selects single-charge vs. recurring-monthly line items
// by donation type and attaches the local donation id as metadata on the
// session and on the payment-intent or subscription, so webhook events can be
// matched back directly.
func (s *StripePaymentProvider) buildSessionParams(donation *domain.Donation) *stripe.CheckoutSessionParams {
	metadata := map[string]string{
		"donation_id":   strconv.Itoa(donation.ID),
		"donation_type": string(donation.Type),
		"donor_name":    donation.DonorName,
		"donor_email":   donation.DonorEmail,
	}

	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
		UnitAmount: stripe.Int64(donation.AmountCents()),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String("PawHaven Rescue Donation"),
			Description: stripe.String(fmt.Sprintf(
				"%s donation to PawHaven Dog Rescue",
				donationTypeLabel(donation.Type),
			)),
		},
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(donation.StripeCustomerID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: priceData,
				Quantity:  stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.successUrl),
		CancelURL:  stripe.String(s.cancelUrl),
		Metadata:   metadata,
	}

	if donation.Type == domain.DonationTypeMonthly {
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		}
		params.Mode = stripe.String(string(stripe.CheckoutSessionModeSubscription))
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		}
	} else {
		params.Mode = stripe.String(string(stripe.CheckoutSessionModePayment))
		params.SubmitType = stripe.String(string(stripe.CheckoutSessionSubmitTypeDonate))
		params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: metadata,
		}
	}

	return params
}

func donationTypeLabel(t domain.DonationType) string {
	if t == domain.DonationTypeMonthly {
		return "Monthly"
	}

	return "One-time"
}
