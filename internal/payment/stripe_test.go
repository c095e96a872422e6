package payment

import (
	"testing"

	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func testDonation(donationType domain.DonationType) *domain.Donation {
	return &domain.Donation{
		ID:               42,
		DonorName:        "Jamie Ortega",
		DonorEmail:       "jamie@example.com",
		Amount:           decimal.NewFromFloat(25.50),
		Type:             donationType,
		Status:           domain.DonationStatusPending,
		StripeCustomerID: "cus_123",
	}
}

func TestBuildSessionParamsOneTime(t *testing.T) {
	provider := NewStripePaymentProvider(
		"https://pawhaven.org/thank-you",
		"https://pawhaven.org/donate",
	)

	params := provider.buildSessionParams(testDonation(domain.DonationTypeOneTime))

	assert.Equal(t, string(stripe.CheckoutSessionModePayment), *params.Mode)
	assert.Equal(t, string(stripe.CheckoutSessionSubmitTypeDonate), *params.SubmitType)
	assert.Equal(t, "cus_123", *params.Customer)
	assert.Equal(t, "https://pawhaven.org/thank-you", *params.SuccessURL)
	assert.Equal(t, "https://pawhaven.org/donate", *params.CancelURL)

	require.Len(t, params.LineItems, 1)
	lineItem := params.LineItems[0]
	assert.Equal(t, int64(1), *lineItem.Quantity)
	assert.Equal(t, int64(2550), *lineItem.PriceData.UnitAmount)
	assert.Equal(t, string(stripe.CurrencyUSD), *lineItem.PriceData.Currency)
	assert.Nil(t, lineItem.PriceData.Recurring)

	assert.Equal(t, "42", params.Metadata["donation_id"])
	assert.Equal(t, "onetime", params.Metadata["donation_type"])

	require.NotNil(t, params.PaymentIntentData)
	assert.Equal(t, "42", params.PaymentIntentData.Metadata["donation_id"])
	assert.Nil(t, params.SubscriptionData)
}

func TestBuildSessionParamsMonthly(t *testing.T) {
	provider := NewStripePaymentProvider(
		"https://pawhaven.org/thank-you",
		"https://pawhaven.org/donate",
	)

	params := provider.buildSessionParams(testDonation(domain.DonationTypeMonthly))

	assert.Equal(t, string(stripe.CheckoutSessionModeSubscription), *params.Mode)
	assert.Nil(t, params.SubmitType)

	require.Len(t, params.LineItems, 1)
	recurring := params.LineItems[0].PriceData.Recurring
	require.NotNil(t, recurring)
	assert.Equal(t, string(stripe.PriceRecurringIntervalMonth), *recurring.Interval)

	require.NotNil(t, params.SubscriptionData)
	assert.Equal(t, "42", params.SubscriptionData.Metadata["donation_id"])
	assert.Equal(t, "monthly", params.SubscriptionData.Metadata["donation_type"])
	assert.Nil(t, params.PaymentIntentData)
}

func TestBuildSessionParamsFloorsTinyAmounts(t *testing.T) {
	provider := NewStripePaymentProvider("https://pawhaven.org/s", "https://pawhaven.org/c")

	donation := testDonation(domain.DonationTypeOneTime)
	donation.Amount = decimal.RequireFromString("0.30")

	params := provider.buildSessionParams(donation)

	require.Len(t, params.LineItems, 1)
	assert.Equal(t, domain.MinDonationCents, *params.LineItems[0].PriceData.UnitAmount)
}
