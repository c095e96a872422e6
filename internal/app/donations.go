package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/pawhaven/rescue-api/api"
	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateDonationHandler validates a donation form submission, resolves the
// Stripe customer and the local donor record, creates a pending donation row
// and a Stripe checkout session, and returns the session's redirect URL.
//
// The donation row is created before the checkout session so its id can be
// attached as session metadata. Webhook events use that id to find the row
// directly instead of guessing by recency.
func (app *application) CreateDonationHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateDonationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	customer, err := app.paymentProvider.FindOrCreateCustomer(r.Context(), input.Email, input.DonorName)
	if err != nil {
		logger.Error("failed to resolve stripe customer", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	donor, err := app.findOrCreateDonor(r.Context(), input.DonorName, input.Email, customer.ID)
	if err != nil {
		logger.Error("failed to reconcile donor record", "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	donation := &domain.Donation{
		DonorID:          donor.ID,
		DonorName:        input.DonorName,
		DonorEmail:       input.Email,
		Amount:           decimal.NewFromFloat(input.Amount),
		Type:             domain.DonationType(input.DonationType),
		Status:           domain.DonationStatusPending,
		StripeCustomerID: customer.ID,
	}

	err = app.donationRepo.Create(r.Context(), donation)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(r.Context(), donation)
	if err != nil {
		logger.Error("failed to create checkout session", "donation_id", donation.ID, "error", err)
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.donationRepo.AttachCheckoutSession(r.Context(), donation.ID, checkoutSession.ID, customer.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("created donation checkout session",
		"donation_id", donation.ID,
		"type", donation.Type,
		"amount_cents", donation.AmountCents(),
	)

	resp := api.CreateDonationResponse{
		Success:     true,
		DonationId:  donation.ID,
		CheckoutUrl: checkoutSession.URL,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// findOrCreateDonor looks a donor up by email, patching the display name when
// it changed (last write wins). A unique-violation on create means we lost a
// concurrent insert for the same email, so re-fetch it.
func (app *application) findOrCreateDonor(ctx context.Context, name, email, stripeCustomerID string) (*domain.Donor, error) {
	donor, err := app.donorRepo.GetByEmail(ctx, email)
	if err == nil {
		if donor.Name != name {
			err = app.donorRepo.UpdateName(ctx, donor.ID, name)
			if err != nil {
				return nil, err
			}

			donor.Name = name
		}

		return donor, nil
	}

	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	donor = &domain.Donor{
		Name:             name,
		Email:            email,
		StripeCustomerID: stripeCustomerID,
	}

	err = app.donorRepo.Create(ctx, donor)
	if err != nil {
		if errors.Is(err, domain.ErrDonorAlreadyExists) {
			return app.donorRepo.GetByEmail(ctx, email)
		}

		return nil, err
	}

	return donor, nil
}
