package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/pawhaven/rescue-api/api"
	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Stripe retries failed webhook deliveries for up to three days, so ledger
// entries only need to outlive that window.
const webhookEventTTL = 96 * time.Hour

const maxWebhookBodyBytes = 65536

func webhookEventKey(eventID string) string {
	return fmt.Sprintf("stripe:event:%s", eventID)
}

// StripeWebhookHandler consumes asynchronous Stripe events and transitions
// donation records accordingly. Every event id is recorded in a Redis ledger
// before processing, so redelivered events are acknowledged without being
// applied twice. Reconciliation failures are logged and still acknowledged
// with a 200, which stops Stripe's automatic retries; the ledger entry is
// released so a manual resend from the Stripe dashboard gets a clean run.
func (app *application) StripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to read webhook body"))
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), app.config.stripe.webhookSecret)
	if err != nil {
		logger.Error("webhook signature verification failed", "error", err)
		app.badRequestResponse(w, r, fmt.Errorf("invalid webhook signature"))
		return
	}

	fresh, err := app.redis.SetNX(r.Context(), webhookEventKey(event.ID), 1, webhookEventTTL).Result()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !fresh {
		logger.Info("skipping already processed webhook event", "event_id", event.ID, "type", event.Type)
		app.writeJSON(w, http.StatusOK, api.WebhookResponse{Received: true}, nil)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		err = app.handleCheckoutSessionCompleted(r.Context(), logger, event)
	case "payment_intent.payment_failed":
		err = app.handlePaymentIntentFailed(r.Context(), logger, event)
	case "invoice.payment_failed":
		err = app.handleInvoicePaymentFailed(r.Context(), logger, event)
	case "customer.subscription.deleted":
		err = app.handleSubscriptionDeleted(r.Context(), logger, event)
	default:
		logger.Info("ignoring unhandled webhook event", "event_id", event.ID, "type", event.Type)
	}

	if err != nil {
		logger.Error("webhook processing failed", "event_id", event.ID, "type", event.Type, "error", err)

		// Release the ledger entry so a manual resend is not skipped as a replay.
		delErr := app.redis.Del(r.Context(), webhookEventKey(event.ID)).Err()
		if delErr != nil {
			logger.Error("failed to release webhook event ledger entry", "event_id", event.ID, "error", delErr)
		}
	}

	app.writeJSON(w, http.StatusOK, api.WebhookResponse{Received: true}, nil)
}

func (app *application) handleCheckoutSessionCompleted(ctx context.Context, logger *slog.Logger, event stripe.Event) error {
	var checkoutSession stripe.CheckoutSession

	err := json.Unmarshal(event.Data.Raw, &checkoutSession)
	if err != nil {
		return err
	}

	donation, err := app.donationFromMetadata(ctx, checkoutSession.Metadata)
	if err != nil {
		return err
	}

	err = donation.TransitionTo(domain.DonationStatusCompleted)
	if err != nil {
		logger.Warn("ignoring completion event for donation not in pending state",
			"donation_id", donation.ID,
			"status", donation.Status,
		)
		return nil
	}

	var subscriptionID *string
	if checkoutSession.Subscription != nil {
		subscriptionID = &checkoutSession.Subscription.ID
	}

	err = app.donationRepo.Complete(ctx, donation.ID, subscriptionID)
	if err != nil {
		return err
	}

	err = app.donorRepo.IncrementTotals(ctx, donation.DonorID, donation.Amount)
	if err != nil {
		return err
	}

	logger.Info("donation completed",
		"donation_id", donation.ID,
		"donor_id", donation.DonorID,
		"amount", donation.Amount,
	)

	go func() {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic occurred during sending donation receipt", "panic", err)
			}
		}()

		data := map[string]any{
			"donorName":    donation.DonorName,
			"amount":       donation.Amount.StringFixed(2),
			"donationType": string(donation.Type),
			"donationID":   donation.ID,
		}

		err := app.mailer.Send(donation.DonorEmail, "donation_receipt.tmpl", data)
		if err != nil {
			logger.Error("failed to send donation receipt", "donation_id", donation.ID, "error", err)
		}
	}()

	return nil
}

func (app *application) handlePaymentIntentFailed(ctx context.Context, logger *slog.Logger, event stripe.Event) error {
	var paymentIntent stripe.PaymentIntent

	err := json.Unmarshal(event.Data.Raw, &paymentIntent)
	if err != nil {
		return err
	}

	donation, err := app.donationFromMetadata(ctx, paymentIntent.Metadata)
	if err != nil {
		return err
	}

	return app.failDonation(ctx, logger, donation)
}

// handleInvoicePaymentFailed covers monthly donations. Subscription invoices
// never carry payment-intent metadata (checkout forbids payment_intent_data
// in subscription mode), so the donation is matched through the subscription
// metadata copied onto the invoice instead.
func (app *application) handleInvoicePaymentFailed(ctx context.Context, logger *slog.Logger, event stripe.Event) error {
	var invoice stripe.Invoice

	err := json.Unmarshal(event.Data.Raw, &invoice)
	if err != nil {
		return err
	}

	if invoice.Parent == nil || invoice.Parent.SubscriptionDetails == nil {
		logger.Info("ignoring failed invoice without a subscription", "invoice_id", invoice.ID)
		return nil
	}

	donation, err := app.donationFromMetadata(ctx, invoice.Parent.SubscriptionDetails.Metadata)
	if err != nil {
		return err
	}

	return app.failDonation(ctx, logger, donation)
}

func (app *application) failDonation(ctx context.Context, logger *slog.Logger, donation *domain.Donation) error {
	err := donation.TransitionTo(domain.DonationStatusFailed)
	if err != nil {
		logger.Warn("ignoring failure event for donation not in pending state",
			"donation_id", donation.ID,
			"status", donation.Status,
		)
		return nil
	}

	logger.Info("donation payment failed", "donation_id", donation.ID)

	return app.donationRepo.UpdateStatus(ctx, donation.ID, domain.DonationStatusFailed)
}

func (app *application) handleSubscriptionDeleted(ctx context.Context, logger *slog.Logger, event stripe.Event) error {
	var subscription stripe.Subscription

	err := json.Unmarshal(event.Data.Raw, &subscription)
	if err != nil {
		return err
	}

	donations, err := app.donationRepo.GetAllBySubscriptionId(ctx, subscription.ID)
	if err != nil {
		return err
	}

	for _, donation := range donations {
		err = donation.TransitionTo(domain.DonationStatusCancelled)
		if err != nil {
			logger.Warn("skipping cancellation for donation in terminal state",
				"donation_id", donation.ID,
				"status", donation.Status,
			)
			continue
		}

		err = app.donationRepo.UpdateStatus(ctx, donation.ID, domain.DonationStatusCancelled)
		if err != nil {
			return err
		}

		logger.Info("donation cancelled after subscription deletion", "donation_id", donation.ID)
	}

	return nil
}

// donationFromMetadata resolves the donation referenced by the donation_id
// metadata attached at checkout-session creation.
func (app *application) donationFromMetadata(ctx context.Context, metadata map[string]string) (*domain.Donation, error) {
	raw := metadata["donation_id"]
	if raw == "" {
		return nil, fmt.Errorf("event metadata is missing donation_id")
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid donation_id in event metadata: %q", raw)
	}

	return app.donationRepo.GetById(ctx, id)
}
