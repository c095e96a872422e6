package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    DonationStatus
		to      DonationStatus
		allowed bool
	}{
		{"pending to completed", DonationStatusPending, DonationStatusCompleted, true},
		{"pending to failed", DonationStatusPending, DonationStatusFailed, true},
		{"pending to refunded", DonationStatusPending, DonationStatusRefunded, false},
		{"pending to cancelled", DonationStatusPending, DonationStatusCancelled, false},
		{"completed to cancelled", DonationStatusCompleted, DonationStatusCancelled, true},
		{"completed to refunded", DonationStatusCompleted, DonationStatusRefunded, true},
		{"completed to completed", DonationStatusCompleted, DonationStatusCompleted, false},
		{"completed to pending", DonationStatusCompleted, DonationStatusPending, false},
		{"failed is terminal", DonationStatusFailed, DonationStatusCompleted, false},
		{"refunded is terminal", DonationStatusRefunded, DonationStatusCompleted, false},
		{"cancelled is terminal", DonationStatusCancelled, DonationStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donation := &Donation{Status: tt.from}

			err := donation.TransitionTo(tt.to)

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, donation.Status)
			} else {
				require.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tt.from, donation.Status)
			}
		})
	}
}

func TestDonationAmountCents(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   int64
	}{
		{"whole dollars", "25", 2500},
		{"dollars and cents", "19.99", 1999},
		{"below provider minimum", "0.30", 50},
		{"at provider minimum", "0.50", 50},
		{"fractional cents truncated", "10.005", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			donation := &Donation{Amount: decimal.RequireFromString(tt.amount)}

			assert.Equal(t, tt.want, donation.AmountCents())
		})
	}
}
