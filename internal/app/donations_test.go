package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pawhaven/rescue-api/api"
	"github.com/pawhaven/rescue-api/internal/domain"
	"github.com/pawhaven/rescue-api/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82"
)

type DonationsTestSuite struct {
	suite.Suite
	app             *application
	donorRepo       *mocks.MockDonorRepo
	donationRepo    *mocks.MockDonationRepo
	paymentProvider *mocks.MockPaymentProvider
}

func (s *DonationsTestSuite) SetupTest() {
	s.donorRepo = new(mocks.MockDonorRepo)
	s.donationRepo = new(mocks.MockDonationRepo)
	s.paymentProvider = new(mocks.MockPaymentProvider)

	s.app = newTestApplication(func(a *application) {
		a.donorRepo = s.donorRepo
		a.donationRepo = s.donationRepo
		a.paymentProvider = s.paymentProvider
	})
}

func TestDonationsSuite(t *testing.T) {
	suite.Run(t, new(DonationsTestSuite))
}

func validDonationRequest() api.CreateDonationRequest {
	return api.CreateDonationRequest{
		DonorName:    "Jamie Rivera",
		Email:        "jamie@example.com",
		Amount:       25,
		DonationType: "onetime",
		AcceptTerms:  true,
	}
}

func (s *DonationsTestSuite) TestCreateDonationHandler() {
	tests := []struct {
		name           string
		body           any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
		wantDonationId int
		wantUrl        string
	}{
		{
			name: "should fail when donor name is missing",
			body: func() api.CreateDonationRequest {
				req := validDonationRequest()
				req.DonorName = ""
				return req
			}(),
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "is required",
		},
		{
			name: "should fail when email is invalid",
			body: func() api.CreateDonationRequest {
				req := validDonationRequest()
				req.Email = "not-an-email"
				return req
			}(),
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "must be a valid email address",
		},
		{
			name: "should fail when amount is zero",
			body: func() api.CreateDonationRequest {
				req := validDonationRequest()
				req.Amount = 0
				return req
			}(),
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "is required",
		},
		{
			name: "should fail when amount is negative",
			body: func() api.CreateDonationRequest {
				req := validDonationRequest()
				req.Amount = -5
				return req
			}(),
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "must be greater than 0",
		},
		{
			name: "should fail when amount is not a number",
			body: map[string]any{
				"donorName":    "Jamie Rivera",
				"email":        "jamie@example.com",
				"amount":       "twenty",
				"donationType": "onetime",
				"acceptTerms":  true,
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `body contains incorrect JSON type for field "amount"`,
		},
		{
			name: "should fail when terms are not accepted",
			body: func() api.CreateDonationRequest {
				req := validDonationRequest()
				req.AcceptTerms = false
				return req
			}(),
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "must be accepted",
		},
		{
			name: "should fail when donation type is unknown",
			body: func() api.CreateDonationRequest {
				req := validDonationRequest()
				req.DonationType = "weekly"
				return req
			}(),
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "must be either 'onetime' or 'monthly'",
		},
		{
			name: "should fail when payment provider cannot resolve customer",
			body: validDonationRequest(),
			setupMocks: func() {
				s.paymentProvider.On("FindOrCreateCustomer", mock.Anything, "jamie@example.com", "Jamie Rivera").
					Return(nil, fmt.Errorf("stripe is down")).Once()
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should fail when donation row cannot be created",
			body: validDonationRequest(),
			setupMocks: func() {
				s.paymentProvider.On("FindOrCreateCustomer", mock.Anything, mock.Anything, mock.Anything).
					Return(&stripe.Customer{ID: "cus_123"}, nil).Once()
				s.donorRepo.On("GetByEmail", mock.Anything, "jamie@example.com").
					Return(&domain.Donor{ID: 3, Name: "Jamie Rivera", Email: "jamie@example.com"}, nil).Once()
				s.donationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Donation")).
					Return(fmt.Errorf("insert failed")).Once()
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should create donation and checkout session for a new donor",
			body: validDonationRequest(),
			setupMocks: func() {
				s.paymentProvider.On("FindOrCreateCustomer", mock.Anything, "jamie@example.com", "Jamie Rivera").
					Return(&stripe.Customer{ID: "cus_123"}, nil).Once()

				s.donorRepo.On("GetByEmail", mock.Anything, "jamie@example.com").
					Return(nil, domain.ErrRecordNotFound).Once()
				s.donorRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Donor")).
					Run(func(args mock.Arguments) {
						donor := args.Get(1).(*domain.Donor)
						donor.ID = 3
					}).
					Return(nil).Once()

				s.donationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Donation")).
					Run(func(args mock.Arguments) {
						donation := args.Get(1).(*domain.Donation)
						s.Equal(domain.DonationStatusPending, donation.Status)
						s.Equal(3, donation.DonorID)
						s.True(donation.Amount.Equal(decimal.NewFromInt(25)))
						donation.ID = 7
					}).
					Return(nil).Once()

				s.paymentProvider.On("CreateCheckoutSession", mock.Anything, mock.AnythingOfType("*domain.Donation")).
					Return(&stripe.CheckoutSession{ID: "cs_123", URL: "https://checkout.stripe.com/pay/cs_123"}, nil).Once()

				s.donationRepo.On("AttachCheckoutSession", mock.Anything, 7, "cs_123", "cus_123").
					Return(nil).Once()
			},
			wantStatus:     http.StatusOK,
			wantDonationId: 7,
			wantUrl:        "https://checkout.stripe.com/pay/cs_123",
		},
		{
			name: "should reuse existing donor and patch a changed name",
			body: func() api.CreateDonationRequest {
				req := validDonationRequest()
				req.DonorName = "Jamie R. Rivera"
				return req
			}(),
			setupMocks: func() {
				s.paymentProvider.On("FindOrCreateCustomer", mock.Anything, "jamie@example.com", "Jamie R. Rivera").
					Return(&stripe.Customer{ID: "cus_123"}, nil).Once()

				s.donorRepo.On("GetByEmail", mock.Anything, "jamie@example.com").
					Return(&domain.Donor{ID: 3, Name: "Jamie Rivera", Email: "jamie@example.com"}, nil).Once()
				s.donorRepo.On("UpdateName", mock.Anything, 3, "Jamie R. Rivera").
					Return(nil).Once()

				s.donationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Donation")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.Donation).ID = 8
					}).
					Return(nil).Once()
				s.paymentProvider.On("CreateCheckoutSession", mock.Anything, mock.AnythingOfType("*domain.Donation")).
					Return(&stripe.CheckoutSession{ID: "cs_124", URL: "https://checkout.stripe.com/pay/cs_124"}, nil).Once()
				s.donationRepo.On("AttachCheckoutSession", mock.Anything, 8, "cs_124", "cus_123").
					Return(nil).Once()
			},
			wantStatus:     http.StatusOK,
			wantDonationId: 8,
			wantUrl:        "https://checkout.stripe.com/pay/cs_124",
		},
		{
			name: "should floor small amounts to the fifty cent minimum charge",
			body: func() api.CreateDonationRequest {
				req := validDonationRequest()
				req.Amount = 0.3
				return req
			}(),
			setupMocks: func() {
				s.paymentProvider.On("FindOrCreateCustomer", mock.Anything, mock.Anything, mock.Anything).
					Return(&stripe.Customer{ID: "cus_123"}, nil).Once()
				s.donorRepo.On("GetByEmail", mock.Anything, "jamie@example.com").
					Return(&domain.Donor{ID: 3, Name: "Jamie Rivera", Email: "jamie@example.com"}, nil).Once()
				s.donationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Donation")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.Donation).ID = 9
					}).
					Return(nil).Once()

				s.paymentProvider.On("CreateCheckoutSession", mock.Anything, mock.AnythingOfType("*domain.Donation")).
					Run(func(args mock.Arguments) {
						donation := args.Get(1).(*domain.Donation)
						s.Equal(domain.MinDonationCents, donation.AmountCents())
						s.True(donation.Amount.Equal(decimal.NewFromFloat(0.3)))
					}).
					Return(&stripe.CheckoutSession{ID: "cs_125", URL: "https://checkout.stripe.com/pay/cs_125"}, nil).Once()
				s.donationRepo.On("AttachCheckoutSession", mock.Anything, 9, "cs_125", "cus_123").
					Return(nil).Once()
			},
			wantStatus:     http.StatusOK,
			wantDonationId: 9,
			wantUrl:        "https://checkout.stripe.com/pay/cs_125",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.donorRepo.AssertExpectations(s.T())
			defer s.donationRepo.AssertExpectations(s.T())
			defer s.paymentProvider.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/api/donations", tt.body)

			http.HandlerFunc(s.app.CreateDonationHandler).ServeHTTP(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var response api.CreateDonationResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				s.True(response.Success)
				s.Equal(tt.wantDonationId, response.DonationId)
				s.Equal(tt.wantUrl, response.CheckoutUrl)
			} else {
				// no donation should ever be recorded on a failed request
				if tt.wantStatus == http.StatusBadRequest {
					s.paymentProvider.AssertNotCalled(s.T(), "FindOrCreateCustomer", mock.Anything, mock.Anything, mock.Anything)
					s.donationRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
				}

				checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
			}
		})
	}
}

func (s *DonationsTestSuite) TestFindOrCreateDonorRecoversFromConcurrentCreate() {
	s.donorRepo.On("GetByEmail", mock.Anything, "jamie@example.com").
		Return(nil, domain.ErrRecordNotFound).Once()
	s.donorRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Donor")).
		Return(domain.ErrDonorAlreadyExists).Once()
	s.donorRepo.On("GetByEmail", mock.Anything, "jamie@example.com").
		Return(&domain.Donor{ID: 3, Name: "Jamie Rivera", Email: "jamie@example.com"}, nil).Once()

	donor, err := s.app.findOrCreateDonor(s.T().Context(), "Jamie Rivera", "jamie@example.com", "cus_123")

	s.NoError(err)
	s.Equal(3, donor.ID)
	s.donorRepo.AssertExpectations(s.T())
}
