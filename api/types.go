// Package api defines the request and response bodies of the public HTTP API.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type CreateDonationRequest struct {
	DonorName    string  `json:"donorName" validate:"required,min=2,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	DonationType string  `json:"donationType" validate:"required,donation_type"`
	AcceptTerms  bool    `json:"acceptTerms" validate:"eq=true"`
}

type CreateDonationResponse struct {
	Success     bool   `json:"success"`
	DonationId  int    `json:"donationId"`
	CheckoutUrl string `json:"checkoutUrl"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type DogSummary struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	Breed     string `json:"breed"`
	Sex       string `json:"sex"`
	AgeMonths int    `json:"ageMonths"`
	Size      string `json:"size"`
	PhotoUrl  string `json:"photoUrl"`
	Status    string `json:"status"`
}

type DogListResponse struct {
	Dogs     []DogSummary `json:"dogs"`
	Metadata *Metadata    `json:"metadata,omitempty"`
}

type DogResponse struct {
	Id          int       `json:"id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Sex         string    `json:"sex"`
	AgeMonths   int       `json:"ageMonths"`
	Size        string    `json:"size"`
	Description string    `json:"description"`
	PhotoUrl    string    `json:"photoUrl"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateAdoptionApplicationRequest struct {
	DogId           int     `json:"dogId" validate:"required,gt=0"`
	ApplicantName   string  `json:"applicantName" validate:"required,min=2,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	HomeDescription string  `json:"homeDescription" validate:"required,min=10,max=2000"`
	HasYard         bool    `json:"hasYard"`
	OtherPets       *string `json:"otherPets,omitempty" validate:"omitempty,max=500"`
}

type AdoptionApplicationResponse struct {
	Id        int       `json:"id"`
	DogId     int       `json:"dogId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type EventSummary struct {
	Id          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt"`
	TicketUrl   *string   `json:"ticketUrl,omitempty"`
}

type EventListResponse struct {
	Events   []EventSummary `json:"events"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
