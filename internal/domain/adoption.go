package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

type AdoptionApplication struct {
	ID              int
	DogID           int
	ApplicantName   string
	ApplicantEmail  string
	ApplicantPhone  *string
	HomeDescription string
	HasYard         bool
	OtherPets       *string
	Status          ApplicationStatus
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

type AdoptionApplicationRepository interface {
	Create(ctx context.Context, application *AdoptionApplication) error
	GetById(ctx context.Context, id int) (*AdoptionApplication, error)
}
