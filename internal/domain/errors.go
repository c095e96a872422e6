package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrDonorAlreadyExists = errors.New("donor already exists")
	ErrInvalidTransition  = errors.New("invalid donation status transition")
	ErrDogNotAvailable    = errors.New("dog is not available for adoption")
)
