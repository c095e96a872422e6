package domain

import (
	"context"
	"strings"
	"time"
)

type DogStatus string

const (
	DogStatusAvailable DogStatus = "available"
	DogStatusPending   DogStatus = "pending"
	DogStatusAdopted   DogStatus = "adopted"
)

type DogSex string

const (
	DogSexMale   DogSex = "male"
	DogSexFemale DogSex = "female"
)

type Dog struct {
	ID          int
	Name        string
	Breed       string
	Sex         DogSex
	AgeMonths   int
	Size        string
	Description string
	PhotoUrl    string
	Status      DogStatus
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type DogFilters struct {
	Page     int
	PageSize int
	Term     string
	Status   string
	Sort     string
}

func (f DogFilters) SortColumn() string {
	return strings.TrimPrefix(f.Sort, "-")
}

func (f DogFilters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

func (f DogFilters) Limit() int {
	return f.PageSize
}

func (f DogFilters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type DogRepository interface {
	GetAll(ctx context.Context, filters DogFilters) ([]*Dog, *Metadata, error)
	GetById(ctx context.Context, id int) (*Dog, error)
}
