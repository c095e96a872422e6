package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pawhaven/rescue-api/api"
	"github.com/pawhaven/rescue-api/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	DefaultSort     = "id"
	MaxPageSize     = 100
)

var dogSortColumns = map[string]bool{
	"id":          true,
	"name":        true,
	"age_months":  true,
	"-id":         true,
	"-name":       true,
	"-age_months": true,
}

var dogStatuses = map[string]bool{
	string(domain.DogStatusAvailable): true,
	string(domain.DogStatusPending):   true,
	string(domain.DogStatusAdopted):   true,
}

func (app *application) GetDogsHandler(w http.ResponseWriter, r *http.Request) {
	filters, err := toDogFilters(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	dogs, metadata, err := app.dogRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.DogListResponse{
		Dogs:     toDogSummaries(dogs),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetDogByIdHandler(w http.ResponseWriter, r *http.Request) {
	dogId, err := strconv.Atoi(chi.URLParam(r, "dogId"))
	if err != nil || dogId < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("invalid dog ID"))
		return
	}

	dog, err := app.dogRepo.GetById(r.Context(), dogId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.DogResponse{
		Id:          dog.ID,
		Name:        dog.Name,
		Breed:       dog.Breed,
		Sex:         string(dog.Sex),
		AgeMonths:   dog.AgeMonths,
		Size:        dog.Size,
		Description: dog.Description,
		PhotoUrl:    dog.PhotoUrl,
		Status:      string(dog.Status),
		CreatedAt:   dog.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toDogFilters(r *http.Request) (domain.DogFilters, error) {
	filters := domain.DogFilters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     DefaultSort,
	}

	query := r.URL.Query()

	if page := query.Get("page"); page != "" {
		pageNum, err := strconv.Atoi(page)
		if err != nil || pageNum < 1 {
			return filters, fmt.Errorf("page must be a positive integer")
		}
		filters.Page = pageNum
	}

	if pageSize := query.Get("pageSize"); pageSize != "" {
		pageSizeNum, err := strconv.Atoi(pageSize)
		if err != nil || pageSizeNum < 1 || pageSizeNum > MaxPageSize {
			return filters, fmt.Errorf("pageSize must be between 1 and %d", MaxPageSize)
		}
		filters.PageSize = pageSizeNum
	}

	if sort := query.Get("sort"); sort != "" {
		if !dogSortColumns[sort] {
			return filters, fmt.Errorf("unsupported sort value: %s", sort)
		}
		filters.Sort = sort
	}

	if status := query.Get("status"); status != "" {
		if !dogStatuses[status] {
			return filters, fmt.Errorf("status must be one of: available, pending, adopted")
		}
		filters.Status = status
	}

	filters.Term = query.Get("term")

	return filters, nil
}

func toDogSummaries(dogs []*domain.Dog) []api.DogSummary {
	summaries := make([]api.DogSummary, len(dogs))

	for i, dog := range dogs {
		summaries[i] = api.DogSummary{
			Id:        dog.ID,
			Name:      dog.Name,
			Breed:     dog.Breed,
			Sex:       string(dog.Sex),
			AgeMonths: dog.AgeMonths,
			Size:      dog.Size,
			PhotoUrl:  dog.PhotoUrl,
			Status:    string(dog.Status),
		}
	}

	return summaries
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
