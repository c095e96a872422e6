package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/pawhaven/rescue-api/api"
	"github.com/pawhaven/rescue-api/internal/domain"
)

func (app *application) CreateAdoptionApplicationHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateAdoptionApplicationRequest

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

	dog, err := app.dogRepo.GetById(r.Context(), input.DogId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, fmt.Errorf("dog with ID %d not found", input.DogId))
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	if dog.Status != domain.DogStatusAvailable {
		logger.Warn("adoption application rejected: dog is not available", "dog_id", dog.ID, "status", dog.Status)
		app.editConflictResponseWithErr(w, r, domain.ErrDogNotAvailable)
		return
	}

	application := &domain.AdoptionApplication{
		DogID:           input.DogId,
		ApplicantName:   input.ApplicantName,
		ApplicantEmail:  input.Email,
		ApplicantPhone:  input.Phone,
		HomeDescription: input.HomeDescription,
		HasYard:         input.HasYard,
		OtherPets:       input.OtherPets,
		Status:          domain.ApplicationStatusSubmitted,
	}

	err = app.adoptionRepo.Create(r.Context(), application)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("adoption application submitted", "application_id", application.ID, "dog_id", dog.ID)

	resp := api.AdoptionApplicationResponse{
		Id:        application.ID,
		DogId:     application.DogID,
		Status:    string(application.Status),
		CreatedAt: application.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
