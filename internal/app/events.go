package app

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pawhaven/rescue-api/api"
	"github.com/pawhaven/rescue-api/internal/domain"
)

func (app *application) GetEventsHandler(w http.ResponseWriter, r *http.Request) {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	query := r.URL.Query()

	if page := query.Get("page"); page != "" {
		pageNum, err := strconv.Atoi(page)
		if err != nil || pageNum < 1 {
			app.badRequestResponse(w, r, fmt.Errorf("page must be a positive integer"))
			return
		}
		pagination.Page = pageNum
	}

	if pageSize := query.Get("pageSize"); pageSize != "" {
		pageSizeNum, err := strconv.Atoi(pageSize)
		if err != nil || pageSizeNum < 1 || pageSizeNum > MaxPageSize {
			app.badRequestResponse(w, r, fmt.Errorf("pageSize must be between 1 and %d", MaxPageSize))
			return
		}
		pagination.PageSize = pageSizeNum
	}

	events, metadata, err := app.eventRepo.GetUpcoming(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.EventListResponse{
		Events:   toEventSummaries(events),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toEventSummaries(events []*domain.FundraisingEvent) []api.EventSummary {
	summaries := make([]api.EventSummary, len(events))

	for i, event := range events {
		summaries[i] = api.EventSummary{
			Id:          event.ID,
			Title:       event.Title,
			Description: event.Description,
			Location:    event.Location,
			StartsAt:    event.StartsAt,
			TicketUrl:   event.TicketUrl,
		}
	}

	return summaries
}
