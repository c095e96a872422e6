package domain

import (
	"context"
	"time"
)

type FundraisingEvent struct {
	ID          int
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	TicketUrl   *string
	CreatedAt   time.Time
}

type EventRepository interface {
	GetUpcoming(ctx context.Context, pagination Pagination) ([]*FundraisingEvent, *Metadata, error)
}
