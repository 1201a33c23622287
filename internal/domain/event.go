package domain

import (
	"context"
	"time"
)

// Event is a calendar entry. It has no relation to the ledger.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Notes     *string   `json:"notes,omitempty"`
	Color     string    `json:"color"`
	IsAllDay  bool      `json:"isAllDay"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EventFilters narrows event listings to a start-time range.
type EventFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type EventRepository interface {
	Create(ctx context.Context, event *Event) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Find(ctx context.Context, filters *EventFilters) ([]*Event, error)
	Update(ctx context.Context, id string, event *Event) (*Event, error)
	Delete(ctx context.Context, id string) error
}
