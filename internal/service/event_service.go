package service

import (
	"context"
	"strings"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
)

// EventService handles calendar event business logic
type EventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo domain.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// GetEvents lists events, optionally windowed by start time, ascending
func (s *EventService) GetEvents(ctx context.Context, filters *domain.EventFilters) ([]*domain.Event, error) {
	return s.eventRepo.Find(ctx, filters)
}

// EventInput holds the input for creating or updating an event
type EventInput struct {
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Notes     *string
	Color     string
	IsAllDay  bool
}

func (s *EventService) validate(input EventInput) (EventInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return input, domain.ErrNameRequired
	}
	if len(input.Title) > domain.MaxNameLength {
		return input, domain.ErrNameTooLong
	}
	if input.EndTime.Before(input.StartTime) {
		return input, domain.ErrInvalidInput
	}
	return input, nil
}

// CreateEvent creates a new event with validation
func (s *EventService) CreateEvent(ctx context.Context, input EventInput) (*domain.Event, error) {
	input, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.Create(ctx, &domain.Event{
		Title:     input.Title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Notes:     input.Notes,
		Color:     input.Color,
		IsAllDay:  input.IsAllDay,
	})
}

// UpdateEvent replaces an event's fields
func (s *EventService) UpdateEvent(ctx context.Context, id string, input EventInput) (*domain.Event, error) {
	input, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.Update(ctx, id, &domain.Event{
		Title:     input.Title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Notes:     input.Notes,
		Color:     input.Color,
		IsAllDay:  input.IsAllDay,
	})
}

// DeleteEvent removes an event
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}
