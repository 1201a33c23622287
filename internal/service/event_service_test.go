package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/testutil"
)

func TestCreateEvent_Validation(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	eventService := NewEventService(eventRepo)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := eventService.CreateEvent(ctx, EventInput{Title: "  ", StartTime: now, EndTime: now})
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}

	_, err = eventService.CreateEvent(ctx, EventInput{
		Title:     "Dentist",
		StartTime: now,
		EndTime:   now.Add(-time.Hour),
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for end before start, got %v", err)
	}
}

func TestCreateEvent_Success(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	eventService := NewEventService(eventRepo)
	now := time.Now().UTC()

	event, err := eventService.CreateEvent(context.Background(), EventInput{
		Title:     "  Dentist  ",
		StartTime: now,
		EndTime:   now.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if event.Title != "Dentist" {
		t.Errorf("Expected trimmed title, got %q", event.Title)
	}
}

func TestGetEvents_FiltersByStartTime(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	eventService := NewEventService(eventRepo)
	ctx := context.Background()

	mustCreate := func(title string, start time.Time) {
		if _, err := eventService.CreateEvent(ctx, EventInput{Title: title, StartTime: start, EndTime: start.Add(time.Hour)}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	mustCreate("January", time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC))
	mustCreate("June", time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))
	mustCreate("December", time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC))

	start := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	events, err := eventService.GetEvents(ctx, &domain.EventFilters{StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(events) != 1 || events[0].Title != "June" {
		t.Errorf("Expected only the June event, got %d events", len(events))
	}
}

func TestUpdateEvent_NotFound(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	eventService := NewEventService(eventRepo)
	now := time.Now().UTC()

	_, err := eventService.UpdateEvent(context.Background(), "missing", EventInput{
		Title:     "Dentist",
		StartTime: now,
		EndTime:   now.Add(time.Hour),
	})
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("Expected ErrEventNotFound, got %v", err)
	}
}

func TestDeleteEvent_NotFound(t *testing.T) {
	eventRepo := testutil.NewMockEventRepository()
	eventService := NewEventService(eventRepo)

	if err := eventService.DeleteEvent(context.Background(), "missing"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("Expected ErrEventNotFound, got %v", err)
	}
}
