package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// EventHandler handles calendar event HTTP requests
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventRequest represents the create/update event request body
type EventRequest struct {
	Title     string  `json:"title"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Notes     *string `json:"notes,omitempty"`
	Color     string  `json:"color"`
	IsAllDay  bool    `json:"isAllDay"`
}

// parseEventInput validates the request body. When it returns false the
// validation response has already been written.
func parseEventInput(c echo.Context, req EventRequest) (service.EventInput, bool) {
	startTime, err := parseDateParam(req.StartTime)
	if err != nil {
		_ = NewValidationError(c, "Invalid startTime", []ValidationError{
			{Field: "startTime", Message: "Must be an RFC 3339 timestamp or YYYY-MM-DD"},
		})
		return service.EventInput{}, false
	}
	endTime, err := parseDateParam(req.EndTime)
	if err != nil {
		_ = NewValidationError(c, "Invalid endTime", []ValidationError{
			{Field: "endTime", Message: "Must be an RFC 3339 timestamp or YYYY-MM-DD"},
		})
		return service.EventInput{}, false
	}

	return service.EventInput{
		Title:     req.Title,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     req.Notes,
		Color:     req.Color,
		IsAllDay:  req.IsAllDay,
	}, true
}

func eventError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "title", Message: "Title is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "title", Message: "Title must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "endTime", Message: "End time must not precede start time"},
		})
	case errors.Is(err, domain.ErrEventNotFound):
		return NewNotFoundError(c, "Event not found")
	default:
		log.Error().Err(err).Msg("Event operation failed")
		return NewInternalError(c, "Failed to process event")
	}
}

// GetEvents handles GET /api/events
func (h *EventHandler) GetEvents(c echo.Context) error {
	filters := &domain.EventFilters{}
	if startDate := c.QueryParam("startDate"); startDate != "" {
		parsed, err := parseDateParam(startDate)
		if err != nil {
			return NewValidationError(c, "Invalid startDate", nil)
		}
		filters.StartDate = &parsed
	}
	if endDate := c.QueryParam("endDate"); endDate != "" {
		parsed, err := parseDateParam(endDate)
		if err != nil {
			return NewValidationError(c, "Invalid endDate", nil)
		}
		filters.EndDate = &parsed
	}

	events, err := h.eventService.GetEvents(c.Request().Context(), filters)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list events")
		return NewInternalError(c, "Failed to retrieve events")
	}
	return c.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, ok := parseEventInput(c, req)
	if !ok {
		return nil
	}

	event, err := h.eventService.CreateEvent(c.Request().Context(), input)
	if err != nil {
		return eventError(c, err)
	}
	return c.JSON(http.StatusCreated, event)
}

// UpdateEvent handles PUT /api/events/:id
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, ok := parseEventInput(c, req)
	if !ok {
		return nil
	}

	event, err := h.eventService.UpdateEvent(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return eventError(c, err)
	}
	return c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/events/:id
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	if err := h.eventService.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return eventError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}
