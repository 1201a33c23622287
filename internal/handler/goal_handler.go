package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// GoalRequest represents the create/update goal request body
type GoalRequest struct {
	Name     string  `json:"name"`
	Saved    string  `json:"saved"`
	Target   string  `json:"target"`
	Deadline string  `json:"deadline"`
	Color    string  `json:"color"`
	Icon     string  `json:"icon"`
	Note     *string `json:"note,omitempty"`
}

// GoalResponse represents a goal in API responses
type GoalResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Saved    string  `json:"saved"`
	Target   string  `json:"target"`
	Deadline string  `json:"deadline"`
	Color    string  `json:"color"`
	Icon     string  `json:"icon"`
	Note     *string `json:"note,omitempty"`
}

func toGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		ID:       g.ID,
		Name:     g.Name,
		Saved:    g.Saved.String(),
		Target:   g.Target.String(),
		Deadline: g.Deadline.UTC().Format(time.RFC3339),
		Color:    g.Color,
		Icon:     g.Icon,
		Note:     g.Note,
	}
}

// parseGoalInput validates the request body. When it returns false the
// validation response has already been written.
func parseGoalInput(c echo.Context, req GoalRequest) (service.GoalInput, bool) {
	saved := decimal.Zero
	if req.Saved != "" {
		parsed, err := decimal.NewFromString(req.Saved)
		if err != nil {
			_ = NewValidationError(c, "Invalid saved amount", []ValidationError{
				{Field: "saved", Message: "Must be a valid decimal number"},
			})
			return service.GoalInput{}, false
		}
		saved = parsed
	}

	target, err := decimal.NewFromString(req.Target)
	if err != nil {
		_ = NewValidationError(c, "Invalid target", []ValidationError{
			{Field: "target", Message: "Must be a valid decimal number"},
		})
		return service.GoalInput{}, false
	}

	deadline, err := parseDateParam(req.Deadline)
	if err != nil {
		_ = NewValidationError(c, "Invalid deadline", []ValidationError{
			{Field: "deadline", Message: "Must be an RFC 3339 timestamp or YYYY-MM-DD"},
		})
		return service.GoalInput{}, false
	}

	return service.GoalInput{
		Name:     req.Name,
		Saved:    saved,
		Target:   target,
		Deadline: deadline,
		Color:    req.Color,
		Icon:     req.Icon,
		Note:     req.Note,
	}, true
}

func goalError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "target", Message: "Target must be positive"},
		})
	case errors.Is(err, domain.ErrGoalNotFound):
		return NewNotFoundError(c, "Goal not found")
	default:
		log.Error().Err(err).Msg("Goal operation failed")
		return NewInternalError(c, "Failed to process goal")
	}
}

// GetGoals handles GET /api/goals
func (h *GoalHandler) GetGoals(c echo.Context) error {
	goals, err := h.goalService.GetGoals(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list goals")
		return NewInternalError(c, "Failed to retrieve goals")
	}

	response := make([]GoalResponse, len(goals))
	for i, g := range goals {
		response[i] = toGoalResponse(g)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateGoal handles POST /api/goals
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, ok := parseGoalInput(c, req)
	if !ok {
		return nil
	}

	goal, err := h.goalService.CreateGoal(c.Request().Context(), input)
	if err != nil {
		return goalError(c, err)
	}
	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// UpdateGoal handles PUT /api/goals/:id
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, ok := parseGoalInput(c, req)
	if !ok {
		return nil
	}

	goal, err := h.goalService.UpdateGoal(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return goalError(c, err)
	}
	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal handles DELETE /api/goals/:id
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	if err := h.goalService.DeleteGoal(c.Request().Context(), c.Param("id")); err != nil {
		return goalError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Goal deleted successfully"})
}
