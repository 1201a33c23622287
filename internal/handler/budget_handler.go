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

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetRequest represents the create/update budget request body
type BudgetRequest struct {
	Name       string  `json:"name"`
	Limit      string  `json:"limit"`
	Period     string  `json:"period"`
	StartDate  *string `json:"startDate,omitempty"`
	EndDate    *string `json:"endDate,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
	AccountID  *string `json:"accountId,omitempty"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
}

// BudgetResponse represents a budget in API responses, spent included
type BudgetResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Limit      string  `json:"limit"`
	Spent      string  `json:"spent"`
	Period     string  `json:"period"`
	StartDate  *string `json:"startDate,omitempty"`
	EndDate    *string `json:"endDate,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
	AccountID  *string `json:"accountId,omitempty"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func toBudgetResponse(b *domain.BudgetWithSpent) BudgetResponse {
	return BudgetResponse{
		ID:         b.ID,
		Name:       b.Name,
		Limit:      b.Limit.String(),
		Spent:      b.Spent.String(),
		Period:     string(b.Period),
		StartDate:  formatTimePtr(b.StartDate),
		EndDate:    formatTimePtr(b.EndDate),
		CategoryID: b.CategoryID,
		AccountID:  b.AccountID,
		Color:      b.Color,
		Icon:       b.Icon,
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// parseInput validates the request body. When it returns false the
// validation response has already been written.
func (h *BudgetHandler) parseInput(c echo.Context, req BudgetRequest) (service.CreateBudgetInput, bool) {
	limit, err := decimal.NewFromString(req.Limit)
	if err != nil {
		_ = NewValidationError(c, "Invalid limit", []ValidationError{
			{Field: "limit", Message: "Must be a valid decimal number"},
		})
		return service.CreateBudgetInput{}, false
	}

	input := service.CreateBudgetInput{
		Name:       req.Name,
		Limit:      limit,
		Period:     domain.BudgetPeriod(req.Period),
		CategoryID: req.CategoryID,
		AccountID:  req.AccountID,
		Color:      req.Color,
		Icon:       req.Icon,
	}
	if req.StartDate != nil && *req.StartDate != "" {
		parsed, err := parseDateParam(*req.StartDate)
		if err != nil {
			_ = NewValidationError(c, "Invalid startDate", nil)
			return input, false
		}
		input.StartDate = &parsed
	}
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := parseDateParam(*req.EndDate)
		if err != nil {
			_ = NewValidationError(c, "Invalid endDate", nil)
			return input, false
		}
		input.EndDate = &parsed
	}
	return input, true
}

func budgetError(c echo.Context, err error) error {
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
			{Field: "limit", Message: "Limit must be positive"},
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "period", Message: "Period must be one of: Week, Month, Year, One Time"},
		})
	case errors.Is(err, domain.ErrBudgetNotFound):
		return NewNotFoundError(c, "Budget not found")
	default:
		log.Error().Err(err).Msg("Budget operation failed")
		return NewInternalError(c, "Failed to process budget")
	}
}

// GetBudgets handles GET /api/budgets
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	budgets, err := h.budgetService.GetBudgets(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list budgets")
		return NewInternalError(c, "Failed to retrieve budgets")
	}

	response := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		response[i] = toBudgetResponse(b)
	}
	return c.JSON(http.StatusOK, response)
}

// GetBudget handles GET /api/budgets/:id
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	budget, err := h.budgetService.GetBudgetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return budgetError(c, err)
	}
	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// CreateBudget handles POST /api/budgets
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, ok := h.parseInput(c, req)
	if !ok {
		return nil
	}

	budget, err := h.budgetService.CreateBudget(c.Request().Context(), input)
	if err != nil {
		return budgetError(c, err)
	}
	return c.JSON(http.StatusCreated, toBudgetResponse(budget))
}

// UpdateBudget handles PUT /api/budgets/:id
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	var req BudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, ok := h.parseInput(c, req)
	if !ok {
		return nil
	}

	budget, err := h.budgetService.UpdateBudget(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return budgetError(c, err)
	}
	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// DeleteBudget handles DELETE /api/budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	if err := h.budgetService.DeleteBudget(c.Request().Context(), c.Param("id")); err != nil {
		return budgetError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Budget deleted successfully"})
}
