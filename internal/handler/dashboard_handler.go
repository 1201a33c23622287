package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lifeos-app/lifeos-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// DashboardSummaryResponse represents the dashboard summary payload
type DashboardSummaryResponse struct {
	TotalBalance string `json:"totalBalance"`
	MonthIncome  string `json:"monthIncome"`
	MonthExpense string `json:"monthExpense"`
	AccountCount int32  `json:"accountCount"`
}

// GetSummary handles GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	summary, err := h.dashboardService.GetSummary(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute dashboard summary")
		return NewInternalError(c, "Failed to retrieve dashboard summary")
	}

	return c.JSON(http.StatusOK, DashboardSummaryResponse{
		TotalBalance: summary.TotalBalance.String(),
		MonthIncome:  summary.MonthIncome.String(),
		MonthExpense: summary.MonthExpense.String(),
		AccountCount: summary.AccountCount,
	})
}
