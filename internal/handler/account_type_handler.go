package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lifeos-app/lifeos-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// AccountTypeHandler handles account type HTTP requests
type AccountTypeHandler struct {
	accountTypeService *service.AccountTypeService
}

// NewAccountTypeHandler creates a new AccountTypeHandler
func NewAccountTypeHandler(accountTypeService *service.AccountTypeService) *AccountTypeHandler {
	return &AccountTypeHandler{accountTypeService: accountTypeService}
}

// GetAccountTypes handles GET /api/account-types
func (h *AccountTypeHandler) GetAccountTypes(c echo.Context) error {
	types, err := h.accountTypeService.GetAccountTypes(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list account types")
		return NewInternalError(c, "Failed to retrieve account types")
	}
	return c.JSON(http.StatusOK, types)
}
