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

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the create account request body
type CreateAccountRequest struct {
	Name     string  `json:"name"`
	Balance  *string `json:"balance,omitempty"`
	Color    string  `json:"color"`
	IsLocked bool    `json:"isLocked"`
	Type     string  `json:"type"`
}

// UpdateAccountRequest represents the update account request body.
// Balance is deliberately absent; it only moves through postings.
type UpdateAccountRequest struct {
	Name     *string `json:"name,omitempty"`
	Color    *string `json:"color,omitempty"`
	IsLocked *bool   `json:"isLocked,omitempty"`
	Type     *string `json:"type,omitempty"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Balance   string `json:"balance"`
	Color     string `json:"color"`
	IsLocked  bool   `json:"isLocked"`
	Type      string `json:"type"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Balance:   a.Balance.String(),
		Color:     a.Color,
		IsLocked:  a.IsLocked,
		Type:      string(a.Type),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// GetAccounts handles GET /api/accounts
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	accounts, err := h.accountService.GetAccounts(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list accounts")
		return NewInternalError(c, "Failed to retrieve accounts")
	}

	response := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		response[i] = toAccountResponse(a)
	}
	return c.JSON(http.StatusOK, response)
}

// GetAccount handles GET /api/accounts/:id
func (h *AccountHandler) GetAccount(c echo.Context) error {
	account, err := h.accountService.GetAccountByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return NewNotFoundError(c, "Account not found")
		}
		log.Error().Err(err).Msg("Failed to get account")
		return NewInternalError(c, "Failed to retrieve account")
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// CreateAccount handles POST /api/accounts
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.Name == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	}

	balance := decimal.Zero
	if req.Balance != nil && *req.Balance != "" {
		parsed, err := decimal.NewFromString(*req.Balance)
		if err != nil {
			return NewValidationError(c, "Invalid balance", []ValidationError{
				{Field: "balance", Message: "Must be a valid decimal number"},
			})
		}
		balance = parsed
	}

	account, err := h.accountService.CreateAccount(c.Request().Context(), service.CreateAccountInput{
		Name:     req.Name,
		Balance:  balance,
		Color:    req.Color,
		IsLocked: req.IsLocked,
		Type:     domain.AccountKind(req.Type),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameTooLong):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 255 characters or less"},
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Type must be one of: standard, add"},
			})
		default:
			log.Error().Err(err).Msg("Failed to create account")
			return NewInternalError(c, "Failed to create account")
		}
	}

	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// UpdateAccount handles PUT /api/accounts/:id
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	update := &domain.AccountUpdate{
		Name:     req.Name,
		Color:    req.Color,
		IsLocked: req.IsLocked,
	}
	if req.Type != nil {
		kind := domain.AccountKind(*req.Type)
		update.Type = &kind
	}

	account, err := h.accountService.UpdateAccount(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return NewNotFoundError(c, "Account not found")
		case errors.Is(err, domain.ErrNameTooLong):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 255 characters or less"},
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Type must be one of: standard, add"},
			})
		default:
			log.Error().Err(err).Msg("Failed to update account")
			return NewInternalError(c, "Failed to update account")
		}
	}

	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// DeleteAccount handles DELETE /api/accounts/:id
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	if err := h.accountService.DeleteAccount(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return NewNotFoundError(c, "Account not found")
		}
		log.Error().Err(err).Msg("Failed to delete account")
		return NewInternalError(c, "Failed to delete account")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}
