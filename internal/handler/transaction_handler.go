package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the create transaction request body
type CreateTransactionRequest struct {
	Amount      string   `json:"amount"`
	Type        string   `json:"type"`
	AccountID   string   `json:"accountId"`
	ToAccountID *string  `json:"toAccountId,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Date        *string  `json:"date,omitempty"`
}

// UpdateTransactionRequest represents the update transaction request body.
// Absent fields keep their stored values.
type UpdateTransactionRequest struct {
	Amount      *string  `json:"amount,omitempty"`
	Type        *string  `json:"type,omitempty"`
	AccountID   *string  `json:"accountId,omitempty"`
	ToAccountID *string  `json:"toAccountId,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Date        *string  `json:"date,omitempty"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          string   `json:"id"`
	Amount      string   `json:"amount"`
	Type        string   `json:"type"`
	AccountID   string   `json:"accountId"`
	ToAccountID *string  `json:"toAccountId,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Date        string   `json:"date"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// PaginatedTransactionsResponse wraps a windowed transaction listing
type PaginatedTransactionsResponse struct {
	Data       []TransactionResponse `json:"data"`
	Page       int32                 `json:"page"`
	PageSize   int32                 `json:"pageSize"`
	TotalItems int64                 `json:"totalItems"`
	TotalPages int32                 `json:"totalPages"`
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Amount:      t.Amount.String(),
		Type:        string(t.Type),
		AccountID:   t.AccountID,
		ToAccountID: t.ToAccountID,
		CategoryID:  t.CategoryID,
		Description: t.Description,
		Tags:        t.Tags,
		Date:        t.Date.UTC().Format(time.RFC3339),
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// parseDateParam accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// transactionError maps ledger errors to HTTP responses
func transactionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be positive"},
		})
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "type", Message: "Type must be one of: income, expense, transfer"},
		})
	case errors.Is(err, domain.ErrDestinationRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "toAccountId", Message: "To account is required for transfer"},
		})
	case errors.Is(err, domain.ErrAccountNotFound):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "accountId", Message: "Account not found"},
		})
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category not found"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "description", Message: "Description must be 1000 characters or less"},
		})
	case errors.Is(err, domain.ErrTransactionNotFound):
		return NewNotFoundError(c, "Transaction not found")
	default:
		log.Error().Err(err).Msg("Transaction operation failed")
		return NewInternalError(c, "Failed to process transaction")
	}
}

// CreateTransaction handles POST /api/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.AccountID == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "accountId", Message: "Account ID is required"},
		})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDateParam(*req.Date)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be an RFC 3339 timestamp or YYYY-MM-DD"},
			})
		}
		date = &parsed
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request().Context(), service.CreateTransactionInput{
		Amount:      amount,
		Type:        domain.TransactionType(req.Type),
		AccountID:   req.AccountID,
		ToAccountID: req.ToAccountID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Tags:        req.Tags,
		Date:        date,
	})
	if err != nil {
		return transactionError(c, err)
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// GetTransactions handles GET /api/transactions
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	filters := &domain.TransactionFilters{}

	if search := c.QueryParam("search"); search != "" {
		filters.Search = &search
	}
	if txType := c.QueryParam("type"); txType != "" {
		t := domain.TransactionType(txType)
		if t != domain.TransactionTypeIncome && t != domain.TransactionTypeExpense && t != domain.TransactionTypeTransfer {
			return NewValidationError(c, "Invalid type filter", []ValidationError{
				{Field: "type", Message: "Type must be one of: income, expense, transfer"},
			})
		}
		filters.Type = &t
	}
	if categoryID := c.QueryParam("categoryId"); categoryID != "" {
		filters.CategoryID = &categoryID
	}
	if accountID := c.QueryParam("accountId"); accountID != "" {
		filters.AccountID = &accountID
	}
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

	paged := false
	if page := c.QueryParam("page"); page != "" {
		parsed, err := strconv.ParseInt(page, 10, 32)
		if err != nil || parsed < 1 {
			return NewValidationError(c, "Invalid page", nil)
		}
		filters.Page = int32(parsed)
		paged = true
	}
	if limit := c.QueryParam("limit"); limit != "" {
		parsed, err := strconv.ParseInt(limit, 10, 32)
		if err != nil || parsed < 1 {
			return NewValidationError(c, "Invalid limit", nil)
		}
		filters.PageSize = int32(parsed)
	}

	result, err := h.transactionService.GetTransactions(c.Request().Context(), filters)
	if err != nil {
		return transactionError(c, err)
	}

	data := make([]TransactionResponse, len(result.Data))
	for i, t := range result.Data {
		data[i] = toTransactionResponse(t)
	}

	// Unpaged requests get the bare list, matching the original API shape.
	if !paged {
		return c.JSON(http.StatusOK, data)
	}

	return c.JSON(http.StatusOK, PaginatedTransactionsResponse{
		Data:       data,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

// UpdateTransaction handles PUT /api/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id := c.Param("id")

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	patch := &domain.TransactionPatch{
		ToAccountID: req.ToAccountID,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Tags:        req.Tags,
	}

	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return NewValidationError(c, "Invalid amount", []ValidationError{
				{Field: "amount", Message: "Must be a valid decimal number"},
			})
		}
		patch.Amount = &amount
	}
	if req.Type != nil {
		t := domain.TransactionType(*req.Type)
		patch.Type = &t
	}
	if req.AccountID != nil {
		patch.AccountID = req.AccountID
	}
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDateParam(*req.Date)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be an RFC 3339 timestamp or YYYY-MM-DD"},
			})
		}
		patch.Date = &parsed
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request().Context(), id, patch)
	if err != nil {
		return transactionError(c, err)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction handles DELETE /api/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id := c.Param("id")

	if err := h.transactionService.DeleteTransaction(c.Request().Context(), id); err != nil {
		return transactionError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}
