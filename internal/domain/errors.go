package domain

import "errors"

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalError       = errors.New("internal error")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrNameRequired        = errors.New("name is required")
	ErrNameTooLong         = errors.New("name exceeds maximum length")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrDestinationRequired    = errors.New("destination account is required for transfer")
	ErrAccountLocked          = errors.New("account is locked")

	// ErrPostingFailed wraps any failure inside a ledger unit of work.
	// The whole unit of work is rolled back before it is returned.
	ErrPostingFailed = errors.New("posting failed")
)

// Validation constants
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
)
