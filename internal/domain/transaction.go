package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction is a single ledger entry. Amount is always a non-negative
// magnitude; the sign of its balance effect is derived from Type.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	AccountID   string          `json:"accountId"`
	ToAccountID *string         `json:"toAccountId,omitempty"`
	CategoryID  *string         `json:"categoryId,omitempty"`
	Description *string         `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TransactionFilters narrows ListTransactions results. All fields are
// optional and combined with logical AND. AccountID matches either the
// source or the destination account.
type TransactionFilters struct {
	Search     *string
	Type       *TransactionType
	CategoryID *string
	AccountID  *string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int32
	PageSize   int32
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type PaginatedTransactions struct {
	Data       []*Transaction `json:"data"`
	Page       int32          `json:"page"`
	PageSize   int32          `json:"pageSize"`
	TotalItems int64          `json:"totalItems"`
	TotalPages int32          `json:"totalPages"`
}

// TransactionPatch carries partial replacement values for an update.
// Nil fields keep the stored value.
type TransactionPatch struct {
	Amount      *decimal.Decimal
	Type        *TransactionType
	AccountID   *string
	ToAccountID *string
	CategoryID  *string
	Description *string
	Tags        []string
	Date        *time.Time
}

// UpdateTransactionData carries the replacement field values for a
// transaction update.
type UpdateTransactionData struct {
	Amount      decimal.Decimal
	Type        TransactionType
	AccountID   string
	ToAccountID *string
	CategoryID  *string
	Description *string
	Tags        []string
	Date        time.Time
}

// ExpenseSumFilter selects the expense transactions aggregated into a
// budget's derived spent amount.
type ExpenseSumFilter struct {
	StartDate  time.Time
	EndDate    time.Time
	CategoryID *string
	AccountID  *string
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) (*Transaction, error)
	GetByID(ctx context.Context, id string) (*Transaction, error)
	Update(ctx context.Context, id string, data *UpdateTransactionData) (*Transaction, error)
	Delete(ctx context.Context, id string) error
	Find(ctx context.Context, filters *TransactionFilters) (*PaginatedTransactions, error)
	// SumExpenses returns the total amount of expense transactions matching
	// the filter, zero when nothing matches.
	SumExpenses(ctx context.Context, filter *ExpenseSumFilter) (decimal.Decimal, error)
}
