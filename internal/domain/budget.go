package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BudgetPeriod string

const (
	BudgetPeriodWeek    BudgetPeriod = "Week"
	BudgetPeriodMonth   BudgetPeriod = "Month"
	BudgetPeriodYear    BudgetPeriod = "Year"
	BudgetPeriodOneTime BudgetPeriod = "One Time"
)

// Budget is a spending limit over a recurring or one-time period window.
// Spent is not stored: it is derived on every read by aggregating matching
// expense transactions inside the active window.
type Budget struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Limit      decimal.Decimal `json:"limit"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  *time.Time      `json:"startDate,omitempty"`
	EndDate    *time.Time      `json:"endDate,omitempty"`
	CategoryID *string         `json:"categoryId,omitempty"`
	AccountID  *string         `json:"accountId,omitempty"`
	Color      string          `json:"color"`
	Icon       string          `json:"icon"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// BudgetWithSpent is the read representation of a budget, carrying the
// derived spent amount.
type BudgetWithSpent struct {
	Budget
	Spent decimal.Decimal `json:"spent"`
}

type BudgetRepository interface {
	Create(ctx context.Context, budget *Budget) (*Budget, error)
	GetByID(ctx context.Context, id string) (*Budget, error)
	GetAll(ctx context.Context) ([]*Budget, error)
	Update(ctx context.Context, id string, budget *Budget) (*Budget, error)
	Delete(ctx context.Context, id string) error
	CreateMany(ctx context.Context, budgets []*Budget) ([]*Budget, error)
}
