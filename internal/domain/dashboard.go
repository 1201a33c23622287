package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates the headline numbers for the home screen.
type DashboardSummary struct {
	TotalBalance decimal.Decimal `json:"totalBalance"`
	MonthIncome  decimal.Decimal `json:"monthIncome"`
	MonthExpense decimal.Decimal `json:"monthExpense"`
	AccountCount int32           `json:"accountCount"`
}
