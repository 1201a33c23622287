package service

import (
	"context"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/util"
	"github.com/shopspring/decimal"
)

// DashboardService computes the home-screen summary from the stores
type DashboardService struct {
	accountRepo     domain.AccountRepository
	transactionRepo domain.TransactionRepository

	now func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(accountRepo domain.AccountRepository, transactionRepo domain.TransactionRepository) *DashboardService {
	return &DashboardService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// GetSummary returns total balance across accounts plus the current month's
// income and expense totals.
func (s *DashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	count := int32(0)
	for _, account := range accounts {
		if account.Type == domain.AccountKindAdd {
			continue
		}
		total = total.Add(account.Balance)
		count++
	}

	start, end := util.MonthWindow(s.now())
	expense, err := s.transactionRepo.SumExpenses(ctx, &domain.ExpenseSumFilter{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, err
	}

	income, err := s.sumIncome(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalBalance: total,
		MonthIncome:  income,
		MonthExpense: expense,
		AccountCount: count,
	}, nil
}

// sumIncome totals income transactions in the window via the listing path.
func (s *DashboardService) sumIncome(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	incomeType := domain.TransactionTypeIncome
	page, err := s.transactionRepo.Find(ctx, &domain.TransactionFilters{
		Type:      &incomeType,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, t := range page.Data {
		total = total.Add(t.Amount)
	}
	return total, nil
}
