package service

import (
	"context"
	"strings"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/util"
	"github.com/shopspring/decimal"
)

// BudgetService handles budget business logic. A budget's spent amount is
// never stored: every read derives it from the expense transactions inside
// the budget's active period window.
type BudgetService struct {
	budgetRepo      domain.BudgetRepository
	transactionRepo domain.TransactionRepository

	// now is swappable for tests
	now func() time.Time
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, transactionRepo domain.TransactionRepository) *BudgetService {
	return &BudgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// PeriodWindow resolves the active date range for a budget relative to asOf.
func PeriodWindow(budget *domain.Budget, asOf time.Time) (time.Time, time.Time) {
	switch budget.Period {
	case domain.BudgetPeriodOneTime:
		start, end := asOf, asOf
		if budget.StartDate != nil {
			start = *budget.StartDate
		}
		if budget.EndDate != nil {
			end = *budget.EndDate
		}
		return start, end
	case domain.BudgetPeriodYear:
		return util.YearWindow(asOf)
	case domain.BudgetPeriodWeek:
		return util.WeekWindow(asOf)
	default:
		return util.MonthWindow(asOf)
	}
}

// DeriveSpent sums the expense transactions inside the budget's active
// window, narrowed by the budget's category and account filters. Read-only.
func (s *BudgetService) DeriveSpent(ctx context.Context, budget *domain.Budget, asOf time.Time) (decimal.Decimal, error) {
	start, end := PeriodWindow(budget, asOf)
	return s.transactionRepo.SumExpenses(ctx, &domain.ExpenseSumFilter{
		StartDate:  start,
		EndDate:    end,
		CategoryID: budget.CategoryID,
		AccountID:  budget.AccountID,
	})
}

// withSpent attaches the derived spent amount to a budget.
func (s *BudgetService) withSpent(ctx context.Context, budget *domain.Budget) (*domain.BudgetWithSpent, error) {
	spent, err := s.DeriveSpent(ctx, budget, s.now())
	if err != nil {
		return nil, err
	}
	return &domain.BudgetWithSpent{Budget: *budget, Spent: spent}, nil
}

// sampleBudgets is the starter set created when the store is empty.
func sampleBudgets() []*domain.Budget {
	return []*domain.Budget{
		{Name: "Groceries", Limit: decimal.NewFromInt(600), Period: domain.BudgetPeriodMonth, Color: "#FFA500", Icon: "shoppingCart"},
		{Name: "Transport", Limit: decimal.NewFromInt(200), Period: domain.BudgetPeriodMonth, Color: "#2196F3", Icon: "bus"},
		{Name: "Entertainment", Limit: decimal.NewFromInt(300), Period: domain.BudgetPeriodMonth, Color: "#F44336", Icon: "popcorn"},
	}
}

// GetBudgets lists all budgets with derived spent amounts, seeding the
// sample set when the store is empty
func (s *BudgetService) GetBudgets(ctx context.Context) ([]*domain.BudgetWithSpent, error) {
	budgets, err := s.budgetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(budgets) == 0 {
		budgets, err = s.budgetRepo.CreateMany(ctx, sampleBudgets())
		if err != nil {
			return nil, err
		}
	}

	result := make([]*domain.BudgetWithSpent, len(budgets))
	for i, budget := range budgets {
		result[i], err = s.withSpent(ctx, budget)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// GetBudgetByID retrieves a budget with its derived spent amount
func (s *BudgetService) GetBudgetByID(ctx context.Context, id string) (*domain.BudgetWithSpent, error) {
	budget, err := s.budgetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withSpent(ctx, budget)
}

// CreateBudgetInput holds the input for creating or updating a budget
type CreateBudgetInput struct {
	Name       string
	Limit      decimal.Decimal
	Period     domain.BudgetPeriod
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *string
	AccountID  *string
	Color      string
	Icon       string
}

func (s *BudgetService) validate(input CreateBudgetInput) (CreateBudgetInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, domain.ErrNameRequired
	}
	if len(input.Name) > domain.MaxNameLength {
		return input, domain.ErrNameTooLong
	}
	if input.Limit.LessThanOrEqual(decimal.Zero) {
		return input, domain.ErrInvalidAmount
	}

	switch input.Period {
	case domain.BudgetPeriodWeek, domain.BudgetPeriodMonth, domain.BudgetPeriodYear, domain.BudgetPeriodOneTime:
	case "":
		input.Period = domain.BudgetPeriodMonth
	default:
		return input, domain.ErrInvalidInput
	}

	// Explicit dates only mean something for one-time budgets.
	if input.Period != domain.BudgetPeriodOneTime {
		input.StartDate = nil
		input.EndDate = nil
	}
	return input, nil
}

// CreateBudget creates a new budget with validation
func (s *BudgetService) CreateBudget(ctx context.Context, input CreateBudgetInput) (*domain.BudgetWithSpent, error) {
	input, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.Create(ctx, &domain.Budget{
		Name:       input.Name,
		Limit:      input.Limit,
		Period:     input.Period,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
		AccountID:  input.AccountID,
		Color:      input.Color,
		Icon:       input.Icon,
	})
	if err != nil {
		return nil, err
	}
	return s.withSpent(ctx, budget)
}

// UpdateBudget replaces a budget's fields
func (s *BudgetService) UpdateBudget(ctx context.Context, id string, input CreateBudgetInput) (*domain.BudgetWithSpent, error) {
	input, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.Update(ctx, id, &domain.Budget{
		Name:       input.Name,
		Limit:      input.Limit,
		Period:     input.Period,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		CategoryID: input.CategoryID,
		AccountID:  input.AccountID,
		Color:      input.Color,
		Icon:       input.Icon,
	})
	if err != nil {
		return nil, err
	}
	return s.withSpent(ctx, budget)
}

// DeleteBudget removes a budget
func (s *BudgetService) DeleteBudget(ctx context.Context, id string) error {
	return s.budgetRepo.Delete(ctx, id)
}
