package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func newBudgetFixture() (*BudgetService, *testutil.MockBudgetRepository, *testutil.MockTransactionRepository) {
	budgetRepo := testutil.NewMockBudgetRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	service := NewBudgetService(budgetRepo, transactionRepo)
	return service, budgetRepo, transactionRepo
}

func addExpense(repo *testutil.MockTransactionRepository, amount float64, date time.Time, categoryID, accountID string) {
	var category *string
	if categoryID != "" {
		category = &categoryID
	}
	repo.AddTransaction(&domain.Transaction{
		Amount:     decimal.NewFromFloat(amount),
		Type:       domain.TransactionTypeExpense,
		AccountID:  accountID,
		CategoryID: category,
		Date:       date,
	})
}

func TestDeriveSpent_MonthWindowWithCategory(t *testing.T) {
	service, _, transactionRepo := newBudgetFixture()

	asOf := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	groceries := "cat-groceries"

	addExpense(transactionRepo, 20, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), groceries, "acc-1")
	addExpense(transactionRepo, 30, time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC), groceries, "acc-1")
	// Different category, same month
	addExpense(transactionRepo, 100, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), "cat-other", "acc-1")
	// Same category, previous month
	addExpense(transactionRepo, 40, time.Date(2025, time.May, 28, 0, 0, 0, 0, time.UTC), groceries, "acc-1")

	spent, err := service.DeriveSpent(context.Background(), &domain.Budget{
		Period:     domain.BudgetPeriodMonth,
		CategoryID: &groceries,
	}, asOf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !spent.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Expected spent 50, got %s", spent.String())
	}
}

func TestDeriveSpent_IgnoresIncomeAndTransfers(t *testing.T) {
	service, _, transactionRepo := newBudgetFixture()

	asOf := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	dest := "acc-2"
	transactionRepo.AddTransaction(&domain.Transaction{
		Amount:    decimal.NewFromInt(500),
		Type:      domain.TransactionTypeIncome,
		AccountID: "acc-1",
		Date:      asOf,
	})
	transactionRepo.AddTransaction(&domain.Transaction{
		Amount:      decimal.NewFromInt(200),
		Type:        domain.TransactionTypeTransfer,
		AccountID:   "acc-1",
		ToAccountID: &dest,
		Date:        asOf,
	})
	addExpense(transactionRepo, 75, asOf, "", "acc-1")

	spent, err := service.DeriveSpent(context.Background(), &domain.Budget{Period: domain.BudgetPeriodMonth}, asOf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !spent.Equal(decimal.NewFromInt(75)) {
		t.Errorf("Expected spent 75, got %s", spent.String())
	}
}

func TestDeriveSpent_WeekWindowBoundaries(t *testing.T) {
	service, _, transactionRepo := newBudgetFixture()

	// 2025-06-11 is a Wednesday; the window is June 9 through June 15.
	asOf := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)

	addExpense(transactionRepo, 10, time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), "", "acc-1")
	addExpense(transactionRepo, 15, time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC), "", "acc-1")
	// The following Monday falls outside the window.
	addExpense(transactionRepo, 99, time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC), "", "acc-1")

	spent, err := service.DeriveSpent(context.Background(), &domain.Budget{Period: domain.BudgetPeriodWeek}, asOf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !spent.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Expected spent 25, got %s", spent.String())
	}
}

func TestDeriveSpent_AccountFilterMatchesSourceOnly(t *testing.T) {
	service, _, transactionRepo := newBudgetFixture()

	asOf := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	addExpense(transactionRepo, 25, asOf, "", "acc-1")
	addExpense(transactionRepo, 60, asOf, "", "acc-2")

	accountID := "acc-1"
	spent, err := service.DeriveSpent(context.Background(), &domain.Budget{
		Period:    domain.BudgetPeriodMonth,
		AccountID: &accountID,
	}, asOf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !spent.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Expected spent 25, got %s", spent.String())
	}
}

func TestDeriveSpent_OneTimeUsesStoredDates(t *testing.T) {
	service, _, transactionRepo := newBudgetFixture()

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)

	addExpense(transactionRepo, 80, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), "", "acc-1")
	addExpense(transactionRepo, 40, time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), "", "acc-1")

	// asOf far outside the stored window must not matter.
	asOf := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	spent, err := service.DeriveSpent(context.Background(), &domain.Budget{
		Period:    domain.BudgetPeriodOneTime,
		StartDate: &start,
		EndDate:   &end,
	}, asOf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !spent.Equal(decimal.NewFromInt(80)) {
		t.Errorf("Expected spent 80, got %s", spent.String())
	}
}

func TestDeriveSpent_YearWindow(t *testing.T) {
	service, _, transactionRepo := newBudgetFixture()

	asOf := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	addExpense(transactionRepo, 120, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), "", "acc-1")
	addExpense(transactionRepo, 50, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), "", "acc-1")

	spent, err := service.DeriveSpent(context.Background(), &domain.Budget{Period: domain.BudgetPeriodYear}, asOf)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !spent.Equal(decimal.NewFromInt(120)) {
		t.Errorf("Expected spent 120, got %s", spent.String())
	}
}

func TestGetBudgets_SeedsWhenEmpty(t *testing.T) {
	service, budgetRepo, _ := newBudgetFixture()

	budgets, err := service.GetBudgets(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(budgets) != 3 {
		t.Fatalf("Expected 3 seeded budgets, got %d", len(budgets))
	}
	if len(budgetRepo.Budgets) != 3 {
		t.Errorf("Expected seed to persist, got %d stored budgets", len(budgetRepo.Budgets))
	}

	// A second call must not seed again.
	budgets, err = service.GetBudgets(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(budgets) != 3 {
		t.Errorf("Expected 3 budgets after reread, got %d", len(budgets))
	}
}

func TestGetBudgets_AttachesSpent(t *testing.T) {
	service, budgetRepo, transactionRepo := newBudgetFixture()
	service.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	budgetRepo.AddBudget(&domain.Budget{
		Name:   "Food",
		Limit:  decimal.NewFromInt(100),
		Period: domain.BudgetPeriodMonth,
	})
	addExpense(transactionRepo, 42, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), "", "acc-1")

	budgets, err := service.GetBudgets(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(budgets) != 1 {
		t.Fatalf("Expected 1 budget, got %d", len(budgets))
	}
	if !budgets[0].Spent.Equal(decimal.NewFromInt(42)) {
		t.Errorf("Expected spent 42, got %s", budgets[0].Spent.String())
	}
}

func TestCreateBudget_Validation(t *testing.T) {
	service, _, _ := newBudgetFixture()
	ctx := context.Background()

	_, err := service.CreateBudget(ctx, CreateBudgetInput{Name: "  ", Limit: decimal.NewFromInt(10)})
	if !errors.Is(err, domain.ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}

	_, err = service.CreateBudget(ctx, CreateBudgetInput{Name: "Food", Limit: decimal.Zero})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}

	_, err = service.CreateBudget(ctx, CreateBudgetInput{Name: "Food", Limit: decimal.NewFromInt(10), Period: "Quarter"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateBudget_DefaultsPeriodToMonth(t *testing.T) {
	service, _, _ := newBudgetFixture()

	budget, err := service.CreateBudget(context.Background(), CreateBudgetInput{
		Name:  "Food",
		Limit: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if budget.Period != domain.BudgetPeriodMonth {
		t.Errorf("Expected period Month, got %s", budget.Period)
	}
}

func TestCreateBudget_ClearsDatesForRecurringPeriods(t *testing.T) {
	service, _, _ := newBudgetFixture()

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	budget, err := service.CreateBudget(context.Background(), CreateBudgetInput{
		Name:      "Food",
		Limit:     decimal.NewFromInt(100),
		Period:    domain.BudgetPeriodMonth,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if budget.StartDate != nil || budget.EndDate != nil {
		t.Error("Expected explicit dates to be cleared for a recurring period")
	}
}

func TestUpdateBudget_NotFound(t *testing.T) {
	service, _, _ := newBudgetFixture()

	_, err := service.UpdateBudget(context.Background(), "missing", CreateBudgetInput{
		Name:  "Food",
		Limit: decimal.NewFromInt(100),
	})
	if !errors.Is(err, domain.ErrBudgetNotFound) {
		t.Fatalf("Expected ErrBudgetNotFound, got %v", err)
	}
}

func TestDeleteBudget(t *testing.T) {
	service, budgetRepo, _ := newBudgetFixture()
	budgetRepo.AddBudget(&domain.Budget{ID: "b1", Name: "Food", Limit: decimal.NewFromInt(100)})

	if err := service.DeleteBudget(context.Background(), "b1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := service.DeleteBudget(context.Background(), "b1"); !errors.Is(err, domain.ErrBudgetNotFound) {
		t.Fatalf("Expected ErrBudgetNotFound, got %v", err)
	}
}
