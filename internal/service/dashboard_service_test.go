package service

import (
	"context"
	"testing"
	"time"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestGetSummary(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	dashboardService := NewDashboardService(accountRepo, transactionRepo)
	dashboardService.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	accountRepo.AddAccount(&domain.Account{Name: "Cash", Balance: decimal.NewFromInt(100), Type: domain.AccountKindStandard})
	accountRepo.AddAccount(&domain.Account{Name: "Bank", Balance: decimal.NewFromInt(250), Type: domain.AccountKindStandard})
	// The add placeholder must not count toward totals.
	accountRepo.AddAccount(&domain.Account{Type: domain.AccountKindAdd})

	inMonth := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)

	transactionRepo.AddTransaction(&domain.Transaction{
		Amount: decimal.NewFromInt(500), Type: domain.TransactionTypeIncome, AccountID: "a", Date: inMonth,
	})
	transactionRepo.AddTransaction(&domain.Transaction{
		Amount: decimal.NewFromInt(120), Type: domain.TransactionTypeExpense, AccountID: "a", Date: inMonth,
	})
	transactionRepo.AddTransaction(&domain.Transaction{
		Amount: decimal.NewFromInt(999), Type: domain.TransactionTypeExpense, AccountID: "a", Date: lastMonth,
	})

	summary, err := dashboardService.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !summary.TotalBalance.Equal(decimal.NewFromInt(350)) {
		t.Errorf("Expected total balance 350, got %s", summary.TotalBalance.String())
	}
	if !summary.MonthIncome.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Expected month income 500, got %s", summary.MonthIncome.String())
	}
	if !summary.MonthExpense.Equal(decimal.NewFromInt(120)) {
		t.Errorf("Expected month expense 120, got %s", summary.MonthExpense.String())
	}
	if summary.AccountCount != 2 {
		t.Errorf("Expected account count 2, got %d", summary.AccountCount)
	}
}

func TestGetSummary_Empty(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	dashboardService := NewDashboardService(accountRepo, transactionRepo)

	summary, err := dashboardService.GetSummary(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !summary.TotalBalance.IsZero() || summary.AccountCount != 0 {
		t.Errorf("Expected zero summary, got %+v", summary)
	}
}
