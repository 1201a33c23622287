package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestGetAccounts_SeedsWhenEmpty(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	accounts, err := accountService.GetAccounts(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(accounts) != 5 {
		t.Fatalf("Expected 5 seeded accounts, got %d", len(accounts))
	}

	var addTiles int
	for _, a := range accounts {
		if a.Type == domain.AccountKindAdd {
			addTiles++
		}
	}
	if addTiles != 1 {
		t.Errorf("Expected exactly one add placeholder, got %d", addTiles)
	}
}

func TestGetAccounts_DoesNotReseed(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	accountRepo.AddAccount(&domain.Account{Name: "Existing", Balance: decimal.NewFromInt(10)})

	accounts, err := accountService.GetAccounts(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(accounts) != 1 {
		t.Errorf("Expected the existing account only, got %d", len(accounts))
	}
}

func TestCreateAccount_TrimsName(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	account, err := accountService.CreateAccount(context.Background(), CreateAccountInput{
		Name:    "  Savings  ",
		Balance: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if account.Name != "Savings" {
		t.Errorf("Expected trimmed name, got %q", account.Name)
	}
	if account.Type != domain.AccountKindStandard {
		t.Errorf("Expected type to default to standard, got %s", account.Type)
	}
}

func TestCreateAccount_RejectsLongName(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	_, err := accountService.CreateAccount(context.Background(), CreateAccountInput{
		Name: strings.Repeat("x", domain.MaxNameLength+1),
	})
	if !errors.Is(err, domain.ErrNameTooLong) {
		t.Fatalf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestCreateAccount_RejectsUnknownKind(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	_, err := accountService.CreateAccount(context.Background(), CreateAccountInput{
		Name: "Savings",
		Type: domain.AccountKind("virtual"),
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateAccount_MetadataOnly(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	account := &domain.Account{Name: "Cash", Balance: decimal.NewFromInt(100)}
	accountRepo.AddAccount(account)

	newName := "Wallet"
	locked := true
	updated, err := accountService.UpdateAccount(context.Background(), account.ID, &domain.AccountUpdate{
		Name:     &newName,
		IsLocked: &locked,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Name != "Wallet" || !updated.IsLocked {
		t.Error("Expected name and lock flag to change")
	}
	if !updated.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected balance untouched, got %s", updated.Balance.String())
	}
}

func TestUpdateAccount_NotFound(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	name := "Wallet"
	_, err := accountService.UpdateAccount(context.Background(), "missing", &domain.AccountUpdate{Name: &name})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := NewAccountService(accountRepo)

	account := &domain.Account{Name: "Cash"}
	accountRepo.AddAccount(account)

	if err := accountService.DeleteAccount(context.Background(), account.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := accountService.DeleteAccount(context.Background(), account.ID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("Expected ErrAccountNotFound, got %v", err)
	}
}
