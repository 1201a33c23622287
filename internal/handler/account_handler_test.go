package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/service"
	"github.com/lifeos-app/lifeos-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func newAccountHandlerFixture() (*AccountHandler, *testutil.MockAccountRepository) {
	accountRepo := testutil.NewMockAccountRepository()
	accountService := service.NewAccountService(accountRepo)
	return NewAccountHandler(accountService), accountRepo
}

func TestGetAccountsHandler_SeedsWhenEmpty(t *testing.T) {
	e := echo.New()
	handler, _ := newAccountHandlerFixture()

	req, rec := jsonRequest(http.MethodGet, "/api/accounts", "")
	c := e.NewContext(req, rec)

	if err := handler.GetAccounts(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 5 {
		t.Errorf("Expected 5 seeded accounts, got %d", len(response))
	}
}

func TestCreateAccountHandler_Success(t *testing.T) {
	e := echo.New()
	handler, _ := newAccountHandlerFixture()

	reqBody := `{"name": "Savings", "balance": "1500.75", "color": "#00AA00"}`
	req, rec := jsonRequest(http.MethodPost, "/api/accounts", reqBody)
	c := e.NewContext(req, rec)

	if err := handler.CreateAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}

	var response AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Name != "Savings" {
		t.Errorf("Expected name 'Savings', got %s", response.Name)
	}
	if response.Balance != "1500.75" {
		t.Errorf("Expected balance '1500.75', got %s", response.Balance)
	}
	if response.Type != "standard" {
		t.Errorf("Expected type 'standard', got %s", response.Type)
	}
}

func TestCreateAccountHandler_MissingName(t *testing.T) {
	e := echo.New()
	handler, _ := newAccountHandlerFixture()

	req, rec := jsonRequest(http.MethodPost, "/api/accounts", `{"balance": "10"}`)
	c := e.NewContext(req, rec)

	if err := handler.CreateAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
}

func TestUpdateAccountHandler_BalanceIsIgnored(t *testing.T) {
	e := echo.New()
	handler, accountRepo := newAccountHandlerFixture()

	account := &domain.Account{Name: "Cash", Balance: decimal.NewFromInt(100)}
	accountRepo.AddAccount(account)

	// A stray balance field in the body must not move the stored balance.
	reqBody := `{"name": "Wallet", "balance": "999999"}`
	req, rec := jsonRequest(http.MethodPut, "/api/accounts/"+account.ID, reqBody)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(account.ID)

	if err := handler.UpdateAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Name != "Wallet" {
		t.Errorf("Expected name 'Wallet', got %s", response.Name)
	}
	if response.Balance != "100" {
		t.Errorf("Expected balance '100', got %s", response.Balance)
	}
}

func TestUpdateAccountHandler_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newAccountHandlerFixture()

	req, rec := jsonRequest(http.MethodPut, "/api/accounts/missing", `{"name": "Wallet"}`)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.UpdateAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteAccountHandler_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newAccountHandlerFixture()

	req, rec := jsonRequest(http.MethodDelete, "/api/accounts/missing", "")
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.DeleteAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
}
