package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/service"
	"github.com/lifeos-app/lifeos-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func newBudgetHandlerFixture() (*BudgetHandler, *testutil.MockBudgetRepository, *testutil.MockTransactionRepository) {
	budgetRepo := testutil.NewMockBudgetRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	budgetService := service.NewBudgetService(budgetRepo, transactionRepo)
	return NewBudgetHandler(budgetService), budgetRepo, transactionRepo
}

func TestGetBudgetsHandler_SeedsAndDerivesSpent(t *testing.T) {
	e := echo.New()
	handler, _, transactionRepo := newBudgetHandlerFixture()

	// An expense this month with no category lands in every unfiltered budget.
	transactionRepo.AddTransaction(&domain.Transaction{
		Amount:    decimal.NewFromInt(45),
		Type:      domain.TransactionTypeExpense,
		AccountID: "acc-1",
		Date:      time.Now().UTC(),
	})

	req, rec := jsonRequest(http.MethodGet, "/api/budgets", "")
	c := e.NewContext(req, rec)

	if err := handler.GetBudgets(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []BudgetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 3 {
		t.Fatalf("Expected 3 seeded budgets, got %d", len(response))
	}
	for _, b := range response {
		if b.Spent != "45" {
			t.Errorf("Expected spent '45' on %s, got %s", b.Name, b.Spent)
		}
	}
}

func TestCreateBudgetHandler_Success(t *testing.T) {
	e := echo.New()
	handler, _, _ := newBudgetHandlerFixture()

	reqBody := `{"name": "Food", "limit": "250", "period": "Week"}`
	req, rec := jsonRequest(http.MethodPost, "/api/budgets", reqBody)
	c := e.NewContext(req, rec)

	if err := handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}

	var response BudgetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Period != "Week" {
		t.Errorf("Expected period 'Week', got %s", response.Period)
	}
	if response.Spent != "0" {
		t.Errorf("Expected spent '0', got %s", response.Spent)
	}
}

func TestCreateBudgetHandler_InvalidLimit(t *testing.T) {
	e := echo.New()
	handler, _, _ := newBudgetHandlerFixture()

	reqBody := `{"name": "Food", "limit": "abc"}`
	req, rec := jsonRequest(http.MethodPost, "/api/budgets", reqBody)
	c := e.NewContext(req, rec)

	if err := handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateBudgetHandler_InvalidPeriod(t *testing.T) {
	e := echo.New()
	handler, _, _ := newBudgetHandlerFixture()

	reqBody := `{"name": "Food", "limit": "100", "period": "Quarter"}`
	req, rec := jsonRequest(http.MethodPost, "/api/budgets", reqBody)
	c := e.NewContext(req, rec)

	if err := handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
}

func TestUpdateBudgetHandler_NotFound(t *testing.T) {
	e := echo.New()
	handler, _, _ := newBudgetHandlerFixture()

	reqBody := `{"name": "Food", "limit": "100"}`
	req, rec := jsonRequest(http.MethodPut, "/api/budgets/missing", reqBody)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.UpdateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteBudgetHandler_Success(t *testing.T) {
	e := echo.New()
	handler, budgetRepo, _ := newBudgetHandlerFixture()
	budgetRepo.AddBudget(&domain.Budget{ID: "b1", Name: "Food", Limit: decimal.NewFromInt(100)})

	req, rec := jsonRequest(http.MethodDelete, "/api/budgets/b1", "")
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("b1")

	if err := handler.DeleteBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
}
