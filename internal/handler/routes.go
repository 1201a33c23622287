package handler

import (
	"github.com/labstack/echo/v4"
)

// Handlers bundles all HTTP handlers for route registration
type Handlers struct {
	Account     *AccountHandler
	AccountType *AccountTypeHandler
	Transaction *TransactionHandler
	Category    *CategoryHandler
	Budget      *BudgetHandler
	Goal        *GoalHandler
	Event       *EventHandler
	Dashboard   *DashboardHandler
	WebSocket   *WebSocketHandler
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, h Handlers) {
	api := e.Group("/api")

	accounts := api.Group("/accounts")
	accounts.POST("", h.Account.CreateAccount)
	accounts.GET("", h.Account.GetAccounts)
	accounts.GET("/:id", h.Account.GetAccount)
	accounts.PUT("/:id", h.Account.UpdateAccount)
	accounts.DELETE("/:id", h.Account.DeleteAccount)

	api.GET("/account-types", h.AccountType.GetAccountTypes)

	transactions := api.Group("/transactions")
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.GET("", h.Transaction.GetTransactions)
	transactions.PUT("/:id", h.Transaction.UpdateTransaction)
	transactions.DELETE("/:id", h.Transaction.DeleteTransaction)

	categories := api.Group("/categories")
	categories.GET("", h.Category.GetCategories)
	categories.GET("/flat", h.Category.GetFlatCategories)
	categories.GET("/:id", h.Category.GetCategory)
	categories.POST("/reset", h.Category.ResetCategories)

	budgets := api.Group("/budgets")
	budgets.POST("", h.Budget.CreateBudget)
	budgets.GET("", h.Budget.GetBudgets)
	budgets.GET("/:id", h.Budget.GetBudget)
	budgets.PUT("/:id", h.Budget.UpdateBudget)
	budgets.DELETE("/:id", h.Budget.DeleteBudget)

	goals := api.Group("/goals")
	goals.POST("", h.Goal.CreateGoal)
	goals.GET("", h.Goal.GetGoals)
	goals.PUT("/:id", h.Goal.UpdateGoal)
	goals.DELETE("/:id", h.Goal.DeleteGoal)

	events := api.Group("/events")
	events.POST("", h.Event.CreateEvent)
	events.GET("", h.Event.GetEvents)
	events.PUT("/:id", h.Event.UpdateEvent)
	events.DELETE("/:id", h.Event.DeleteEvent)

	api.GET("/dashboard/summary", h.Dashboard.GetSummary)

	e.GET("/ws", h.WebSocket.HandleWS)
}
