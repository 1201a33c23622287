package testutil

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Restorable is implemented by mocks whose state can be captured and
// rolled back by MockUnitOfWork.
type Restorable interface {
	Snapshot() func()
}

// MockUnitOfWork runs the callback directly and rolls participating
// mocks back when it fails, mimicking a transactional session.
type MockUnitOfWork struct {
	// BeginErr is returned before the callback runs.
	BeginErr error
	// CommitErr is returned after a successful callback; state is rolled
	// back as if the commit had failed.
	CommitErr error
	// Runs counts completed (committed) executions.
	Runs int

	restorables []Restorable
}

// NewMockUnitOfWork creates a MockUnitOfWork snapshotting the given mocks
func NewMockUnitOfWork(restorables ...Restorable) *MockUnitOfWork {
	return &MockUnitOfWork{restorables: restorables}
}

// Run implements domain.UnitOfWork
func (m *MockUnitOfWork) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}

	restores := make([]func(), len(m.restorables))
	for i, r := range m.restorables {
		restores[i] = r.Snapshot()
	}
	rollback := func() {
		for _, restore := range restores {
			restore()
		}
	}

	if err := fn(ctx); err != nil {
		rollback()
		return err
	}
	if m.CommitErr != nil {
		rollback()
		return m.CommitErr
	}

	m.Runs++
	return nil
}

// MockAccountRepository is a mock implementation of domain.AccountRepository
type MockAccountRepository struct {
	Accounts map[string]*domain.Account
}

// NewMockAccountRepository creates a new MockAccountRepository
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{Accounts: make(map[string]*domain.Account)}
}

// Snapshot implements Restorable
func (m *MockAccountRepository) Snapshot() func() {
	saved := make(map[string]*domain.Account, len(m.Accounts))
	for id, a := range m.Accounts {
		copied := *a
		saved[id] = &copied
	}
	return func() { m.Accounts = saved }
}

// AddAccount adds an account to the mock repository (helper for tests)
func (m *MockAccountRepository) AddAccount(account *domain.Account) {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	m.Accounts[account.ID] = account
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	account.ID = uuid.New().String()
	m.Accounts[account.ID] = account
	return account, nil
}

// GetByID retrieves an account by ID
func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if account, ok := m.Accounts[id]; ok {
		return account, nil
	}
	return nil, domain.ErrAccountNotFound
}

// GetAll retrieves all accounts
func (m *MockAccountRepository) GetAll(ctx context.Context) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0, len(m.Accounts))
	for _, a := range m.Accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].CreatedAt.Before(accounts[j].CreatedAt) })
	return accounts, nil
}

// Update updates account metadata
func (m *MockAccountRepository) Update(ctx context.Context, id string, update *domain.AccountUpdate) (*domain.Account, error) {
	account, ok := m.Accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Color != nil {
		account.Color = *update.Color
	}
	if update.IsLocked != nil {
		account.IsLocked = *update.IsLocked
	}
	if update.Type != nil {
		account.Type = *update.Type
	}
	return account, nil
}

// Delete removes an account
func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(m.Accounts, id)
	return nil
}

// IncrementBalance adds delta to the account balance
func (m *MockAccountRepository) IncrementBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	account, ok := m.Accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	account.Balance = account.Balance.Add(delta)
	return nil
}

// CreateMany creates multiple accounts
func (m *MockAccountRepository) CreateMany(ctx context.Context, accounts []*domain.Account) ([]*domain.Account, error) {
	for _, a := range accounts {
		a.ID = uuid.New().String()
		m.Accounts[a.ID] = a
	}
	return accounts, nil
}

// MockAccountTypeRepository is a mock implementation of domain.AccountTypeRepository
type MockAccountTypeRepository struct {
	Types []*domain.AccountType
}

// NewMockAccountTypeRepository creates a new MockAccountTypeRepository
func NewMockAccountTypeRepository() *MockAccountTypeRepository {
	return &MockAccountTypeRepository{}
}

// GetAll retrieves all account types
func (m *MockAccountTypeRepository) GetAll(ctx context.Context) ([]*domain.AccountType, error) {
	return m.Types, nil
}

// CreateMany creates multiple account types
func (m *MockAccountTypeRepository) CreateMany(ctx context.Context, types []*domain.AccountType) ([]*domain.AccountType, error) {
	for _, t := range types {
		t.ID = uuid.New().String()
	}
	m.Types = append(m.Types, types...)
	return types, nil
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions map[string]*domain.Transaction
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{Transactions: make(map[string]*domain.Transaction)}
}

// Snapshot implements Restorable
func (m *MockTransactionRepository) Snapshot() func() {
	saved := make(map[string]*domain.Transaction, len(m.Transactions))
	for id, t := range m.Transactions {
		copied := *t
		saved[id] = &copied
	}
	return func() { m.Transactions = saved }
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	m.Transactions[transaction.ID] = transaction
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	transaction.ID = uuid.New().String()
	m.Transactions[transaction.ID] = transaction
	return transaction, nil
}

// GetByID retrieves a transaction by ID
func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if transaction, ok := m.Transactions[id]; ok {
		return transaction, nil
	}
	return nil, domain.ErrTransactionNotFound
}

// Update replaces a transaction's fields
func (m *MockTransactionRepository) Update(ctx context.Context, id string, data *domain.UpdateTransactionData) (*domain.Transaction, error) {
	transaction, ok := m.Transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	transaction.Amount = data.Amount
	transaction.Type = data.Type
	transaction.AccountID = data.AccountID
	transaction.ToAccountID = data.ToAccountID
	transaction.CategoryID = data.CategoryID
	transaction.Description = data.Description
	transaction.Tags = data.Tags
	transaction.Date = data.Date
	return transaction, nil
}

// Delete removes a transaction
func (m *MockTransactionRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	return nil
}

func matches(t *domain.Transaction, filters *domain.TransactionFilters) bool {
	if filters.Search != nil {
		if t.Description == nil || !strings.Contains(strings.ToLower(*t.Description), strings.ToLower(*filters.Search)) {
			return false
		}
	}
	if filters.Type != nil && t.Type != *filters.Type {
		return false
	}
	if filters.CategoryID != nil {
		if t.CategoryID == nil || *t.CategoryID != *filters.CategoryID {
			return false
		}
	}
	if filters.AccountID != nil {
		matchesSource := t.AccountID == *filters.AccountID
		matchesDest := t.ToAccountID != nil && *t.ToAccountID == *filters.AccountID
		if !matchesSource && !matchesDest {
			return false
		}
	}
	if filters.StartDate != nil && t.Date.Before(*filters.StartDate) {
		return false
	}
	if filters.EndDate != nil && t.Date.After(*filters.EndDate) {
		return false
	}
	return true
}

// Find lists transactions matching the filters, newest first
func (m *MockTransactionRepository) Find(ctx context.Context, filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	if filters == nil {
		filters = &domain.TransactionFilters{}
	}

	var matched []*domain.Transaction
	for _, t := range m.Transactions {
		if matches(t, filters) {
			matched = append(matched, t)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })

	total := int64(len(matched))
	if filters.Page < 1 {
		return &domain.PaginatedTransactions{
			Data:       matched,
			Page:       1,
			PageSize:   int32(len(matched)),
			TotalItems: total,
			TotalPages: 1,
		}, nil
	}

	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	start := (filters.Page - 1) * pageSize
	end := start + pageSize
	if start > int32(len(matched)) {
		start = int32(len(matched))
	}
	if end > int32(len(matched)) {
		end = int32(len(matched))
	}
	totalPages := int32((total + int64(pageSize) - 1) / int64(pageSize))

	return &domain.PaginatedTransactions{
		Data:       matched[start:end],
		Page:       filters.Page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// SumExpenses totals expense transactions matching the filter
func (m *MockTransactionRepository) SumExpenses(ctx context.Context, filter *domain.ExpenseSumFilter) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, t := range m.Transactions {
		if t.Type != domain.TransactionTypeExpense {
			continue
		}
		if t.Date.Before(filter.StartDate) || t.Date.After(filter.EndDate) {
			continue
		}
		if filter.CategoryID != nil {
			if t.CategoryID == nil || *t.CategoryID != *filter.CategoryID {
				continue
			}
		}
		if filter.AccountID != nil && t.AccountID != *filter.AccountID {
			continue
		}
		total = total.Add(t.Amount)
	}
	return total, nil
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[string]*domain.Category
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make(map[string]*domain.Category)}
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	m.Categories[category.ID] = category
}

// Create creates a new category
func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	category.ID = uuid.New().String()
	m.Categories[category.ID] = category
	return category, nil
}

// CreateMany creates multiple categories
func (m *MockCategoryRepository) CreateMany(ctx context.Context, categories []*domain.Category) ([]*domain.Category, error) {
	for _, c := range categories {
		c.ID = uuid.New().String()
		m.Categories[c.ID] = c
	}
	return categories, nil
}

// GetByID retrieves a category by ID
func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if category, ok := m.Categories[id]; ok {
		return category, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAll retrieves all categories sorted by order
func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]*domain.Category, error) {
	categories := make([]*domain.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Order < categories[j].Order })
	return categories, nil
}

// DeleteAll removes every category
func (m *MockCategoryRepository) DeleteAll(ctx context.Context) error {
	m.Categories = make(map[string]*domain.Category)
	return nil
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets map[string]*domain.Budget
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{Budgets: make(map[string]*domain.Budget)}
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	m.Budgets[budget.ID] = budget
}

// Create creates a new budget
func (m *MockBudgetRepository) Create(ctx context.Context, budget *domain.Budget) (*domain.Budget, error) {
	budget.ID = uuid.New().String()
	m.Budgets[budget.ID] = budget
	return budget, nil
}

// GetByID retrieves a budget by ID
func (m *MockBudgetRepository) GetByID(ctx context.Context, id string) (*domain.Budget, error) {
	if budget, ok := m.Budgets[id]; ok {
		return budget, nil
	}
	return nil, domain.ErrBudgetNotFound
}

// GetAll retrieves all budgets
func (m *MockBudgetRepository) GetAll(ctx context.Context) ([]*domain.Budget, error) {
	budgets := make([]*domain.Budget, 0, len(m.Budgets))
	for _, b := range m.Budgets {
		budgets = append(budgets, b)
	}
	sort.Slice(budgets, func(i, j int) bool { return budgets[i].CreatedAt.Before(budgets[j].CreatedAt) })
	return budgets, nil
}

// Update replaces a budget's fields
func (m *MockBudgetRepository) Update(ctx context.Context, id string, budget *domain.Budget) (*domain.Budget, error) {
	if _, ok := m.Budgets[id]; !ok {
		return nil, domain.ErrBudgetNotFound
	}
	budget.ID = id
	m.Budgets[id] = budget
	return budget, nil
}

// Delete removes a budget
func (m *MockBudgetRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Budgets[id]; !ok {
		return domain.ErrBudgetNotFound
	}
	delete(m.Budgets, id)
	return nil
}

// CreateMany creates multiple budgets
func (m *MockBudgetRepository) CreateMany(ctx context.Context, budgets []*domain.Budget) ([]*domain.Budget, error) {
	for _, b := range budgets {
		b.ID = uuid.New().String()
		m.Budgets[b.ID] = b
	}
	return budgets, nil
}

// MockGoalRepository is a mock implementation of domain.GoalRepository
type MockGoalRepository struct {
	Goals map[string]*domain.Goal
}

// NewMockGoalRepository creates a new MockGoalRepository
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{Goals: make(map[string]*domain.Goal)}
}

// Create creates a new goal
func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	goal.ID = uuid.New().String()
	m.Goals[goal.ID] = goal
	return goal, nil
}

// GetByID retrieves a goal by ID
func (m *MockGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	if goal, ok := m.Goals[id]; ok {
		return goal, nil
	}
	return nil, domain.ErrGoalNotFound
}

// GetAll retrieves all goals
func (m *MockGoalRepository) GetAll(ctx context.Context) ([]*domain.Goal, error) {
	goals := make([]*domain.Goal, 0, len(m.Goals))
	for _, g := range m.Goals {
		goals = append(goals, g)
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].CreatedAt.Before(goals[j].CreatedAt) })
	return goals, nil
}

// Update replaces a goal's fields
func (m *MockGoalRepository) Update(ctx context.Context, id string, goal *domain.Goal) (*domain.Goal, error) {
	if _, ok := m.Goals[id]; !ok {
		return nil, domain.ErrGoalNotFound
	}
	goal.ID = id
	m.Goals[id] = goal
	return goal, nil
}

// Delete removes a goal
func (m *MockGoalRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Goals[id]; !ok {
		return domain.ErrGoalNotFound
	}
	delete(m.Goals, id)
	return nil
}

// CreateMany creates multiple goals
func (m *MockGoalRepository) CreateMany(ctx context.Context, goals []*domain.Goal) ([]*domain.Goal, error) {
	for _, g := range goals {
		g.ID = uuid.New().String()
		m.Goals[g.ID] = g
	}
	return goals, nil
}

// MockEventRepository is a mock implementation of domain.EventRepository
type MockEventRepository struct {
	Events map[string]*domain.Event
}

// NewMockEventRepository creates a new MockEventRepository
func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{Events: make(map[string]*domain.Event)}
}

// Create creates a new event
func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	event.ID = uuid.New().String()
	m.Events[event.ID] = event
	return event, nil
}

// GetByID retrieves an event by ID
func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if event, ok := m.Events[id]; ok {
		return event, nil
	}
	return nil, domain.ErrEventNotFound
}

// Find lists events whose start time falls in the filter range
func (m *MockEventRepository) Find(ctx context.Context, filters *domain.EventFilters) ([]*domain.Event, error) {
	if filters == nil {
		filters = &domain.EventFilters{}
	}
	var events []*domain.Event
	for _, e := range m.Events {
		if filters.StartDate != nil && e.StartTime.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && e.StartTime.After(*filters.EndDate) {
			continue
		}
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartTime.Before(events[j].StartTime) })
	return events, nil
}

// Update replaces an event's fields
func (m *MockEventRepository) Update(ctx context.Context, id string, event *domain.Event) (*domain.Event, error) {
	if _, ok := m.Events[id]; !ok {
		return nil, domain.ErrEventNotFound
	}
	event.ID = id
	m.Events[id] = event
	return event, nil
}

// Delete removes an event
func (m *MockEventRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(m.Events, id)
	return nil
}
