package service

import (
	"context"
	"strings"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// AccountService handles account-related business logic. It owns account
// metadata only: after creation, balances are written exclusively by the
// ledger posting engine.
type AccountService struct {
	accountRepo    domain.AccountRepository
	eventPublisher websocket.EventPublisher
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *AccountService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *AccountService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// sampleAccounts is the starter set created when the store is empty. The
// trailing "add" entry is the placeholder tile the client renders.
func sampleAccounts() []*domain.Account {
	return []*domain.Account{
		{Name: "Cash", Balance: decimal.NewFromFloat(22.00), Color: "#0099EE", Type: domain.AccountKindStandard},
		{Name: "Bank", Balance: decimal.NewFromFloat(2832.91), Color: "#AA66CC", Type: domain.AccountKindStandard},
		{Name: "Cash Reserve", Balance: decimal.NewFromFloat(12200.00), Color: "#333333", Type: domain.AccountKindStandard},
		{Name: "Chalo", Balance: decimal.NewFromFloat(293.00), Color: "#FF8800", IsLocked: true, Type: domain.AccountKindStandard},
		{Color: "#0099EE", Type: domain.AccountKindAdd},
	}
}

// GetAccounts lists all accounts, seeding the sample set when empty
func (s *AccountService) GetAccounts(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return s.accountRepo.CreateMany(ctx, sampleAccounts())
	}
	return accounts, nil
}

// GetAccountByID retrieves an account by ID
func (s *AccountService) GetAccountByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

// CreateAccountInput holds the input for creating an account. Balance is
// the opening balance; clients cannot write it again afterwards.
type CreateAccountInput struct {
	Name     string
	Balance  decimal.Decimal
	Color    string
	IsLocked bool
	Type     domain.AccountKind
}

// CreateAccount creates a new account with validation
func (s *AccountService) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	kind := input.Type
	if kind == "" {
		kind = domain.AccountKindStandard
	}
	if kind != domain.AccountKindStandard && kind != domain.AccountKindAdd {
		return nil, domain.ErrInvalidInput
	}

	account, err := s.accountRepo.Create(ctx, &domain.Account{
		Name:     name,
		Balance:  input.Balance,
		Color:    input.Color,
		IsLocked: input.IsLocked,
		Type:     kind,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.AccountCreated(account))
	return account, nil
}

// UpdateAccount updates account metadata (never the balance)
func (s *AccountService) UpdateAccount(ctx context.Context, id string, update *domain.AccountUpdate) (*domain.Account, error) {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if len(trimmed) > domain.MaxNameLength {
			return nil, domain.ErrNameTooLong
		}
		update.Name = &trimmed
	}
	if update.Type != nil && *update.Type != domain.AccountKindStandard && *update.Type != domain.AccountKindAdd {
		return nil, domain.ErrInvalidInput
	}

	account, err := s.accountRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.AccountUpdated(account))
	return account, nil
}

// DeleteAccount removes an account
func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(websocket.AccountDeleted(account))
	return nil
}
