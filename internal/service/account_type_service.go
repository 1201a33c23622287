package service

import (
	"context"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
)

// AccountTypeService serves the fixed account taxonomy
type AccountTypeService struct {
	accountTypeRepo domain.AccountTypeRepository
}

// NewAccountTypeService creates a new AccountTypeService
func NewAccountTypeService(accountTypeRepo domain.AccountTypeRepository) *AccountTypeService {
	return &AccountTypeService{accountTypeRepo: accountTypeRepo}
}

func defaultAccountTypes() []*domain.AccountType {
	return []*domain.AccountType{
		{Name: "General", Code: "general"},
		{Name: "Cash", Code: "cash"},
		{Name: "Current Account", Code: "current_account"},
		{Name: "Credit Card", Code: "credit_card"},
		{Name: "Saving Account", Code: "saving_account"},
		{Name: "Bonus", Code: "bonus"},
		{Name: "Insurance", Code: "insurance"},
		{Name: "Investment", Code: "investment"},
		{Name: "Loan", Code: "loan"},
		{Name: "Mortgage", Code: "mortgage"},
		{Name: "Account with overdraft", Code: "overdraft_account"},
	}
}

// GetAccountTypes lists all account types, seeding the default set when empty
func (s *AccountTypeService) GetAccountTypes(ctx context.Context) ([]*domain.AccountType, error) {
	types, err := s.accountTypeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return s.accountTypeRepo.CreateMany(ctx, defaultAccountTypes())
	}
	return types, nil
}
