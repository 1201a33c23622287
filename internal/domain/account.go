package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	// AccountKindStandard is a regular account holding a balance.
	AccountKindStandard AccountKind = "standard"
	// AccountKindAdd is the "add account" placeholder tile the client renders
	// at the end of the account list. It never participates in postings.
	AccountKindAdd AccountKind = "add"
)

type Account struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Color     string          `json:"color"`
	IsLocked  bool            `json:"isLocked"`
	Type      AccountKind     `json:"type"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// AccountType is a display taxonomy for accounts (cash, credit card, ...).
type AccountType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// AccountUpdate carries the client-editable account fields. Balance is
// deliberately absent: it is owned by the ledger engine after creation.
type AccountUpdate struct {
	Name     *string
	Color    *string
	IsLocked *bool
	Type     *AccountKind
}

type AccountRepository interface {
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	GetAll(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, id string, update *AccountUpdate) (*Account, error)
	Delete(ctx context.Context, id string) error
	// IncrementBalance adds delta (which may be negative) to the account
	// balance. It must observe a unit-of-work context.
	IncrementBalance(ctx context.Context, id string, delta decimal.Decimal) error
	CreateMany(ctx context.Context, accounts []*Account) ([]*Account, error)
}

type AccountTypeRepository interface {
	GetAll(ctx context.Context) ([]*AccountType, error)
	CreateMany(ctx context.Context, types []*AccountType) ([]*AccountType, error)
}
