package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. It has no side effects on other entities.
type Goal struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Saved     decimal.Decimal `json:"saved"`
	Target    decimal.Decimal `json:"target"`
	Deadline  time.Time       `json:"deadline"`
	Color     string          `json:"color"`
	Icon      string          `json:"icon"`
	Note      *string         `json:"note,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) (*Goal, error)
	GetByID(ctx context.Context, id string) (*Goal, error)
	GetAll(ctx context.Context) ([]*Goal, error)
	Update(ctx context.Context, id string, goal *Goal) (*Goal, error)
	Delete(ctx context.Context, id string) error
	CreateMany(ctx context.Context, goals []*Goal) ([]*Goal, error)
}
