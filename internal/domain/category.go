package domain

import "context"

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category is a transaction classification. Root categories have a nil
// ParentID; children reference a root's id (one level of nesting).
type Category struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Icon     string       `json:"icon"`
	Color    string       `json:"color"`
	Type     CategoryType `json:"type"`
	ParentID *string      `json:"parentId"`
	Order    int32        `json:"order"`
}

// CategoryNode is a root category with its children attached, as returned
// by the hierarchical listing.
type CategoryNode struct {
	Category
	Children []*Category `json:"children"`
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) (*Category, error)
	CreateMany(ctx context.Context, categories []*Category) ([]*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	GetAll(ctx context.Context) ([]*Category, error)
	DeleteAll(ctx context.Context) error
}
