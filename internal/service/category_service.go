package service

import (
	"context"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
)

// CategoryService serves the two-level category tree
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// seed writes the default category tree: each root first, then its children
// referencing the root's id.
func (s *CategoryService) seed(ctx context.Context) ([]*domain.Category, error) {
	var created []*domain.Category

	// Expense roots first, then income, matching the seed ordering the
	// client expects.
	for _, catType := range []domain.CategoryType{domain.CategoryTypeExpense, domain.CategoryTypeIncome} {
		order := int32(0)
		for _, parent := range defaultCategorySeed[catType] {
			parentDoc, err := s.categoryRepo.Create(ctx, &domain.Category{
				Name:  parent.name,
				Icon:  parent.icon,
				Color: parent.color,
				Type:  catType,
				Order: order,
			})
			if err != nil {
				return nil, err
			}
			order++
			created = append(created, parentDoc)

			children := make([]*domain.Category, len(parent.children))
			for i, child := range parent.children {
				parentID := parentDoc.ID
				children[i] = &domain.Category{
					Name:     child.name,
					Icon:     child.icon,
					Color:    child.color,
					Type:     catType,
					ParentID: &parentID,
					Order:    int32(i),
				}
			}
			childDocs, err := s.categoryRepo.CreateMany(ctx, children)
			if err != nil {
				return nil, err
			}
			created = append(created, childDocs...)
		}
	}
	return created, nil
}

// buildTree groups a flat category list into roots with children attached.
func buildTree(categories []*domain.Category) []*domain.CategoryNode {
	var roots []*domain.CategoryNode
	byParent := make(map[string][]*domain.Category)
	for _, c := range categories {
		if c.ParentID != nil {
			byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
		}
	}
	for _, c := range categories {
		if c.ParentID == nil {
			children := byParent[c.ID]
			if children == nil {
				children = []*domain.Category{}
			}
			roots = append(roots, &domain.CategoryNode{Category: *c, Children: children})
		}
	}
	return roots
}

// GetCategories returns the hierarchical category tree, seeding defaults
// when the store is empty
func (s *CategoryService) GetCategories(ctx context.Context) ([]*domain.CategoryNode, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		categories, err = s.seed(ctx)
		if err != nil {
			return nil, err
		}
	}
	return buildTree(categories), nil
}

// GetFlatCategories returns all categories as a flat ordered list
func (s *CategoryService) GetFlatCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return s.seed(ctx)
	}
	return categories, nil
}

// ResetCategories deletes every category and reseeds the default tree
func (s *CategoryService) ResetCategories(ctx context.Context) ([]*domain.CategoryNode, error) {
	if err := s.categoryRepo.DeleteAll(ctx); err != nil {
		return nil, err
	}
	created, err := s.seed(ctx)
	if err != nil {
		return nil, err
	}
	return buildTree(created), nil
}

// GetCategoryByID retrieves a category by ID
func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}
