package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/testutil"
)

func TestGetCategories_SeedsWhenEmpty(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	tree, err := categoryService.GetCategories(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(tree) == 0 {
		t.Fatal("Expected seeded category roots")
	}

	for _, root := range tree {
		if root.ParentID != nil {
			t.Errorf("Expected root %s to have no parent", root.Name)
		}
		for _, child := range root.Children {
			if child.ParentID == nil || *child.ParentID != root.ID {
				t.Errorf("Expected child %s to reference root %s", child.Name, root.Name)
			}
			if child.Type != root.Type {
				t.Errorf("Expected child %s to share the root type", child.Name)
			}
		}
	}
}

func TestGetCategories_HasBothTypes(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	tree, err := categoryService.GetCategories(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	types := make(map[domain.CategoryType]int)
	for _, root := range tree {
		types[root.Type]++
	}
	if types[domain.CategoryTypeExpense] == 0 {
		t.Error("Expected expense roots in the seed")
	}
	if types[domain.CategoryTypeIncome] == 0 {
		t.Error("Expected income roots in the seed")
	}
}

func TestGetFlatCategories_ReturnsAllEntries(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	flat, err := categoryService.GetFlatCategories(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	tree, err := categoryService.GetCategories(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	total := 0
	for _, root := range tree {
		total += 1 + len(root.Children)
	}
	if len(flat) != total {
		t.Errorf("Expected %d flat categories, got %d", total, len(flat))
	}
}

func TestResetCategories_ReplacesExisting(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryService := NewCategoryService(categoryRepo)

	categoryRepo.AddCategory(&domain.Category{ID: "custom", Name: "Custom", Type: domain.CategoryTypeExpense})

	tree, err := categoryService.ResetCategories(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for _, root := range tree {
		if root.Name == "Custom" {
			t.Error("Expected custom category to be removed by reset")
		}
	}
	if _, err := categoryService.GetCategoryByID(context.Background(), "custom"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound after reset, got %v", err)
	}
}
