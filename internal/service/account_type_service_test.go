package service

import (
	"context"
	"testing"

	"github.com/lifeos-app/lifeos-backend/internal/testutil"
)

func TestGetAccountTypes_SeedsWhenEmpty(t *testing.T) {
	accountTypeRepo := testutil.NewMockAccountTypeRepository()
	accountTypeService := NewAccountTypeService(accountTypeRepo)

	types, err := accountTypeService.GetAccountTypes(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(types) != 11 {
		t.Fatalf("Expected 11 seeded account types, got %d", len(types))
	}

	codes := make(map[string]bool)
	for _, at := range types {
		if at.Code == "" || at.Name == "" {
			t.Errorf("Expected code and name on every type, got %+v", at)
		}
		if codes[at.Code] {
			t.Errorf("Expected unique codes, duplicate %s", at.Code)
		}
		codes[at.Code] = true
	}
}

func TestGetAccountTypes_DoesNotReseed(t *testing.T) {
	accountTypeRepo := testutil.NewMockAccountTypeRepository()
	accountTypeService := NewAccountTypeService(accountTypeRepo)

	if _, err := accountTypeService.GetAccountTypes(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	types, err := accountTypeService.GetAccountTypes(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(types) != 11 {
		t.Errorf("Expected 11 types after reread, got %d", len(types))
	}
}
