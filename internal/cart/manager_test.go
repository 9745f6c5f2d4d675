package cart

import (
	"context"
	"testing"

	pkgerrors "github.com/sundrymarket/storefront/pkg/errors"
	"github.com/sundrymarket/storefront/pkg/storage"
)

func TestManagerRequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := NewManager(ManagerParams{}); err == nil {
		t.Fatal("expected error without store")
	}
}

func TestManagerRejectsEmptySession(t *testing.T) {
	t.Parallel()

	manager, err := NewManager(ManagerParams{Store: storage.NewMemoryStore()})
	if err != nil {
		t.Fatalf("build manager: %v", err)
	}

	_, err = manager.Get(context.Background(), "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestManagerCachesAndIsolatesSessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	manager, err := NewManager(ManagerParams{Store: storage.NewMemoryStore()})
	if err != nil {
		t.Fatalf("build manager: %v", err)
	}

	first, err := manager.Get(ctx, "session-1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	again, err := manager.Get(ctx, "session-1")
	if err != nil {
		t.Fatalf("get cart again: %v", err)
	}
	if first != again {
		t.Fatal("expected the same cart instance per session")
	}

	first.Add(ctx, AddItemInput{ProductID: "a", Title: "A", UnitPrice: 100, StockCeiling: 5})

	other, err := manager.Get(ctx, "session-2")
	if err != nil {
		t.Fatalf("get other cart: %v", err)
	}
	if other.TotalItems() != 0 {
		t.Fatal("sessions must not share cart state")
	}
}
