package prefs

import (
	"context"
	"testing"

	"github.com/sundrymarket/storefront/pkg/enums"
	pkgerrors "github.com/sundrymarket/storefront/pkg/errors"
	"github.com/sundrymarket/storefront/pkg/storage"
)

func TestServiceDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, err := NewService(ctx, ServiceParams{Store: storage.NewMemoryStore()})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	snap := svc.Get(ctx)
	if snap.Language != enums.DefaultLanguage {
		t.Fatalf("expected default language, got %q", snap.Language)
	}
	if snap.OrderPhone != "" {
		t.Fatalf("expected empty order phone, got %q", snap.OrderPhone)
	}
}

func TestServiceWriteThroughHydration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemoryStore()

	svc, err := NewService(ctx, ServiceParams{Store: store})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	if err := svc.SetLanguage(ctx, enums.LanguageSpanish); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if err := svc.SetOrderPhone(ctx, "+1 555 0100"); err != nil {
		t.Fatalf("set order phone: %v", err)
	}

	rebuilt, err := NewService(ctx, ServiceParams{Store: store})
	if err != nil {
		t.Fatalf("rebuild service: %v", err)
	}
	snap := rebuilt.Get(ctx)
	if snap.Language != enums.LanguageSpanish {
		t.Fatalf("expected persisted language es, got %q", snap.Language)
	}
	if snap.OrderPhone != "+1 555 0100" {
		t.Fatalf("expected persisted phone, got %q", snap.OrderPhone)
	}
}

func TestServiceRejectsUnknownLanguage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, err := NewService(ctx, ServiceParams{Store: storage.NewMemoryStore()})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	err = svc.SetLanguage(ctx, enums.Language("fr"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestServiceIgnoresCorruptStoredLanguage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Save(ctx, "prefs:language", []byte("klingon")); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	svc, err := NewService(ctx, ServiceParams{Store: store})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	if got := svc.Get(ctx).Language; got != enums.DefaultLanguage {
		t.Fatalf("expected default language, got %q", got)
	}
}

func TestServiceNotifiesSubscribers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, err := NewService(ctx, ServiceParams{Store: storage.NewMemoryStore()})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	var seen []Snapshot
	cancel := svc.Subscribe(func(s Snapshot) {
		seen = append(seen, s)
	})

	if err := svc.SetLanguage(ctx, enums.LanguageSpanish); err != nil {
		t.Fatalf("set language: %v", err)
	}
	if len(seen) != 1 || seen[0].Language != enums.LanguageSpanish {
		t.Fatalf("expected one notification with es, got %+v", seen)
	}

	cancel()
	if err := svc.SetOrderPhone(ctx, "555"); err != nil {
		t.Fatalf("set order phone: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("expected no notifications after cancel, got %d", len(seen))
	}
}
