package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cartsvc "github.com/sundrymarket/storefront/internal/cart"
	catalogsvc "github.com/sundrymarket/storefront/internal/catalog"
	contentsvc "github.com/sundrymarket/storefront/internal/content"
	prefssvc "github.com/sundrymarket/storefront/internal/prefs"
	"github.com/sundrymarket/storefront/pkg/config"
	"github.com/sundrymarket/storefront/pkg/enums"
	"github.com/sundrymarket/storefront/pkg/storage"
)

type fixtureSource struct {
	snap catalogsvc.Snapshot
}

func (f *fixtureSource) Load(context.Context) (*catalogsvc.Snapshot, error) {
	snap := f.snap
	return &snap, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
	}

	store := storage.NewMemoryStore()

	source := &fixtureSource{snap: catalogsvc.Snapshot{
		Products: []catalogsvc.Product{
			{
				ID:          "p-1",
				Title:       "Oak Table",
				CategoryID:  "c-kitchen",
				RetailPrice: 45000,
				Stock:       8,
				Rating:      4.5,
				Status:      enums.ProductStatusActive,
				CreatedAt:   time.Now().Add(-48 * time.Hour),
			},
		},
		Categories: []catalogsvc.Category{
			{ID: "c-kitchen", Name: "Kitchen", Slug: "kitchen", Status: enums.CategoryStatusActive, SortOrder: 1},
		},
	}}

	catalogService, err := catalogsvc.NewService(catalogsvc.ServiceParams{Source: source})
	if err != nil {
		t.Fatalf("build catalog service: %v", err)
	}
	if err := catalogService.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh catalog: %v", err)
	}

	carts, err := cartsvc.NewManager(cartsvc.ManagerParams{Store: store})
	if err != nil {
		t.Fatalf("build cart manager: %v", err)
	}

	prefsService, err := prefssvc.NewService(context.Background(), prefssvc.ServiceParams{Store: store})
	if err != nil {
		t.Fatalf("build prefs service: %v", err)
	}

	contentService, err := contentsvc.NewService("")
	if err != nil {
		t.Fatalf("build content service: %v", err)
	}

	return NewRouter(RouterParams{
		Config:  cfg,
		Store:   store,
		Catalog: catalogService,
		Carts:   carts,
		Prefs:   prefsService,
		Content: contentService,
	})
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, rec.Code)
		}
	}
}

func TestRouterBrowseFlow(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?category=c-kitchen", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data catalogsvc.PageResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TotalItems != 1 {
		t.Fatalf("expected one product, got %d", envelope.Data.TotalItems)
	}
}

func TestRouterCartFlow(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"p-1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", "s-router")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cart/", nil)
	req.Header.Set("X-Session-Id", "s-router")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope struct {
		Data struct {
			TotalItems int `json:"total_items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TotalItems != 1 {
		t.Fatalf("expected one item in cart, got %d", envelope.Data.TotalItems)
	}
}

func TestRouterContentBlocks(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/content/blocks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data []contentsvc.Block `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) == 0 {
		t.Fatal("expected default content blocks")
	}
}
