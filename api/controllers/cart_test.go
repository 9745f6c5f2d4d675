package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/sundrymarket/storefront/api/middleware"
	cartsvc "github.com/sundrymarket/storefront/internal/cart"
	catalogsvc "github.com/sundrymarket/storefront/internal/catalog"
	"github.com/sundrymarket/storefront/pkg/enums"
	pkgerrors "github.com/sundrymarket/storefront/pkg/errors"
	"github.com/sundrymarket/storefront/pkg/storage"
	"github.com/sundrymarket/storefront/pkg/types"
)

type cartEnvelope struct {
	Data struct {
		Lines      []cartsvc.Line `json:"lines"`
		TotalItems int            `json:"total_items"`
		TotalPrice int64          `json:"total_price"`
		Signal     *types.Signal  `json:"signal"`
	} `json:"data"`
}

func newTestCartManager(t *testing.T) *cartsvc.Manager {
	t.Helper()
	manager, err := cartsvc.NewManager(cartsvc.ManagerParams{Store: storage.NewMemoryStore()})
	if err != nil {
		t.Fatalf("build manager: %v", err)
	}
	return manager
}

func withSession(handler http.HandlerFunc) http.Handler {
	return middleware.Session(nil)(handler)
}

func newCartTestRouter(manager *cartsvc.Manager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Session(nil))
	r.Patch("/cart/items/{productID}", UpdateCartItem(manager, nil))
	r.Delete("/cart/items/{productID}", RemoveCartItem(manager, nil))
	return r
}

func doCartRequest(t *testing.T, handler http.Handler, method, target, session, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if session != "" {
		req.Header.Set("X-Session-Id", session)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartEnvelope {
	t.Helper()
	var envelope cartEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode cart response: %v", err)
	}
	return envelope
}

func TestGetCartRequiresSession(t *testing.T) {
	handler := withSession(GetCart(newTestCartManager(t), nil))

	rec := doCartRequest(t, handler, http.MethodGet, "/cart", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAddCartItemResolvesSnapshot(t *testing.T) {
	manager := newTestCartManager(t)
	catalog := &stubCatalogService{product: &catalogsvc.DisplayProduct{
		ID:             "p-1",
		Name:           "Oak Table",
		EffectivePrice: 38000,
		OriginalPrice:  45000,
		Stock:          3,
	}}
	handler := withSession(AddCartItem(manager, catalog, nil))

	rec := doCartRequest(t, handler, http.MethodPost, "/cart/items", "s-1", `{"product_id":"p-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	envelope := decodeCart(t, rec)
	if len(envelope.Data.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(envelope.Data.Lines))
	}
	line := envelope.Data.Lines[0]
	if line.UnitPrice != 38000 || line.OriginalUnitPrice == nil || *line.OriginalUnitPrice != 45000 {
		t.Fatalf("unexpected line prices %+v", line)
	}
	if line.StockCeiling != 3 {
		t.Fatalf("expected stock ceiling 3, got %d", line.StockCeiling)
	}
	if envelope.Data.Signal == nil || envelope.Data.Signal.Kind != enums.SignalKindSuccess {
		t.Fatalf("expected success signal, got %+v", envelope.Data.Signal)
	}
}

func TestAddCartItemStockRejectionAnswers200(t *testing.T) {
	manager := newTestCartManager(t)
	catalog := &stubCatalogService{product: &catalogsvc.DisplayProduct{
		ID:             "p-1",
		Name:           "Oak Table",
		EffectivePrice: 38000,
		OriginalPrice:  38000,
		Stock:          1,
	}}
	handler := withSession(AddCartItem(manager, catalog, nil))

	doCartRequest(t, handler, http.MethodPost, "/cart/items", "s-1", `{"product_id":"p-1"}`)
	rec := doCartRequest(t, handler, http.MethodPost, "/cart/items", "s-1", `{"product_id":"p-1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for a rejected add, got %d", rec.Code)
	}
	envelope := decodeCart(t, rec)
	if envelope.Data.Signal == nil || envelope.Data.Signal.Kind != enums.SignalKindError {
		t.Fatalf("expected error signal, got %+v", envelope.Data.Signal)
	}
	if envelope.Data.TotalItems != 1 {
		t.Fatalf("rejected add must not change the cart, got %d items", envelope.Data.TotalItems)
	}
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	manager := newTestCartManager(t)
	catalog := &stubCatalogService{productErr: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := withSession(AddCartItem(manager, catalog, nil))

	rec := doCartRequest(t, handler, http.MethodPost, "/cart/items", "s-1", `{"product_id":"ghost"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	manager := newTestCartManager(t)
	catalog := &stubCatalogService{product: &catalogsvc.DisplayProduct{
		ID:             "p-1",
		Name:           "Oak Table",
		EffectivePrice: 38000,
		OriginalPrice:  38000,
		Stock:          5,
	}}

	addHandler := withSession(AddCartItem(manager, catalog, nil))
	doCartRequest(t, addHandler, http.MethodPost, "/cart/items", "s-1", `{"product_id":"p-1"}`)

	router := newCartTestRouter(manager)

	rec := doCartRequest(t, router, http.MethodPatch, "/cart/items/p-1", "s-1", `{"quantity":4}`)
	envelope := decodeCart(t, rec)
	if envelope.Data.TotalItems != 4 {
		t.Fatalf("expected 4 items, got %d", envelope.Data.TotalItems)
	}

	rec = doCartRequest(t, router, http.MethodPatch, "/cart/items/p-1", "s-1", `{"quantity":0}`)
	envelope = decodeCart(t, rec)
	if len(envelope.Data.Lines) != 0 {
		t.Fatalf("expected quantity 0 to remove the line, got %+v", envelope.Data.Lines)
	}

	rec = doCartRequest(t, router, http.MethodDelete, "/cart/items/p-1", "s-1", "")
	envelope = decodeCart(t, rec)
	if envelope.Data.Signal == nil || envelope.Data.Signal.Kind != enums.SignalKindInfo {
		t.Fatalf("expected info signal for absent line, got %+v", envelope.Data.Signal)
	}
}

func TestClearCart(t *testing.T) {
	manager := newTestCartManager(t)
	catalog := &stubCatalogService{product: &catalogsvc.DisplayProduct{
		ID:             "p-1",
		Name:           "Oak Table",
		EffectivePrice: 38000,
		OriginalPrice:  38000,
		Stock:          5,
	}}

	addHandler := withSession(AddCartItem(manager, catalog, nil))
	doCartRequest(t, addHandler, http.MethodPost, "/cart/items", "s-1", `{"product_id":"p-1"}`)

	handler := withSession(ClearCart(manager, nil))
	rec := doCartRequest(t, handler, http.MethodDelete, "/cart", "s-1", "")
	envelope := decodeCart(t, rec)
	if envelope.Data.TotalItems != 0 {
		t.Fatalf("expected empty cart, got %d items", envelope.Data.TotalItems)
	}
}
