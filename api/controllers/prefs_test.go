package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	prefssvc "github.com/sundrymarket/storefront/internal/prefs"
	"github.com/sundrymarket/storefront/pkg/enums"
	"github.com/sundrymarket/storefront/pkg/storage"
)

func newTestPrefs(t *testing.T) prefssvc.Service {
	t.Helper()
	svc, err := prefssvc.NewService(context.Background(), prefssvc.ServiceParams{Store: storage.NewMemoryStore()})
	if err != nil {
		t.Fatalf("build prefs service: %v", err)
	}
	return svc
}

func TestSetLanguage(t *testing.T) {
	svc := newTestPrefs(t)
	handler := SetLanguage(svc, nil)

	req := httptest.NewRequest(http.MethodPut, "/prefs/language", bytes.NewBufferString(`{"language":"es"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data prefssvc.Snapshot `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Language != enums.LanguageSpanish {
		t.Fatalf("expected language es, got %q", envelope.Data.Language)
	}
}

func TestSetLanguageRejectsUnknown(t *testing.T) {
	handler := SetLanguage(newTestPrefs(t), nil)

	req := httptest.NewRequest(http.MethodPut, "/prefs/language", bytes.NewBufferString(`{"language":"fr"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestSetOrderPhoneValidatesBody(t *testing.T) {
	handler := SetOrderPhone(newTestPrefs(t), nil)

	req := httptest.NewRequest(http.MethodPut, "/prefs/order-phone", bytes.NewBufferString(`{"phone":"12"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
