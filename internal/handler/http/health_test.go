package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mystical-api/internal/infra/db"
)

func TestRootHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	(&RootHandler{}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Mystical Content API is running" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestTestHandlerAlwaysReturns200(t *testing.T) {
	tests := []struct {
		name  string
		store *db.Store
	}{
		{"nil store", nil},
		{"unconfigured store", &db.Store{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			(&TestHandler{Store: tt.store}).ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("Code = %d, want 200 even when the store is down", w.Code)
			}

			var body TestResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != "ok" {
				t.Errorf("status = %q, want ok", body.Status)
			}
			if body.Store != "unavailable" {
				t.Errorf("store = %q, want unavailable", body.Store)
			}
			if body.Timestamp == "" {
				t.Error("timestamp missing")
			}
		})
	}
}

func TestHealthHandlerUnavailableStore(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	(&HealthHandler{Store: &db.Store{}, Version: "test"}).ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("Code = %d, want 503", w.Code)
	}

	var body HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "unhealthy" {
		t.Errorf("status = %q, want unhealthy", body.Status)
	}
	if body.Checks["document_store"].Status != "unhealthy" {
		t.Errorf("document_store check = %+v", body.Checks["document_store"])
	}
}

func TestReadyHandlerUnavailableStore(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()

	(&ReadyHandler{Store: &db.Store{}}).ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Code = %d, want 503", w.Code)
	}
}

func TestLiveHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	w := httptest.NewRecorder()

	(&LiveHandler{}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Code = %d, want 200", w.Code)
	}
	if w.Body.String() != "alive" {
		t.Errorf("body = %q, want alive", w.Body.String())
	}
}
