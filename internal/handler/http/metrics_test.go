package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMetricsMiddlewarePassesThrough(t *testing.T) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		if _, err := w.Write([]byte(`{"id":"abc"}`)); err != nil {
			t.Fatal(err)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(`{"title":"x"}`))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Code = %d, want 201", w.Code)
	}
	if w.Body.String() != `{"id":"abc"}` {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestMetricsHandlerServesPrometheusFormat(t *testing.T) {
	// Exercise the middleware once so at least one series exists
	mw := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	seed := httptest.NewRequest(http.MethodGet, "/api/articles/68b1f0c2e4a1b2c3d4e5f607", nil)
	mw.ServeHTTP(httptest.NewRecorder(), seed)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "http_requests_total") {
		t.Error("metrics output missing http_requests_total")
	}
	// Normalized path keeps cardinality bounded
	if strings.Contains(body, "68b1f0c2e4a1b2c3d4e5f607") {
		t.Error("raw id leaked into metrics labels")
	}
}
