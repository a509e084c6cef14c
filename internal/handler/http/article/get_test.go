package article

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mystical-api/internal/repository"
)

/* ───────── テストケース ───────── */

func TestGetHandlerFound(t *testing.T) {
	repo := &stubRepo{getDoc: repository.Document{
		"_id":      "0123456789abcdef01234567",
		"title":    "The Many Faces of Athena",
		"category": "mythology",
	}}
	h := GetHandler{newStubService(repo)}

	req := httptest.NewRequest(http.MethodGet, "/api/articles/0123456789abcdef01234567", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200: %s", w.Code, w.Body.String())
	}

	var doc map[string]any
	if err := json.NewDecoder(w.Body).Decode(&doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc["id"] != "0123456789abcdef01234567" {
		t.Errorf("id = %v", doc["id"])
	}
	if doc["title"] != "The Many Faces of Athena" {
		t.Errorf("title = %v", doc["title"])
	}
}

func TestGetHandlerMalformedID(t *testing.T) {
	h := GetHandler{newStubService(&stubRepo{getErr: repository.ErrInvalidID})}

	req := httptest.NewRequest(http.MethodGet, "/api/articles/not-hex", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want 400", w.Code)
	}
}

func TestGetHandlerMissingIDSegment(t *testing.T) {
	h := GetHandler{newStubService(&stubRepo{})}

	req := httptest.NewRequest(http.MethodGet, "/api/articles/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want 400", w.Code)
	}
}

func TestGetHandlerNotFound(t *testing.T) {
	h := GetHandler{newStubService(&stubRepo{getErr: repository.ErrNotFound})}

	req := httptest.NewRequest(http.MethodGet, "/api/articles/0123456789abcdef01234567", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Code = %d, want 404", w.Code)
	}
}

func TestGetHandlerStoreFailure(t *testing.T) {
	h := GetHandler{newStubService(&stubRepo{getErr: repository.ErrStoreUnavailable})}

	req := httptest.NewRequest(http.MethodGet, "/api/articles/0123456789abcdef01234567", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Code = %d, want 500", w.Code)
	}
}
