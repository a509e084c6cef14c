// Package http provides HTTP handlers and middleware for the content API.
// It includes article handlers, diagnostics and health check endpoints,
// metrics collection, and various middleware components.
package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"mystical-api/internal/handler/http/respond"
	"mystical-api/internal/infra/db"
)

// RootHandler handles requests to the API root.
// It returns a short liveness message regardless of store state.
type RootHandler struct{}

// ServeHTTP writes the welcome message.
//
//	@Summary		API root
//	@Description	Returns a short message confirming the API is running
//	@Tags			diagnostics
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/ [get]
func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "Mystical Content API is running",
	})
}

// TestResponse represents the JSON response of the diagnostics endpoint.
type TestResponse struct {
	Status      string   `json:"status"`                // always "ok": the process itself is up
	Timestamp   string   `json:"timestamp"`             // ISO 8601 format
	Store       string   `json:"store"`                 // "connected" or "unavailable"
	Database    string   `json:"database,omitempty"`    // configured database name
	Collections []string `json:"collections,omitempty"` // visible collection names
}

// TestHandler handles the connectivity diagnostics endpoint.
// It ALWAYS returns 200: store problems are reported in the body,
// never as a failed request.
type TestHandler struct {
	Store *db.Store
}

// ServeHTTP reports store connectivity without ever failing the request.
//
//	@Summary		Connectivity diagnostics
//	@Description	Reports document store connectivity; returns 200 even when the store is down
//	@Tags			diagnostics
//	@Produce		json
//	@Success		200	{object}	TestResponse
//	@Router			/test [get]
func (h *TestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := TestResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Store:     "unavailable",
	}

	if h.Store != nil && h.Store.Available() {
		if err := h.Store.Ping(ctx); err == nil {
			resp.Store = "connected"
			resp.Database = h.Store.Name()
			// コレクション一覧の取得失敗は無視する（診断情報なので）
			if names, err := h.Store.CollectionNames(ctx, 25); err == nil {
				resp.Collections = names
			}
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

// HealthResponse represents the JSON response for the health check endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// HealthHandler handles health check endpoint requests.
// Unlike TestHandler it signals store failure through the status code,
// for use by load balancers and orchestration.
type HealthHandler struct {
	Store   *db.Store
	Version string
}

// ServeHTTP performs health checks and returns the application health status.
// Returns 200 OK if healthy, or 503 Service Unavailable if the store check fails.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	// ドキュメントストア接続チェック
	storeCheck := h.checkStore(ctx)
	checks["document_store"] = storeCheck
	if storeCheck.Status == "unhealthy" {
		allHealthy = false
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) CheckStatus {
	if h.Store == nil || !h.Store.Available() {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "not configured",
		}
	}

	if err := h.Store.Ping(ctx); err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: respond.SanitizeError(err),
		}
	}

	return CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"database": h.Store.Name(),
		},
	}
}

// ReadyHandler handles Kubernetes readiness probe requests.
// It reports ready only when the document store answers a ping.
type ReadyHandler struct {
	Store *db.Store
}

// ServeHTTP performs readiness checks and returns 200 OK if ready,
// or 503 Service Unavailable if the store is not reachable.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Store == nil || !h.Store.Available() {
		http.Error(w, "document store not configured", http.StatusServiceUnavailable)
		return
	}

	if err := h.Store.Ping(ctx); err != nil {
		http.Error(w, "document store not ready: "+respond.SanitizeError(err), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		log.Printf("ready: failed to write response: %v", err)
	}
}

// LiveHandler handles Kubernetes liveness probe requests.
// It performs a lightweight check to verify the application is responsive.
type LiveHandler struct{}

// ServeHTTP performs a simple liveness check and always returns 200 OK
// if the application is running and able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		log.Printf("alive: failed to write response: %v", err)
	}
}
