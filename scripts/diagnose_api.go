package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// EndpointDiagnostic represents the diagnostic result for a single endpoint
type EndpointDiagnostic struct {
	Path         string `json:"path"`
	Status       string `json:"status"` // "OK", "HTTP_ERROR", "DECODE_ERROR", "TIMEOUT"
	HTTPCode     int    `json:"http_code"`
	ItemCount    int    `json:"item_count,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	ResponseTime int64  `json:"response_time_ms"`
}

func main() {
	baseURL := os.Getenv("API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := &http.Client{Timeout: 10 * time.Second}

	paths := []string{
		"/",
		"/test",
		"/health",
		"/api/articles",
		"/api/articles?category=history",
		"/api/articles?q=athena",
	}

	results := make([]EndpointDiagnostic, 0, len(paths))
	okCount := 0

	for _, path := range paths {
		diag := probe(client, baseURL, path)
		if diag.Status == "OK" {
			okCount++
		}
		results = append(results, diag)
		fmt.Printf("[%s] %s (%d, %dms)\n", diag.Status, diag.Path, diag.HTTPCode, diag.ResponseTime)
		if diag.ErrorMessage != "" {
			fmt.Printf("        %s\n", diag.ErrorMessage)
		}
	}

	fmt.Printf("\n%d/%d endpoints OK\n", okCount, len(paths))

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal results: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("api_diagnostics.json", out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("report written to api_diagnostics.json")

	if okCount != len(paths) {
		os.Exit(1)
	}
}

func probe(client *http.Client, baseURL, path string) EndpointDiagnostic {
	diag := EndpointDiagnostic{Path: path}

	start := time.Now()
	resp, err := client.Get(baseURL + path)
	diag.ResponseTime = time.Since(start).Milliseconds()
	if err != nil {
		diag.Status = "TIMEOUT"
		if !strings.Contains(err.Error(), "Timeout") {
			diag.Status = "HTTP_ERROR"
		}
		diag.ErrorMessage = err.Error()
		return diag
	}
	defer func() { _ = resp.Body.Close() }()

	diag.HTTPCode = resp.StatusCode
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = err.Error()
		return diag
	}

	if resp.StatusCode != http.StatusOK {
		diag.Status = "HTTP_ERROR"
		diag.ErrorMessage = strings.TrimSpace(string(body))
		return diag
	}

	// 記事一覧は件数も数える
	if strings.HasPrefix(path, "/api/articles") {
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			diag.Status = "DECODE_ERROR"
			diag.ErrorMessage = err.Error()
			return diag
		}
		diag.ItemCount = len(items)
	} else if !json.Valid(body) {
		diag.Status = "DECODE_ERROR"
		diag.ErrorMessage = "response is not valid JSON"
		return diag
	}

	diag.Status = "OK"
	return diag
}
