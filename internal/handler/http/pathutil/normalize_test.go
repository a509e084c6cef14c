package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"article by hex id", "/api/articles/68b1f0c2e4a1b2c3d4e5f607", "/api/articles/:id"},
		{"article by malformed id", "/api/articles/zzz", "/api/articles/:id"},
		{"article collection", "/api/articles", "/api/articles"},
		{"seed endpoint", "/api/seed", "/api/seed"},
		{"root", "/", "/"},
		{"diagnostics", "/test", "/test"},
		{"metrics", "/metrics", "/metrics"},
		{"health", "/health", "/health"},
		{"query params stripped", "/api/articles/abc?category=history", "/api/articles/:id"},
		{"trailing slash stripped", "/api/articles/abc/", "/api/articles/:id"},
		{"unknown path returned as-is", "/what/ever/123", "/what/ever/123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
