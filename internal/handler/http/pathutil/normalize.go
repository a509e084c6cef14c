package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	// Article routes with hex object ids
	{Pattern: regexp.MustCompile(`^/api/articles/[0-9a-fA-F]+$`), Template: "/api/articles/:id"},

	// Malformed id segments still collapse into one label
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+$`), Template: "/api/articles/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with ids (e.g., /api/articles/68b1f0c2...) to template format
// (e.g., /api/articles/:id). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/articles/68b1f0c2e4a1")  // "/api/articles/:id"
//	NormalizePath("/api/articles")               // "/api/articles" (unchanged)
//	NormalizePath("/api/seed")                   // "/api/seed" (unchanged)
//	NormalizePath("/metrics")                    // "/metrics" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/api/articles/abc?x=1")       // "/api/articles/:id"
//	NormalizePath("/api/articles/abc/")          // "/api/articles/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found, return original path
	return path
}
