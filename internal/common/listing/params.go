package listing

import (
	"fmt"
	"net/http"
	"strconv"

	"mystical-api/internal/pkg/search"
)

// Params represents listing query parameters from an HTTP request.
type Params struct {
	Category string // optional exact-match category filter
	Keyword  string // optional case-insensitive title keyword
	Limit    int    // result-count cap
}

// ParseQueryParams parses listing parameters from the HTTP request query string.
//
// Query parameters:
//   - category: optional category filter, passed through as-is
//   - q: optional title keyword, capped at search.DefaultMaxKeywordLength
//   - limit: result-count cap (must be between 1 and config.MaxLimit)
//
// A limit outside [1, MaxLimit] or an over-long keyword is a caller-side
// input error and is rejected here, before any store access.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Category: r.URL.Query().Get("category"),
		Keyword:  r.URL.Query().Get("q"),
		Limit:    config.DefaultLimit,
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return params, fmt.Errorf("invalid query parameter: limit must be an integer")
		}
		params.Limit = limit
	}

	if err := params.Validate(config); err != nil {
		return params, err
	}
	return params, nil
}

// Validate validates listing parameters against the configuration.
// Returns an error if limit is outside [1, config.MaxLimit] or the keyword
// exceeds the length cap.
func (p Params) Validate(config Config) error {
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
	}
	return search.ValidateKeyword(p.Keyword)
}
