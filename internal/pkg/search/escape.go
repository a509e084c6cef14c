// Package search provides keyword handling utilities for the article
// listing filters.
package search

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaxKeywordLength caps keyword length (in runes) to keep the
// store-side regex cheap.
const DefaultMaxKeywordLength = 100

// NormalizeKeyword trims surrounding whitespace. An empty or whitespace-only
// keyword normalizes to "", which the query builder treats as "no
// constraint" rather than matching only empty titles.
func NormalizeKeyword(keyword string) string {
	return strings.TrimSpace(keyword)
}

// ValidateKeyword rejects over-long keywords. Truncating instead would turn
// the filter into a prefix match and return titles that do not contain the
// caller's keyword, so the cap is a caller-side input error.
func ValidateKeyword(keyword string) error {
	if utf8.RuneCountInString(keyword) > DefaultMaxKeywordLength {
		return fmt.Errorf("invalid query parameter: q must be at most %d characters", DefaultMaxKeywordLength)
	}
	return nil
}

// EscapeRegex quotes regex metacharacters in a keyword so the store performs
// a literal substring match. Without this, user input like "c++" or "a.b"
// would be interpreted as a pattern.
func EscapeRegex(keyword string) string {
	return regexp.QuoteMeta(keyword)
}
