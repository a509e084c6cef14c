package pathutil

import (
	"errors"
	"strings"
)

// ErrMissingID is returned when the URL path carries no id segment.
var ErrMissingID = errors.New("missing id")

// ExtractID extracts a document id from a URL path.
// It removes the specified prefix and returns the remaining string.
// The id is NOT validated here; whether it is a well-formed object id
// is decided by the persistence layer.
//
// Example:
//
//	id, err := ExtractID("/api/articles/68b1f0c2e4a1", "/api/articles/")
//	// Returns: "68b1f0c2e4a1", nil
func ExtractID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	id = strings.TrimSuffix(id, "/")
	if id == "" || strings.Contains(id, "/") {
		return "", ErrMissingID
	}
	return id, nil
}
