// Package listing provides parsing and validation for the article listing
// query parameters: the optional category and keyword filters plus the
// result-count cap.
package listing

import (
	"os"
	"strconv"
)

// Config holds listing configuration settings.
type Config struct {
	DefaultLimit int // Default result count when the caller omits limit
	MaxLimit     int // Maximum allowed result count
}

// DefaultConfig returns the default listing configuration.
// Default values: limit=50, max=100
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 50,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads listing config from environment variables.
// Supported environment variables:
//   - LISTING_DEFAULT_LIMIT: Default result count
//   - LISTING_MAX_LIMIT: Maximum result count
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultLimit: getEnvAsInt("LISTING_DEFAULT_LIMIT", 50),
		MaxLimit:     getEnvAsInt("LISTING_MAX_LIMIT", 100),
	}
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
