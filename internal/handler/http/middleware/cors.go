// Package middleware provides cross-cutting HTTP middleware shared by the API server.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	pkgconfig "mystical-api/pkg/config"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins.
	// The single entry "*" allows any origin (credentials disabled in that case).
	// Example: ["http://localhost:3000", "https://example.com"]
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// AllowCredentials indicates whether credentials (cookies, authorization headers) are supported.
	// Ignored when AllowedOrigins is ["*"].
	AllowCredentials bool

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	// Logger receives CORS policy decisions. Optional.
	Logger *slog.Logger
}

// DefaultCORSConfig returns a permissive configuration suitable for a
// public read-mostly API: any origin, no credentials.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}
}

// LoadCORSConfig builds a CORSConfig from environment variables, falling
// back to DefaultCORSConfig values.
//
//	CORS_ALLOWED_ORIGINS  comma-separated origins, or "*"
//	CORS_ALLOWED_METHODS  comma-separated methods
//	CORS_ALLOWED_HEADERS  comma-separated headers
//	CORS_MAX_AGE          seconds
func LoadCORSConfig() CORSConfig {
	cfg := DefaultCORSConfig()

	cfg.AllowedOrigins = pkgconfig.GetEnvList("CORS_ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.AllowedMethods = pkgconfig.GetEnvList("CORS_ALLOWED_METHODS", cfg.AllowedMethods)
	cfg.AllowedHeaders = pkgconfig.GetEnvList("CORS_ALLOWED_HEADERS", cfg.AllowedHeaders)
	if n := pkgconfig.GetEnvInt("CORS_MAX_AGE", cfg.MaxAge); n >= 0 {
		cfg.MaxAge = n
	}
	return cfg
}

func (c CORSConfig) allowAny() bool {
	return len(c.AllowedOrigins) == 1 && c.AllowedOrigins[0] == "*"
}

func (c CORSConfig) isAllowed(origin string) bool {
	if c.allowAny() {
		return true
	}
	for _, o := range c.AllowedOrigins {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// CORS returns an HTTP middleware that handles CORS for cross-origin requests.
//
// Behavior:
//   - If Origin header is empty, skip CORS processing (same-origin request)
//   - If Origin is not allowed, log warning and continue without CORS headers
//   - Preflight OPTIONS requests for allowed origins get 204 with the full
//     header set and are not passed to the next handler
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Originが無い場合は同一オリジンとみなして何もしない
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.isAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("remote_addr", r.RemoteAddr),
					)
				}
				// 許可されていないオリジンにはCORSヘッダーを付けない
				next.ServeHTTP(w, r)
				return
			}

			if config.allowAny() {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				// Echo back the request origin (required for credentials)
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if config.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				w.Header().Add("Vary", "Origin")
			}

			// Handle preflight OPTIONS request
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
