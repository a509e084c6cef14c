package article

import (
	"log/slog"
	"net/http"

	"mystical-api/internal/common/listing"
	artUC "mystical-api/internal/usecase/article"
)

// Middleware wraps a handler, e.g. for rate limiting mutating endpoints.
type Middleware func(http.Handler) http.Handler

// Register registers all article-related HTTP handlers with the given mux.
// Mutating routes (create, seed) are wrapped with the supplied guard
// middleware; pass nil to register them unguarded.
func Register(mux *http.ServeMux, svc *artUC.Service, listingCfg listing.Config, logger *slog.Logger, guard Middleware) {
	if guard == nil {
		guard = func(next http.Handler) http.Handler { return next }
	}

	mux.Handle("GET    /api/articles", ListHandler{
		Svc:        svc,
		ListingCfg: listingCfg,
		Logger:     logger,
	})
	mux.Handle("GET    /api/articles/", GetHandler{svc})

	mux.Handle("POST   /api/articles", guard(CreateHandler{svc}))
	mux.Handle("POST   /api/seed", guard(SeedHandler{Svc: svc, Logger: logger}))
}
