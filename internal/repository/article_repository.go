// Package repository declares the persistence contracts between the use case
// layer and the document store adapters.
package repository

import (
	"context"
	"errors"

	"mystical-api/internal/domain/entity"
)

// Document is a raw stored record exactly as the document store returns it.
// Only the serialization boundary may shape it for API consumers; internal
// code other than that boundary never reads individual fields from it.
type Document map[string]any

// ArticleFilter contains optional filters for article listing.
// Zero values mean "no constraint" — an empty keyword must not be turned
// into a match-only-empty-titles filter.
type ArticleFilter struct {
	Category string // exact match on the category field
	Keyword  string // case-insensitive substring match on the title field
}

// Sentinel errors returned by store adapters. The handler layer maps these to
// 400 / 404 / 500 responses respectively.
var (
	// ErrInvalidID indicates the identifier is not syntactically valid for
	// the store's identifier type.
	ErrInvalidID = errors.New("invalid article id")

	// ErrNotFound indicates a syntactically valid identifier with no record.
	ErrNotFound = errors.New("article not found")

	// ErrStoreUnavailable indicates the store was never configured or the
	// connection could not be established. Adapters degrade to this state
	// instead of crashing the process.
	ErrStoreUnavailable = errors.New("document store not configured")
)

// ArticleRepository is the collection-scoped access contract for articles.
// Every operation is a blocking I/O call; callers must not hold in-process
// locks across them.
type ArticleRepository interface {
	// List returns up to limit raw records matching the filter, in
	// store-native order. Zero matches returns an empty slice, not an error.
	// Limit bounds checking is the caller's job; the adapter passes the
	// value through.
	List(ctx context.Context, filter ArticleFilter, limit int) ([]Document, error)

	// Get returns the raw record for the identifier.
	// Returns ErrInvalidID for malformed identifiers and ErrNotFound for
	// valid-but-absent ones; callers must distinguish the two.
	Get(ctx context.Context, id string) (Document, error)

	// Create persists a validated article and returns the store-assigned
	// identifier as an opaque string.
	Create(ctx context.Context, article *entity.Article) (string, error)

	// Count returns the number of records in the collection. Used by the
	// seed guard.
	Count(ctx context.Context) (int64, error)
}
