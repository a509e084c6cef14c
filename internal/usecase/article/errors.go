package article

import "errors"

var (
	// ErrArticleNotFound is returned when no article exists for the given id.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID is returned when the id is not a valid object id.
	ErrInvalidArticleID = errors.New("invalid article id")
)
