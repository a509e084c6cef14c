// Package entity defines the core domain entities and validation logic for the application.
// It contains the Article business object, the fixed category set, and the
// construction-time validation rules that keep malformed records out of the store.
package entity

import (
	"errors"
	"time"
)

// Category classifies an article into one of the fixed content categories.
type Category string

// The only categories the API accepts. Any other value fails validation
// at construction time and never reaches the persistence layer.
const (
	CategoryHistory   Category = "history"
	CategoryMythology Category = "mythology"
	CategoryScience   Category = "science"
)

// Categories lists every valid category value.
func Categories() []Category {
	return []Category{CategoryHistory, CategoryMythology, CategoryScience}
}

// Valid reports whether the category is one of the fixed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryHistory, CategoryMythology, CategoryScience:
		return true
	}
	return false
}

// Article represents a content article in the system.
// ID is the store-assigned identifier in its opaque string form; it is empty
// until the article has been persisted.
type Article struct {
	ID          string
	Title       string
	Category    Category
	Summary     string
	Content     string
	ImageURL    string
	PublishedAt time.Time
}

// ArticleInput carries the caller-supplied fields for constructing an Article.
type ArticleInput struct {
	Title       string
	Category    string
	Summary     string
	Content     string
	ImageURL    string
	PublishedAt time.Time
}

// NewArticle validates the input and constructs an Article.
// All violations are collected so the error enumerates every bad field,
// not just the first one encountered.
func NewArticle(in ArticleInput) (*Article, error) {
	var errs []error

	if in.Title == "" {
		errs = append(errs, &ValidationError{Field: "title", Message: "is required"})
	}
	if in.Content == "" {
		errs = append(errs, &ValidationError{Field: "content", Message: "is required"})
	}

	category := Category(in.Category)
	if !category.Valid() {
		errs = append(errs, &ValidationError{
			Field:   "category",
			Message: "must be one of: history, mythology, science",
		})
	}

	if in.ImageURL != "" {
		if err := ValidateURL(in.ImageURL); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Article{
		Title:       in.Title,
		Category:    category,
		Summary:     in.Summary,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		PublishedAt: in.PublishedAt,
	}, nil
}
