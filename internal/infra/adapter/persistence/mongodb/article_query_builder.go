// Package mongodb provides MongoDB implementations of repository interfaces.
package mongodb

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"mystical-api/internal/pkg/search"
	"mystical-api/internal/repository"
)

// ArticleQueryBuilder translates optional listing filters into a store-native
// filter document. It is shared between the list and count paths so both see
// identical match semantics.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildFilter builds the filter document for article listing.
//
//   - Category present: exact-match constraint on the category field.
//   - Keyword present: case-insensitive substring match on the title field,
//     with regex metacharacters escaped so the match is literal.
//   - Both present: both constraints in one document (logical AND).
//   - Neither present: the empty filter, matching everything.
//
// An empty or whitespace-only keyword is treated as absent. Translating it
// literally would produce a match-all regex rather than the intended "no
// constraint", so it is normalized away before the filter is built.
func (qb *ArticleQueryBuilder) BuildFilter(f repository.ArticleFilter) bson.M {
	filter := bson.M{}

	if f.Category != "" {
		filter["category"] = f.Category
	}

	if kw := search.NormalizeKeyword(f.Keyword); kw != "" {
		filter["title"] = bson.M{
			"$regex":   search.EscapeRegex(kw),
			"$options": "i",
		}
	}

	return filter
}
