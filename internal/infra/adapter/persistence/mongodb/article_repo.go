package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"mystical-api/internal/domain/entity"
	"mystical-api/internal/infra/db"
	"mystical-api/internal/observability/metrics"
	"mystical-api/internal/repository"
	"mystical-api/internal/resilience/circuitbreaker"
)

// observe records duration and failure metrics for a store operation.
func observe(operation string, start time.Time, err error) {
	metrics.RecordStoreQuery(operation, time.Since(start))
	if err != nil {
		metrics.RecordStoreError(operation)
	}
}

// articleCollection is the collection name, matching the lowercased entity name.
const articleCollection = "article"

// ArticleRepo implements repository.ArticleRepository against MongoDB.
// Store calls run through a circuit breaker so a dead store fails fast
// instead of queueing requests behind driver timeouts.
type ArticleRepo struct {
	store        *db.Store
	cb           *circuitbreaker.CircuitBreaker
	queryBuilder *ArticleQueryBuilder
}

// NewArticleRepo creates the article repository. The store may be in its
// Unavailable state; every operation then reports ErrStoreUnavailable.
func NewArticleRepo(store *db.Store) repository.ArticleRepository {
	return &ArticleRepo{
		store:        store,
		cb:           circuitbreaker.New(circuitbreaker.StoreConfig()),
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func (repo *ArticleRepo) collection() *mongo.Collection {
	return repo.store.Database().Collection(articleCollection)
}

// List returns up to limit raw records matching the filter, in store-native
// order. Zero matches produce an empty slice.
func (repo *ArticleRepo) List(ctx context.Context, filter repository.ArticleFilter, limit int) ([]repository.Document, error) {
	if !repo.store.Available() {
		return nil, repository.ErrStoreUnavailable
	}

	query := repo.queryBuilder.BuildFilter(filter)

	start := time.Now()
	result, err := repo.cb.Execute(func() (interface{}, error) {
		cur, err := repo.collection().Find(ctx, query, options.Find().SetLimit(int64(limit)))
		if err != nil {
			return nil, err
		}
		defer func() { _ = cur.Close(ctx) }()

		docs := make([]repository.Document, 0, limit)
		for cur.Next(ctx) {
			var doc bson.M
			if err := cur.Decode(&doc); err != nil {
				return nil, fmt.Errorf("decode: %w", err)
			}
			docs = append(docs, repository.Document(doc))
		}
		if err := cur.Err(); err != nil {
			return nil, err
		}
		return docs, nil
	})
	observe("list", start, err)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return result.([]repository.Document), nil
}

// Get returns the raw record for the identifier. A malformed identifier is
// rejected before any store call; a valid-but-absent one maps to ErrNotFound.
// The two conditions stay distinct so the handler layer can answer 400 vs 404.
func (repo *ArticleRepo) Get(ctx context.Context, id string) (repository.Document, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}

	if !repo.store.Available() {
		return nil, repository.ErrStoreUnavailable
	}

	start := time.Now()
	result, err := repo.cb.Execute(func() (interface{}, error) {
		var doc bson.M
		if err := repo.collection().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// 見つからない場合はエラーではなく nil を返す
				return (repository.Document)(nil), nil
			}
			return nil, err
		}
		return repository.Document(doc), nil
	})
	observe("get", start, err)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	doc := result.(repository.Document)
	if doc == nil {
		return nil, repository.ErrNotFound
	}
	return doc, nil
}

// Create persists a validated article and returns the store-assigned
// identifier in hex form. Bookkeeping timestamps are stamped here; the
// optional fields are omitted from the stored record when absent so reads
// reflect what the caller actually provided.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (string, error) {
	if !repo.store.Available() {
		return "", repository.ErrStoreUnavailable
	}

	now := time.Now().UTC()
	doc := bson.M{
		"title":      article.Title,
		"category":   string(article.Category),
		"content":    article.Content,
		"created_at": now,
		"updated_at": now,
	}
	if article.Summary != "" {
		doc["summary"] = article.Summary
	}
	if article.ImageURL != "" {
		doc["image_url"] = article.ImageURL
	}
	if !article.PublishedAt.IsZero() {
		doc["published_at"] = article.PublishedAt.UTC()
	}

	start := time.Now()
	result, err := repo.cb.Execute(func() (interface{}, error) {
		res, err := repo.collection().InsertOne(ctx, doc)
		if err != nil {
			return nil, err
		}
		oid, ok := res.InsertedID.(bson.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
		}
		return oid.Hex(), nil
	})
	observe("insert", start, err)
	if err != nil {
		return "", fmt.Errorf("Create: %w", err)
	}
	return result.(string), nil
}

// Count returns the number of records in the collection.
func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	if !repo.store.Available() {
		return 0, repository.ErrStoreUnavailable
	}

	start := time.Now()
	result, err := repo.cb.Execute(func() (interface{}, error) {
		return repo.collection().CountDocuments(ctx, bson.M{})
	})
	observe("count", start, err)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return result.(int64), nil
}
