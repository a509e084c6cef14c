package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mystical-api/internal/domain/entity"
	"mystical-api/internal/observability/metrics"
	"mystical-api/internal/pkg/docview"
	"mystical-api/internal/repository"
)

// Service は記事に関するユースケースを提供する。
type Service struct {
	Repo repository.ArticleRepository
}

func NewService(repo repository.ArticleRepository) *Service {
	return &Service{Repo: repo}
}

// List returns stored articles matching the filter, serialized for the API.
// limit must already be validated by the caller.
func (s *Service) List(ctx context.Context, filter repository.ArticleFilter, limit int) ([]map[string]any, error) {
	docs, err := s.Repo.List(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return docview.SerializeAll(docs), nil
}

// Get returns a single article by id.
// A malformed id yields ErrInvalidArticleID, an absent one ErrArticleNotFound.
func (s *Service) Get(ctx context.Context, id string) (map[string]any, error) {
	doc, err := s.Repo.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidID):
			return nil, ErrInvalidArticleID
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrArticleNotFound
		default:
			return nil, fmt.Errorf("get article %q: %w", id, err)
		}
	}
	return docview.Serialize(doc), nil
}

// Create validates the input, persists the article and returns its new id.
func (s *Service) Create(ctx context.Context, input entity.ArticleInput) (string, error) {
	art, err := entity.NewArticle(input)
	if err != nil {
		return "", err
	}
	id, err := s.Repo.Create(ctx, art)
	if err != nil {
		return "", fmt.Errorf("create article: %w", err)
	}
	metrics.RecordArticleCreated(string(art.Category))
	return id, nil
}

// SeedResult reports the outcome of a seeding request.
type SeedResult struct {
	AlreadySeeded bool
	Inserted      int
	Total         int64
}

// Seed inserts the fixed sample articles unless the collection already
// holds documents. The count check and the inserts are not atomic, so
// concurrent calls may both pass the guard and insert duplicates.
func (s *Service) Seed(ctx context.Context) (SeedResult, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("count articles: %w", err)
	}
	if count > 0 {
		return SeedResult{AlreadySeeded: true, Total: count}, nil
	}

	var (
		inserted int
		firstErr error
	)
	for _, input := range SampleArticles() {
		art, err := entity.NewArticle(input)
		if err != nil {
			// サンプルデータが不正な場合はスキップ
			slog.Error("seed: invalid sample article", slog.String("title", input.Title), slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if _, err := s.Repo.Create(ctx, art); err != nil {
			slog.Error("seed: insert failed", slog.String("title", input.Title), slog.Any("error", err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		inserted++
	}
	if inserted == 0 && firstErr != nil {
		return SeedResult{}, fmt.Errorf("seed articles: %w", firstErr)
	}
	metrics.RecordArticlesSeeded(inserted)
	return SeedResult{Inserted: inserted, Total: int64(inserted)}, nil
}
