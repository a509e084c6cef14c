package article

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mystical-api/internal/domain/entity"
	"mystical-api/internal/repository"
	artUC "mystical-api/internal/usecase/article"
)

/* ───────── 共通スタブ ───────── */

type stubRepo struct {
	listDocs []repository.Document
	listErr  error
	lastFilt repository.ArticleFilter
	lastLim  int

	getDoc repository.Document
	getErr error

	createID  string
	createErr error
	created   []*entity.Article

	count    int64
	countErr error
}

func (s *stubRepo) List(_ context.Context, f repository.ArticleFilter, limit int) ([]repository.Document, error) {
	s.lastFilt = f
	s.lastLim = limit
	return s.listDocs, s.listErr
}

func (s *stubRepo) Get(_ context.Context, _ string) (repository.Document, error) {
	return s.getDoc, s.getErr
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	s.created = append(s.created, a)
	return s.createID, nil
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	return s.count, s.countErr
}

func newStubService(repo *stubRepo) *artUC.Service {
	return artUC.NewService(repo)
}

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
