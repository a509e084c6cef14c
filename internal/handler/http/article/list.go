package article

import (
	"log/slog"
	"net/http"
	"time"

	"mystical-api/internal/common/listing"
	"mystical-api/internal/handler/http/requestid"
	"mystical-api/internal/handler/http/respond"
	"mystical-api/internal/observability/logging"
	"mystical-api/internal/repository"
	artUC "mystical-api/internal/usecase/article"
)

type ListHandler struct {
	Svc        *artUC.Service
	ListingCfg listing.Config
	Logger     *slog.Logger
}

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得
// @Description  登録されている記事を取得します。カテゴリとキーワードで絞り込みができます。
// @Tags         articles
// @Produce      json
// @Param        category  query    string  false  "カテゴリ (history, mythology, science)"
// @Param        q         query    string  false  "タイトル部分一致キーワード（大文字小文字を区別しない）"
// @Param        limit     query    int     false  "取得件数" default(50) minimum(1) maximum(100)
// @Success      200 {array}  map[string]any "記事一覧"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := listing.ParseQueryParams(r, h.ListingCfg)
	if err != nil {
		logger.Warn("Invalid listing parameters",
			"error", err.Error(),
			"request_id", reqID)
		listing.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	logger.Info("Article list request",
		"category", params.Category,
		"keyword", params.Keyword,
		"limit", params.Limit,
		"request_id", reqID)

	docs, err := h.Svc.List(ctx, repository.ArticleFilter{
		Category: params.Category,
		Keyword:  params.Keyword,
	}, params.Limit)
	if err != nil {
		logger.Error("Failed to list articles",
			"error", err.Error(),
			"request_id", reqID)
		listing.RecordError("store")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	duration := time.Since(startTime)
	listing.RecordRequest(http.StatusOK)
	listing.RecordDuration("list", duration.Seconds())

	logger.Info("Article list response",
		"returned_count", len(docs),
		"duration_ms", duration.Milliseconds(),
		"status", http.StatusOK,
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, docs)
}
