package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mystical-api/internal/domain/entity"
	"mystical-api/internal/handler/http/respond"
	artUC "mystical-api/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body CreateRequest true "記事情報"
// @Success      201 {object} CreateResponse "作成された記事のID"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	var pAt time.Time
	if req.PublishedAt != "" {
		var err error
		pAt, err = time.Parse(time.RFC3339, req.PublishedAt)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("published_at must be in RFC3339 format"))
			return
		}
	}

	id, err := h.Svc.Create(r.Context(), entity.ArticleInput{
		Title:       req.Title,
		Category:    req.Category,
		Summary:     req.Summary,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		PublishedAt: pAt,
	})
	if err != nil {
		// バリデーションエラーのみ400、それ以外はストア障害扱い
		code := http.StatusInternalServerError
		if entity.IsValidation(err) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, CreateResponse{ID: id})
}
