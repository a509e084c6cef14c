package article

import (
	"log/slog"
	"net/http"

	"mystical-api/internal/handler/http/respond"
	artUC "mystical-api/internal/usecase/article"
)

type SeedHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP サンプルデータ投入
// @Summary      サンプル記事の投入
// @Description  コレクションが空の場合のみ、固定のサンプル記事を投入します
// @Tags         articles
// @Produce      json
// @Success      200 {object} SeedResponse "投入結果"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /api/seed [post]
func (h SeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.Seed(r.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Error("Seeding failed", "error", err.Error())
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := SeedResponse{Status: "ok"}
	if res.AlreadySeeded {
		resp.Message = "content already exists"
		resp.Count = res.Total
	} else {
		resp.Inserted = res.Inserted
	}

	if h.Logger != nil {
		h.Logger.Info("Seeding completed",
			"already_seeded", res.AlreadySeeded,
			"inserted", res.Inserted,
			"total", res.Total)
	}

	respond.JSON(w, http.StatusOK, resp)
}
