package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"mystical-api/internal/common/listing"
	appcfg "mystical-api/internal/config"
	mongoRepo "mystical-api/internal/infra/adapter/persistence/mongodb"
	"mystical-api/internal/infra/db"
	"mystical-api/internal/observability/logging"
	"mystical-api/internal/observability/metrics"
	"mystical-api/internal/observability/tracing"
	"mystical-api/pkg/config"

	artUC "mystical-api/internal/usecase/article"

	hhttp "mystical-api/internal/handler/http"
	harticle "mystical-api/internal/handler/http/article"
	"mystical-api/internal/handler/http/middleware"
	"mystical-api/internal/handler/http/requestid"

	_ "mystical-api/docs" // swagger docs
)

// @title           Mystical Content API
// @version         1.0
// @description     歴史・神話・科学の記事を提供する読み取り中心のコンテンツ API
// @description     記事の一覧・検索・取得・作成とサンプルデータ投入機能を提供します。

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8000
// @BasePath  /

func main() {
	// .env があれば読む。無くてもエラーにしない
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := appcfg.Load(config.GetEnvString("CONFIG_PATH", "config.yaml"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	version := getVersion()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, "mystical-api", version)
	if err != nil {
		logger.Error("failed to set up tracing", slog.Any("error", err))
		os.Exit(1)
	}

	// ストア接続失敗は警告のみ。Unavailable のままサービスを開始する
	store := db.Open(ctx, logger)

	repo := mongoRepo.NewArticleRepo(store)
	artSvc := artUC.NewService(repo)

	refresher := metrics.NewGaugeRefresher(repo, logger, config.GetEnvString("METRICS_REFRESH_SCHEDULE", "@every 1m"))
	if err := refresher.Start(ctx); err != nil {
		logger.Warn("article gauge refresher disabled", slog.Any("error", err))
	}

	handler := setupHandler(logger, store, artSvc, cfg, version)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris 対策
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr()),
			slog.String("version", version),
			slog.Bool("store_available", store.Available()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		refresher.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
		}
		if err := store.Close(shutdownCtx); err != nil {
			logger.Error("failed to close document store", slog.Any("error", err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupHandler registers all routes and wraps them with the middleware chain.
func setupHandler(logger *slog.Logger, store *db.Store, artSvc *artUC.Service, cfg *appcfg.AppConfig, version string) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", &hhttp.RootHandler{})
	mux.Handle("GET /test", &hhttp.TestHandler{Store: store})
	mux.Handle("GET /health", &hhttp.HealthHandler{Store: store, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Store: store})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// レート制限: 書き込み系エンドポイントは1分あたりの上限あり
	mutationLimiter := hhttp.NewRateLimiter(cfg.RateLimit.MutationsPerMinute, time.Minute)
	harticle.Register(mux, artSvc, listing.LoadFromEnv(), logger, mutationLimiter.Limit)

	corsConfig := middleware.LoadCORSConfig()
	corsConfig.Logger = logger
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	// Apply in reverse order (innermost to outermost)
	var handler http.Handler = mux
	handler = hhttp.MetricsMiddleware(handler)
	handler = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(handler)
	handler = middleware.CORS(corsConfig)(handler)
	handler = tracing.Middleware(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = requestid.Middleware(handler)
	handler = hhttp.Recover(logger)(handler)

	return handler
}
