package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptobuddy/internal/advisor"
	"cryptobuddy/internal/bootstrap"
	"cryptobuddy/internal/bot"
	"cryptobuddy/internal/cache"
	"cryptobuddy/internal/config"
	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/handler"
	"cryptobuddy/internal/job"
	"cryptobuddy/internal/metrics"
	"cryptobuddy/internal/repository"
	"cryptobuddy/pkg/logging"
	"cryptobuddy/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "cryptobuddy/docs"
)

var (
	loadEnvFunc              = godotenv.Load
	loadConfigFunc           = config.Load
	newLoggerFunc            = logging.New
	initTracerFunc           = tracing.InitTracer
	initRedisFunc            = cache.InitRedis
	newCoinGeckoProviderFunc = bootstrap.NewCoinGeckoFetcher
	startWarmerFunc        = func(w *job.CacheWarmer, ctx context.Context) { go w.Start(ctx) }
	startTelegramBotFunc   = bot.StartTelegramBot
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           CryptoBuddy API
// @version         1.0
// @description     Rule-based crypto chatbot: intent classification, coin facts and recommendations.

// @host      localhost:8080
// @BasePath  /
func main() {
	_ = loadEnvFunc()

	cfg := loadConfigFunc()
	logger := newLoggerFunc(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx, tracing.Options{Enabled: cfg.TracingEnabled, Endpoint: cfg.OTLPEndpoint})
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize tracer")
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Warn("error shutting down tracer provider")
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	repo := newRepository(ctx, cfg, tracer, logger, m)
	logger.WithField("data_source", repo.Mode()).Info("coin repository ready")

	if cfg.CacheWarmSecs > 0 && repo.Mode() == domain.SourceLive {
		startWarmerFunc(job.NewCacheWarmer(tracer, repo, cfg.CacheWarmSecs, logger), ctx)
	}

	advisorService := advisor.NewAdvisorService(tracer, repo, logger, m)

	telegram := startTelegramBotFunc(cfg.TelegramBotToken, advisorService, logger)

	h := handler.New(tracer, advisorService, repo, advisorService, logger)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("cryptobuddy"))
	r.Use(handler.RequestID())

	h.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("http server listening")
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	logger.Info("shutting down server")

	cancel()
	if telegram != nil {
		telegram.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		logger.WithError(err).Fatal("server forced to shutdown")
	}

	logger.Info("server exiting")
}

func newRepository(ctx context.Context, cfg *config.Config, tracer trace.Tracer, logger logrus.FieldLogger, m *metrics.Metrics) repository.CoinRepository {
	return bootstrap.NewRepository(ctx, cfg, tracer, logger, m, bootstrap.RepositoryOptions{
		InitRedis:  initRedisFunc,
		NewFetcher: newCoinGeckoProviderFunc,
	})
}
