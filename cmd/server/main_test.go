package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"
	"time"

	"cryptobuddy/internal/bot"
	"cryptobuddy/internal/config"
	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/job"
	"cryptobuddy/internal/repository"
	"cryptobuddy/pkg/logging"
	"cryptobuddy/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	tele "gopkg.in/telebot.v3"
)

func TestMainBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	restore := stubServerDeps(&config.Config{Port: "0", DataSource: "live", CacheBackend: "memory", CacheWarmSecs: 1})
	defer restore()

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}
}

func TestNewRepositoryStatic(t *testing.T) {
	tracer := trace.NewNoopTracerProvider().Tracer("test")
	repo := newRepository(context.Background(), &config.Config{DataSource: "static"}, tracer, logging.Discard(), nil)
	if repo.Mode() != domain.SourceStatic {
		t.Fatalf("expected static repository, got %s", repo.Mode())
	}
}

func TestNewRepositoryRedisFallsBackToMemory(t *testing.T) {
	restore := stubServerDeps(&config.Config{})
	defer restore()
	called := false
	initRedisFunc = func(ctx context.Context, addr string) (*redis.Client, error) {
		called = true
		return nil, errors.New("connection refused")
	}

	tracer := trace.NewNoopTracerProvider().Tracer("test")
	cfg := &config.Config{DataSource: "live", CacheBackend: "redis", RedisURL: "localhost:1", CacheTTLSecs: 60}
	repo := newRepository(context.Background(), cfg, tracer, logging.Discard(), nil)
	if !called {
		t.Fatal("expected redis init attempt")
	}
	if repo.Mode() != domain.SourceLive {
		t.Fatalf("expected live repository, got %s", repo.Mode())
	}
}

func stubServerDeps(cfg *config.Config) func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origNewLogger := newLoggerFunc
	origInitTracer := initTracerFunc
	origInitRedis := initRedisFunc
	origNewProvider := newCoinGeckoProviderFunc
	origStartWarmer := startWarmerFunc
	origStartTelegram := startTelegramBotFunc
	origNewRouter := newRouterFunc
	origSetupSignal := setupSignalNotify
	origWait := waitForSignalFunc
	origStartHTTP := startHTTPServerFunc
	origShutdownHTTP := shutdownHTTPServerFunc

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config { return cfg }
	newLoggerFunc = func(string, string) *logrus.Logger { return logging.Discard() }
	initTracerFunc = func(ctx context.Context, _ tracing.Options) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	initRedisFunc = func(ctx context.Context, addr string) (*redis.Client, error) {
		return nil, errors.New("redis disabled in tests")
	}
	newCoinGeckoProviderFunc = func(trace.Tracer, *config.Config) repository.CoinFetcher { return stubFetcher{} }
	startWarmerFunc = func(*job.CacheWarmer, context.Context) {}
	startTelegramBotFunc = func(string, bot.Asker, logrus.FieldLogger) *tele.Bot { return nil }
	newRouterFunc = func(...gin.OptionFunc) *gin.Engine { return gin.New() }
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	waitForSignalFunc = func(<-chan os.Signal) {}
	startHTTPServerFunc = func(*http.Server) error { return http.ErrServerClosed }
	shutdownHTTPServerFunc = func(*http.Server, context.Context) error { return nil }

	return func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		newLoggerFunc = origNewLogger
		initTracerFunc = origInitTracer
		initRedisFunc = origInitRedis
		newCoinGeckoProviderFunc = origNewProvider
		startWarmerFunc = origStartWarmer
		startTelegramBotFunc = origStartTelegram
		newRouterFunc = origNewRouter
		setupSignalNotify = origSetupSignal
		waitForSignalFunc = origWait
		startHTTPServerFunc = origStartHTTP
		shutdownHTTPServerFunc = origShutdownHTTP
	}
}

type stubFetcher struct{}

func (stubFetcher) FetchCoin(ctx context.Context, coinID string) (*domain.CoinFact, error) {
	return &domain.CoinFact{ID: coinID, Name: coinID, Symbol: "X", CurrentPrice: 1}, nil
}
