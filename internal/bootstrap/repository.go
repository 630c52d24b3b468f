package bootstrap

import (
	"context"
	"time"

	"cryptobuddy/internal/cache"
	"cryptobuddy/internal/config"
	"cryptobuddy/internal/metrics"
	"cryptobuddy/internal/provider"
	"cryptobuddy/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// RepositoryOptions overrides how the live repository reaches Redis and the
// market-data API. Nil fields use cache.InitRedis and NewCoinGeckoFetcher.
type RepositoryOptions struct {
	InitRedis  func(ctx context.Context, addr string) (*redis.Client, error)
	NewFetcher func(tracer trace.Tracer, cfg *config.Config) repository.CoinFetcher
}

// NewCoinGeckoFetcher builds the CoinGecko provider from config.
func NewCoinGeckoFetcher(tracer trace.Tracer, cfg *config.Config) repository.CoinFetcher {
	return provider.NewCoinGeckoProvider(tracer, cfg.CoinGeckoBaseURL, cfg.CoinGeckoAPIKey,
		time.Duration(cfg.FetchTimeoutSecs)*time.Second)
}

// NewRepository selects the coin repository from config. The live repository
// uses Redis when configured and reachable, otherwise an in-memory cache.
func NewRepository(
	ctx context.Context,
	cfg *config.Config,
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	m *metrics.Metrics,
	opts RepositoryOptions,
) repository.CoinRepository {
	if cfg.DataSource != "live" {
		return repository.NewStaticRepository(tracer)
	}
	if opts.InitRedis == nil {
		opts.InitRedis = cache.InitRedis
	}
	if opts.NewFetcher == nil {
		opts.NewFetcher = NewCoinGeckoFetcher
	}

	return repository.NewLiveRepository(
		tracer,
		opts.NewFetcher(tracer, cfg),
		newStore(ctx, cfg, logger, opts.InitRedis),
		logger,
		m,
		repository.LiveOptions{
			FetchTimeout: time.Duration(cfg.FetchTimeoutSecs) * time.Second,
			Concurrency:  cfg.FetchConcurrency,
		},
	)
}

func newStore(
	ctx context.Context,
	cfg *config.Config,
	logger logrus.FieldLogger,
	initRedis func(ctx context.Context, addr string) (*redis.Client, error),
) cache.Store {
	ttl := time.Duration(cfg.CacheTTLSecs) * time.Second
	if cfg.CacheBackend != "redis" {
		return cache.NewMemory(ttl, nil)
	}
	client, err := initRedis(ctx, cfg.RedisURL)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, falling back to in-memory cache")
		return cache.NewMemory(ttl, nil)
	}
	return cache.NewRedisStore(client, ttl, logger)
}
