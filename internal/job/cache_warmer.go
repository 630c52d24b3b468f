package job

import (
	"context"
	"time"

	"cryptobuddy/internal/domain"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CoinLoader resolves every catalog coin, filling the cache as a side effect.
type CoinLoader interface {
	GetAll(ctx context.Context) ([]domain.CoinFact, error)
}

// CacheWarmer periodically reloads all coins so chat requests hit a warm cache.
type CacheWarmer struct {
	tracer   trace.Tracer
	loader   CoinLoader
	interval time.Duration
	logger   logrus.FieldLogger
}

func NewCacheWarmer(tracer trace.Tracer, loader CoinLoader, intervalSecs int, logger logrus.FieldLogger) *CacheWarmer {
	return &CacheWarmer{
		tracer:   tracer,
		loader:   loader,
		interval: time.Duration(intervalSecs) * time.Second,
		logger:   logger.WithField("component", "cache-warmer"),
	}
}

// Start warms immediately and then on every tick. Blocks until ctx is cancelled.
func (w *CacheWarmer) Start(ctx context.Context) {
	w.logger.WithField("interval", w.interval).Info("cache warmer starting")

	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cache warmer stopped")
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CacheWarmer) warm(ctx context.Context) {
	ctx, span := w.tracer.Start(ctx, "cache-warmer.warm")
	defer span.End()

	facts, err := w.loader.GetAll(ctx)
	if err != nil {
		span.RecordError(err)
		w.logger.WithError(err).Warn("cache warm failed")
		return
	}
	span.SetAttributes(attribute.Int("coins", len(facts)))
	w.logger.WithField("coins", len(facts)).Debug("cache warmed")
}
