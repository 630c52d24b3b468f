package repository

import (
	"context"
	"fmt"
	"time"

	"cryptobuddy/internal/cache"
	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/metrics"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	defaultFetchTimeout     = 10 * time.Second
	defaultFetchConcurrency = 4
)

// CoinFetcher fetches current market data for a single coin.
type CoinFetcher interface {
	FetchCoin(ctx context.Context, coinID string) (*domain.CoinFact, error)
}

// LiveOptions tunes the live repository's fan-out.
type LiveOptions struct {
	FetchTimeout time.Duration
	Concurrency  int
}

// LiveRepository resolves coins through the market-data API, memoized by a cache.
type LiveRepository struct {
	tracer  trace.Tracer
	fetcher CoinFetcher
	cache   cache.Store
	coins   []domain.Coin
	logger  logrus.FieldLogger
	metrics *metrics.Metrics
	now     func() time.Time

	fetchTimeout time.Duration
	concurrency  int
}

func NewLiveRepository(
	tracer trace.Tracer,
	fetcher CoinFetcher,
	store cache.Store,
	logger logrus.FieldLogger,
	m *metrics.Metrics,
	opts LiveOptions,
) *LiveRepository {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultFetchConcurrency
	}
	if m == nil {
		m = metrics.New(nil)
	}
	return &LiveRepository{
		tracer:       tracer,
		fetcher:      fetcher,
		cache:        store,
		coins:        domain.LiveCoins,
		logger:       logger.WithField("component", "live-repo"),
		metrics:      m,
		now:          time.Now,
		fetchTimeout: opts.FetchTimeout,
		concurrency:  opts.Concurrency,
	}
}

func (r *LiveRepository) Get(ctx context.Context, coinID string) (*domain.CoinFact, error) {
	ctx, span := r.tracer.Start(ctx, "live-repo.get")
	defer span.End()
	span.SetAttributes(attribute.String("coin_id", coinID))

	if _, ok := domain.FindCoin(r.coins, coinID); !ok {
		return nil, fmt.Errorf("live coin %q: %w", coinID, ErrNotFound)
	}
	return r.resolve(ctx, coinID)
}

// GetAll fetches every catalog coin concurrently. A failed coin is logged and
// left out; the others are still returned in catalog order.
func (r *LiveRepository) GetAll(ctx context.Context) ([]domain.CoinFact, error) {
	ctx, span := r.tracer.Start(ctx, "live-repo.get-all")
	defer span.End()

	results := make([]*domain.CoinFact, len(r.coins))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, c := range r.coins {
		g.Go(func() error {
			fact, err := r.resolve(gctx, c.ID)
			if err != nil {
				r.logger.WithError(err).WithField("coin", c.ID).Warn("omitting coin from results")
				return nil
			}
			results[i] = fact
			return nil
		})
	}
	_ = g.Wait()

	out := make([]domain.CoinFact, 0, len(results))
	for _, f := range results {
		if f != nil {
			out = append(out, *f)
		}
	}
	span.SetAttributes(attribute.Int("resolved", len(out)))
	return out, nil
}

func (r *LiveRepository) Mode() domain.DataSource {
	return domain.SourceLive
}

func (r *LiveRepository) Catalog() []domain.Coin {
	return r.coins
}

func (r *LiveRepository) resolve(ctx context.Context, coinID string) (*domain.CoinFact, error) {
	if entry, fresh := r.cache.Lookup(ctx, coinID); fresh {
		r.metrics.CacheLookups.WithLabelValues("hit").Inc()
		v := entry.Value
		return &v, nil
	}
	r.metrics.CacheLookups.WithLabelValues("miss").Inc()

	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	defer cancel()

	start := time.Now()
	fact, err := r.fetcher.FetchCoin(fetchCtx, coinID)
	r.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		r.metrics.FetchErrors.WithLabelValues(coinID).Inc()
		return nil, &unavailableError{coinID: coinID, cause: err}
	}

	f := *fact
	if c, ok := domain.FindCoin(r.coins, coinID); ok {
		f.ID = c.ID
		if f.Name == "" {
			f.Name = c.Name
		}
		if f.Symbol == "" {
			f.Symbol = c.Symbol
		}
	}
	f.Source = domain.SourceLive
	f.SustainabilityScore = domain.SustainabilityScore(coinID)

	r.cache.Store(ctx, coinID, f, r.now())
	return &f, nil
}
