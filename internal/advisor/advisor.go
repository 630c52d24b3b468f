package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/metrics"
	"cryptobuddy/internal/nlp"
	"cryptobuddy/internal/recommend"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CoinSource provides coin facts for the advisor.
type CoinSource interface {
	Get(ctx context.Context, coinID string) (*domain.CoinFact, error)
	GetAll(ctx context.Context) ([]domain.CoinFact, error)
	Mode() domain.DataSource
	Catalog() []domain.Coin
}

type AdvisorService struct {
	tracer    trace.Tracer
	coins     CoinSource
	extractor *nlp.Extractor
	composer  *Composer
	logger    logrus.FieldLogger
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewAdvisorService(
	tracer trace.Tracer,
	coins CoinSource,
	logger logrus.FieldLogger,
	m *metrics.Metrics,
) *AdvisorService {
	if m == nil {
		m = metrics.New(nil)
	}
	return &AdvisorService{
		tracer:    tracer,
		coins:     coins,
		extractor: nlp.NewExtractor(coins.Catalog()),
		composer:  NewComposer(),
		logger:    logger.WithField("component", "advisor"),
		metrics:   m,
		now:       time.Now,
	}
}

// Ask answers one user message. Data failures degrade the reply rather than
// failing it; an error is only returned when ctx is already done.
func (s *AdvisorService) Ask(ctx context.Context, userMessage string) (*domain.Exchange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, span := s.tracer.Start(ctx, "advisor.ask")
	defer span.End()

	text := strings.TrimSpace(userMessage)
	ent := s.extractor.Extract(text)
	intent := nlp.ResolveIntent(ent)

	data, intent := s.gather(ctx, intent, ent)
	reply := s.composer.Compose(intent, ent, data)

	span.SetAttributes(
		attribute.String("intent", string(reply.Intent)),
		attribute.Int("mentioned_coins", len(ent.MentionedCoins)),
		attribute.String("urgency", string(ent.Urgency)),
	)
	s.metrics.Intents.WithLabelValues(string(reply.Intent)).Inc()

	return &domain.Exchange{
		UserMessage: userMessage,
		Reply:       reply,
		Entities:    ent,
		Timestamp:   s.now(),
	}, nil
}

// Recommend ranks every known coin for kind. An empty ranking is not an error.
func (s *AdvisorService) Recommend(ctx context.Context, kind recommend.Kind) ([]domain.RankedCoin, error) {
	ctx, span := s.tracer.Start(ctx, "advisor.recommend")
	defer span.End()
	span.SetAttributes(attribute.String("kind", string(kind)))

	facts, err := s.coins.GetAll(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load coins: %w", err)
	}
	return s.rank(kind, facts), nil
}

func (s *AdvisorService) gather(ctx context.Context, intent domain.Intent, ent domain.Entities) (ComposeData, domain.Intent) {
	ctx, span := s.tracer.Start(ctx, "advisor.gather")
	defer span.End()

	data := ComposeData{Catalog: s.coins.Catalog()}

	if kind, ok := recommend.KindForIntent(intent); ok {
		facts, err := s.coins.GetAll(ctx)
		if err != nil {
			s.logger.WithError(err).Warn("failed to load coins for ranking")
			return data, domain.IntentFallback
		}
		data.Ranking = s.rank(kind, facts)
		return data, intent
	}

	switch intent {
	case domain.IntentPrice:
		for _, id := range ent.MentionedCoins {
			f, err := s.coins.Get(ctx, id)
			if err != nil {
				s.logger.WithError(err).WithField("coin", id).Warn("coin unavailable")
				continue
			}
			data.Coins = append(data.Coins, *f)
		}
		if len(data.Coins) == 0 {
			return data, domain.IntentFallback
		}
	case domain.IntentComparison:
		if len(ent.MentionedCoins) < 2 {
			return data, intent
		}
		facts, err := s.coins.GetAll(ctx)
		if err != nil {
			s.logger.WithError(err).Warn("failed to load coins for comparison")
			return data, domain.IntentFallback
		}
		data.Coins = pick(facts, ent.MentionedCoins)
	}
	return data, intent
}

func (s *AdvisorService) rank(kind recommend.Kind, facts []domain.CoinFact) []domain.RankedCoin {
	ranked := recommend.Rank(s.coins.Mode(), kind, facts)
	outcome := "match"
	if len(ranked) == 0 {
		outcome = "empty"
	}
	s.metrics.Rankings.WithLabelValues(string(kind), outcome).Inc()
	return ranked
}

// pick returns the facts for ids, in the order of ids.
func pick(facts []domain.CoinFact, ids []string) []domain.CoinFact {
	byID := make(map[string]domain.CoinFact, len(facts))
	for _, f := range facts {
		byID[f.ID] = f
	}
	out := make([]domain.CoinFact, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			out = append(out, f)
		}
	}
	return out
}
