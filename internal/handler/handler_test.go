package handler

import (
	"context"
	"fmt"
	"time"

	"cryptobuddy/internal/domain"
	"cryptobuddy/internal/recommend"
	"cryptobuddy/internal/repository"
	"cryptobuddy/pkg/logging"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

func newTestHandler(chat ChatService, coins CoinLookup, rec Recommender) *Handler {
	return New(trace.NewNoopTracerProvider().Tracer("handler-test"), chat, coins, rec, logging.Discard())
}

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	h.RegisterRoutes(r)
	return r
}

type stubChat struct {
	err      error
	messages []string
}

func (s *stubChat) Ask(ctx context.Context, message string) (*domain.Exchange, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.messages = append(s.messages, message)
	return &domain.Exchange{
		UserMessage: message,
		Reply: domain.Reply{
			Intent:   domain.IntentPrice,
			Headline: "💰 Information about Bitcoin (BTC):",
			Detail:   "details for " + message,
		},
		Entities: domain.Entities{
			MentionedCoins: []string{"bitcoin"},
			Urgency:        domain.UrgencyNormal,
		},
		Timestamp: time.Date(2025, 3, 1, 9, 7, 0, 0, time.UTC),
	}, nil
}

type stubCoins struct {
	facts []domain.CoinFact
	err   error
	mode  domain.DataSource
}

func (s *stubCoins) Mode() domain.DataSource {
	if s.mode == "" {
		return domain.SourceStatic
	}
	return s.mode
}

func (s *stubCoins) Get(ctx context.Context, coinID string) (*domain.CoinFact, error) {
	for _, f := range s.facts {
		if f.ID == coinID {
			return &f, nil
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return nil, fmt.Errorf("coin %q: %w", coinID, repository.ErrNotFound)
}

func (s *stubCoins) GetAll(ctx context.Context) ([]domain.CoinFact, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.facts, nil
}

type stubRecommender struct {
	ranked []domain.RankedCoin
	err    error
	kinds  []recommend.Kind
}

func (s *stubRecommender) Recommend(ctx context.Context, kind recommend.Kind) ([]domain.RankedCoin, error) {
	s.kinds = append(s.kinds, kind)
	return s.ranked, s.err
}
