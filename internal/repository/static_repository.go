package repository

import (
	"context"
	"fmt"

	"cryptobuddy/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// StaticRepository serves the built-in five-coin dataset.
type StaticRepository struct {
	tracer trace.Tracer
	coins  []domain.Coin
	facts  map[string]domain.CoinFact
}

func NewStaticRepository(tracer trace.Tracer) *StaticRepository {
	facts := make(map[string]domain.CoinFact, len(domain.StaticCoins))
	for _, c := range domain.StaticCoins {
		f := domain.StaticFacts[c.ID]
		f.ID = c.ID
		f.Name = c.Name
		f.Symbol = c.Symbol
		f.Source = domain.SourceStatic
		f.SustainabilityScore = domain.SustainabilityScore(c.ID)
		facts[c.ID] = f
	}
	return &StaticRepository{
		tracer: tracer,
		coins:  domain.StaticCoins,
		facts:  facts,
	}
}

func (r *StaticRepository) Get(ctx context.Context, coinID string) (*domain.CoinFact, error) {
	_, span := r.tracer.Start(ctx, "static-repo.get")
	defer span.End()

	f, ok := r.facts[coinID]
	if !ok {
		return nil, fmt.Errorf("static coin %q: %w", coinID, ErrNotFound)
	}
	return &f, nil
}

func (r *StaticRepository) GetAll(ctx context.Context) ([]domain.CoinFact, error) {
	_, span := r.tracer.Start(ctx, "static-repo.get-all")
	defer span.End()

	out := make([]domain.CoinFact, 0, len(r.coins))
	for _, c := range r.coins {
		out = append(out, r.facts[c.ID])
	}
	return out, nil
}

func (r *StaticRepository) Mode() domain.DataSource {
	return domain.SourceStatic
}

func (r *StaticRepository) Catalog() []domain.Coin {
	return r.coins
}
