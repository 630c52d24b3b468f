package repository

import (
	"context"
	"errors"

	"cryptobuddy/internal/domain"
)

var (
	// ErrNotFound is returned for coin ids outside the repository's catalog.
	ErrNotFound = errors.New("coin not found")
	// ErrDataUnavailable wraps ErrNotFound when a known coin could not be fetched.
	ErrDataUnavailable = errors.New("coin data unavailable")
)

// CoinRepository returns facts about the coins it knows.
type CoinRepository interface {
	Get(ctx context.Context, coinID string) (*domain.CoinFact, error)
	// GetAll returns facts in catalog order, omitting coins that could not be resolved.
	GetAll(ctx context.Context) ([]domain.CoinFact, error)
	Mode() domain.DataSource
	Catalog() []domain.Coin
}

type unavailableError struct {
	coinID string
	cause  error
}

func (e *unavailableError) Error() string {
	return "coin data unavailable for " + e.coinID + ": " + e.cause.Error()
}

func (e *unavailableError) Is(target error) bool {
	return target == ErrDataUnavailable || target == ErrNotFound
}

func (e *unavailableError) Unwrap() error {
	return e.cause
}
