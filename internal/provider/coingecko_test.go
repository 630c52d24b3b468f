package provider

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"cryptobuddy/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const bitcoinBody = `{
  "id": "bitcoin",
  "symbol": "btc",
  "name": "Bitcoin",
  "market_cap_rank": 1,
  "market_data": {
    "current_price": {"usd": 64123.45, "eur": 59000},
    "price_change_percentage_24h": 2.5,
    "market_cap": {"usd": 1260000000000},
    "total_volume": {"usd": 32000000000},
    "high_24h": {"usd": 65000},
    "low_24h": {"usd": 62000},
    "last_updated": "2025-01-01T12:00:00.000Z"
  }
}`

func newTestProvider(rt roundTripFunc) *CoinGeckoProvider {
	p := NewCoinGeckoProvider(trace.NewNoopTracerProvider().Tracer("test"), "http://example", "demo-key", time.Second)
	p.client = &http.Client{Transport: rt}
	p.limiter = NewRateLimiter(10, time.Millisecond)
	return p
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestCoinGeckoProviderFetchCoin(t *testing.T) {
	t.Parallel()

	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/coins/bitcoin" {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		if req.URL.Query().Get("market_data") != "true" || req.URL.Query().Get("tickers") != "false" {
			t.Fatalf("unexpected query: %s", req.URL.RawQuery)
		}
		if req.Header.Get("x-cg-demo-api-key") != "demo-key" {
			t.Fatalf("expected api key header")
		}
		return jsonResponse(http.StatusOK, bitcoinBody), nil
	})

	fact, err := p.FetchCoin(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fact.ID != "bitcoin" || fact.Symbol != "BTC" || fact.Name != "Bitcoin" {
		t.Fatalf("unexpected identity: %+v", fact)
	}
	if fact.CurrentPrice != 64123.45 || fact.PriceChangePct24h != 2.5 || fact.MarketCapRank != 1 {
		t.Fatalf("unexpected market data: %+v", fact)
	}
	if fact.TotalVolume != 32000000000 || fact.High24h != 65000 || fact.Low24h != 62000 {
		t.Fatalf("unexpected volume/range: %+v", fact)
	}
	if fact.Source != domain.SourceLive || fact.PriceTrend != domain.TrendRising || fact.MarketCapTier != domain.TierHigh {
		t.Fatalf("unexpected derived fields: %+v", fact)
	}
	if !fact.LastUpdated.Equal(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected last updated: %v", fact.LastUpdated)
	}
}

func TestCoinGeckoProviderRankFallsBackToMarketData(t *testing.T) {
	t.Parallel()

	body := `{"id":"cardano","symbol":"ada","name":"Cardano","market_data":{"market_cap_rank":9,"current_price":{"usd":0.5}}}`
	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, body), nil
	})

	fact, err := p.FetchCoin(context.Background(), "cardano")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fact.MarketCapRank != 9 {
		t.Fatalf("expected rank from market_data, got %d", fact.MarketCapRank)
	}
}

func TestCoinGeckoProviderNotFound(t *testing.T) {
	t.Parallel()

	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `{"error":"coin not found"}`), nil
	})

	_, err := p.FetchCoin(context.Background(), "nope")
	if !errors.Is(err, ErrUnknownCoin) {
		t.Fatalf("expected ErrUnknownCoin, got %v", err)
	}
}

func TestCoinGeckoProviderServerError(t *testing.T) {
	t.Parallel()

	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, "slow down"), nil
	})

	_, err := p.FetchCoin(context.Background(), "bitcoin")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestCoinGeckoProviderBadJSON(t *testing.T) {
	t.Parallel()

	p := newTestProvider(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "<html>"), nil
	})

	if _, err := p.FetchCoin(context.Background(), "bitcoin"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNewCoinGeckoProviderDefaults(t *testing.T) {
	p := NewCoinGeckoProvider(trace.NewNoopTracerProvider().Tracer("test"), "", "", 0)
	if p.baseURL != coingeckoBaseURL {
		t.Fatalf("expected default base url, got %s", p.baseURL)
	}
	if p.client == nil || p.limiter == nil {
		t.Fatal("expected client and limiter")
	}
}

func newRetryTestProvider(rt roundTripFunc) *CoinGeckoProvider {
	p := NewCoinGeckoProvider(trace.NewNoopTracerProvider().Tracer("test"), "http://example", "", time.Second)
	rc := newRetryClient(time.Second)
	rc.RetryWaitMin = time.Millisecond
	rc.RetryWaitMax = time.Millisecond
	rc.HTTPClient.Transport = rt
	p.client = rc.StandardClient()
	p.limiter = NewRateLimiter(10, time.Millisecond)
	return p
}

func TestCoinGeckoProviderRetriesTransientFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	p := newRetryTestProvider(func(req *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			return jsonResponse(http.StatusServiceUnavailable, "busy"), nil
		}
		return jsonResponse(http.StatusOK, bitcoinBody), nil
	})

	fact, err := p.FetchCoin(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
	if fact.ID != "bitcoin" {
		t.Fatalf("unexpected fact: %+v", fact)
	}
}

func TestCoinGeckoProviderStopsAfterRetryMax(t *testing.T) {
	t.Parallel()

	calls := 0
	p := newRetryTestProvider(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusServiceUnavailable, "busy"), nil
	})

	if _, err := p.FetchCoin(context.Background(), "bitcoin"); err == nil {
		t.Fatal("expected error once retries are exhausted")
	}
	if want := newRetryClient(time.Second).RetryMax + 1; calls != want {
		t.Fatalf("expected %d attempts, got %d", want, calls)
	}
}
